package eval

import (
	"github.com/neilm5/pyrite/ast"
	"github.com/neilm5/pyrite/object"
	"github.com/neilm5/pyrite/token"
)

func (e *Evaluator) evalFunctionDef(n *ast.FunctionDef) object.Object {
	fn := &object.Function{Name: n.Name, Params: n.Params, Body: n.Body}
	if err := e.Env.Set(n.Name, fn, false); err != nil {
		return newError(err)
	}
	return object.NULL
}

func (e *Evaluator) evalFunctionCall(n *ast.FunctionCall) object.Object {
	args := make([]object.Object, 0, len(n.Args))
	for _, argNode := range n.Args {
		v := e.Eval(argNode)
		if object.IsError(v) || object.IsReturn(v) {
			return v
		}
		args = append(args, v)
	}

	if n.Builtin != "" && n.Builtin != token.ID {
		return e.callBuiltin(n.Builtin, args)
	}

	return e.callUserFunction(n.Name, args)
}

// callUserFunction implements Pyrite's distinctive call-scoping rule: the
// whole environment's variable map is snapshotted before the call, the
// parameters are bound directly into that same shared map (not a child
// scope), the body runs, and on the way out the ENTIRE map is replaced by
// the pre-call snapshot — discarding every mutation the call made to any
// pre-existing binding, including its own parameters. Only the constants
// set survives a call untouched either way; see object.Environment.
//
// Argument count is never diagnosed: surplus args are silently dropped
// (the bind loop only runs to len(fn.Params)), and too few args index past
// the end of args and panic, same as relying on the host language's own
// out-of-range error instead of a structured arity check.
func (e *Evaluator) callUserFunction(name string, args []object.Object) object.Object {
	binding, ok := e.Env.Get(name)
	if !ok {
		return runtimeErrorf("'%s' not defined", name)
	}
	fn, ok := binding.(*object.Function)
	if !ok {
		return runtimeErrorf("'%s' is not a function", name)
	}
	snapshot := e.Env.Snapshot()

	for i, param := range fn.Params {
		if err := e.Env.Set(param, args[i], false); err != nil {
			e.Env.Restore(snapshot)
			return newError(err)
		}
	}

	var result object.Object = object.NULL
	for _, stmt := range fn.Body {
		result = e.Eval(stmt)
		if object.IsError(result) {
			e.Env.Restore(snapshot)
			return result
		}
		if object.IsReturn(result) {
			result = result.(*object.ReturnSignal).Value
			break
		}
	}

	e.Env.Restore(snapshot)
	return result
}
