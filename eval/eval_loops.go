package eval

import (
	"github.com/neilm5/pyrite/ast"
	"github.com/neilm5/pyrite/object"
)

// evalWhile tracks the last statement value across the ENTIRE loop, not
// per iteration: unlike If, the result is never reset to Null between
// iterations.
func (e *Evaluator) evalWhile(n *ast.While) object.Object {
	var result object.Object = object.NULL

	for {
		cond := e.Eval(n.Condition)
		if object.IsError(cond) || object.IsReturn(cond) {
			return cond
		}
		if !object.Truthy(cond) {
			break
		}

		for _, stmt := range n.Body {
			result = e.Eval(stmt)
			if object.IsError(result) || object.IsReturn(result) {
				return result
			}
		}
	}

	return result
}

// evalFor binds its loop variable into the single shared environment (it
// does not introduce a nested scope) and always yields Null, discarding
// whatever its body statements evaluate to.
func (e *Evaluator) evalFor(n *ast.For) object.Object {
	start := e.Eval(n.Init)
	if object.IsError(start) || object.IsReturn(start) {
		return start
	}
	if err := e.Env.Set(n.VarName, start, false); err != nil {
		return newError(err)
	}

	for {
		cond := e.Eval(n.Condition)
		if object.IsError(cond) || object.IsReturn(cond) {
			return cond
		}
		if !object.Truthy(cond) {
			break
		}

		for _, stmt := range n.Body {
			v := e.Eval(stmt)
			if object.IsError(v) || object.IsReturn(v) {
				return v
			}
		}

		upd := e.Eval(n.Update)
		if object.IsError(upd) || object.IsReturn(upd) {
			return upd
		}
	}

	return object.NULL
}
