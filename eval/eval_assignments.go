package eval

import (
	"github.com/neilm5/pyrite/ast"
	"github.com/neilm5/pyrite/object"
)

func (e *Evaluator) evalVarAssign(n *ast.VarAssign) object.Object {
	value := e.Eval(n.Value)
	if object.IsError(value) || object.IsReturn(value) {
		return value
	}

	if n.IsOver {
		if _, exists := e.Env.Get(n.VarName); !exists {
			return runtimeErrorf("Cannot use 'over' to reassign undefined variable '%s'", n.VarName)
		}
	}

	if err := e.Env.Set(n.VarName, value, false); err != nil {
		return newError(err)
	}
	return value
}

func (e *Evaluator) evalConstAssign(n *ast.ConstAssign) object.Object {
	value := e.Eval(n.Value)
	if object.IsError(value) || object.IsReturn(value) {
		return value
	}

	if err := e.Env.Set(n.ConstName, value, true); err != nil {
		return newError(err)
	}
	return value
}

func (e *Evaluator) evalVarAccess(n *ast.VarAccess) object.Object {
	val, ok := e.Env.Get(n.VarName)
	if !ok {
		return runtimeErrorf("'%s' not defined", n.VarName)
	}
	// Functions aren't first-class: accessing a function name returns the
	// raw *object.Function node, same as evaluating any other binding.
	return val
}

func (e *Evaluator) evalIncr(n *ast.Incr) object.Object {
	return e.incrDecr(n.VarName, n.IsPrefix, 1)
}

func (e *Evaluator) evalDecr(n *ast.Decr) object.Object {
	return e.incrDecr(n.VarName, n.IsPrefix, -1)
}

func (e *Evaluator) incrDecr(varName string, isPrefix bool, delta int64) object.Object {
	current, ok := e.Env.Get(varName)
	if !ok {
		return runtimeErrorf("Undefined variable '%s'", varName)
	}

	updated, errObj := addDelta(current, delta)
	if errObj != nil {
		return errObj
	}

	if err := e.Env.Set(varName, updated, false); err != nil {
		return newError(err)
	}

	if isPrefix {
		return updated
	}
	return current
}

func addDelta(current object.Object, delta int64) (object.Object, *object.Error) {
	switch v := current.(type) {
	case *object.Integer:
		return &object.Integer{Value: v.Value + delta}, nil
	case *object.Float:
		return &object.Float{Value: v.Value + float64(delta)}, nil
	default:
		return nil, runtimeErrorf("Unsupported operand type for increment/decrement")
	}
}
