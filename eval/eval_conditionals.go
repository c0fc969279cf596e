package eval

import (
	"github.com/neilm5/pyrite/ast"
	"github.com/neilm5/pyrite/object"
)

func (e *Evaluator) evalIf(n *ast.If) object.Object {
	cond := e.Eval(n.Condition)
	if object.IsError(cond) || object.IsReturn(cond) {
		return cond
	}

	if object.Truthy(cond) {
		return e.evalBlock(n.Body)
	}

	for _, branch := range n.ElifClause {
		elifCond := e.Eval(branch.Condition)
		if object.IsError(elifCond) || object.IsReturn(elifCond) {
			return elifCond
		}
		if object.Truthy(elifCond) {
			return e.evalBlock(branch.Body)
		}
	}

	if n.ElseBody != nil {
		return e.evalBlock(n.ElseBody)
	}

	return object.NULL
}

// evalBlock evaluates a statement list, resetting to Null at the start of
// each branch (if/elif/else bodies do not carry a result in from outside).
func (e *Evaluator) evalBlock(body []ast.Node) object.Object {
	var result object.Object = object.NULL
	for _, stmt := range body {
		result = e.Eval(stmt)
		if object.IsError(result) || object.IsReturn(result) {
			return result
		}
	}
	return result
}
