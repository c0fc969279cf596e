package eval

import (
	"github.com/neilm5/pyrite/ast"
	"github.com/neilm5/pyrite/object"
	"github.com/neilm5/pyrite/token"
)

func (e *Evaluator) evalLiteral(n *ast.Literal) object.Object {
	switch n.Token.Type {
	case token.INT:
		return &object.Integer{Value: n.Token.Int}
	case token.FLOAT:
		return &object.Float{Value: n.Token.Float}
	case token.STRING:
		return &object.String{Value: n.Token.Literal}
	case token.BOOL:
		return object.NativeBool(n.Token.Literal == "true")
	case token.NULL:
		return object.NULL
	}
	return runtimeErrorf("Unsupported literal token '%s'", n.Token.Type)
}

func (e *Evaluator) evalList(n *ast.List) object.Object {
	elements := make([]object.Object, 0, len(n.Elements))
	for _, elemNode := range n.Elements {
		val := e.Eval(elemNode)
		if object.IsError(val) || object.IsReturn(val) {
			return val
		}
		elements = append(elements, val)
	}
	return &object.List{Elements: elements}
}

// evalListAccess supports negative indices the way native list indexing
// does: -1 is the last element, wrapping relative to the list's length
// before the bounds check.
func (e *Evaluator) evalListAccess(n *ast.ListAccess) object.Object {
	listVal := e.Eval(n.Name)
	if object.IsError(listVal) || object.IsReturn(listVal) {
		return listVal
	}
	indexVal := e.Eval(n.Index)
	if object.IsError(indexVal) || object.IsReturn(indexVal) {
		return indexVal
	}

	list, ok := listVal.(*object.List)
	if !ok {
		return runtimeErrorf("Expected list")
	}
	idx, ok := indexVal.(*object.Integer)
	if !ok {
		return runtimeErrorf("Expected index as int")
	}

	i := idx.Value
	if i < 0 {
		i += int64(len(list.Elements))
	}
	if i < 0 || i >= int64(len(list.Elements)) {
		return runtimeErrorf("List index out of range")
	}
	return list.Elements[i]
}
