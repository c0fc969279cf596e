package eval

import (
	"math"

	"github.com/neilm5/pyrite/ast"
	"github.com/neilm5/pyrite/object"
	"github.com/neilm5/pyrite/token"
)

// evalBinOp implements the flat operator set. Both operands are always
// evaluated before the operator is applied — including for & and |, which
// are eager rather than short-circuiting and return one of the two raw
// operand objects, not necessarily a Boolean.
func (e *Evaluator) evalBinOp(n *ast.BinOp) object.Object {
	left := e.Eval(n.Left)
	if object.IsError(left) || object.IsReturn(left) {
		return left
	}
	right := e.Eval(n.Right)
	if object.IsError(right) || object.IsReturn(right) {
		return right
	}

	switch n.Op {
	case token.PLUS:
		return applyPlus(left, right)
	case token.MINUS:
		return applyArith(left, right, func(a, b float64) float64 { return a - b })
	case token.MUL:
		return applyArith(left, right, func(a, b float64) float64 { return a * b })
	case token.EXP:
		return applyArith(left, right, math.Pow)
	case token.DIV:
		return applyDiv(left, right)
	case token.FDIV:
		return applyFloorDiv(left, right)
	case token.MOD:
		return applyMod(left, right)
	case token.AVERAGE:
		return applyAverage(left, right)
	case token.EQ:
		return object.NativeBool(valuesEqual(left, right))
	case token.NEQ:
		return object.NativeBool(!valuesEqual(left, right))
	case token.LT:
		return applyCompare(left, right, func(c int) bool { return c < 0 })
	case token.LTE:
		return applyCompare(left, right, func(c int) bool { return c <= 0 })
	case token.GT:
		return applyCompare(left, right, func(c int) bool { return c > 0 })
	case token.GTE:
		return applyCompare(left, right, func(c int) bool { return c >= 0 })
	case token.APPROX:
		return applyApprox(left, right)
	case token.AND:
		if !object.Truthy(left) {
			return left
		}
		return right
	case token.OR:
		if object.Truthy(left) {
			return left
		}
		return right
	}

	return runtimeErrorf("Unsupported operator '%s'", n.Op)
}

func (e *Evaluator) evalUnaryOp(n *ast.UnaryOp) object.Object {
	value := e.Eval(n.Right)
	if object.IsError(value) || object.IsReturn(value) {
		return value
	}

	switch n.Op {
	case token.MINUS:
		switch v := value.(type) {
		case *object.Integer:
			return &object.Integer{Value: -v.Value}
		case *object.Float:
			return &object.Float{Value: -v.Value}
		}
		return runtimeErrorf("Unsupported operand type for unary '-'")

	case token.NOT:
		// Unreachable in practice: the lexer never emits a NOT token
		// (see lexer package), so the parser never builds this branch
		// with Op == NOT. Kept for grammar completeness.
		return object.NativeBool(!object.Truthy(e.Eval(n.Right)))
	}

	return value
}

func applyPlus(left, right object.Object) object.Object {
	if l, ok := left.(*object.String); ok {
		if r, ok := right.(*object.String); ok {
			return &object.String{Value: l.Value + r.Value}
		}
	}
	if l, ok := left.(*object.List); ok {
		if r, ok := right.(*object.List); ok {
			elems := make([]object.Object, 0, len(l.Elements)+len(r.Elements))
			elems = append(elems, l.Elements...)
			elems = append(elems, r.Elements...)
			return &object.List{Elements: elems}
		}
	}
	return applyArith(left, right, func(a, b float64) float64 { return a + b })
}

func applyArith(left, right object.Object, op func(a, b float64) float64) object.Object {
	lf, lIsFloat, lok := numericValue(left)
	rf, rIsFloat, rok := numericValue(right)
	if !lok || !rok {
		return runtimeErrorf("Unsupported operand types for arithmetic: %s, %s", left.Type(), right.Type())
	}

	result := op(lf, rf)
	if lIsFloat || rIsFloat {
		return &object.Float{Value: result}
	}
	return &object.Integer{Value: int64(result)}
}

func applyDiv(left, right object.Object) object.Object {
	lf, _, lok := numericValue(left)
	rf, _, rok := numericValue(right)
	if !lok || !rok {
		return runtimeErrorf("Unsupported operand types for '/': %s, %s", left.Type(), right.Type())
	}
	if rf == 0 {
		return newError(zeroDivisionError())
	}
	return &object.Float{Value: lf / rf}
}

func applyFloorDiv(left, right object.Object) object.Object {
	lf, lIsFloat, lok := numericValue(left)
	rf, rIsFloat, rok := numericValue(right)
	if !lok || !rok {
		return runtimeErrorf("Unsupported operand types for '//': %s, %s", left.Type(), right.Type())
	}
	if rf == 0 {
		return newError(zeroDivisionError())
	}
	result := math.Floor(lf / rf)
	if lIsFloat || rIsFloat {
		return &object.Float{Value: result}
	}
	return &object.Integer{Value: int64(result)}
}

func applyMod(left, right object.Object) object.Object {
	lf, lIsFloat, lok := numericValue(left)
	rf, rIsFloat, rok := numericValue(right)
	if !lok || !rok {
		return runtimeErrorf("Unsupported operand types for '%%': %s, %s", left.Type(), right.Type())
	}
	if rf == 0 {
		return newError(zeroDivisionError())
	}
	result := math.Mod(lf, rf)
	if lIsFloat || rIsFloat {
		return &object.Float{Value: result}
	}
	return &object.Integer{Value: int64(result)}
}

func applyAverage(left, right object.Object) object.Object {
	lf, _, lok := numericValue(left)
	rf, _, rok := numericValue(right)
	if !lok || !rok {
		return runtimeErrorf("Unsupported operand types for '~': %s, %s", left.Type(), right.Type())
	}
	return &object.Float{Value: (lf + rf) / 2}
}

func applyApprox(left, right object.Object) object.Object {
	lf, _, lok := numericValue(left)
	rf, _, rok := numericValue(right)
	if !lok || !rok {
		return runtimeErrorf("Unsupported operand types for '~=': %s, %s", left.Type(), right.Type())
	}
	return object.NativeBool(math.Abs(lf-rf) <= 0.01)
}

func applyCompare(left, right object.Object, pred func(cmp int) bool) object.Object {
	if l, ok := left.(*object.String); ok {
		if r, ok := right.(*object.String); ok {
			return object.NativeBool(pred(stringCompare(l.Value, r.Value)))
		}
	}
	lf, _, ok1 := numericValue(left)
	rf, _, ok2 := numericValue(right)
	if !ok1 || !ok2 {
		return runtimeErrorf("Unsupported operand types for comparison: %s, %s", left.Type(), right.Type())
	}
	switch {
	case lf < rf:
		return object.NativeBool(pred(-1))
	case lf > rf:
		return object.NativeBool(pred(1))
	default:
		return object.NativeBool(pred(0))
	}
}

func stringCompare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func valuesEqual(left, right object.Object) bool {
	lf, _, lok := numericValue(left)
	rf, _, rok := numericValue(right)
	if lok && rok {
		return lf == rf
	}

	if left.Type() != right.Type() {
		return false
	}

	switch l := left.(type) {
	case *object.String:
		return l.Value == right.(*object.String).Value
	case *object.Boolean:
		return l.Value == right.(*object.Boolean).Value
	case *object.Null:
		return true
	case *object.List:
		r := right.(*object.List)
		if len(l.Elements) != len(r.Elements) {
			return false
		}
		for i := range l.Elements {
			if !valuesEqual(l.Elements[i], r.Elements[i]) {
				return false
			}
		}
		return true
	}
	return left == right
}
