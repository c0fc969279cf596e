package eval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/neilm5/pyrite/object"
	"github.com/neilm5/pyrite/token"
)

// callBuiltin dispatches one of the language's eleven built-in calls.
// Arguments have already been evaluated left-to-right by evalFunctionCall.
func (e *Evaluator) callBuiltin(builtin token.Type, args []object.Object) object.Object {
	switch builtin {
	case token.RETURN:
		return e.builtinReturn(args)
	case token.EXEC:
		return e.builtinExec(args)
	case token.INPUT:
		return e.builtinInput(args)
	case token.LEN:
		return e.builtinLen(args)
	case token.TYPE:
		return e.builtinType(args)
	case token.STRCON:
		return e.builtinStr(args)
	case token.INTCON:
		return e.builtinInt(args)
	case token.FLOATCON:
		return e.builtinFloat(args)
	case token.BOOLCON:
		return e.builtinBool(args)
	case token.ABS:
		return e.builtinAbs(args)
	case token.POW:
		return e.builtinPow(args)
	}
	return runtimeErrorf("Unsupported builtin '%s'", builtin)
}

func (e *Evaluator) builtinReturn(args []object.Object) object.Object {
	var val object.Object = object.NULL
	if len(args) > 0 {
		val = args[0]
	}
	return &object.ReturnSignal{Value: val}
}

// builtinExec joins its arguments' formatted form with newlines and writes
// the result, using the same true/false/null projection as the top-level
// driver result (see interp.Run) so printed output is consistent whether
// it came from exec() or from a bare expression's result.
func (e *Evaluator) builtinExec(args []object.Object) object.Object {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = format(a)
	}
	fmt.Fprintln(e.Writer, strings.Join(parts, "\n"))
	return object.NULL
}

func format(obj object.Object) string {
	switch obj.(type) {
	case *object.Null:
		return "null"
	}
	return obj.Inspect()
}

func (e *Evaluator) builtinInput(args []object.Object) object.Object {
	prompt := "> "
	if len(args) > 0 {
		prompt = "> " + format(args[0])
	}
	fmt.Fprint(e.Writer, prompt)

	line, _ := e.Reader.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")

	if isDigits(line) {
		n, _ := strconv.ParseInt(line, 10, 64)
		return &object.Integer{Value: n}
	}
	if f, err := strconv.ParseFloat(line, 64); err == nil {
		return &object.Float{Value: f}
	}
	return &object.String{Value: line}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (e *Evaluator) builtinLen(args []object.Object) object.Object {
	if len(args) != 1 {
		return runtimeErrorf("len() expects 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *object.List:
		return &object.Integer{Value: int64(len(v.Elements))}
	case *object.String:
		return &object.Integer{Value: int64(len(v.Value))}
	}
	return runtimeErrorf("Object of type '%s' has no len()", args[0].Type())
}

// builtinType reports a value's type name. This is distinct from
// object.Type (used internally for dispatch and error messages): it
// matches the host language's own type-name spelling rather than this
// package's internal Type constants, so a string reports "str" and null
// reports "NoneType".
func (e *Evaluator) builtinType(args []object.Object) object.Object {
	if len(args) != 1 {
		return runtimeErrorf("type() expects 1 argument, got %d", len(args))
	}
	switch args[0].(type) {
	case *object.String:
		return &object.String{Value: "str"}
	case *object.Null:
		return &object.String{Value: "NoneType"}
	}
	return &object.String{Value: string(args[0].Type())}
}

func (e *Evaluator) builtinStr(args []object.Object) object.Object {
	if len(args) != 1 {
		return runtimeErrorf("str() expects 1 argument, got %d", len(args))
	}
	return &object.String{Value: format(args[0])}
}

func (e *Evaluator) builtinInt(args []object.Object) object.Object {
	if len(args) != 1 {
		return runtimeErrorf("int() expects 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *object.Integer:
		return v
	case *object.Float:
		return &object.Integer{Value: int64(v.Value)}
	case *object.Boolean:
		if v.Value {
			return &object.Integer{Value: 1}
		}
		return &object.Integer{Value: 0}
	case *object.String:
		n, err := strconv.ParseInt(strings.TrimSpace(v.Value), 10, 64)
		if err != nil {
			return runtimeErrorf("Cannot convert '%s' to int", v.Value)
		}
		return &object.Integer{Value: n}
	}
	return runtimeErrorf("Cannot convert %s to int", args[0].Type())
}

func (e *Evaluator) builtinFloat(args []object.Object) object.Object {
	if len(args) != 1 {
		return runtimeErrorf("flt() expects 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *object.Float:
		return v
	case *object.Integer:
		return &object.Float{Value: float64(v.Value)}
	case *object.Boolean:
		if v.Value {
			return &object.Float{Value: 1}
		}
		return &object.Float{Value: 0}
	case *object.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
		if err != nil {
			return runtimeErrorf("Cannot convert '%s' to float", v.Value)
		}
		return &object.Float{Value: f}
	}
	return runtimeErrorf("Cannot convert %s to float", args[0].Type())
}

func (e *Evaluator) builtinBool(args []object.Object) object.Object {
	if len(args) != 1 {
		return runtimeErrorf("bool() expects 1 argument, got %d", len(args))
	}
	return object.NativeBool(object.Truthy(args[0]))
}

func (e *Evaluator) builtinAbs(args []object.Object) object.Object {
	if len(args) != 1 {
		return runtimeErrorf("abs() expects 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *object.Integer:
		if v.Value < 0 {
			return &object.Integer{Value: -v.Value}
		}
		return v
	case *object.Float:
		return &object.Float{Value: math.Abs(v.Value)}
	}
	return runtimeErrorf("abs() expects a numeric argument, got %s", args[0].Type())
}

func (e *Evaluator) builtinPow(args []object.Object) object.Object {
	if len(args) != 2 {
		return runtimeErrorf("pow() expects 2 arguments, got %d", len(args))
	}
	base, baseIsFloat, ok := numericValue(args[0])
	if !ok {
		return runtimeErrorf("pow() expects numeric arguments")
	}
	exp, expIsFloat, ok := numericValue(args[1])
	if !ok {
		return runtimeErrorf("pow() expects numeric arguments")
	}

	result := math.Pow(base, exp)
	if baseIsFloat || expIsFloat {
		return &object.Float{Value: result}
	}
	return &object.Integer{Value: int64(result)}
}

func numericValue(obj object.Object) (value float64, isFloat bool, ok bool) {
	switch v := obj.(type) {
	case *object.Integer:
		return float64(v.Value), false, true
	case *object.Float:
		return v.Value, true, true
	}
	return 0, false, false
}
