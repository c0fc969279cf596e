// Package object defines Pyrite's runtime value representation and the
// process-wide Environment that binds names to values.
package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/neilm5/pyrite/ast"
)

// Type identifies a runtime value's kind, used for dispatch and in error
// messages. The type() builtin reports it for most values, but spells
// strings as "str" and null as "NoneType" (see eval's builtinType).
type Type string

const (
	IntegerType  Type = "int"
	FloatType    Type = "float"
	StringType   Type = "string"
	BooleanType  Type = "bool"
	NullType     Type = "null"
	ListType     Type = "list"
	FunctionType Type = "function"
	ErrorType    Type = "error"
	ReturnType   Type = "return"
)

// Object is implemented by every runtime value, plus the two internal
// control-flow sentinels (Error, ReturnSignal) that the evaluator
// propagates through Eval the same way it propagates ordinary values.
type Object interface {
	Type() Type
	Inspect() string
}

type Integer struct{ Value int64 }

func (i *Integer) Type() Type      { return IntegerType }
func (i *Integer) Inspect() string { return strconv.FormatInt(i.Value, 10) }

type Float struct{ Value float64 }

func (f *Float) Type() Type      { return FloatType }
func (f *Float) Inspect() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

type String struct{ Value string }

func (s *String) Type() Type      { return StringType }
func (s *String) Inspect() string { return s.Value }

type Boolean struct{ Value bool }

func (b *Boolean) Type() Type { return BooleanType }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "true"
	}
	return "false"
}

type Null struct{}

func (n *Null) Type() Type      { return NullType }
func (n *Null) Inspect() string { return "null" }

type List struct{ Elements []Object }

func (l *List) Type() Type { return ListType }
func (l *List) Inspect() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Function holds a user-defined function's AST, not a first-class value:
// per Pyrite's design, evaluating a bare identifier bound to a function
// still returns this raw node object rather than letting it be passed
// around as data (see eval package notes on VarAccess).
type Function struct {
	Name   string
	Params []string
	Body   []ast.Node
}

func (f *Function) Type() Type      { return FunctionType }
func (f *Function) Inspect() string { return "func " + f.Name }

// Error is the sentinel Object the evaluator returns (instead of a second
// Go error return value) to unwind evaluation on failure, mirroring the
// Monkey-style interpreters in the retrieved pack.
type Error struct {
	Kind   string
	Detail string
}

func (e *Error) Type() Type      { return ErrorType }
func (e *Error) Inspect() string { return fmt.Sprintf("%s: %s", e.Kind, e.Detail) }

// ReturnSignal wraps the value passed to a return(...) builtin call while
// it unwinds through Eval back to the enclosing function call frame.
type ReturnSignal struct{ Value Object }

func (r *ReturnSignal) Type() Type      { return ReturnType }
func (r *ReturnSignal) Inspect() string { return r.Value.Inspect() }

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	NULL  = &Null{}
)

func NativeBool(b bool) *Boolean {
	if b {
		return TRUE
	}
	return FALSE
}

func IsError(obj Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == ErrorType
}

func IsReturn(obj Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == ReturnType
}
