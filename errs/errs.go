// Package errs carries the interpreter's single error shape: a short Kind
// plus a human Detail.
package errs

import "fmt"

const (
	KindSyntax        = "Syntax Error"
	KindRuntime       = "Runtime Error"
	KindZeroDivision  = "Zero Division Error"
)

// Error is the only error type the interpreter raises. It satisfies the
// standard error interface so it can flow through normal Go error returns
// wherever the pipeline (lexer/parser/interp) needs one, while the
// evaluator also wraps it as an object.Error sentinel for propagation
// through Eval.
type Error struct {
	Kind   string
	Detail string
}

func New(kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func Syntax(format string, args ...any) *Error {
	return New(KindSyntax, format, args...)
}

func Runtime(format string, args ...any) *Error {
	return New(KindRuntime, format, args...)
}

func ZeroDivision(format string, args ...any) *Error {
	return New(KindZeroDivision, format, args...)
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}
