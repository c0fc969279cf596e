// Package eval walks the AST against a single process-wide
// object.Environment, using a Go type switch as the dispatch mechanism.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/neilm5/pyrite/ast"
	"github.com/neilm5/pyrite/errs"
	"github.com/neilm5/pyrite/object"
)

// Evaluator owns the single environment a whole program (and, in the
// REPL, a whole session) shares, plus the I/O streams exec/input read and
// write through.
type Evaluator struct {
	Env    *object.Environment
	Writer io.Writer
	Reader *bufio.Reader
}

func New() *Evaluator {
	return &Evaluator{
		Env:    object.NewEnvironment(),
		Writer: os.Stdout,
		Reader: bufio.NewReader(os.Stdin),
	}
}

func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }
func (e *Evaluator) SetReader(r io.Reader) { e.Reader = bufio.NewReader(r) }

// newError builds an object.Error sentinel from an errs.Error, the
// boundary between the errs.Error Go-error world and the object.Object
// propagation world used inside Eval.
func newError(err *errs.Error) *object.Error {
	return &object.Error{Kind: err.Kind, Detail: err.Detail}
}

func runtimeErrorf(format string, args ...any) *object.Error {
	return newError(errs.Runtime(format, args...))
}

// Eval dispatches on the concrete ast.Node type, returning the resulting
// object.Object. Errors and return signals are both ordinary Objects
// (*object.Error, *object.ReturnSignal) that propagate upward exactly like
// values do; callers check object.IsError/object.IsReturn after each
// sub-evaluation.
func (e *Evaluator) Eval(node ast.Node) object.Object {
	switch n := node.(type) {

	case *ast.Literal:
		return e.evalLiteral(n)

	case *ast.List:
		return e.evalList(n)

	case *ast.ListAccess:
		return e.evalListAccess(n)

	case *ast.VarAssign:
		return e.evalVarAssign(n)

	case *ast.ConstAssign:
		return e.evalConstAssign(n)

	case *ast.VarAccess:
		return e.evalVarAccess(n)

	case *ast.If:
		return e.evalIf(n)

	case *ast.While:
		return e.evalWhile(n)

	case *ast.For:
		return e.evalFor(n)

	case *ast.FunctionDef:
		return e.evalFunctionDef(n)

	case *ast.FunctionCall:
		return e.evalFunctionCall(n)

	case *ast.Incr:
		return e.evalIncr(n)

	case *ast.Decr:
		return e.evalDecr(n)

	case *ast.BinOp:
		return e.evalBinOp(n)

	case *ast.UnaryOp:
		return e.evalUnaryOp(n)
	}

	return runtimeErrorf("No eval method for %T", node)
}

// EvalProgram evaluates a top-level statement list, returning the value
// of the last statement (or Null for an empty program). An unhandled
// return() at this level is a program-level error, since return is only
// meaningful inside a function call frame.
func (e *Evaluator) EvalProgram(nodes []ast.Node) object.Object {
	var result object.Object = object.NULL

	for _, n := range nodes {
		result = e.Eval(n)

		if object.IsError(result) {
			return result
		}
		if object.IsReturn(result) {
			return runtimeErrorf("'return' outside function")
		}
	}

	return result
}
