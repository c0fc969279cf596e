// Package interp is the single entry point both the REPL and the CLI
// drive: it wires lexer -> parser -> eval and applies a result projection
// before returning the final value.
package interp

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/neilm5/pyrite/errs"
	"github.com/neilm5/pyrite/eval"
	"github.com/neilm5/pyrite/lexer"
	"github.com/neilm5/pyrite/object"
	"github.com/neilm5/pyrite/parser"
)

// Interp holds the one Evaluator (and therefore the one Environment) a
// session uses across every line or file it runs, matching run.py's
// module-level singleton interpreter.
type Interp struct {
	Eval *eval.Evaluator
}

func New() *Interp {
	return &Interp{Eval: eval.New()}
}

// Run lexes, parses and evaluates one chunk of source, returning its
// formatted result string (see FormatResult; a Null result comes back as
// "null"). On error the result string is empty.
func (it *Interp) Run(source string) (string, *errs.Error) {
	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		return "", err
	}

	nodes, err := parser.Parse(tokens)
	if err != nil {
		return "", err
	}

	result := it.Eval.EvalProgram(nodes)
	if object.IsError(result) {
		e := result.(*object.Error)
		return "", errs.New(e.Kind, "%s", e.Detail)
	}

	return FormatResult(result), nil
}

// FormatResult projects a program's final value before printing it:
// true/false/null spelled lowercase, everything else passed through its
// own Inspect().
func FormatResult(obj object.Object) string {
	switch v := obj.(type) {
	case *object.Boolean:
		if v.Value {
			return "true"
		}
		return "false"
	case *object.Null:
		return "null"
	default:
		return obj.Inspect()
	}
}

// RunFile loads a .pyr source file and runs it, checking the file
// extension and existence before handing the source to Run.
func (it *Interp) RunFile(path string) (string, *errs.Error) {
	if filepath.Ext(path) != ".pyr" {
		return "", errs.Runtime("File must be a .pyr extension")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errs.Runtime("Cannot read file '%s'", path)
	}

	return it.Run(strings.TrimRight(string(data), "\n"))
}
