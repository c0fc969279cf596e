// Package repl implements Pyrite's interactive shell: a readline-backed
// prompt with colored error and result output (a "> " prompt, a
// "run <path>" sub-command, and an "Exiting..." message on interrupt).
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/neilm5/pyrite/errs"
	"github.com/neilm5/pyrite/interp"
)

const prompt = "> "

// Repl holds the version string shown in the banner. The readline
// instance and the single Interp (and therefore the single shared
// Environment) a session runs against are created by Start.
type Repl struct {
	Version string
}

func New(version string) *Repl {
	return &Repl{Version: version}
}

func (r *Repl) printBanner(w io.Writer) {
	sep := color.New(color.FgBlue).SprintFunc()
	title := color.New(color.FgGreen, color.Bold).SprintFunc()
	info := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintln(w, sep(strings.Repeat("=", 48)))
	fmt.Fprintln(w, title("Pyrite"))
	fmt.Fprintln(w, info("version "+r.Version))
	fmt.Fprintln(w, sep(strings.Repeat("=", 48)))
}

// Start runs the REPL loop against a fresh Interp, writing output to w and
// reading lines via readline until EOF or Ctrl+C.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	it := interp.New()
	errColor := color.New(color.FgRed).SprintFunc()
	resultColor := color.New(color.FgYellow).SprintFunc()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			fmt.Fprintln(w, "Exiting...")
			return nil
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		r.executeWithRecovery(w, it, line, errColor, resultColor)
	}
}

func (r *Repl) executeWithRecovery(w io.Writer, it *interp.Interp, line string, errColor, resultColor func(a ...interface{}) string) {
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Fprintln(w, errColor(fmt.Sprintf("[RUNTIME ERROR] %v", rec)))
		}
	}()

	var (
		result string
		runErr *errs.Error
	)

	if strings.HasPrefix(line, "run ") {
		path := strings.TrimSpace(strings.TrimPrefix(line, "run "))
		result, runErr = it.RunFile(path)
	} else {
		result, runErr = it.Run(line)
	}

	if runErr != nil {
		fmt.Fprintln(w, errColor(runErr.Error()))
		return
	}

	if result != "" {
		fmt.Fprintln(w, resultColor(result))
	}
}
