package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/neilm5/pyrite/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive Pyrite shell",
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.New(version).Start(os.Stdout)
	},
}
