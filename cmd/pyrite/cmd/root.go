// Package cmd implements the pyrite CLI's command tree, grounded on
// CWBudde-go-dws's cmd/dwscript/cmd layout: a root command carrying
// version info, with each subcommand in its own file.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "pyrite",
	Short:   "Pyrite is a tree-walking interpreter for .pyr scripts",
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return replCmd.RunE(cmd, args)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitWithError("%s", err)
	}
}

func exitWithError(format string, args ...any) {
	fmt.Fprintln(os.Stderr, fmt.Sprintf(format, args...))
	os.Exit(1)
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replCmd)
}
