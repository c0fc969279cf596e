package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neilm5/pyrite/interp"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a .pyr script file once",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		it := interp.New()
		result, err := it.RunFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		if result != "" {
			fmt.Println(result)
		}
		return nil
	},
}
