package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yuniko/biscuit/js"
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "run a javascript file, the biscuit/cookie module is available",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bytes, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		value, err := js.RunString(cmd.Context(), string(bytes))
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
