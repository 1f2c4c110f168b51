package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yuniko/biscuit/lib"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("%v\n biscuit %v/%v\n", lib.Banner, lib.Version, lib.CommitSHA)
		},
	})
}
