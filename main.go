package main

import (
	"os"

	"github.com/monolang/mono/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "mono [subcommand]",
	Short:        "mono\n a unification store for placeholder (monomorph) type variables",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.UnifyCmd)
	rootCmd.AddCommand(cmd.ShowCmd)
}
