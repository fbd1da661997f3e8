package cmd

import (
	"fmt"
	"log/slog"

	"github.com/monolang/mono/internal/log"
	"github.com/monolang/mono/mono"
	"github.com/monolang/mono/types"
	"github.com/spf13/cobra"
)

var ShowCmd = &cobra.Command{
	Use:          "show \"<term>\"",
	Short:        "Parse a type expression and print its structure",
	RunE:         runShow,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var showLogLevel *int

func init() {
	showLogLevel = ShowCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runShow(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*showLogLevel))

	session := mono.NewSession()
	term, err := session.ParseTerm(args[0])
	if err != nil {
		return fmt.Errorf("cannot show %q: %w", args[0], err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "term:         %s\n", term)
	fmt.Fprintf(out, "display:      %s\n", session.Store.Describe(term))
	fmt.Fprintf(out, "placeholders: %v\n", types.PlaceholderIDs(term))
	fmt.Fprintf(out, "hash:         %x\n", term.Hash())
	return nil
}
