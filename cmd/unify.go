package cmd

import (
	"fmt"
	"log/slog"

	"github.com/monolang/mono/internal/log"
	"github.com/monolang/mono/mono"
	"github.com/monolang/mono/typerr"
	"github.com/spf13/cobra"
)

var UnifyCmd = &cobra.Command{
	Use:          "unify \"<term>\" \"<term>\"",
	Short:        "Unify two type expressions, resolving placeholders",
	RunE:         runUnify,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
}

var unifyLogLevel *int

func init() {
	unifyLogLevel = UnifyCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runUnify(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*unifyLogLevel))

	session := mono.NewSession()
	report, err := session.UnifyText(args[0], args[1])
	if err != nil {
		if coded, ok := err.(typerr.Error); ok {
			return fmt.Errorf("cannot unify %q with %q: %s", args[0], args[1], typerr.FormatWithCode(coded))
		}
		return fmt.Errorf("cannot unify %q with %q: %w", args[0], args[1], err)
	}
	fmt.Fprint(cmd.OutOrStdout(), report.String())
	return nil
}
