// Fyi prints prefixed, optionally colored and timestamped status messages
// for shell scripts.
//
// Usage:
//
//	fyi <kind> [flags] <message>
//	fyi print -p <prefix> -c <color> <message>
//	fyi confirm <question>
//	fyi blank [-c count]
//
// Each built-in kind (error, warning, success, ...) is a subcommand. Errors
// go to stderr, everything else to stdout. Color is dropped automatically
// when the stream is not a terminal or NO_COLOR is set.
// See 'fyi --help' for available commands.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/fyi/internal/logging"
	"github.com/muurk/fyi/internal/msg"
	"github.com/muurk/fyi/internal/terminal"
	"github.com/muurk/fyi/internal/version"
)

func main() {
	err := newRootCmd(systemEnv()).Execute()
	logging.Sync()
	if err == nil {
		return
	}

	var exit *exitError
	if errors.As(err, &exit) {
		os.Exit(exit.code)
	}
	_, _ = os.Stderr.Write(msg.Error(err.Error()).Bytes(terminal.ModeFor(os.Stderr.Fd())))
	os.Exit(1)
}

// newRootCmd builds the command tree around e.
func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "fyi",
		Short: "Print formatted status messages",
		Long: `A dead-simple status message printer for shell scripts.

Each message kind is a subcommand that prints a colored "Kind:" prefix
followed by the message. Errors are written to stderr, everything else
to stdout. Color is disabled automatically when the output is not a
terminal, or when NO_COLOR or CLICOLOR=0 is set.`,
		Example: `  fyi success "Build finished."
  fyi error -e 2 "Disk full."
  fyi print -p Backup -c 33 "Snapshot taken."
  fyi confirm "Continue?" && echo yes`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup()
		},
	}

	// Disable automatic completion command generation
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVar(&e.logLevel, "log-level", "",
		"Diagnostic log level on stderr (debug, info, warn, error); defaults to $"+logging.LogLevelEnvVar)

	for _, k := range msg.BuiltIns() {
		if k == msg.KindConfirm {
			continue
		}
		root.AddCommand(newKindCmd(e, k))
	}
	root.AddCommand(
		newConfirmCmd(e),
		newPrintCmd(e),
		newBlankCmd(e),
		newKindsCmd(e),
		newConfigCmd(e),
		newVersionCmd(e),
		newDemoCmd(e),
	)
	return root
}

func newVersionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := e.stdout.Write([]byte(version.Full() + "\n")); err != nil {
				return msg.NewWriteError(msg.Stdout, err)
			}
			return nil
		},
	}
}
