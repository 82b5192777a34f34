package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/fyi/internal/config"
	"github.com/muurk/fyi/internal/logging"
	"github.com/muurk/fyi/internal/msg"
	"github.com/muurk/fyi/internal/ui"
)

var errMissingMessage = errors.New("missing message")

// kindShort is the one-line help for each built-in kind subcommand.
var kindShort = map[msg.BuiltIn]string{
	msg.KindCrunched: "Print a \"Crunched:\" message",
	msg.KindDebug:    "Print a \"Debug:\" message",
	msg.KindDone:     "Print a \"Done:\" message",
	msg.KindError:    "Print an \"Error:\" message to stderr",
	msg.KindInfo:     "Print an \"Info:\" message",
	msg.KindNotice:   "Print a \"Notice:\" message",
	msg.KindSuccess:  "Print a \"Success:\" message",
	msg.KindTask:     "Print a \"Task:\" message",
	msg.KindWarning:  "Print a \"Warning:\" message",
}

func requireMessage(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errMissingMessage
	}
	return nil
}

// messageFlags are shared by every message-printing command.
type messageFlags struct {
	indent    int
	timestamp bool
	noColor   bool
	stderr    bool
	exit      int
}

// register adds the flags to cmd. full adds --stderr and --exit, which make
// no sense for the confirm prompt.
func (f *messageFlags) register(cmd *cobra.Command, full bool) {
	cmd.Flags().CountVarP(&f.indent, "indent", "i", "Indent one level per occurrence (-ii for two)")
	cmd.Flags().BoolVarP(&f.timestamp, "timestamp", "t", false, "Prefix the message with the time (default from config)")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Print without ANSI formatting (default from config)")
	if full {
		cmd.Flags().BoolVar(&f.stderr, "stderr", false, "Print to stderr")
		cmd.Flags().IntVarP(&f.exit, "exit", "e", 0, "Exit with this code (0-255) after printing")
	}
}

// resolve fills unset flags from the configuration file.
func (f *messageFlags) resolve(cmd *cobra.Command, cfg *config.Config) error {
	if f.exit < 0 || f.exit > 255 {
		return fmt.Errorf("--exit must be between 0 and 255, got %d", f.exit)
	}
	if !cmd.Flags().Changed("timestamp") {
		f.timestamp = cfg.Messages.Timestamp
	}
	if !cmd.Flags().Changed("no-color") {
		f.noColor = cfg.Messages.NoColor
	}
	return nil
}

func (f *messageFlags) stream(kind msg.Kind) msg.Stream {
	if f.stderr {
		return msg.Stderr
	}
	return msg.New(kind, "").Stream()
}

// printMessage prints one message and turns --exit into an exitError.
func (e *env) printMessage(cmd *cobra.Command, kind msg.Kind, args []string, f *messageFlags) error {
	if err := f.resolve(cmd, e.cfg); err != nil {
		return err
	}
	m := msg.Build(kind, strings.Join(args, " "), f.indent, f.timestamp, f.stream(kind))
	if err := e.printer(f.noColor).Print(m); err != nil {
		return err
	}
	if f.exit != 0 {
		return &exitError{code: f.exit}
	}
	return nil
}

func newKindCmd(e *env, kind msg.BuiltIn) *cobra.Command {
	var f messageFlags
	cmd := &cobra.Command{
		Use:   kind.String() + " <message>",
		Short: kindShort[kind],
		Args:  requireMessage,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.printMessage(cmd, kind, args, &f)
		},
	}
	f.register(cmd, true)
	return cmd
}

func newPrintCmd(e *env) *cobra.Command {
	var (
		f        messageFlags
		prefix   string
		color    int
		kindName string
	)
	cmd := &cobra.Command{
		Use:   "print <message>",
		Short: "Print a message with a custom prefix, or none",
		Long: `Print a message with an arbitrary prefix.

Without --prefix the message is printed as-is. The prefix color is a
256-color palette index between 1 and 255. --kind selects a built-in
kind by name instead, which is handy when the kind is a variable.`,
		Example: `  fyi print "Plain text"
  fyi print -p Backup -c 33 "Snapshot taken."
  fyi print -k "$level" "Something happened."`,
		Args: requireMessage,
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind msg.Kind = msg.KindNone
			if kindName != "" {
				if prefix != "" {
					return errors.New("--kind and --prefix are mutually exclusive")
				}
				k, err := msg.ParseKind(kindName)
				if err != nil {
					return err
				}
				kind = k
			}
			if prefix != "" {
				k, err := msg.NewCustom(prefix, color)
				if err != nil {
					return err
				}
				kind = k
			}
			return e.printMessage(cmd, kind, args, &f)
		},
	}
	f.register(cmd, true)
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Prefix label, printed as \"<prefix>:\"")
	cmd.Flags().IntVarP(&color, "prefix-color", "c", 199, "Prefix color (1-255)")
	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "Built-in kind by name (see 'fyi kinds')")
	return cmd
}

func newConfirmCmd(e *env) *cobra.Command {
	var f messageFlags
	cmd := &cobra.Command{
		Use:     "confirm <question>",
		Aliases: []string{"prompt"},
		Short:   "Ask a yes/no question; exit 1 unless answered yes",
		Long: `Print a "Confirm:" question and read a yes/no answer from stdin.

"y" or "yes" exits 0. An empty answer, "n", "no" or end of input exits 1.
Anything else prints an error and asks again.`,
		Example: `  fyi confirm "Delete the cache?" && rm -rf cache/`,
		Args:    requireMessage,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.resolve(cmd, e.cfg); err != nil {
				return err
			}
			m := msg.Build(msg.KindConfirm, strings.Join(args, " "), f.indent, f.timestamp, msg.Stdout)
			ok, err := e.printer(f.noColor).Prompt(m)
			if err != nil {
				return err
			}
			if !ok {
				return &exitError{code: 1}
			}
			return nil
		},
	}
	f.register(cmd, false)
	return cmd
}

func newBlankCmd(e *env) *cobra.Command {
	var (
		count    int
		toStderr bool
	)
	cmd := &cobra.Command{
		Use:   "blank",
		Short: "Print blank lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 || count > 255 {
				return fmt.Errorf("--count must be between 1 and 255, got %d", count)
			}
			stream := msg.Stdout
			if toStderr {
				stream = msg.Stderr
			}
			return e.printer(false).Blank(stream, count)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "c", 1, "Number of blank lines (1-255)")
	cmd.Flags().BoolVar(&toStderr, "stderr", false, "Print to stderr")
	return cmd
}

func newKindsCmd(e *env) *cobra.Command {
	var noColor bool
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the built-in message kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("no-color") {
				noColor = e.cfg.Messages.NoColor
			}
			mode := e.printer(noColor).StdoutMode

			rows := make([]ui.KindRow, 0, len(msg.BuiltIns()))
			for _, k := range msg.BuiltIns() {
				sample := msg.New(k, "Example message.").WithNewline(false)
				rows = append(rows, ui.KindRow{
					Name:   k.String(),
					Color:  strconv.Itoa(int(k.Color())),
					Sample: string(sample.Bytes(mode)),
				})
			}

			table := ui.RenderKindsTable(ui.NewTheme(e.stdout, mode), rows)
			if _, err := e.stdout.Write([]byte(table + "\n")); err != nil {
				return msg.NewWriteError(msg.Stdout, err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Print without ANSI formatting")
	return cmd
}

func newConfigCmd(e *env) *cobra.Command {
	var initFile bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration file location and the effective settings.

The file lives at $XDG_CONFIG_HOME/fyi/config.yaml unless FYI_CONFIG
points elsewhere. It is optional; missing settings use built-in defaults.`,
		Example: `  fyi config
  fyi config --init`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if initFile {
				return e.initConfig()
			}
			return e.showConfig()
		},
	}
	cmd.Flags().BoolVar(&initFile, "init", false, "Write a default configuration file")
	return cmd
}

func (e *env) initConfig() error {
	if _, err := os.Stat(e.cfgPath); err == nil {
		return fmt.Errorf("config file already exists: %s", e.cfgPath)
	}
	if err := config.Default().Save(e.cfgPath); err != nil {
		return err
	}
	logging.Info("Configuration file written", zap.String("path", e.cfgPath))
	return e.printer(e.cfg.Messages.NoColor).Print(msg.Success("Wrote " + e.cfgPath + "."))
}

func (e *env) showConfig() error {
	data, err := e.cfg.Marshal()
	if err != nil {
		return err
	}

	status, tone := "not found, using defaults", ui.WarningColor
	if e.cfgFound {
		status, tone = "loaded", ui.SuccessColor
	}
	header := &ui.Header{
		Title:   "Configuration",
		Command: "fyi config",
		Params: []ui.Param{
			{Key: "Path", Value: e.cfgPath},
			{Key: "Status", Value: status, Color: tone},
		},
		Width: e.columns(),
	}

	theme := ui.NewTheme(e.stdout, e.printer(e.cfg.Messages.NoColor).StdoutMode)
	out := header.Render(theme) + "\n\n" + string(data)
	if _, err := e.stdout.Write([]byte(out)); err != nil {
		return msg.NewWriteError(msg.Stdout, err)
	}
	return nil
}
