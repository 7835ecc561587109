package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todos/internal/config"
	"github.com/idilsaglam/todos/internal/logging"
	"github.com/idilsaglam/todos/internal/store"
	"github.com/idilsaglam/todos/internal/store/jsonstore"
	"github.com/idilsaglam/todos/internal/tui"
	"github.com/idilsaglam/todos/internal/ui"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// App carries flag values and the state resolved before a command runs.
type App struct {
	ConfigPath string
	Theme      string
	ExportFile string
	LogFile    string
	LogLevel   string
	NoColor    bool

	cfg       *config.Config
	log       *logrus.Logger
	logCloser io.Closer
}

// exitError carries a process exit code (1 runtime error, 2 usage).
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string { return e.err.Error() }
func (e exitError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return exitError{code: 2, err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

// usageArgs turns a positional-argument validation failure into a usage error.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return exitError{code: 2, err: err}
		}
		return nil
	}
}

// Execute runs the command line and returns the process exit code. Errors
// are printed to errOut and the log file is closed on every path.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	app := &App{}
	cmd := newRootCmd(app)
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		if app.log != nil {
			app.log.WithError(err).WithField("code", ExitCode(err)).Debug("command failed")
		}
		ui.Fail(errOut, err.Error())
	}
	if cerr := app.close(); cerr != nil && err == nil {
		ui.Fail(errOut, cerr.Error())
		err = cerr
	}
	return ExitCode(err)
}

// NewRootCmd builds the command tree with a fresh App.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "A single-list todo manager for the terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive list
  todo

  # Apply a script of commands and print the result
  printf 'add Buy milk\nadd Walk dog\ntoggle 1\n' | todo batch

  # Show the effective configuration
  todo config
`),
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return exitError{code: 2, err: err}
	})

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd, cmd.Name() != "todo")
	}

	f := cmd.PersistentFlags()
	f.StringVar(&app.ConfigPath, "config", "", "Extra config file, applied after the user and project files")
	f.StringVar(&app.Theme, "theme", "", "Theme (classic|neon|mono)")
	f.StringVar(&app.ExportFile, "export", "", "Write the final list as JSON to this file on exit")
	f.StringVar(&app.LogFile, "log-file", "", "Append logs to this file")
	f.StringVar(&app.LogLevel, "log-level", "", "Log level (panic|fatal|error|warn|info|debug|trace)")
	f.BoolVar(&app.NoColor, "no-color", false, "Disable colour output")

	cmd.AddCommand(newBatchCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup resolves config (defaults, files, env, then changed flags) and
// builds the logger. Non-interactive commands log to stderr when no log file
// is set; the TUI owns the terminal so its logs are discarded instead.
func (app *App) setup(cmd *cobra.Command, logToStderr bool) error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return usageErrorf("config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = app.Theme
	}
	if flags.Changed("export") {
		cfg.ExportFile = app.ExportFile
	}
	if flags.Changed("log-file") {
		cfg.LogFile = app.LogFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = app.LogLevel
	}
	if flags.Changed("no-color") {
		cfg.NoColor = app.NoColor
	}
	if err := cfg.Validate(); err != nil {
		return usageErrorf("config: %w", err)
	}

	var fallback io.Writer = io.Discard
	if logToStderr {
		fallback = cmd.ErrOrStderr()
	}
	l, closer, err := logging.New(cfg.LogLevel, cfg.LogFile, fallback)
	if err != nil {
		return err
	}

	ui.SetColorForcing(false, cfg.NoColor)
	ui.SetTheme(cfg.Theme)
	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	app.cfg, app.log, app.logCloser = cfg, l, closer
	l.WithFields(logrus.Fields{
		"command": cmd.CommandPath(),
		"theme":   cfg.Theme,
		"sources": cfg.Sources,
	}).Debug("config loaded")
	return nil
}

func (app *App) newStore() *store.Store {
	return store.New(store.WithLogger(app.log))
}

// close releases the log file opened by setup. It is safe to call more than once.
func (app *App) close() error {
	if app.logCloser == nil {
		return nil
	}
	c := app.logCloser
	app.logCloser = nil
	return c.Close()
}

func runTUI(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	st := app.newStore()
	err := tui.Run(ctx, st, tui.Options{
		Theme:     app.cfg.Theme,
		CharLimit: app.cfg.CharLimit,
		AltScreen: app.cfg.AltScreen,
		Logger:    app.log,
	})
	if err != nil {
		return err
	}
	return app.export(st, cmd.ErrOrStderr())
}

// export writes the final snapshot when an export file is configured.
func (app *App) export(st *store.Store, w io.Writer) error {
	if app.cfg.ExportFile == "" {
		return nil
	}
	path, err := jsonstore.Export(app.cfg.ExportFile, st.Snapshot())
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	app.log.WithField("path", path).Info("list exported")
	ui.OK(w, "exported "+path)
	return nil
}
