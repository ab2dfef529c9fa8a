package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"todo/internal/config"
	"todo/internal/errors"
	"todo/internal/logging"
)

// RootCommand represents the base command. It has no subcommands: every
// positional token goes to the dispatcher.
type RootCommand struct {
	cmd       *cobra.Command
	config    *config.Config
	opener    RepositoryOpener
	flags     flagValues
	helpShown bool
}

// flagValues holds the raw global flag values
type flagValues struct {
	configFile        string
	dbPath            string
	dbDir             string
	dbFilename        string
	taskNameMinLength int
	taskNameMaxLength int
	logLevel          string
	verbose           bool
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand() *RootCommand {
	root := &RootCommand{
		opener: config.CreateRepository,
	}

	root.cmd = &cobra.Command{
		Use:   "todo [options] [command] [argument] ...",
		Short: "A command-line todo list",
		Long: `todo keeps a list of tasks in a local SQLite file.

Commands may be chained in one invocation and run left to right:
  todo add "Buy milk" add "Call Bob" show
  todo done 1 show`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run(cmd, args)
		},
	}

	root.addGlobalFlags()

	root.cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		root.helpShown = true
		fmt.Fprint(cmd.OutOrStdout(), root.Usage())
	})
	root.cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprint(cmd.OutOrStdout(), root.Usage())
		return errors.NewUsageError(err.Error())
	})

	return root
}

// SetOutput sets where command output and diagnostics are written
func (r *RootCommand) SetOutput(out, errOut io.Writer) {
	r.cmd.SetOut(out)
	r.cmd.SetErr(errOut)
}

// WithRepositoryOpener replaces how the store is opened
func (r *RootCommand) WithRepositoryOpener(opener RepositoryOpener) *RootCommand {
	r.opener = opener
	return r
}

// Config returns the configuration of the last run, if it got that far
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// Execute runs the root command over args
func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	if args == nil {
		args = []string{}
	}
	r.helpShown = false
	r.cmd.SetArgs(args)

	if err := r.cmd.ExecuteContext(ctx); err != nil {
		return err
	}
	if r.helpShown {
		return errors.NewUsageError("")
	}
	return nil
}

// Usage returns the full help text: commands followed by options
func (r *RootCommand) Usage() string {
	registry := NewCommandRegistry(nil)
	return fmt.Sprintf("%s\nOptions:\n%s", registry.GetUsage(), r.cmd.Flags().FlagUsages())
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.Flags()
	// A task name such as "-x" after add is data, not a flag
	flags.SetInterspersed(false)

	flags.BoolP("help", "h", false, "Display this help message")
	flags.StringVar(&r.flags.configFile, "config", "", "Config file, .toml or .yaml (overrides TODO_CONFIG)")

	// Database configuration
	flags.StringVar(&r.flags.dbPath, "db", "", "Database file path (overrides TODO_DB)")
	flags.StringVar(&r.flags.dbDir, "db-dir", "", "Database directory (overrides TODO_DB_DIR)")
	flags.StringVar(&r.flags.dbFilename, "db-filename", "", "Database filename (overrides TODO_DB_FILENAME)")

	// Validation configuration
	flags.IntVar(&r.flags.taskNameMinLength, "task-name-min-length", 0, "Minimum task name length (overrides TODO_VALIDATION_TASK_NAME_MIN)")
	flags.IntVar(&r.flags.taskNameMaxLength, "task-name-max-length", 0, "Maximum task name length (overrides TODO_VALIDATION_TASK_NAME_MAX)")

	// Logging configuration
	flags.StringVar(&r.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides TODO_LOG_LEVEL)")
	flags.BoolVar(&r.flags.verbose, "verbose", false, "Enable debug output (overrides TODO_VERBOSE)")
}

// getOverrides returns the flags the user actually set
func (r *RootCommand) getOverrides(flags *pflag.FlagSet) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}

	if flags.Changed("config") {
		overrides.ConfigFile = &r.flags.configFile
	}
	if flags.Changed("db") {
		overrides.DBPath = &r.flags.dbPath
	}
	if flags.Changed("db-dir") {
		overrides.DBDir = &r.flags.dbDir
	}
	if flags.Changed("db-filename") {
		overrides.DBFilename = &r.flags.dbFilename
	}
	if flags.Changed("task-name-min-length") {
		overrides.TaskNameMinLength = &r.flags.taskNameMinLength
	}
	if flags.Changed("task-name-max-length") {
		overrides.TaskNameMaxLength = &r.flags.taskNameMaxLength
	}
	if flags.Changed("log-level") {
		overrides.LogLevel = &r.flags.logLevel
	}
	if flags.Changed("verbose") {
		overrides.Verbose = &r.flags.verbose
	}

	return overrides
}

// run loads configuration and hands the tokens to the dispatcher
func (r *RootCommand) run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.NewUsageError("Not enough arguments")
	}

	logging.SetOutput(cmd.ErrOrStderr())

	cfg, err := config.NewLoader().LoadWithOverrides(r.getOverrides(cmd.Flags()))
	if err != nil {
		return err
	}
	r.config = cfg

	if err := logging.SetLevel(cfg.EffectiveLogLevel()); err != nil {
		return err
	}
	logging.Logger().Debug("configuration loaded", "source", cfg.Source, "db", cfg.GetDatabasePath())

	app := NewApp(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr()).
		WithRepositoryOpener(r.opener).
		WithUsage(r.Usage())
	defer func() {
		if err := app.Close(); err != nil {
			logging.Logger().Warn("closing todo store", "err", err)
		}
	}()

	return app.Run(cmd.Context(), args)
}

// Main runs the CLI over args and returns the process exit code
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetOutput(stdout, stderr)

	err := root.Execute(ctx, args)
	if err == nil {
		return 0
	}

	if msg := errors.GetUserMessage(err); msg != "" {
		fmt.Fprintln(stderr, msg)
	}
	if errors.ShouldLogError(err) {
		fields := []interface{}{"code", errors.GetErrorCode(err), "err", err}
		if appErr, ok := errors.AsAppError(err); ok {
			for key, value := range appErr.Context {
				fields = append(fields, key, value)
			}
		}
		logging.Logger().Debug("run failed", fields...)
	}
	return 1
}
