package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"quest-tracker/internal/config"
	"quest-tracker/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	factory ServiceFactory
	config  *config.Config
	app     *App
	closer  io.Closer
}

// NewRootCommand creates the root cobra command with global flags. The service is
// opened through factory once flags and configuration are resolved.
func NewRootCommand(factory ServiceFactory) *RootCommand {
	if factory == nil {
		factory = DefaultServiceFactory
	}
	root := &RootCommand{factory: factory}

	root.cmd = &cobra.Command{
		Use:   "qt",
		Short: "A quest tracker with a command line and a REST API",
		Long: `Quest Tracker (qt) keeps a list of quests: things to do, optionally important,
optionally repeating at a time of day on chosen weekdays.

EXAMPLES:
  qt add "Water the plants" --repeat-time 08:00 --repeat-days mon,thu
  qt list                                  # Every quest, oldest first
  qt list --sort desc --search plants      # Matching quests, newest first
  qt list --important --search water       # Important quests containing "water"
  qt show 3
  qt update 3 "Water all the plants" --important --repeat-time 08:30
  qt complete 3                            # Mark done (--undo to reopen)
  qt delete 3
  qt serve --port 8080                     # Serve the REST API

NOTE:
  Without --sort or --search, list returns every quest and ignores --important.

CONFIGURATION:
  Priority order: command-line flags > environment variables > config file > defaults.
  The config file is config.{yaml,toml,json} in the working directory or ~/.qt.

  QT_DATABASE_DRIVER                       sqlite or postgres (default: sqlite)
  QT_DATABASE_DIR                          SQLite directory (default: ~/.qt)
  QT_DATABASE_FILENAME                     SQLite filename (default: quests.db)
  QT_DATABASE_URL                          PostgreSQL connection URL
  QT_DATABASE_QUERY_TIMEOUT                Query timeout (default: 10s)
  QT_DATABASE_WRITE_TIMEOUT                Write timeout (default: 5s)
  QT_SERVER_HOST / QT_SERVER_PORT          Listen address (default: 127.0.0.1:8080)
  QT_LOG_LEVEL / QT_LOG_FORMAT             debug|info|warn|error, text|json
  QT_APPLICATION_TIMEOUT                   Per-command timeout (default: 60s)
  QT_COMMANDS_LIST_DEFAULT_FORMAT          table or json (default: table)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command exposes the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command and releases the service afterwards
func (r *RootCommand) Execute() error {
	defer r.close()
	return r.cmd.Execute()
}

func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (default: ./config.* or ~/.qt/config.*)")

	// Database configuration
	flags.String("db-driver", "", "Database driver, sqlite or postgres (overrides QT_DATABASE_DRIVER)")
	flags.String("db-dir", "", "SQLite directory (overrides QT_DATABASE_DIR)")
	flags.String("db-filename", "", "SQLite filename (overrides QT_DATABASE_FILENAME)")
	flags.String("db-url", "", "PostgreSQL URL (overrides QT_DATABASE_URL)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides QT_DATABASE_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides QT_DATABASE_WRITE_TIMEOUT)")

	// Logging configuration
	flags.String("log-level", "", "Log level (overrides QT_LOG_LEVEL)")
	flags.String("log-format", "", "Log format, text or json (overrides QT_LOG_FORMAT)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Per-command timeout (overrides QT_APPLICATION_TIMEOUT)")
	flags.String("list-format", "", "Default list format (overrides QT_COMMANDS_LIST_DEFAULT_FORMAT)")
}

func (r *RootCommand) addSubcommands() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List quests",
		Long: `List quests with optional filtering and ordering.

Without --sort and --search every quest is listed in ascending id order and
--important is ignored. --sort desc lists newest first; any other value is ascending.
--search matches descriptions case-insensitively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewListCommand(r.app, listFlagsFrom(cmd)).Execute(ctx, args)
		},
	}
	listCmd.Flags().String("sort", "", "Sort order by id, desc for newest first")
	listCmd.Flags().Bool("important", false, "Only important quests (when sorting or searching)")
	listCmd.Flags().String("search", "", "Case-insensitive description filter")
	listCmd.Flags().String("format", "", "Output format, table or json")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewShowCommand(r.app).Execute(ctx, args)
		},
	}

	addCmd := &cobra.Command{
		Use:   "add [description...]",
		Short: "Add a quest",
		Long: `Add a quest. The remaining arguments form the description.

A repeatable quest needs a repeat time. Giving --repeat-time or --repeat-days
makes the quest repeatable unless --repeatable=false is given.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewAddCommand(r.app, questFlagsFrom(cmd)).Execute(ctx, args)
		},
	}
	addQuestFlags(addCmd, false)

	updateCmd := &cobra.Command{
		Use:   "update <id> <description...>",
		Short: "Replace a quest's fields",
		Long: `Replace every field of a quest with the given values. Flags that are not
given reset their field. The description is required and must not be blank.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewUpdateCommand(r.app, questFlagsFrom(cmd)).Execute(ctx, args)
		},
	}
	addQuestFlags(updateCmd, true)

	completeCmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a quest as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			undo, _ := cmd.Flags().GetBool("undo")
			return NewCompleteCommand(r.app, undo).Execute(ctx, args)
		},
	}
	completeCmd.Flags().Bool("undo", false, "Mark the quest as not completed")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a quest",
		Long:  "Delete a quest. This operation cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewDeleteCommand(r.app).Execute(ctx, args)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API",
		Long: `Serve the quest REST API under /api/quests, with /health and /metrics.
The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return NewServeCommand(r.app).Execute(ctx, args)
		},
	}
	serveCmd.Flags().String("host", "", "Listen host (overrides QT_SERVER_HOST)")
	serveCmd.Flags().Int("port", 0, "Listen port (overrides QT_SERVER_PORT)")

	r.cmd.AddCommand(
		listCmd,
		showCmd,
		addCmd,
		updateCmd,
		completeCmd,
		deleteCmd,
		serveCmd,
	)
}

// setup resolves configuration, builds the logger and opens the service.
func (r *RootCommand) setup(cmd *cobra.Command) error {
	if !needsService(cmd) {
		return nil
	}

	cfg, err := config.NewLoader().LoadWithOverrides(overridesFromFlags(cmd.Flags()))
	if err != nil {
		return err
	}
	r.config = cfg

	logger := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	service, closer, err := r.factory(cmd.Context(), cfg, logger)
	if err != nil {
		return NewErrorHandler().Handle("open quest store", err)
	}
	r.closer = closer
	r.app = NewApp(service, cfg, logger, cmd.OutOrStdout())
	return nil
}

// needsService is false for help and shell completion commands.
func needsService(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

func (r *RootCommand) close() {
	if r.closer == nil {
		return
	}
	if err := r.closer.Close(); err != nil {
		slog.Warn("failed to close quest store", "error", err)
	}
	r.closer = nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// overridesFromFlags maps explicitly set flags onto config overrides. Flags that
// were not given, or that the running command does not have, are left nil.
func overridesFromFlags(flags *pflag.FlagSet) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}

	overrides.ConfigFile = changedString(flags, "config")
	overrides.DBDriver = changedString(flags, "db-driver")
	overrides.DBDir = changedString(flags, "db-dir")
	overrides.DBFilename = changedString(flags, "db-filename")
	overrides.DBURL = changedString(flags, "db-url")
	overrides.DBQueryTimeout = changedDuration(flags, "db-query-timeout")
	overrides.DBWriteTimeout = changedDuration(flags, "db-write-timeout")

	overrides.ServerHost = changedString(flags, "host")
	if flags.Changed("port") {
		port, _ := flags.GetInt("port")
		overrides.ServerPort = &port
	}

	overrides.LogLevel = changedString(flags, "log-level")
	overrides.LogFormat = changedString(flags, "log-format")

	overrides.Timeout = changedDuration(flags, "app-timeout")
	overrides.ListDefaultFormat = changedString(flags, "list-format")

	return overrides
}

// listFlagsFrom reads the list flags. --important is only set when given.
func listFlagsFrom(cmd *cobra.Command) ListFlags {
	flags := cmd.Flags()
	var lf ListFlags
	lf.Sort, _ = flags.GetString("sort")
	lf.Search, _ = flags.GetString("search")
	lf.Format, _ = flags.GetString("format")
	if flags.Changed("important") {
		important, _ := flags.GetBool("important")
		lf.Important = &important
	}
	return lf
}

func changedString(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}
	v, err := flags.GetString(name)
	if err != nil {
		return nil
	}
	return &v
}

func changedDuration(flags *pflag.FlagSet, name string) *time.Duration {
	if !flags.Changed(name) {
		return nil
	}
	v, err := flags.GetDuration(name)
	if err != nil {
		return nil
	}
	return &v
}
