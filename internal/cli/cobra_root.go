package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"task-planner/internal/api"
	"task-planner/internal/config"
	"task-planner/internal/logging"
)

// PlannerFactory opens a planner for the final configuration
type PlannerFactory func(cfg *config.Config) (*api.Planner, error)

// OpenPlanner opens the configured document store and wires a planner on it
func OpenPlanner(cfg *config.Config) (*api.Planner, error) {
	store, err := config.CreateStore(cfg)
	if err != nil {
		return nil, err
	}
	return api.New(store), nil
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd         *cobra.Command
	config      *config.Config
	openPlanner PlannerFactory
	planner     *api.Planner
	in          io.Reader
	out         io.Writer
	errHandler  *ErrorHandler
}

// NewRootCommand creates the root cobra command with global flags. The
// planner is opened after flags are applied, before any command runs.
func NewRootCommand(cfg *config.Config, open PlannerFactory, in io.Reader, out io.Writer) *RootCommand {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if open == nil {
		open = OpenPlanner
	}
	root := &RootCommand{
		config:      cfg,
		openPlanner: open,
		in:          in,
		out:         out,
		errHandler:  NewErrorHandler(),
	}

	root.cmd = &cobra.Command{
		Use:   "tp",
		Short: "A command-line task planner",
		Long: `Task Planner (tp) keeps projects, team members and their tasks in a local data file.

Run without a command to open the interactive menu.

EXAMPLES:
  tp member register "Ada Lovelace" ada@example.com
  tp project create "Apollo" "Moon landing"
  tp project attach <project-id> <member-id>
  tp task create <project-id> "Write report" 2025-06-10 --assignee <member-id>
  tp task status <task-id> in_progress
  tp task upcoming --days 14
  tp export --format csv > tasks.csv

CONFIGURATION:
  Priority order: command-line flags > environment > .env > config file > defaults

    TP_CONFIG                              Config file (default: <data dir>/config.yaml)
    TP_DATA_DIR                            Data directory (default: ~/.taskplanner)
    TP_DATA_FILE                           Data filename (default: taskplanner.json or taskplanner.db)
    TP_STORAGE                             Storage backend: json or sqlite (default: json)
    TP_DIR_PERMISSIONS                     Data directory permissions (default: 0755)
    TP_UPCOMING_DAYS                       Upcoming horizon in days (default: 7)
    TP_DATE_FORMAT                         Due date format (default: 2006-01-02)
    TP_APP_TIMEOUT                         Per-operation timeout (default: 60s)
    TP_APP_VERBOSE                         Verbose output (default: false)
    TP_ENV                                 development, testing or production (default: production)
    TP_DEBUG                               Debug logging to stderr when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.prepare()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runMenu()
		},
	}
	root.cmd.SetIn(in)
	root.cmd.SetOut(out)

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.cmd.AddCommand(
		root.newMenuCommand(),
		root.newMemberCommand(),
		root.newProjectCommand(),
		root.newTaskCommand(),
		root.newExportCommand(),
	)

	return root
}

// SetArgs overrides the command line, mainly for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Execute runs the root command and closes the planner afterwards
func (r *RootCommand) Execute() error {
	err := r.cmd.Execute()
	if r.planner != nil {
		if cerr := r.planner.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close store: %w", cerr)
		}
		r.planner = nil
	}
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	flags.String("data-dir", "", "Data directory (overrides TP_DATA_DIR)")
	flags.String("data-file", "", "Data filename (overrides TP_DATA_FILE)")
	flags.String("storage", "", "Storage backend json|sqlite (overrides TP_STORAGE)")

	// Planner configuration
	flags.Int("upcoming-days", 0, "Upcoming horizon in days (overrides TP_UPCOMING_DAYS)")
	flags.String("date-format", "", "Due date format (overrides TP_DATE_FORMAT)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Per-operation timeout (overrides TP_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TP_APP_VERBOSE)")
	flags.String("env", "", "Environment (overrides TP_ENV)")
}

// getConfigFromFlags collects the flags the user actually set
func (r *RootCommand) getConfigFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("data-dir") {
		v, _ := flags.GetString("data-dir")
		overrides.DataDir = &v
	}
	if flags.Changed("data-file") {
		v, _ := flags.GetString("data-file")
		overrides.DataFile = &v
	}
	if flags.Changed("storage") {
		v, _ := flags.GetString("storage")
		overrides.Backend = &v
	}
	if flags.Changed("upcoming-days") {
		v, _ := flags.GetInt("upcoming-days")
		overrides.UpcomingDays = &v
	}
	if flags.Changed("date-format") {
		v, _ := flags.GetString("date-format")
		overrides.DateFormat = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}
	if flags.Changed("env") {
		v, _ := flags.GetString("env")
		overrides.Environment = &v
	}
	return overrides
}

// prepare applies flag overrides and opens the planner
func (r *RootCommand) prepare() error {
	r.config.ApplyOverrides(r.getConfigFromFlags())
	if err := r.config.Validate(); err != nil {
		return err
	}
	if r.planner != nil {
		return nil
	}

	planner, err := r.openPlanner(r.config)
	if err != nil {
		return err
	}
	logging.Debugf("cli: planner ready (%s backend, %s)\n", r.config.Storage.Backend, r.config.Application.Environment)
	r.planner = planner
	return nil
}

func (r *RootCommand) runMenu() error {
	return NewApp(r.planner, r.config, r.in, r.out).Run(context.Background())
}

// commandContext returns a context bounded by the application timeout
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

func (r *RootCommand) printer() *Printer {
	return NewPrinter(r.out, r.config.Display.DateFormat, r.config.Application.Verbose)
}

func (r *RootCommand) newMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runMenu()
		},
	}
}
