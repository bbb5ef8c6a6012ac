package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vk/mazewalk/internal/app"
	"github.com/vk/mazewalk/internal/explore"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	if args == nil {
		args = []string{}
	}

	opts := app.DefaultConfig()
	var parsed *app.Config

	// Each command only records the configuration; the caller runs it.
	capture := func(mode string) func(*cobra.Command, []string) error {
		return func(_ *cobra.Command, paths []string) error {
			cfg := opts
			cfg.Mode = mode
			if len(paths) > 0 {
				cfg.MazePaths = paths
			}
			cfg.LogFormat = strings.ToLower(cfg.LogFormat)
			cfg.LogLevel = strings.ToLower(cfg.LogLevel)
			cfg.Discipline = strings.ToLower(cfg.Discipline)

			validated, err := app.NewConfig(cfg)
			if err != nil {
				return err
			}
			parsed = validated
			return nil
		}
	}

	rootCmd := newRootCommand(&opts, capture(app.ModeRun))
	rootCmd.AddCommand(newShowCommand(capture(app.ModeShow)))
	rootCmd.AddCommand(newExportCommand(capture(app.ModeExport)))

	rootCmd.SetArgs(args)
	rootCmd.SetOut(output)
	rootCmd.SetErr(output)

	if err := rootCmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if parsed == nil {
		slog.Debug("No command ran, exiting after help output.")
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", parsed)
	return parsed, false, nil
}

func newRootCommand(opts *app.Config, runE func(*cobra.Command, []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mazewalk [flags] [MAZE_PATH...]",
		Short: "Explore a maze of shared branches and leaves",
		Long: `mazewalk explores a maze: a directed acyclic graph of branches with two
children each and terminal leaves, where one node may be reachable from
several parents. It prints the order in which nodes are visited.

MAZE_PATH is a .hcl, .yaml or .yml file, or a directory holding such files.
With no path the built-in sample maze is used.`,
		Example: `  mazewalk
  mazewalk --strategy eager --discipline fifo mazes/
  mazewalk --strategy two-phase --steps maze.hcl
  mazewalk --round-trip --show maze.yaml`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runE,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.Root, "root", "r", opts.Root, "Label of the node to start from. Defaults to the maze's root.")
	pf.StringVar(&opts.LogFormat, "log-format", opts.LogFormat, "Log output format. Options: 'text' or 'json'.")
	pf.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.IntVar(&opts.HealthcheckPort, "healthcheck-port", opts.HealthcheckPort, "Port for the HTTP health check and metrics server. 0 is disabled.")

	f := cmd.Flags()
	f.StringVarP(&opts.Strategy, "strategy", "s", opts.Strategy, "Traversal strategy. Options: "+strategyOptions()+".")
	f.StringVarP(&opts.Discipline, "discipline", "d", opts.Discipline, "Pending list discipline for queued strategies. Options: 'lifo' (stack) or 'fifo' (queue).")
	f.BoolVar(&opts.RoundTrip, "round-trip", opts.RoundTrip, "Unexplore the maze after the traversal and explore it again.")
	f.BoolVar(&opts.Steps, "steps", opts.Steps, "Print the trace after every step. Requires --strategy two-phase.")
	f.BoolVar(&opts.Show, "show", opts.Show, "Print the maze with node states before and after the traversal.")

	return cmd
}

func strategyOptions() string {
	names := make([]string, len(explore.Strategies))
	for i, s := range explore.Strategies {
		names[i] = "'" + string(s) + "'"
	}
	return strings.Join(names, ", ")
}

func newShowCommand(runE func(*cobra.Command, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:     "show [MAZE_PATH...]",
		Short:   "Print the maze as a tree without exploring it",
		Example: `  mazewalk show maze.hcl`,
		Args:    cobra.ArbitraryArgs,
		RunE:    runE,
	}
}

func newExportCommand(runE func(*cobra.Command, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:     "export [MAZE_PATH...]",
		Short:   "Print the merged maze definition as YAML",
		Example: `  mazewalk export mazes/ > maze.yaml`,
		Args:    cobra.ArbitraryArgs,
		RunE:    runE,
	}
}
