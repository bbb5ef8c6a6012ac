package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/vk/mazewalk/internal/ctxlog"
	"github.com/vk/mazewalk/internal/explore"
	"github.com/vk/mazewalk/internal/node"
	"github.com/vk/mazewalk/internal/nodeid"
	"github.com/vk/mazewalk/internal/report"
	"github.com/vk/mazewalk/internal/scheduler"
	"github.com/vk/mazewalk/internal/session"
	"github.com/vk/mazewalk/internal/yamlconfig"
)

// Run executes the configured mode against the loaded maze.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", a.config.Mode)

	a.startHealthCheckServer()
	defer func() {
		_ = a.closeHealthCheckServer(context.Background())
	}()

	if a.config.Mode == ModeExport {
		return a.export()
	}

	sess, err := a.factory.NewSession(ctx, a.model,
		explore.WithObserver(explore.LogObserver{}),
		explore.WithObserver(a.metrics),
	)
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.Close(ctx); err != nil {
			a.logger.Warn("Failed to close session.", "error", err)
		}
	}()
	ctx = ctxlog.With(ctx, "session_id", sess.ID())

	root, err := sess.Resolve(ctx, a.config.Root)
	if err != nil {
		return err
	}

	if a.config.Mode == ModeShow {
		return a.show(ctx, sess, root)
	}
	if err := a.traverse(ctx, sess, root); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// traverse runs the configured strategy, optionally as a round trip:
// explore, unexplore, explore again.
func (a *App) traverse(ctx context.Context, sess session.Session, root nodeid.ID) error {
	logger := ctxlog.FromContext(ctx)
	strategy := explore.Strategy(a.config.Strategy)
	d, err := scheduler.ParseDiscipline(a.config.Discipline)
	if err != nil {
		return err
	}
	x := sess.Explorer()

	if a.config.Show {
		fmt.Fprintln(a.outW, "Maze before exploring:")
		if err := report.Visualize(ctx, a.outW, sess.Graph(), root); err != nil {
			return err
		}
	}

	if a.config.Steps {
		return a.step(ctx, x, root, d)
	}

	logger.Info("🚀 Starting traversal.", "strategy", string(strategy), "discipline", d.String())
	trace, err := x.Run(ctx, root, strategy, d)
	if err != nil {
		return fmt.Errorf("traversal failed: %w", err)
	}
	fmt.Fprintf(a.outW, "Trace of exploration (%s): %s\n", strategy, report.FormatTrace(trace))

	if a.config.RoundTrip {
		reset, err := x.Unexplore(ctx, root)
		if err != nil {
			return fmt.Errorf("unexplore failed: %w", err)
		}
		fmt.Fprintf(a.outW, "Trace of unexploring: %s\n", report.FormatTrace(reset))

		fmt.Fprintln(a.outW, "Maze after unexploring:")
		if err := report.Visualize(ctx, a.outW, sess.Graph(), root); err != nil {
			return err
		}

		again, err := x.Run(ctx, root, strategy, d)
		if err != nil {
			return fmt.Errorf("second traversal failed: %w", err)
		}
		fmt.Fprintf(a.outW, "Trace of exploration (%s, again): %s\n", strategy, report.FormatTrace(again))
		if !slices.Equal(trace, again) {
			logger.Warn("Second traversal differs from the first.", "first", trace.String(), "second", again.String())
		}
	}

	if a.config.Show {
		fmt.Fprintln(a.outW, "Maze after exploring:")
		if err := report.Visualize(ctx, a.outW, sess.Graph(), root); err != nil {
			return err
		}
	}

	logger.Info("🏁 Traversal finished.", "visits", len(trace))
	return nil
}

// step drives a two-phase walk one node at a time and prints the trace
// after every step.
func (a *App) step(ctx context.Context, x *explore.Explorer, root nodeid.ID, d scheduler.Discipline) error {
	s := explore.NewStepper(x, root, d)
	for i := 1; !s.Done(); i++ {
		ev, err := s.Next(ctx)
		if err != nil {
			return fmt.Errorf("step %d failed: %w", i, err)
		}
		fmt.Fprintf(a.outW, "Step %d: %s (%s), %d pending\n", i, ev.Label, ev.Outcome, ev.Pending)
		fmt.Fprintf(a.outW, "Current trace: %s\n", report.FormatTrace(s.Trace()))
	}
	return nil
}

// show prints the maze as a styled tree with a per-state summary.
func (a *App) show(ctx context.Context, sess session.Session, root nodeid.ID) error {
	out, err := report.Tree(ctx, sess.Graph(), root)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.outW, out)

	counts, err := report.StateCounts(ctx, sess.Graph())
	if err != nil {
		return err
	}
	fmt.Fprintf(a.outW, "%d nodes: %d unexplored, %d partially explored, %d explored\n",
		len(sess.Graph().AllNodes(ctx)),
		counts[node.Unexplored], counts[node.PartiallyExplored], counts[node.Explored])
	return nil
}

// export prints the loaded model as a YAML maze document.
func (a *App) export() error {
	data, err := yamlconfig.Encode(a.model)
	if err != nil {
		return fmt.Errorf("failed to encode maze: %w", err)
	}
	_, err = a.outW.Write(data)
	return err
}
