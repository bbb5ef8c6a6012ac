package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vk/mazewalk/internal/app"
	"github.com/vk/mazewalk/internal/cli"
	"github.com/vk/mazewalk/internal/config"
	"github.com/vk/mazewalk/internal/hcl"
	"github.com/vk/mazewalk/internal/scheduler"
	"github.com/vk/mazewalk/internal/yamlconfig"
)

// main is the entrypoint for the mazewalk application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()

	loader := config.NewMultiLoader(hcl.NewLoader(), yamlconfig.NewLoader())
	mazeApp, err := app.NewApp(outW, appConfig, loader)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mazeApp.Run(ctx)
}

// panicError turns a recovered panic value into an error. A scheduler
// contract violation keeps its type so callers can match it.
func panicError(r any) error {
	var violation *scheduler.ContractViolation
	if e, ok := r.(error); ok && errors.As(e, &violation) {
		return fmt.Errorf("application panicked | %w", violation)
	}
	return fmt.Errorf("application panicked | %v", r)
}
