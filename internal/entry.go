// Package internal wires configuration, logging, and the page builder
// into the runnable application.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/jera/internal/apperr"
	"github.com/starford/jera/internal/builder"
)

// Run executes one build, or a watch session, with the given options.
// Diagnostics go to the configured logger on stderr; result paths and
// echoed stream logs go to stdout.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{stdout: os.Stdout}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	if app.directory == "" {
		app.directory = "."
	}
	cfg := app.config

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Debug("configuration loaded",
		slog.String("directory", app.directory),
		slog.Bool("recursive", cfg.Build.Recursive),
		slog.Bool("overwrite", cfg.Build.Overwrite),
		slog.String("log_level", cfg.App.LogLevel.String()))

	b := builder.New(logger, builder.Options{
		Recursive:  cfg.Build.Recursive,
		Overwrite:  cfg.Build.Overwrite,
		OutputName: cfg.Build.OutputName,
	})

	switch {
	case app.streamPath != "":
		return runStream(app, b)
	case app.watch:
		return runWatch(ctx, app, b, logger, cfg)
	default:
		return runTree(app, b)
	}
}

// runStream builds one page from a --dump-json file and echoes the
// stream's log lines back to stdout.
func runStream(app *application, b *builder.Builder) error {
	res, err := b.BuildStream(app.streamPath, app.outputPath)
	if err != nil {
		return err
	}
	for _, line := range res.Logs {
		fmt.Fprintln(app.stdout, line)
	}
	if res.Path == "" {
		fmt.Fprintln(app.stdout, "No posts found in the JSON file.")
		return apperr.ErrNothingProduced
	}
	fmt.Fprintf(app.stdout, "Index written: %s\n", res.Path)
	return nil
}

// runTree builds a page for every export directory under the root.
func runTree(app *application, b *builder.Builder) error {
	created, err := b.BuildAll(app.directory)
	if err != nil {
		return err
	}
	if len(created) == 0 {
		fmt.Fprintln(app.stdout, "No index generated (check that --write-metadata is enabled).")
		return apperr.ErrNothingProduced
	}
	fmt.Fprintln(app.stdout, "Indexes written:")
	for _, path := range created {
		fmt.Fprintf(app.stdout, "  %s\n", path)
	}
	return nil
}

// runWatch does an initial full build and then rebuilds on sidecar
// changes until interrupted.
func runWatch(ctx context.Context, app *application, b *builder.Builder, logger *slog.Logger, cfg *Config) error {
	if _, err := b.BuildAll(app.directory); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return b.Watch(gCtx, app.directory, cfg.Watch.Debounce())
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("received shutdown signal", slog.String("signal", sig.String()))
			cancel()
		case <-gCtx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("watch error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("watch stopped")
	return nil
}
