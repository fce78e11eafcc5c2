package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/jera/internal"
	"github.com/starford/jera/internal/apperr"
	pkgconfig "github.com/starford/jera/pkg/config"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadIfPresent(cmd.String("config"), cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	// The no-* flags only force a value off; when absent the config
	// file (or default) decides.
	if cmd.Bool("no-recursive") {
		cfg.Build.Recursive = false
	}
	if cmd.Bool("no-overwrite") {
		cfg.Build.Overwrite = false
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithDirectory(cmd.Args().First()),
		internal.WithStream(cmd.String("json")),
		internal.WithOutput(cmd.String("output")),
		internal.WithWatch(cmd.Bool("watch")),
	}

	return internal.Run(ctx, opts...)
}

func main() {
	cmd := &cli.Command{
		Name:      "jera",
		Usage:     "Build offline HTML timelines from gallery-dl Twitter/X exports",
		ArgsUsage: "[directory]",
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("JERA_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:  "json",
				Usage: "JSONL file produced by --dump-json; builds a single page from it",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "HTML file to write (stream mode only)",
			},
			&cli.BoolFlag{
				Name:  "no-recursive",
				Usage: "Do not descend into subdirectories",
			},
			&cli.BoolFlag{
				Name:  "no-overwrite",
				Usage: "Keep existing index pages untouched",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Stay running and rebuild when sidecar files change",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, apperr.ErrNothingProduced) {
			// The human-readable message already went to stdout.
			os.Exit(1)
		}
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
