package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/journal/internal"
	"github.com/starford/journal/internal/apperr"
	pkgconfig "github.com/starford/journal/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func build(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := internal.Build(ctx, internal.WithConfig(cfg), internal.WithOutput(cmd.String("out"))); err != nil {
		if apperr.IsDiscovery(err) {
			return fmt.Errorf("content discovery failed: %w", err)
		}
		return fmt.Errorf("build error: %w", err)
	}
	return nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func serveMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := internal.ServeMCP(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("mcp error: %w", err)
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "journal",
		Usage: "Recent-items feed over a Markdown reads/writes/thoughts tree",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "build",
				Usage:  "Index the content tree once and write the feed as JSON",
				Action: build,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output file (\"-\" or empty for stdout)",
						Sources: cli.EnvVars("JOURNAL_OUT"),
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Serve the feed over HTTP and keep it current while files change",
				Action: serve,
			},
			{
				Name:   "mcp",
				Usage:  "Serve the feed to MCP clients on stdio",
				Action: serveMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
