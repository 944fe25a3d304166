package main

import (
	"context"
	"os"

	"github.com/lietu/plstats/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}
	shared.SetLogLevel(logger, config.Logging.Level)

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	app := &cli.Command{
		Name:      "plstats",
		Usage:     "Calculate disk space and other stats from playlist files",
		Version:   "1.0.0",
		ArgsUsage: "PATH [PATH ...]",
		Commands:  runner.register(),
		Action:    runner.Scan,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
