package main

import (
	"context"

	"github.com/lietu/plstats/internal/shared"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes the example configuration file so the operator can tune
// the encoding trial order, log level and report style.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Infof("created configuration file at %s", path)
	return nil
}

// configCommand handles configuration management
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage plstats configuration",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Create a config.toml with defaults",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.ConfigInit,
			},
		},
	}
}
