// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/sfxpool/config"
)

type rootOptions struct {
	configPath string
	backend    string
	logLevel   string

	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "sfxplay",
		Short:         "Play sound effects through attenuated voice pools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", opts.logLevel, err)
			}
			opts.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (YAML, TOML or JSON)")
	flags.StringVar(&opts.backend, "backend", "", "override output.backend (oto, ebiten, headless)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newPlayCmd(opts),
		newSolveCmd(),
		newRenderCmd(opts),
		newInitCmd(),
		newManifestCmd(),
	)

	return cmd
}

// loadConfig reads --config and applies --backend.
func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}

	if o.backend != "" {
		cfg.Output.Backend = o.backend
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}

	return cfg, nil
}
