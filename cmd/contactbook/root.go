package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/Mireles-OConnor/CLI-project/foundation/idutil"
	"github.com/Mireles-OConnor/CLI-project/foundation/logger"
	"github.com/Mireles-OConnor/CLI-project/internal/config"
	"github.com/Mireles-OConnor/CLI-project/internal/contacts"
	"github.com/Mireles-OConnor/CLI-project/internal/shell"
	"github.com/Mireles-OConnor/CLI-project/metrics"
)

type rootOptions struct {
	configPath string
	file       string
	logEnv     string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "contactbook",
		Short: "Interactive contact book backed by a plain text file",
		Long: `contactbook keeps name and phone number pairs in a text file, one
"name | phone" record per line, and lets you view, add, search and delete
them from a numbered menu.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "contactbook.yaml", "path to the YAML config file")
	cmd.Flags().StringVar(&opts.file, "file", "", "contacts file (overrides config)")
	cmd.Flags().StringVar(&opts.logEnv, "log-env", "", "log environment: development, debug or production (overrides config)")

	return cmd
}

// loadConfig reads the config file and applies flags that were set
// explicitly on the command line.
func loadConfig(cmd *cobra.Command, opts rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.File = opts.file
	}
	if flags.Changed("log-env") {
		cfg.Log.Env = opts.logEnv
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	base, err := logger.New("contactbook", cfg.Log.Env, cfg.Log.Output)
	if err != nil {
		return err
	}
	defer base.SafeSync()

	log := base.With("session_id", idutil.NewSessionID().String())

	reg := prometheus.NewRegistry()
	pm := metrics.NewPromMetrics(reg, "")

	store, diags := contacts.Open(cfg.File,
		contacts.WithLogger(log),
		contacts.WithRecorder(pm),
		contacts.WithRetryPolicy(cfg.RetryPolicy()),
	)
	log.Infow("session started", "file", cfg.File, "records", store.Len())

	sess := shell.New(store, cmd.InOrStdin(), cmd.OutOrStdout(), shell.WithLogger(log))
	runErr := sess.Run(ctx, diags)

	if err := metrics.WriteTextfile(cfg.Metrics.Textfile, reg); err != nil {
		log.Warnw("metrics not written", "path", cfg.Metrics.Textfile, "error", err)
	}
	log.Infow("session finished", "records", store.Len())

	if runErr != nil {
		return fmt.Errorf("session aborted: %w", runErr)
	}
	return nil
}
