package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/dogfinder/internal/config"
	"github.com/rogerio-castellano/dogfinder/internal/fetchapi"
	"github.com/rogerio-castellano/dogfinder/internal/logging"
	"github.com/rogerio-castellano/dogfinder/internal/tui"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions
	v := config.New()

	cmd := &cobra.Command{
		Use:   "dogfinder",
		Short: "Search shelter dogs and find your match",
		Long: `dogfinder is a terminal client for the Fetch dog adoption service.

Log in with a name and email, filter dogs by breed, age and zip code,
mark favorites and ask the service to pick a match among them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.Load(v, opts.configPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadClient(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, opts.verbose)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (yaml, json or toml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	cmd.Flags().String("base-url", "", "Fetch service base url")
	cmd.Flags().String("log-file", "", "log file path")
	cmd.Flags().Duration("timeout", 0, "per request timeout (0 disables)")

	if err := config.BindFlags(v, cmd.Flags(), map[string]string{
		"base-url": config.KeyBaseURL,
		"log-file": config.KeyLogFile,
		"timeout":  config.KeyTimeout,
	}); err != nil {
		panic(err)
	}

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dogfinder version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "dogfinder", version)
		},
	}
}

func run(parent context.Context, cfg config.Client, verbose bool) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, err := logging.NewFile(cfg.LogFile, logging.ParseLevel(cfg.LogLevel, verbose))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client, err := fetchapi.NewClient(cfg.BaseURL,
		fetchapi.WithLogger(logger.Named("fetchapi")),
		fetchapi.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		return err
	}

	logger.Info("starting", zap.String("version", version), zap.String("base_url", cfg.BaseURL))
	app := tui.New(client, tui.Options{
		PageSize: cfg.PageSize,
		Timeout:  cfg.Timeout,
		Logger:   logger,
		Context:  ctx,
	})
	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("stopped")
	return nil
}
