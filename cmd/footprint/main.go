// Command footprint is the terminal Digital Identity Dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/footprint/app"
	"github.com/jask/footprint/core"
	"github.com/jask/footprint/internal/config"
	"github.com/jask/footprint/internal/dataset"
	"github.com/jask/footprint/internal/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// env is what every subcommand needs once flags are parsed.
type env struct {
	cfg    config.Config
	data   *dataset.Dataset
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		debug      bool
		e          env
	)
	root := &cobra.Command{
		Use:           "footprint",
		Short:         "Digital Identity Dashboard",
		Long:          "Control your digital footprint: exposure score, scanner, data vault, monetization, insights and profile in one terminal dashboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			if debug {
				cfg.Log.Level = "debug"
			}
			logger, err := logging.New(cfg.Log.Path, cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			data, err := dataset.Load(cfg.Data.Path)
			if err != nil {
				return fmt.Errorf("load dataset: %w", err)
			}
			e = env{cfg: cfg, data: data, logger: logger}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), e)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	pf.String("theme", "", "color theme: light or dark")
	pf.String("tab", "", "start tab: id or number 1-6")
	pf.String("data", "", "alternative fixture file (TOML)")
	pf.String("log", "", "append debug log to this file")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&debug, "debug", false, "shorthand for --log-level debug")

	root.AddCommand(
		newSnapshotCmd(&e),
		newDumpCmd(&e),
		newVersionCmd(),
	)
	return root
}

func runTUI(parent context.Context, e env) error {
	if parent == nil {
		parent = context.Background()
	}
	// Cancelling ctx releases a pending scan timer when the program exits.
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGTERM)
	defer cancel()

	e.logger.Info("starting",
		zap.String("version", version),
		zap.String("theme", e.cfg.UI.Theme),
		zap.String("start_tab", e.cfg.UI.StartTab),
	)
	model := app.New(e.data, e.cfg, core.Options{Context: ctx, Logger: e.logger})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run dashboard: %w", err)
	}
	e.logger.Info("exited")
	return nil
}
