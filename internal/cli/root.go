package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/ajanda/internal/agenda"
	"github.com/faizmokh/ajanda/internal/config"
	"github.com/faizmokh/ajanda/internal/files"
	"github.com/faizmokh/ajanda/internal/logger"
	"github.com/faizmokh/ajanda/internal/pomodoro"
	"github.com/faizmokh/ajanda/internal/prompt"
	"github.com/faizmokh/ajanda/internal/ui"
	"github.com/faizmokh/ajanda/internal/version"
)

// app carries what every command shares: where files live, the collaborators
// that tests replace, and the values of the global flags.
type app struct {
	manager   *files.Manager
	scheduler pomodoro.Scheduler
	prompter  prompt.Prompter
	bell      io.Writer

	configPath string
	debug      bool
}

func newApp(manager *files.Manager) *app {
	return &app{
		manager:   manager,
		scheduler: pomodoro.TickerScheduler{},
		prompter:  prompt.NewTerminal(nil),
		bell:      os.Stderr,
	}
}

// resolvedConfigPath reports the config file in use and whether it was asked
// for explicitly.
func (a *app) resolvedConfigPath() (string, bool) {
	if a.configPath != "" {
		return a.configPath, true
	}
	return a.manager.ConfigPath(), false
}

// loadConfig reads the effective config and starts the logger. Mirroring to
// stderr is only safe when no TUI owns the terminal.
func (a *app) loadConfig(mirror bool) (config.Config, error) {
	path, required := a.resolvedConfigPath()
	cfg, err := config.Load(config.Options{
		Path:     path,
		Required: required,
		EnvFile:  a.manager.EnvPath(),
	})
	if err != nil {
		return config.Config{}, err
	}
	if a.debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{
		Debug:  cfg.Debug,
		Dir:    a.manager.LogDir(),
		Mirror: mirror && cfg.Debug,
	}); err != nil {
		return config.Config{}, fmt.Errorf("init logger: %w", err)
	}
	for _, w := range cfg.Warnings {
		logger.Warn("config value replaced", "detail", w)
	}
	logger.Debug("config loaded", "path", path, "seed_samples", cfg.SeedSamples)
	return cfg, nil
}

func newStores(cfg config.Config) *agenda.Stores {
	stores := agenda.NewStores(agenda.UUIDSource{}, cfg.AgendaSettings())
	if cfg.SeedSamples {
		stores.SeedSamples()
	}
	return stores
}

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	return newRootCommand(ctx, newApp(manager))
}

func newRootCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ajanda",
		Short:   "Plan tasks, events, notes and pomodoro sessions from your terminal.",
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(false)
			if err != nil {
				return err
			}

			m := ui.NewModel(ctx, ui.Options{
				Stores:    newStores(cfg),
				Scheduler: a.scheduler,
				Bell:      a.bell,
			})
			defer m.Close()

			if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("ajanda {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default <base>/config.yaml)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newPomodoroCommand(ctx, a),
		newConfigCommand(a),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, manager)
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/ajanda/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
