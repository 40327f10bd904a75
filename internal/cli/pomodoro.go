package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/ajanda/internal/logger"
	"github.com/faizmokh/ajanda/internal/pomodoro"
	"github.com/faizmokh/ajanda/internal/prompt"
)

func newPomodoroCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		modeName string
		cycles   int
	)

	cmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Run pomodoro countdowns without the TUI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := pomodoro.ParseMode(modeName)
			if err == nil && cycles < 1 {
				err = fmt.Errorf("--cycles must be at least 1, got %d", cycles)
			}
			if err != nil {
				if alertErr := a.prompter.Alert(ctx, "Geçersiz değer", err.Error()); alertErr != nil {
					logger.Warn("alert failed", "error", alertErr)
				}
				return err
			}

			cfg, err := a.loadConfig(true)
			if err != nil {
				return err
			}
			return runPomodoro(ctx, cmd, a, mode, cycles, cfg.Settings.SoundEnabled)
		},
	}

	cmd.Flags().StringVarP(&modeName, "mode", "m", pomodoro.Work.String(), "starting mode: work, short or long")
	cmd.Flags().IntVarP(&cycles, "cycles", "n", 1, "number of countdowns to run")
	return cmd
}

func runPomodoro(ctx context.Context, cmd *cobra.Command, a *app, mode pomodoro.Mode, cycles int, sound bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticks := make(chan pomodoro.Snapshot, 1)
	done := make(chan pomodoro.Proposal, 1)
	engine := pomodoro.New(
		pomodoro.WithScheduler(a.scheduler),
		pomodoro.OnTick(func(s pomodoro.Snapshot) {
			select {
			case ticks <- s:
			default:
			}
		}),
		pomodoro.OnComplete(func(p pomodoro.Proposal) {
			select {
			case done <- p:
			case <-ctx.Done():
			}
		}),
	)
	defer engine.Close()

	out := cmd.OutOrStdout()
	engine.SwitchMode(mode)
	fmt.Fprintf(out, "%s %s\n", mode.Label(), engine.Snapshot().Clock())
	engine.Start()

	finished := 0
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case s := <-ticks:
			if s.Running {
				fmt.Fprintf(out, "\r%s %s", s.Mode.Label(), s.Clock())
			}
		case p := <-done:
			finished++
			if sound {
				fmt.Fprint(a.bell, "\a")
			}
			fmt.Fprintf(out, "\n%s %s\n", p.Title(), p.Message())
			fmt.Fprintf(out, "Tamamlanan Pomodoro: %d\n", p.Completed)
			if finished >= cycles {
				return nil
			}

			opt, err := a.prompter.Choose(ctx, p.Choice())
			if err != nil && !errors.Is(err, prompt.ErrNoChoice) {
				return fmt.Errorf("ask next mode: %w", err)
			}
			logger.Debug("pomodoro proposal answered", "option", opt.Label, "error", err)
			if err != nil || opt.Cancel {
				fmt.Fprintln(out, "Öneri ertelendi.")
				return nil
			}

			engine.Accept(p)
			fmt.Fprintf(out, "%s %s\n", p.Next.Label(), engine.Snapshot().Clock())
			engine.Start()
		}
	}
}
