package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/faizmokh/ajanda/internal/files"
	"github.com/faizmokh/ajanda/internal/pomodoro"
	"github.com/faizmokh/ajanda/internal/prompt"
)

type testEnv struct {
	manager  *files.Manager
	sched    *pomodoro.ManualScheduler
	prompter *prompt.Scripted
	bell     *bytes.Buffer
	app      *app
}

func newTestEnv(t *testing.T, answers ...string) *testEnv {
	t.Helper()
	mgr := newTempManager(t)
	env := &testEnv{
		manager:  mgr,
		sched:    &pomodoro.ManualScheduler{},
		prompter: prompt.NewScripted(answers...),
		bell:     &bytes.Buffer{},
	}
	env.app = &app{
		manager:   mgr,
		scheduler: env.sched,
		prompter:  env.prompter,
		bell:      env.bell,
	}
	return env
}

func (e *testEnv) root() *cobra.Command {
	return newRootCommand(context.Background(), e.app)
}

// autoFire delivers ticks as fast as the engine accepts them until the test ends.
func (e *testEnv) autoFire(t *testing.T) {
	t.Helper()
	stop := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for {
			select {
			case <-stop:
				return
			default:
				e.sched.Fire()
				runtime.Gosched()
			}
		}
	}()
	t.Cleanup(func() {
		close(stop)
		<-finished
	})
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	out, err := executeCommandErr(cmd, args...)
	if err != nil {
		t.Fatalf("cmd.Execute(%q): %v\n%s", args, err, out)
	}
	return out
}

func executeCommandErr(cmd *cobra.Command, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func assertNotContains(t *testing.T, output, want string) {
	t.Helper()
	if strings.Contains(output, want) {
		t.Fatalf("output %q unexpectedly contained substring %q", output, want)
	}
}

func newTempManager(t *testing.T) *files.Manager {
	t.Helper()
	base := t.TempDir()
	mgr, err := files.NewManager(base)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return mgr
}

func writeConfig(t *testing.T, mgr *files.Manager, body string) {
	t.Helper()
	if err := mgr.WriteFile(mgr.ConfigPath(), []byte(body), true); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestConfigPathDefault(t *testing.T) {
	env := newTestEnv(t)

	out := executeCommand(t, env.root(), "config", "path")
	if got, want := strings.TrimSpace(out), env.manager.ConfigPath(); got != want {
		t.Fatalf("config path = %q, want %q", got, want)
	}
}

func TestConfigPathFlag(t *testing.T) {
	env := newTestEnv(t)
	custom := filepath.Join(t.TempDir(), "custom.yaml")

	out := executeCommand(t, env.root(), "--config", custom, "config", "path")
	if got := strings.TrimSpace(out); got != custom {
		t.Fatalf("config path = %q, want %q", got, custom)
	}
}

func TestConfigInitWritesDefaults(t *testing.T) {
	env := newTestEnv(t)

	out := executeCommand(t, env.root(), "config", "init")
	assertContains(t, out, "Wrote "+env.manager.ConfigPath())

	data, err := os.ReadFile(env.manager.ConfigPath())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	written := string(data)
	assertContains(t, written, "seed_samples: true")
	assertContains(t, written, "reminder_time: 15")
	assertContains(t, written, "dark_mode: false")
	assertNotContains(t, written, "warnings")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	env := newTestEnv(t)
	writeConfig(t, env.manager, "debug: true\n")

	out, err := executeCommandErr(env.root(), "config", "init")
	if err == nil {
		t.Fatalf("expected error, got output %q", out)
	}
	if !errors.Is(err, files.ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
	assertContains(t, err.Error(), "--force")

	data, err := os.ReadFile(env.manager.ConfigPath())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "debug: true\n" {
		t.Fatalf("config was modified: %q", data)
	}

	executeCommand(t, env.root(), "config", "init", "--force")
	data, err = os.ReadFile(env.manager.ConfigPath())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	assertContains(t, string(data), "reminder_time: 15")
}

func TestConfigShowReadsFile(t *testing.T) {
	env := newTestEnv(t)
	writeConfig(t, env.manager, "seed_samples: false\nsettings:\n  dark_mode: true\n  reminder_time: 30\n")

	out := executeCommand(t, env.root(), "config", "show")
	assertContains(t, out, "seed_samples: false")
	assertContains(t, out, "dark_mode: true")
	assertContains(t, out, "reminder_time: 30")
	assertNotContains(t, out, "# warning")
}

func TestConfigShowReportsReplacedValues(t *testing.T) {
	env := newTestEnv(t)
	writeConfig(t, env.manager, "settings:\n  reminder_time: 7\n")

	out := executeCommand(t, env.root(), "config", "show")
	assertContains(t, out, "# warning: settings.reminder_time 7")
	assertContains(t, out, "reminder_time: 15")
}

func TestConfigShowMissingExplicitFile(t *testing.T) {
	env := newTestEnv(t)
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	if out, err := executeCommandErr(env.root(), "--config", missing, "config", "show"); err == nil {
		t.Fatalf("expected error for missing --config file, got output %q", out)
	}
}

func TestConfigShowCreatesLogDir(t *testing.T) {
	env := newTestEnv(t)

	executeCommand(t, env.root(), "--debug", "config", "show")
	if _, err := os.Stat(env.manager.LogDir()); err != nil {
		t.Fatalf("expected log directory: %v", err)
	}
}

func TestPomodoroRejectsUnknownMode(t *testing.T) {
	env := newTestEnv(t)

	_, err := executeCommandErr(env.root(), "pomodoro", "--mode", "lunch")
	if err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	assertContains(t, err.Error(), "invalid mode")
	if len(env.prompter.Alerts) != 1 {
		t.Fatalf("expected one alert, got %v", env.prompter.Alerts)
	}
	assertContains(t, env.prompter.Alerts[0], "Geçersiz değer: invalid mode")
	if env.sched.Scheduled() != 0 {
		t.Fatalf("no countdown should start, got %d handles", env.sched.Scheduled())
	}
}

func TestPomodoroRejectsZeroCycles(t *testing.T) {
	env := newTestEnv(t)

	_, err := executeCommandErr(env.root(), "pomodoro", "--cycles", "0")
	if err == nil {
		t.Fatalf("expected error for zero cycles")
	}
	assertContains(t, err.Error(), "--cycles")
	if len(env.prompter.Alerts) != 1 {
		t.Fatalf("expected one alert, got %v", env.prompter.Alerts)
	}
	assertContains(t, env.prompter.Alerts[0], "--cycles must be at least 1")
}

func TestPomodoroRunsSingleCountdown(t *testing.T) {
	env := newTestEnv(t)
	env.autoFire(t)

	out := executeCommand(t, env.root(), "pomodoro", "--mode", "short")
	assertContains(t, out, "Kısa Mola 05:00")
	assertContains(t, out, "Mola Tamamlandı! Çalışmaya devam etmek ister misiniz?")
	assertContains(t, out, "Tamamlanan Pomodoro: 0")

	if len(env.prompter.Choices) != 0 {
		t.Fatalf("last countdown should not prompt, got %d prompts", len(env.prompter.Choices))
	}
	if env.bell.String() != "\a" {
		t.Fatalf("bell = %q, want one BEL", env.bell.String())
	}
	if env.sched.Active() != 0 {
		t.Fatalf("tick source still active after return")
	}
}

func TestPomodoroAcceptsProposal(t *testing.T) {
	env := newTestEnv(t, "Çalışmaya Başla")
	env.autoFire(t)

	out := executeCommand(t, env.root(), "pomodoro", "--mode", "short", "--cycles", "2")
	assertContains(t, out, "Çalışma 25:00")
	assertContains(t, out, "Pomodoro Tamamlandı! Kısa mola zamanı!")
	assertContains(t, out, "Tamamlanan Pomodoro: 1")

	if len(env.prompter.Choices) != 1 {
		t.Fatalf("expected one prompt, got %d", len(env.prompter.Choices))
	}
	choice := env.prompter.Choices[0]
	if choice.Title != "Mola Tamamlandı!" {
		t.Fatalf("prompt title = %q", choice.Title)
	}
}

func TestPomodoroDeclineStops(t *testing.T) {
	env := newTestEnv(t, pomodoro.DeclineLabel)
	env.autoFire(t)

	out := executeCommand(t, env.root(), "pomodoro", "--mode", "short", "--cycles", "3")
	assertContains(t, out, "Öneri ertelendi.")
	assertNotContains(t, out, "Çalışma 25:00")
	if len(env.prompter.Choices) != 1 {
		t.Fatalf("expected one prompt, got %d", len(env.prompter.Choices))
	}
}

func TestPomodoroSilentWhenSoundDisabled(t *testing.T) {
	env := newTestEnv(t)
	writeConfig(t, env.manager, "settings:\n  sound_enabled: false\n")
	env.autoFire(t)

	executeCommand(t, env.root(), "pomodoro", "--mode", "short")
	if env.bell.Len() != 0 {
		t.Fatalf("bell rang with sound disabled: %q", env.bell.String())
	}
}

func TestVersionFlag(t *testing.T) {
	env := newTestEnv(t)

	out := executeCommand(t, env.root(), "--version")
	assertContains(t, out, "ajanda ")
	assertContains(t, out, "commit")
}
