// Package pomodoro implements the countdown behind the pomodoro screen: three
// fixed-length modes, a 1 Hz tick while running, and a completion step that
// proposes the next mode without switching to it.
package pomodoro

import (
	"sync"
	"time"

	"github.com/faizmokh/ajanda/internal/logger"
	"github.com/faizmokh/ajanda/internal/prompt"
)

// TickInterval is the countdown cadence.
const TickInterval = time.Second

// Snapshot is a point-in-time copy of the engine state.
type Snapshot struct {
	Mode      Mode
	Remaining int
	Running   bool
	Completed int
}

// Clock renders Remaining as MM:SS.
func (s Snapshot) Clock() string {
	return FormatClock(s.Remaining)
}

// Progress returns how much of the current mode has elapsed, from 0 to 1.
func (s Snapshot) Progress() float64 {
	total := s.Mode.Seconds()
	if total <= 0 {
		return 1
	}
	p := float64(total-s.Remaining) / float64(total)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Proposal is raised when a countdown reaches zero. The engine never applies
// it by itself; pass it to Accept to switch.
type Proposal struct {
	From      Mode
	Next      Mode
	Completed int
}

// Title is the headline shown with the proposal.
func (p Proposal) Title() string {
	if p.From == Work {
		return "Pomodoro Tamamlandı!"
	}
	return "Mola Tamamlandı!"
}

// Message explains the proposal.
func (p Proposal) Message() string {
	switch p.Next {
	case LongBreak:
		return "Uzun mola zamanı!"
	case ShortBreak:
		return "Kısa mola zamanı!"
	default:
		return "Çalışmaya devam etmek ister misiniz?"
	}
}

// AcceptLabel names the option that applies the proposal.
func (p Proposal) AcceptLabel() string {
	if p.Next == Work {
		return "Çalışmaya Başla"
	}
	return p.Next.Label()
}

// DeclineLabel names the option that leaves the engine where it stopped.
const DeclineLabel = "Daha Sonra"

// Choice renders the proposal as a prompt.
func (p Proposal) Choice() prompt.Choice {
	return prompt.Choice{
		Title:   p.Title(),
		Message: p.Message(),
		Options: []prompt.Option{
			{Label: p.AcceptLabel()},
			{Label: DeclineLabel, Cancel: true},
		},
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithScheduler replaces the ticker-backed scheduler.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) { e.sched = s }
}

// OnTick registers a callback run after every accepted tick.
func OnTick(fn func(Snapshot)) Option {
	return func(e *Engine) { e.onTick = fn }
}

// OnComplete registers a callback run once per exhausted countdown.
func OnComplete(fn func(Proposal)) Option {
	return func(e *Engine) { e.onComplete = fn }
}

// Engine is the pomodoro state machine. It owns at most one tick source at a
// time; every operation that stops or restarts the countdown cancels the
// current source first. Callbacks run without the lock held, so they may call
// back into the engine.
type Engine struct {
	mu sync.Mutex

	sched      Scheduler
	onTick     func(Snapshot)
	onComplete func(Proposal)

	mode      Mode
	remaining int
	running   bool
	completed int

	handle Handle
	// generation identifies the live tick source; ticks carrying an older
	// value come from a cancelled source and are dropped.
	generation uint64
	closed     bool
}

// New returns an engine in Work mode with a full countdown, not running.
func New(opts ...Option) *Engine {
	e := &Engine{
		sched:     TickerScheduler{},
		mode:      Work,
		remaining: Work.Seconds(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Start resumes the countdown. It does nothing when already running, when the
// countdown is exhausted, or after Close.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.startLocked()
}

// Pause stops the countdown, keeping the remaining time.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

// Toggle starts a paused engine or pauses a running one, and reports whether
// it is running afterwards.
func (e *Engine) Toggle() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		e.stopLocked()
	} else {
		e.startLocked()
	}
	return e.running
}

// Reset stops the countdown and refills the current mode. The mode and the
// completed counter are kept.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	e.remaining = e.mode.Seconds()
}

// SwitchMode stops the countdown and loads a full countdown of mode. The
// completed counter is kept.
func (e *Engine) SwitchMode(mode Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	e.mode = mode
	e.remaining = mode.Seconds()
}

// Accept applies a proposal raised by the completion step.
func (e *Engine) Accept(p Proposal) {
	logger.Debug("pomodoro proposal accepted", "next", p.Next)
	e.SwitchMode(p.Next)
}

// tick advances a running countdown by one second without a generation check.
// The scheduler handle is the only tick source callers get; this exists so
// tests can step a countdown directly.
func (e *Engine) tick() (Proposal, bool) {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return Proposal{}, false
	}
	return e.advance()
}

// Close cancels any pending tick source. The engine keeps its state but will
// not start again.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	e.closed = true
}

func (e *Engine) tickFrom(generation uint64) {
	e.mu.Lock()
	if !e.running || generation != e.generation {
		e.mu.Unlock()
		return
	}
	e.advance()
}

// advance must be called with the lock held; it releases it before running
// callbacks.
func (e *Engine) advance() (Proposal, bool) {
	var (
		proposal Proposal
		done     bool
	)

	e.remaining--
	if e.remaining <= 0 {
		e.remaining = 0
		e.stopLocked()
		proposal = e.completeLocked()
		done = true
	}
	snap := e.snapshotLocked()
	onTick, onComplete := e.onTick, e.onComplete
	e.mu.Unlock()

	if onTick != nil {
		onTick(snap)
	}
	if done {
		logger.Info("pomodoro finished", "mode", proposal.From, "next", proposal.Next, "completed", proposal.Completed)
		if onComplete != nil {
			onComplete(proposal)
		}
	}
	return proposal, done
}

func (e *Engine) completeLocked() Proposal {
	p := Proposal{From: e.mode, Next: Work}
	if e.mode == Work {
		e.completed++
		p.Next = ShortBreak
		if e.completed%SessionsPerLongBreak == 0 {
			p.Next = LongBreak
		}
	}
	p.Completed = e.completed
	return p
}

func (e *Engine) startLocked() {
	if e.running || e.closed || e.remaining <= 0 {
		return
	}
	e.cancelLocked()
	e.running = true
	e.generation++
	generation := e.generation
	e.handle = e.sched.Every(TickInterval, func() { e.tickFrom(generation) })
}

func (e *Engine) stopLocked() {
	e.running = false
	e.cancelLocked()
}

func (e *Engine) cancelLocked() {
	if e.handle != nil {
		e.handle.Cancel()
		e.handle = nil
	}
	e.generation++
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Mode:      e.mode,
		Remaining: e.remaining,
		Running:   e.running,
		Completed: e.completed,
	}
}
