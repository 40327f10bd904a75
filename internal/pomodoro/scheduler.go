package pomodoro

import (
	"sync"
	"time"
)

// Handle is a scheduled recurring callback. Cancel stops further calls and is
// safe to call more than once, including from inside the callback.
type Handle interface {
	Cancel()
}

// Scheduler starts recurring callbacks.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Handle
}

// TickerScheduler runs each callback on its own goroutine driven by a time.Ticker.
type TickerScheduler struct{}

type tickerHandle struct {
	stop chan struct{}
	once sync.Once
}

// Every calls fn once per interval until the returned handle is cancelled.
func (TickerScheduler) Every(interval time.Duration, fn func()) Handle {
	h := &tickerHandle{stop: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-h.stop:
				return
			case <-ticker.C:
				select {
				case <-h.stop:
					return
				default:
				}
				fn()
			}
		}
	}()
	return h
}

func (h *tickerHandle) Cancel() {
	h.once.Do(func() { close(h.stop) })
}

// ManualScheduler never fires on its own; Fire delivers one tick to every live
// handle. It is meant for tests and for driving the engine step by step.
type ManualScheduler struct {
	mu      sync.Mutex
	handles []*manualHandle
}

type manualHandle struct {
	owner     *ManualScheduler
	fn        func()
	cancelled bool
}

// Every registers fn; interval is ignored.
func (s *ManualScheduler) Every(_ time.Duration, fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := &manualHandle{owner: s, fn: fn}
	s.handles = append(s.handles, h)
	return h
}

// Active reports how many handles have not been cancelled.
func (s *ManualScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, h := range s.handles {
		if !h.cancelled {
			n++
		}
	}
	return n
}

// Scheduled reports how many handles were ever created.
func (s *ManualScheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

// Fire runs the callback of every live handle once.
func (s *ManualScheduler) Fire() {
	s.mu.Lock()
	live := make([]func(), 0, len(s.handles))
	for _, h := range s.handles {
		if !h.cancelled {
			live = append(live, h.fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range live {
		fn()
	}
}

// FireStale runs every callback, cancelled or not, to simulate ticks that were
// already in flight when their handle was cancelled.
func (s *ManualScheduler) FireStale() {
	s.mu.Lock()
	all := make([]func(), 0, len(s.handles))
	for _, h := range s.handles {
		all = append(all, h.fn)
	}
	s.mu.Unlock()

	for _, fn := range all {
		fn()
	}
}

func (h *manualHandle) Cancel() {
	h.owner.mu.Lock()
	defer h.owner.mu.Unlock()
	h.cancelled = true
}
