// Package idle implements the idle-time scheduling adapter for background
// preloading.
package idle

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultDelay is the fixed delay substituted when no native idle hook is
// available. Short enough that the queue drains promptly, long enough that
// foreground work runs first.
const DefaultDelay = 50 * time.Millisecond

// Hook is a platform idle callback: it runs fn once when the host considers
// itself idle. When nil, the scheduler falls back to a fixed-delay timer.
type Hook func(fn func())

// TimerScheduler implements ports.IdleScheduler. It prefers the platform
// hook and degrades to a clock timer.
type TimerScheduler struct {
	hook  Hook
	clk   clock.Clock
	delay time.Duration

	mu     sync.Mutex
	closed bool
}

// NewTimerScheduler creates a scheduler using the given hook when non-nil,
// otherwise a fixed-delay timer on the given clock. A non-positive delay
// falls back to DefaultDelay.
func NewTimerScheduler(hook Hook, clk clock.Clock, delay time.Duration) *TimerScheduler {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &TimerScheduler{hook: hook, clk: clk, delay: delay}
}

// Schedule queues fn to run during the next idle window. After Close,
// scheduled functions are dropped.
func (s *TimerScheduler) Schedule(fn func()) {
	run := func() {
		s.mu.Lock()
		closed := s.closed
		s.mu.Unlock()
		if closed {
			return
		}
		fn()
	}

	if s.hook != nil {
		s.hook(run)
		return
	}
	s.clk.AfterFunc(s.delay, run)
}

// Close drops all not-yet-started scheduled functions. Work that has already
// begun runs to completion; there is no cancellation primitive.
func (s *TimerScheduler) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
