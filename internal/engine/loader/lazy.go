package loader

import (
	"context"
	"sync"

	"go.trai.ch/routeflow/internal/core/domain"
)

// Phase is the observable lifecycle state of a lazy resolution.
type Phase int

const (
	// PhasePending means resolution is in flight and the indicator delay
	// has not elapsed yet.
	PhasePending Phase = iota
	// PhaseLoading means resolution is in flight past the indicator delay.
	PhaseLoading
	// PhaseReady means the module resolved.
	PhaseReady
	// PhaseFailed means all attempts were exhausted or a fatal error hit.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LazyComponent is a handle to an in-flight module resolution. It is
// returned synchronously; callers observe progress through Phase and block
// on Wait when they need the result.
type LazyComponent struct {
	path string
	done chan struct{}

	mu     sync.Mutex
	phase  Phase
	module *domain.Module
	err    error
}

// Path returns the module path being resolved.
func (c *LazyComponent) Path() string { return c.path }

// Phase returns the current lifecycle phase.
func (c *LazyComponent) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Done is closed once the resolution reaches a terminal phase.
func (c *LazyComponent) Done() <-chan struct{} { return c.done }

// Result returns the outcome. Both values are zero until Done is closed.
func (c *LazyComponent) Result() (*domain.Module, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.module, c.err
}

// Wait blocks until the resolution finishes or ctx is cancelled.
func (c *LazyComponent) Wait(ctx context.Context) (*domain.Module, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.done:
		return c.Result()
	}
}

func (c *LazyComponent) markLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhasePending {
		c.phase = PhaseLoading
	}
}

func (c *LazyComponent) finish(m *domain.Module, err error) {
	c.mu.Lock()
	if err != nil {
		c.phase = PhaseFailed
		c.err = err
	} else {
		c.phase = PhaseReady
		c.module = m
	}
	c.mu.Unlock()
	close(c.done)
}

// Resolved wraps an already loaded module in a ready component. Used for
// cache hits so callers see one handle type either way.
func Resolved(path string, m *domain.Module) *LazyComponent {
	c := &LazyComponent{path: path, done: make(chan struct{})}
	c.finish(m, nil)
	return c
}

// Lazy starts resolving path in the background and returns the handle
// immediately. The handle stays pending for the indicator delay, so fast
// resolutions never surface a loading phase.
func (l *Loader) Lazy(ctx context.Context, path string) *LazyComponent {
	c := &LazyComponent{path: path, done: make(chan struct{})}

	delay := l.clk.AfterFunc(l.opts.Delay, c.markLoading)
	go func() {
		m, err := l.Load(ctx, path)
		delay.Stop()
		c.finish(m, err)
	}()
	return c
}
