// Package loader resolves page modules with timeout, bounded retry, and
// error classification.
package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"go.trai.ch/routeflow/internal/core/domain"
	"go.trai.ch/routeflow/internal/core/ports"
	"go.trai.ch/zerr"
)

// Defaults applied when an Options field is unset.
const (
	DefaultDelay      = 200 * time.Millisecond
	DefaultTimeout    = 3000 * time.Millisecond
	DefaultRetryTimes = 3
	DefaultRetryDelay = 1000 * time.Millisecond
)

// Options tune a Loader.
type Options struct {
	// Delay before a pending resolution is surfaced as loading. Keeps fast
	// resolutions from flashing an indicator.
	Delay time.Duration
	// Timeout bounds a single load attempt. A late resolution after the
	// deadline is discarded.
	Timeout time.Duration
	// RetryTimes bounds the total number of attempts for retryable
	// failures.
	RetryTimes int
	// RetryDelay separates consecutive attempts.
	RetryDelay time.Duration
}

func (o Options) withDefaults() Options {
	if o.Delay <= 0 {
		o.Delay = DefaultDelay
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.RetryTimes <= 0 {
		o.RetryTimes = DefaultRetryTimes
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = DefaultRetryDelay
	}
	return o
}

// Loader wraps a module loader with the retry and timeout policy.
type Loader struct {
	modules ports.ModuleLoader
	clk     clock.Clock
	log     ports.Logger
	opts    Options
}

// New creates a Loader over the given module loader.
func New(modules ports.ModuleLoader, clk clock.Clock, log ports.Logger, opts Options) *Loader {
	return &Loader{
		modules: modules,
		clk:     clk,
		log:     log,
		opts:    opts.withDefaults(),
	}
}

// Load resolves the module at path. Retryable failures are retried up to
// RetryTimes total attempts with RetryDelay between them; fatal failures
// return immediately.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Module, error) {
	var lastErr error
	for attempt := 1; attempt <= l.opts.RetryTimes; attempt++ {
		m, err := l.loadOnce(ctx, path)
		if err == nil {
			return m, nil
		}
		lastErr = err

		if !Retryable(err) {
			return nil, zerr.With(zerr.Wrap(err, "module load failed"), "path", path)
		}
		l.log.Warn(fmt.Sprintf("retryable load failure for %s (attempt %d/%d): %v",
			path, attempt, l.opts.RetryTimes, err))

		if attempt < l.opts.RetryTimes {
			timer := l.clk.Timer(l.opts.RetryDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}
	}
	return nil, zerr.With(zerr.Wrap(lastErr, "module load failed after retries"), "path", path)
}

// loadOnce runs a single attempt under the hard timeout. The underlying
// load is not cancelled on timeout; its eventual result is discarded.
func (l *Loader) loadOnce(ctx context.Context, path string) (*domain.Module, error) {
	type result struct {
		m   *domain.Module
		err error
	}
	ch := make(chan result, 1)
	go func() {
		m, err := l.modules.Load(ctx, path)
		ch <- result{m: m, err: err}
	}()

	timer := l.clk.Timer(l.opts.Timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		return res.m, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, zerr.With(zerr.Wrap(domain.ErrLoadTimeout, "load attempt timed out"), "path", path)
	}
}
