// Package preload warms the component cache during idle windows, ordered by
// how likely a route is to be visited next.
package preload

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/routeflow/internal/core/domain"
	"go.trai.ch/routeflow/internal/core/ports"
	"go.trai.ch/routeflow/internal/engine/cache"
	"go.trai.ch/routeflow/internal/engine/history"
	"go.trai.ch/routeflow/internal/engine/loader"
)

// Preloader maintains a priority queue of component paths and drains one
// entry per idle window. A path is enqueued at most once per session; drain
// failures are logged and swallowed because preloading is opportunistic.
type Preloader struct {
	loader *loader.Loader
	cache  *cache.ComponentCache
	hist   *history.Store
	idle   ports.IdleScheduler
	tracer ports.Tracer
	log    ports.Logger

	relations map[string][]string
	known     map[string]struct{}

	// drainCtx outlives any caller's request scope; a cancelled enqueue
	// context must not poison later drain steps.
	drainCtx context.Context

	mu       sync.Mutex
	queue    []domain.PreloadEntry
	seen     map[string]struct{}
	draining bool
}

// New creates a Preloader. relations maps a path segment to component paths
// commonly visited together with it; known restricts related preloads to
// listed component paths, or allows all when empty.
func New(
	ld *loader.Loader,
	c *cache.ComponentCache,
	hist *history.Store,
	idle ports.IdleScheduler,
	tracer ports.Tracer,
	log ports.Logger,
	relations map[string][]string,
	known []string,
) *Preloader {
	knownSet := make(map[string]struct{}, len(known))
	for _, path := range known {
		knownSet[path] = struct{}{}
	}
	return &Preloader{
		loader:    ld,
		cache:     c,
		hist:      hist,
		idle:      idle,
		tracer:    tracer,
		log:       log,
		relations: relations,
		known:     knownSet,
		drainCtx:  context.Background(),
		seen:      map[string]struct{}{},
	}
}

// Enqueue queues componentPath for preloading at the given tier. The
// effective priority is the tier or the usage-derived priority for the
// route, whichever is higher. Already queued or already cached paths are
// dropped.
func (p *Preloader) Enqueue(componentPath, routePath string, tier float64) {
	if componentPath == "" {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.seen[componentPath]; ok {
		return
	}
	p.seen[componentPath] = struct{}{}
	if p.cache.Contains(componentPath) {
		return
	}

	priority := tier
	if usage := p.hist.Priority(routePath); usage > priority {
		priority = usage
	}
	p.queue = append(p.queue, domain.PreloadEntry{Path: componentPath, Priority: priority})
	sort.SliceStable(p.queue, func(i, j int) bool {
		return p.queue[i].Priority > p.queue[j].Priority
	})
	p.kickLocked()
}

// PreloadPermitted seeds the queue with every component the given route
// trees reference. Used right after route registration, when the permitted
// set is known but nothing has been visited yet.
func (p *Preloader) PreloadPermitted(ctx context.Context, routes []domain.Route) {
	var planned []string
	var walk func(r domain.Route, abs string)
	walk = func(r domain.Route, abs string) {
		if r.Component != "" {
			planned = append(planned, r.Component)
			p.Enqueue(r.Component, abs, domain.PriorityPermissionSeed)
		}
		for _, c := range r.Children {
			childAbs := abs + domain.PathSeparator + c.Path
			if abs == domain.PathSeparator {
				childAbs = abs + c.Path
			}
			walk(c, childAbs)
		}
	}
	for _, r := range routes {
		walk(r, r.Path)
	}
	if len(planned) > 0 {
		p.tracer.EmitPlan(ctx, planned)
	}
}

// PreloadRelated queues the components commonly visited together with
// routePath, restricted to the known allow-list when one is configured.
func (p *Preloader) PreloadRelated(routePath string) {
	key := domain.ParentPath(routePath)
	if key == "" {
		key = strings.TrimPrefix(routePath, domain.PathSeparator)
	}
	related := p.relations[key]
	for _, componentPath := range related {
		if len(p.known) > 0 {
			if _, ok := p.known[componentPath]; !ok {
				continue
			}
		}
		p.Enqueue(componentPath, routePath, domain.PriorityRelated)
	}
}

// Pending returns the queued entries in drain order.
func (p *Preloader) Pending() []domain.PreloadEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.PreloadEntry, len(p.queue))
	copy(out, p.queue)
	return out
}

// kickLocked starts the drain chain unless one is already running.
func (p *Preloader) kickLocked() {
	if p.draining || len(p.queue) == 0 {
		return
	}
	p.draining = true
	p.idle.Schedule(p.step)
}

// step drains the highest-priority entry, then yields back to the idle
// scheduler so preloading never monopolizes a quiet period.
func (p *Preloader) step() {
	p.mu.Lock()
	if len(p.queue) == 0 {
		p.draining = false
		p.mu.Unlock()
		return
	}
	entry := p.queue[0]
	p.queue = p.queue[1:]
	p.mu.Unlock()

	if !p.cache.Contains(entry.Path) {
		if m, err := p.loader.Load(p.drainCtx, entry.Path); err != nil {
			p.log.Warn(fmt.Sprintf("preload of %s failed: %v", entry.Path, err))
		} else {
			p.cache.Set(entry.Path, m)
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.queue) == 0 {
		p.draining = false
		return
	}
	p.idle.Schedule(p.step)
}
