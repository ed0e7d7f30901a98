// Package app implements the application layer for routeflow.
package app

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"go.trai.ch/routeflow/internal/core/domain"
	"go.trai.ch/routeflow/internal/core/ports"
	"go.trai.ch/routeflow/internal/engine/cache"
	"go.trai.ch/routeflow/internal/engine/history"
	"go.trai.ch/routeflow/internal/engine/registry"
	"go.trai.ch/routeflow/internal/engine/resolve"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	registry *registry.Manager
	factory  *resolve.Factory
	router   ports.Router
	cache    *cache.ComponentCache
	hist     *history.Store
	tracer   ports.Tracer
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	reg *registry.Manager,
	factory *resolve.Factory,
	router ports.Router,
	c *cache.ComponentCache,
	hist *history.Store,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		registry: reg,
		factory:  factory,
		router:   router,
		cache:    c,
		hist:     hist,
		tracer:   tracer,
		logger:   log,
	}
}

// WithTracer replaces the tracer for subsequent operations. Used by the
// CLI to attach an interactive progress recorder.
func (a *App) WithTracer(t ports.Tracer) *App {
	a.tracer = t
	return a
}

// Initialize fetches and registers the dynamic route set.
func (a *App) Initialize(ctx context.Context) error {
	return a.registry.Initialize(ctx)
}

// Refresh re-fetches the route set, re-registering only when it changed.
func (a *App) Refresh(ctx context.Context) (bool, error) {
	return a.registry.Refresh(ctx)
}

// Reset tears the dynamic routes down, keeping the base set.
func (a *App) Reset() error {
	return a.registry.Reset()
}

// Routes returns the registered route trees.
func (a *App) Routes() []domain.Route {
	return a.router.Routes()
}

// Resolve loads the component for the route at routePath.
func (a *App) Resolve(ctx context.Context, routePath string) (*domain.Module, error) {
	route, ok := a.findRoute(routePath)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrRouteNotFound, "resolve route"), "path", routePath)
	}
	return a.factory.Resolve(ctx, route)
}

// Stats is a combined snapshot of the registry, cache, and access history.
type Stats struct {
	Registry domain.RegistryStats
	Cache    domain.CacheStats
	History  map[string]domain.AccessRecord
}

// Stats returns the current subsystem snapshots.
func (a *App) Stats() Stats {
	return Stats{
		Registry: a.registry.Stats(),
		Cache:    a.cache.Stats(),
		History:  a.hist.Snapshot(),
	}
}

// WarmOptions configuration for the Warm method.
type WarmOptions struct {
	// Paths restricts warming to the listed route paths; empty warms every
	// route that references a component.
	Paths []string
	// Parallelism caps concurrent loads. Zero means one per CPU.
	Parallelism int
}

// Warm eagerly resolves route components into the cache.
func (a *App) Warm(ctx context.Context, opts WarmOptions) error {
	targets, err := a.warmTargets(opts.Paths)
	if err != nil {
		return err
	}
	components := make([]string, len(targets))
	for i, r := range targets {
		components[i] = r.Component
	}
	a.tracer.EmitPlan(ctx, components)

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for _, route := range targets {
		g.Go(func() error {
			_, span := a.tracer.Start(ctx, "warm "+route.Path)
			defer span.End()
			if _, err := a.factory.Resolve(ctx, route); err != nil {
				span.RecordError(err)
				return zerr.With(zerr.Wrap(err, "warm route"), "path", route.Path)
			}
			_, _ = fmt.Fprintf(span, "warmed %s\n", route.Component)
			return nil
		})
	}
	return g.Wait()
}

// warmTargets collects the routes to warm, resolving the requested paths
// against the registered trees.
func (a *App) warmTargets(paths []string) ([]domain.Route, error) {
	if len(paths) == 0 {
		var targets []domain.Route
		for _, r := range a.router.Routes() {
			collectComponents(r, r.Path, &targets)
		}
		return targets, nil
	}

	targets := make([]domain.Route, 0, len(paths))
	for _, path := range paths {
		route, ok := a.findRoute(path)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrRouteNotFound, "warm route"), "path", path)
		}
		if route.Component == "" {
			return nil, zerr.With(zerr.New("route has no component"), "path", path)
		}
		targets = append(targets, route)
	}
	return targets, nil
}

// findRoute locates the route whose absolute path equals routePath. Child
// paths are relative, so the tree walk joins them onto the parent; the
// returned route carries the absolute path.
func (a *App) findRoute(routePath string) (domain.Route, bool) {
	want := strings.TrimSuffix(routePath, domain.PathSeparator)
	if want == "" {
		want = domain.PathSeparator
	}
	for _, top := range a.router.Routes() {
		if route, ok := findIn(top, top.Path, want); ok {
			return route, true
		}
	}
	return domain.Route{}, false
}

func findIn(r domain.Route, abs, want string) (domain.Route, bool) {
	if abs == want {
		r.Path = abs
		return r, true
	}
	for _, c := range r.Children {
		if route, ok := findIn(c, joinPath(abs, c.Path), want); ok {
			return route, true
		}
	}
	return domain.Route{}, false
}

// collectComponents gathers every route that references a component,
// rewriting paths to their absolute form.
func collectComponents(r domain.Route, abs string, out *[]domain.Route) {
	if r.Component != "" {
		r.Path = abs
		*out = append(*out, r)
	}
	for _, c := range r.Children {
		collectComponents(c, joinPath(abs, c.Path), out)
	}
}

func joinPath(parent, child string) string {
	if parent == domain.PathSeparator {
		return parent + child
	}
	return parent + domain.PathSeparator + child
}
