// Package resolve turns a registered route into its loaded component
// module, preferring the cache and keeping access bookkeeping out of the
// critical path.
package resolve

import (
	"context"

	"go.trai.ch/routeflow/internal/core/domain"
	"go.trai.ch/routeflow/internal/core/ports"
	"go.trai.ch/routeflow/internal/engine/cache"
	"go.trai.ch/routeflow/internal/engine/history"
	"go.trai.ch/routeflow/internal/engine/loader"
	"go.trai.ch/routeflow/internal/engine/preload"
)

// Factory resolves route components. Cache hits return immediately; misses
// go through the retrying loader and populate the cache. Every successful
// resolution records the visit and seeds related preloads in the
// background.
type Factory struct {
	loader *loader.Loader
	cache  *cache.ComponentCache
	hist   *history.Store
	pre    *preload.Preloader
	tracer ports.Tracer
	log    ports.Logger
}

// NewFactory creates a Factory.
func NewFactory(
	ld *loader.Loader,
	c *cache.ComponentCache,
	hist *history.Store,
	pre *preload.Preloader,
	tracer ports.Tracer,
	log ports.Logger,
) *Factory {
	return &Factory{
		loader: ld,
		cache:  c,
		hist:   hist,
		pre:    pre,
		tracer: tracer,
		log:    log,
	}
}

// Resolve returns the component module for route, blocking until the module
// is available or the load policy gives up.
func (f *Factory) Resolve(ctx context.Context, route domain.Route) (*domain.Module, error) {
	ctx, span := f.tracer.Start(ctx, "resolve "+route.Path)
	defer span.End()
	span.SetAttribute("component", route.Component)

	if m, ok := f.cache.Get(route.Component); ok {
		span.SetAttribute("cache", "hit")
		f.afterResolve(route)
		return m, nil
	}
	span.SetAttribute("cache", "miss")

	m, err := f.loader.Load(ctx, route.Component)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	f.cache.Set(route.Component, m)
	f.afterResolve(route)
	return m, nil
}

// Lazy returns a component handle immediately. Cache hits produce a ready
// handle; misses resolve in the background with the usual phases.
func (f *Factory) Lazy(ctx context.Context, route domain.Route) *loader.LazyComponent {
	if m, ok := f.cache.Get(route.Component); ok {
		f.afterResolve(route)
		return loader.Resolved(route.Component, m)
	}

	c := f.loader.Lazy(ctx, route.Component)
	go func() {
		<-c.Done()
		if m, err := c.Result(); err == nil {
			f.cache.Set(route.Component, m)
			f.afterResolve(route)
		}
	}()
	return c
}

// afterResolve records the visit and queues related preloads without
// blocking the resolution that triggered it.
func (f *Factory) afterResolve(route domain.Route) {
	go func() {
		f.hist.RecordAccess(route.Path)
		f.pre.PreloadRelated(route.Path)
	}()
}
