// Package memrouter implements an in-memory route table satisfying
// ports.Router. Path matching belongs to the presentation layer; this table
// only owns registration state.
package memrouter

import (
	"sync"

	"go.trai.ch/routeflow/internal/core/domain"
	"go.trai.ch/zerr"
)

// Router is an in-memory route table keyed by route name. Insertion order is
// preserved for Routes snapshots.
type Router struct {
	mu     sync.RWMutex
	byName map[string]domain.Route
	order  []string
}

// New creates an empty Router.
func New() *Router {
	return &Router{byName: make(map[string]domain.Route)}
}

// AddRoute registers a route under its name.
func (r *Router) AddRoute(route domain.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[route.Name]; ok {
		return zerr.With(zerr.Wrap(domain.ErrRouteExists, "add route"), "name", route.Name)
	}
	r.byName[route.Name] = route
	r.order = append(r.order, route.Name)
	return nil
}

// RemoveRoute removes the route with the given name.
func (r *Router) RemoveRoute(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; !ok {
		return zerr.With(zerr.Wrap(domain.ErrRouteNotFound, "remove route"), "name", name)
	}
	delete(r.byName, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// HasRoute reports whether a route with the given name is registered.
func (r *Router) HasRoute(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byName[name]
	return ok
}

// Routes returns the registered routes in insertion order.
func (r *Router) Routes() []domain.Route {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Route, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}
