// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/routeflow/internal/core/domain"

// Router is the external route table this subsystem feeds. Path matching is
// the router's own concern; the registry only adds and removes entries.
//
//go:generate mockgen -source=router.go -destination=mocks/mock_router.go -package=mocks
type Router interface {
	// AddRoute registers a route. Returns domain.ErrRouteExists when the
	// name is already taken.
	AddRoute(route domain.Route) error

	// RemoveRoute removes the route with the given name. Returns
	// domain.ErrRouteNotFound when no such route is registered.
	RemoveRoute(name string) error

	// HasRoute reports whether a route with the given name is registered.
	HasRoute(name string) bool

	// Routes returns a snapshot of all registered routes.
	Routes() []domain.Route
}
