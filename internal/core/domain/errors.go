package domain

import "go.trai.ch/zerr"

var (
	// ErrRouteExists is returned when registering a route whose name is already present in the router.
	ErrRouteExists = zerr.New("route already exists")

	// ErrRouteNotFound is returned when removing or looking up a route name the router does not know.
	ErrRouteNotFound = zerr.New("route not found")

	// ErrEmptyModulePath is returned when a component path is empty or malformed before any load is attempted.
	ErrEmptyModulePath = zerr.New("empty module path")

	// ErrModuleNotFound is returned when the module loader has no module for the requested path.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrLoadTimeout is returned when a single load attempt exceeds its deadline.
	ErrLoadTimeout = zerr.New("module load timed out")
)
