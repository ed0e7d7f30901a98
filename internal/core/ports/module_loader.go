package ports

import (
	"context"

	"go.trai.ch/routeflow/internal/core/domain"
)

// ModuleLoader resolves a normalized, slash-joined component path to a page
// module. Implementations reject empty or malformed paths before any load is
// attempted.
//
//go:generate mockgen -source=module_loader.go -destination=mocks/mock_module_loader.go -package=mocks
type ModuleLoader interface {
	// Load resolves the module for the given component path.
	Load(ctx context.Context, path string) (*domain.Module, error)
}
