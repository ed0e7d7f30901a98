package ports

import (
	"context"

	"go.trai.ch/routeflow/internal/core/domain"
)

// RouteProvider fetches the permission-scoped route descriptors for the
// current session. A fetch failure is fatal to initialization; the caller is
// expected to fall back to its authentication flow.
//
//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks
type RouteProvider interface {
	// FetchRoutes returns the ordered route descriptors the current user
	// may access.
	FetchRoutes(ctx context.Context) ([]domain.Route, error)
}

// CredentialSource reports whether an authentication credential is present.
type CredentialSource interface {
	// Token returns the current credential and whether one is present.
	Token() (string, bool)
}
