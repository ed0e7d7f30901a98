package provider

import (
	"context"

	"go.trai.ch/routeflow/internal/adapters/config"
	"go.trai.ch/routeflow/internal/core/domain"
)

// File serves route descriptors from a local YAML file, for deployments
// without a route endpoint and for development.
type File struct {
	path string
}

// NewFile creates a provider reading from the given routes file.
func NewFile(path string) *File {
	return &File{path: path}
}

// FetchRoutes reads and converts the descriptor list.
func (p *File) FetchRoutes(_ context.Context) ([]domain.Route, error) {
	return config.LoadRoutesFile(p.path)
}
