// Package modules implements the manifest-backed module loader.
package modules

import (
	"context"
	"strings"

	"go.trai.ch/routeflow/internal/adapters/config"
	"go.trai.ch/routeflow/internal/core/domain"
	"go.trai.ch/zerr"
)

// ManifestLoader resolves component paths against the configured module
// manifest. It satisfies ports.ModuleLoader.
type ManifestLoader struct {
	specs map[string]config.ModuleSpec
}

// NewManifestLoader creates a loader over the given manifest.
func NewManifestLoader(specs map[string]config.ModuleSpec) *ManifestLoader {
	return &ManifestLoader{specs: specs}
}

// Load resolves the module for the given component path. Empty or malformed
// paths are rejected before any lookup.
func (l *ManifestLoader) Load(ctx context.Context, path string) (*domain.Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validatePath(path); err != nil {
		return nil, err
	}

	spec, ok := l.specs[path]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrModuleNotFound, "no manifest entry"), "path", path)
	}
	return &domain.Module{
		Path:   path,
		Title:  spec.Title,
		Export: spec,
	}, nil
}

// validatePath rejects paths that could never resolve: empty, absolute,
// or containing empty segments.
func validatePath(path string) error {
	if path == "" {
		return domain.ErrEmptyModulePath
	}
	if strings.HasPrefix(path, domain.PathSeparator) || strings.HasSuffix(path, domain.PathSeparator) {
		return zerr.With(zerr.Wrap(domain.ErrEmptyModulePath, "path must be relative"), "path", path)
	}
	for _, seg := range strings.Split(path, domain.PathSeparator) {
		if seg == "" {
			return zerr.With(zerr.Wrap(domain.ErrEmptyModulePath, "empty path segment"), "path", path)
		}
	}
	return nil
}
