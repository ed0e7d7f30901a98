package loader

import (
	"context"
	"errors"
	"strings"

	"go.trai.ch/routeflow/internal/core/domain"
)

// Message fragments that indicate a transient delivery failure of a module
// bundle. Matching is case-insensitive on the full error chain text.
var retryableFragments = []string{
	"loading chunk",
	"chunk load failed",
	"failed to fetch dynamically imported module",
	"error loading dynamically imported module",
	"importing a module script failed",
	"connection reset",
	"connection refused",
	"temporarily unavailable",
}

// Retryable reports whether err is worth another load attempt. Timeouts and
// transient delivery failures are retryable; everything else, a missing
// module or a bad path included, is fatal.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrLoadTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, domain.ErrModuleNotFound) || errors.Is(err, domain.ErrEmptyModulePath) {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, fragment := range retryableFragments {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}
