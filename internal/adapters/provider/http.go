// Package provider implements the permission-route providers the registry
// fetches its dynamic descriptors from.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.trai.ch/routeflow/internal/core/domain"
	"go.trai.ch/routeflow/internal/core/ports"
	"go.trai.ch/zerr"
)

const fetchTimeout = 10 * time.Second

// HTTP fetches permission-scoped route descriptors from a REST endpoint.
// The endpoint returns a JSON array of route descriptors filtered to the
// credential's permissions.
type HTTP struct {
	url    string
	creds  ports.CredentialSource
	client *http.Client
}

// NewHTTP creates a provider fetching from url, authenticating with the
// given credential source.
func NewHTTP(url string, creds ports.CredentialSource) *HTTP {
	return &HTTP{
		url:    url,
		creds:  creds,
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// FetchRoutes fetches the descriptor list. Any failure is returned to the
// caller; the registry treats a failed fetch as fatal.
func (p *HTTP) FetchRoutes(ctx context.Context) ([]domain.Route, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build route request")
	}
	if token, ok := p.creds.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fetch permission routes")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(
			zerr.New("route endpoint returned non-OK status"),
			"status", fmt.Sprintf("%d", resp.StatusCode),
		)
	}

	var routes []domain.Route
	if err := json.NewDecoder(resp.Body).Decode(&routes); err != nil {
		return nil, zerr.Wrap(err, "failed to decode permission routes")
	}
	return routes, nil
}
