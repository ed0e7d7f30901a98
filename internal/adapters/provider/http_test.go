package provider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/routeflow/internal/adapters/auth"
	"go.trai.ch/routeflow/internal/adapters/provider"
)

func TestHTTP_FetchRoutes(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"device","path":"/device","component":"device/index",
			 "children":[{"name":"baseinfo","path":"baseinfo","component":"device/baseinfo"}]}
		]`))
	}))
	defer srv.Close()

	p := provider.NewHTTP(srv.URL, auth.Static{Value: "tok-123"})
	routes, err := p.FetchRoutes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	require.Len(t, routes, 1)
	assert.Equal(t, "/device", routes[0].Path)
	require.Len(t, routes[0].Children, 1)
	assert.Equal(t, "device/baseinfo", routes[0].Children[0].Component)
}

func TestHTTP_FetchRoutesNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := provider.NewHTTP(srv.URL, auth.Static{})
	_, err := p.FetchRoutes(context.Background())

	assert.Error(t, err)
}

func TestHTTP_FetchRoutesBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	p := provider.NewHTTP(srv.URL, auth.Static{})
	_, err := p.FetchRoutes(context.Background())

	assert.Error(t, err)
}
