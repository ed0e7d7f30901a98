package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/routeflow/internal/adapters/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	content := `
storage:
  path: /tmp/routeflow/state.json
cache:
  maxEntries: 10
loader:
  delayMs: 100
  timeoutMs: 5000
  retryTimes: 2
  retryDelayMs: 250
preload:
  idleDelayMs: 25
  relations:
    device/baseinfo: [device/devicelist]
  knownRoutes: [device/baseinfo, device/devicelist]
staticRoutes:
  - name: dashboard
    path: /dashboard
    component: dashboard/index
    meta:
      order: 1
      icon: dashboard
modules:
  dashboard/index:
    title: Dashboard
`
	cfg, err := config.Load(writeFile(t, "routeflow.yaml", content))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/routeflow/state.json", cfg.Storage.Path)
	assert.Equal(t, 10, cfg.Cache.MaxEntries)
	assert.Equal(t, 100*time.Millisecond, cfg.Loader.Delay)
	assert.Equal(t, 5*time.Second, cfg.Loader.Timeout)
	assert.Equal(t, 2, cfg.Loader.RetryTimes)
	assert.Equal(t, 250*time.Millisecond, cfg.Loader.RetryDelay)
	assert.Equal(t, 25*time.Millisecond, cfg.Preload.IdleDelay)
	assert.Equal(t, []string{"device/devicelist"}, cfg.Preload.Relations["device/baseinfo"])

	require.Len(t, cfg.StaticRoutes, 1)
	route := cfg.StaticRoutes[0]
	assert.Equal(t, "dashboard", route.Name)
	require.NotNil(t, route.Meta.Nav)
	assert.Equal(t, 1, route.Meta.Nav.Order)
	assert.Nil(t, route.Meta.Permission)

	assert.Equal(t, "Dashboard", cfg.Modules["dashboard/index"].Title)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultCacheEntries, cfg.Cache.MaxEntries)
	assert.Equal(t, config.DefaultLoaderDelay, cfg.Loader.Delay)
	assert.Equal(t, config.DefaultLoaderTimeout, cfg.Loader.Timeout)
	assert.Equal(t, config.DefaultRetryTimes, cfg.Loader.RetryTimes)
	assert.Equal(t, config.DefaultRetryDelay, cfg.Loader.RetryDelay)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	_, err := config.Load(writeFile(t, "routeflow.yaml", "cache: ["))
	assert.Error(t, err)
}

func TestLoad_MetaVariants(t *testing.T) {
	content := `
staticRoutes:
  - name: users
    path: /user
    component: user/index
    meta:
      roles: [admin]
      keepAlive: true
`
	cfg, err := config.Load(writeFile(t, "routeflow.yaml", content))
	require.NoError(t, err)

	require.Len(t, cfg.StaticRoutes, 1)
	meta := cfg.StaticRoutes[0].Meta
	assert.Nil(t, meta.Nav)
	require.NotNil(t, meta.Permission)
	assert.Equal(t, []string{"admin"}, meta.Permission.Roles)
	require.NotNil(t, meta.Cache)
	assert.True(t, meta.Cache.KeepAlive)
}

func TestLoadRoutesFile(t *testing.T) {
	content := `
- name: device
  path: /device
  component: device/index
  children:
    - name: baseinfo
      path: baseinfo
      component: device/baseinfo
`
	routes, err := config.LoadRoutesFile(writeFile(t, "routes.yaml", content))
	require.NoError(t, err)

	require.Len(t, routes, 1)
	assert.Equal(t, "/device", routes[0].Path)
	require.Len(t, routes[0].Children, 1)
	assert.Equal(t, "baseinfo", routes[0].Children[0].Path)
}
