package registry_test

import (
	"context"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/routeflow/internal/adapters/memrouter"
	"go.trai.ch/routeflow/internal/adapters/storage"
	"go.trai.ch/routeflow/internal/adapters/telemetry"
	"go.trai.ch/routeflow/internal/core/domain"
	"go.trai.ch/routeflow/internal/core/ports/mocks"
	"go.trai.ch/routeflow/internal/engine/cache"
	"go.trai.ch/routeflow/internal/engine/history"
	"go.trai.ch/routeflow/internal/engine/loader"
	"go.trai.ch/routeflow/internal/engine/preload"
	"go.trai.ch/routeflow/internal/engine/registry"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// dropIdle discards scheduled work; registry tests only care about the
// route table, not about the preload drain.
type dropIdle struct{}

func (dropIdle) Schedule(func()) {}

type harness struct {
	manager  *registry.Manager
	router   *memrouter.Router
	provider *mocks.MockRouteProvider
	creds    *mocks.MockCredentialSource
}

var baseRoutes = []domain.Route{
	{Name: "login", Path: "/login", Component: "views/login"},
	{Name: "home", Path: "/home", Component: "views/home"},
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	modules := mocks.NewMockModuleLoader(ctrl)
	modules.EXPECT().Load(gomock.Any(), gomock.Any()).
		Return(&domain.Module{}, nil).AnyTimes()

	clk := clock.NewMock()
	ld := loader.New(modules, clk, log, loader.Options{RetryTimes: 1})
	c, err := cache.New(cache.DefaultCapacity)
	require.NoError(t, err)
	hist := history.NewStore(storage.NewMemory(), clk, log)
	tracer := telemetry.NewNoOpTracer()
	pre := preload.New(ld, c, hist, dropIdle{}, tracer, log, nil, nil)

	router := memrouter.New()
	for _, r := range baseRoutes {
		require.NoError(t, router.AddRoute(r))
	}

	provider := mocks.NewMockRouteProvider(ctrl)
	creds := mocks.NewMockCredentialSource(ctrl)

	staticRoutes := []domain.Route{
		{Name: "redirect", Path: "/redirect", Component: "views/redirect"},
	}
	mgr := registry.NewManager(router, provider, creds, pre, tracer, log,
		baseRoutes, staticRoutes)
	return &harness{manager: mgr, router: router, provider: provider, creds: creds}
}

func dynamicRoutes() []domain.Route {
	return []domain.Route{
		{
			Name:      "device",
			Path:      "/device",
			Component: "views/device/index",
			Children: []domain.Route{
				{Name: "device-list", Path: "list", Component: "views/device/list"},
			},
		},
		{Name: "alarm", Path: "/alarm", Component: "views/alarm/index"},
	}
}

func TestManager_Initialize_RegistersDynamicRoutes(t *testing.T) {
	h := newHarness(t)
	h.creds.EXPECT().Token().Return("token", true)
	h.provider.EXPECT().FetchRoutes(gomock.Any()).Return(dynamicRoutes(), nil)

	require.NoError(t, h.manager.Initialize(context.Background()))

	assert.True(t, h.router.HasRoute("device"))
	assert.True(t, h.router.HasRoute("alarm"))
	assert.True(t, h.router.HasRoute("redirect"))
	assert.True(t, h.router.HasRoute(registry.NotFoundRouteName))
	assert.False(t, h.router.HasRoute(registry.PlaceholderRouteName))

	stats := h.manager.Stats()
	assert.True(t, stats.Initialized)
	assert.Equal(t, 2, stats.BasicCount)
	// device, alarm, redirect.
	assert.Equal(t, 3, stats.DynamicCount)
	assert.Contains(t, stats.LoadedRouteNames, "device")
}

func TestManager_Initialize_IsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.creds.EXPECT().Token().Return("token", true).Times(1)
	h.provider.EXPECT().FetchRoutes(gomock.Any()).Return(dynamicRoutes(), nil).Times(1)

	require.NoError(t, h.manager.Initialize(context.Background()))
	total := len(h.router.Routes())

	// The second call must not fetch or touch the router.
	require.NoError(t, h.manager.Initialize(context.Background()))
	assert.Len(t, h.router.Routes(), total)
}

func TestManager_Initialize_WithoutCredentialRegistersPlaceholder(t *testing.T) {
	h := newHarness(t)
	h.creds.EXPECT().Token().Return("", false)

	require.NoError(t, h.manager.Initialize(context.Background()))

	assert.True(t, h.router.HasRoute(registry.PlaceholderRouteName))
	assert.False(t, h.manager.Stats().Initialized)
	assert.Zero(t, h.manager.Stats().DynamicCount)
}

func TestManager_Initialize_NormalizesMalformedRoutes(t *testing.T) {
	h := newHarness(t)
	h.creds.EXPECT().Token().Return("token", true)
	h.provider.EXPECT().FetchRoutes(gomock.Any()).Return([]domain.Route{
		{Path: "report/daily", Component: "views/report/daily"},
	}, nil)

	require.NoError(t, h.manager.Initialize(context.Background()))

	require.True(t, h.router.HasRoute("report-daily"))
	for _, r := range h.router.Routes() {
		if r.Name == "report-daily" {
			assert.Equal(t, "/report/daily", r.Path)
		}
	}
}

func TestManager_Initialize_SkipsConflictingNames(t *testing.T) {
	h := newHarness(t)
	h.creds.EXPECT().Token().Return("token", true)
	h.provider.EXPECT().FetchRoutes(gomock.Any()).Return([]domain.Route{
		{Name: "home", Path: "/home2", Component: "views/home2"},
		{Name: "alarm", Path: "/alarm", Component: "views/alarm/index"},
	}, nil)

	require.NoError(t, h.manager.Initialize(context.Background()))

	stats := h.manager.Stats()
	assert.NotContains(t, stats.LoadedRouteNames, "home")
	assert.Contains(t, stats.LoadedRouteNames, "alarm")
}

func TestManager_Reset_KeepsBaseRoutes(t *testing.T) {
	h := newHarness(t)
	h.creds.EXPECT().Token().Return("token", true)
	h.provider.EXPECT().FetchRoutes(gomock.Any()).Return(dynamicRoutes(), nil)

	require.NoError(t, h.manager.Initialize(context.Background()))
	require.NoError(t, h.manager.Reset())

	assert.True(t, h.router.HasRoute("login"))
	assert.True(t, h.router.HasRoute("home"))
	assert.False(t, h.router.HasRoute("device"))
	assert.False(t, h.router.HasRoute(registry.NotFoundRouteName))

	stats := h.manager.Stats()
	assert.False(t, stats.Initialized)
	assert.Zero(t, stats.DynamicCount)
	assert.Equal(t, 2, stats.Total)
}

func TestManager_Reset_ToleratesAlreadyRemovedRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	// The route table reports a stale entry that is gone by the time the
	// reset reaches it. The metadata-carrying not-found error must be
	// recognized and skipped, not abort the reset.
	router := mocks.NewMockRouter(ctrl)
	router.EXPECT().Routes().Return([]domain.Route{
		{Name: "login", Path: "/login"},
		{Name: "stale", Path: "/stale"},
		{Name: "alarm", Path: "/alarm"},
	})
	router.EXPECT().RemoveRoute("stale").
		Return(zerr.With(zerr.Wrap(domain.ErrRouteNotFound, "remove route"), "name", "stale"))
	router.EXPECT().RemoveRoute("alarm").Return(nil)

	provider := mocks.NewMockRouteProvider(ctrl)
	creds := mocks.NewMockCredentialSource(ctrl)

	clk := clock.NewMock()
	modules := mocks.NewMockModuleLoader(ctrl)
	ld := loader.New(modules, clk, log, loader.Options{RetryTimes: 1})
	c, err := cache.New(cache.DefaultCapacity)
	require.NoError(t, err)
	hist := history.NewStore(storage.NewMemory(), clk, log)
	tracer := telemetry.NewNoOpTracer()
	pre := preload.New(ld, c, hist, dropIdle{}, tracer, log, nil, nil)

	mgr := registry.NewManager(router, provider, creds, pre, tracer, log,
		[]domain.Route{{Name: "login", Path: "/login"}}, nil)
	require.NoError(t, mgr.Reset())
}

func TestManager_Refresh_SkipsWhenUnchanged(t *testing.T) {
	h := newHarness(t)
	h.creds.EXPECT().Token().Return("token", true).Times(2)
	h.provider.EXPECT().FetchRoutes(gomock.Any()).Return(dynamicRoutes(), nil).Times(2)

	require.NoError(t, h.manager.Initialize(context.Background()))
	before := h.router.Routes()

	changed, err := h.manager.Refresh(context.Background())
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, before, h.router.Routes())
}

func TestManager_Refresh_ReregistersOnChange(t *testing.T) {
	h := newHarness(t)
	h.creds.EXPECT().Token().Return("token", true).Times(2)
	gomock.InOrder(
		h.provider.EXPECT().FetchRoutes(gomock.Any()).Return(dynamicRoutes(), nil),
		h.provider.EXPECT().FetchRoutes(gomock.Any()).Return([]domain.Route{
			{Name: "report", Path: "/report", Component: "views/report/index"},
		}, nil),
	)

	require.NoError(t, h.manager.Initialize(context.Background()))
	changed, err := h.manager.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, changed)

	assert.True(t, h.router.HasRoute("report"))
	assert.False(t, h.router.HasRoute("device"))
	assert.True(t, h.manager.Stats().Initialized)
}

func TestManager_Refresh_WithoutCredentialFails(t *testing.T) {
	h := newHarness(t)
	h.creds.EXPECT().Token().Return("", false)

	_, err := h.manager.Refresh(context.Background())
	assert.Error(t, err)
}

func TestManager_OnUpdate_NotifiedWithLoadedNames(t *testing.T) {
	h := newHarness(t)
	h.creds.EXPECT().Token().Return("token", true)
	h.provider.EXPECT().FetchRoutes(gomock.Any()).Return(dynamicRoutes(), nil)

	var got []string
	h.manager.OnUpdate(func(loaded []string) { got = loaded })

	require.NoError(t, h.manager.Initialize(context.Background()))
	assert.Contains(t, got, "device")
	assert.Contains(t, got, "alarm")
	assert.Contains(t, got, "redirect")
}
