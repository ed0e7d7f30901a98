package app_test

import (
	"context"
	"testing"
	"testing/synctest"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/routeflow/internal/adapters/memrouter"
	"go.trai.ch/routeflow/internal/adapters/storage"
	"go.trai.ch/routeflow/internal/adapters/telemetry"
	"go.trai.ch/routeflow/internal/app"
	"go.trai.ch/routeflow/internal/core/domain"
	"go.trai.ch/routeflow/internal/core/ports/mocks"
	"go.trai.ch/routeflow/internal/engine/cache"
	"go.trai.ch/routeflow/internal/engine/history"
	"go.trai.ch/routeflow/internal/engine/loader"
	"go.trai.ch/routeflow/internal/engine/preload"
	"go.trai.ch/routeflow/internal/engine/registry"
	"go.trai.ch/routeflow/internal/engine/resolve"
	"go.uber.org/mock/gomock"
)

type dropIdle struct{}

func (dropIdle) Schedule(func()) {}

type harness struct {
	app     *app.App
	modules *mocks.MockModuleLoader
	cache   *cache.ComponentCache
	hist    *history.Store
}

func newHarness(t *testing.T, routes []domain.Route) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	modules := mocks.NewMockModuleLoader(ctrl)
	clk := clock.New()
	ld := loader.New(modules, clk, log, loader.Options{RetryTimes: 1})
	c, err := cache.New(cache.DefaultCapacity)
	require.NoError(t, err)
	hist := history.NewStore(storage.NewMemory(), clk, log)
	tracer := telemetry.NewNoOpTracer()
	pre := preload.New(ld, c, hist, dropIdle{}, tracer, log, nil, nil)
	factory := resolve.NewFactory(ld, c, hist, pre, tracer, log)

	router := memrouter.New()
	provider := mocks.NewMockRouteProvider(ctrl)
	provider.EXPECT().FetchRoutes(gomock.Any()).Return(routes, nil).AnyTimes()
	creds := mocks.NewMockCredentialSource(ctrl)
	creds.EXPECT().Token().Return("token", true).AnyTimes()

	reg := registry.NewManager(router, provider, creds, pre, tracer, log, nil, nil)
	return &harness{
		app:     app.New(reg, factory, router, c, hist, tracer, log),
		modules: modules,
		cache:   c,
		hist:    hist,
	}
}

func testRoutes() []domain.Route {
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

func TestApp_InitializeAndResolve(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t, testRoutes())
		require.NoError(t, h.app.Initialize(context.Background()))

		h.modules.EXPECT().Load(gomock.Any(), "views/device/list").
			Return(&domain.Module{Path: "views/device/list", Title: "Device List"}, nil)

		m, err := h.app.Resolve(context.Background(), "/device/list")
		require.NoError(t, err)
		assert.Equal(t, "Device List", m.Title)
		synctest.Wait()

		rec, ok := h.hist.Record("/device/list")
		require.True(t, ok)
		assert.Equal(t, int64(1), rec.Count)
	})
}

func TestApp_Resolve_UnknownPath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t, testRoutes())
		require.NoError(t, h.app.Initialize(context.Background()))

		_, err := h.app.Resolve(context.Background(), "/nowhere")
		assert.ErrorIs(t, err, domain.ErrRouteNotFound)
	})
}

func TestApp_Warm_LoadsEveryComponent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t, testRoutes())
		require.NoError(t, h.app.Initialize(context.Background()))

		h.modules.EXPECT().Load(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, path string) (*domain.Module, error) {
				return &domain.Module{Path: path}, nil
			}).Times(3)

		require.NoError(t, h.app.Warm(context.Background(), app.WarmOptions{Parallelism: 2}))
		synctest.Wait()

		assert.True(t, h.cache.Contains("views/device/index"))
		assert.True(t, h.cache.Contains("views/device/list"))
		assert.True(t, h.cache.Contains("views/alarm/index"))
	})
}

func TestApp_Warm_UnknownPathFails(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t, testRoutes())
		require.NoError(t, h.app.Initialize(context.Background()))

		err := h.app.Warm(context.Background(), app.WarmOptions{Paths: []string{"/ghost"}})
		assert.ErrorIs(t, err, domain.ErrRouteNotFound)
	})
}

func TestApp_Stats_ReflectsActivity(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t, testRoutes())
		require.NoError(t, h.app.Initialize(context.Background()))

		h.modules.EXPECT().Load(gomock.Any(), "views/alarm/index").
			Return(&domain.Module{Path: "views/alarm/index"}, nil)
		_, err := h.app.Resolve(context.Background(), "/alarm")
		require.NoError(t, err)
		synctest.Wait()

		stats := h.app.Stats()
		assert.True(t, stats.Registry.Initialized)
		assert.Equal(t, 2, stats.Registry.DynamicCount)
		assert.Equal(t, 1, stats.Cache.Size)
		assert.Contains(t, stats.History, "/alarm")
	})
}

func TestApp_Reset_ClearsDynamicRoutes(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t, testRoutes())
		require.NoError(t, h.app.Initialize(context.Background()))
		require.NoError(t, h.app.Reset())

		assert.False(t, h.app.Stats().Registry.Initialized)
		_, err := h.app.Resolve(context.Background(), "/device")
		assert.ErrorIs(t, err, domain.ErrRouteNotFound)
	})
}
