package resolve_test

import (
	"context"
	"testing"
	"testing/synctest"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/routeflow/internal/adapters/storage"
	"go.trai.ch/routeflow/internal/adapters/telemetry"
	"go.trai.ch/routeflow/internal/core/domain"
	"go.trai.ch/routeflow/internal/core/ports/mocks"
	"go.trai.ch/routeflow/internal/engine/cache"
	"go.trai.ch/routeflow/internal/engine/history"
	"go.trai.ch/routeflow/internal/engine/loader"
	"go.trai.ch/routeflow/internal/engine/preload"
	"go.trai.ch/routeflow/internal/engine/resolve"
	"go.uber.org/mock/gomock"
)

// inlineIdle runs callbacks immediately so bookkeeping settles within the
// test bubble.
type inlineIdle struct{}

func (inlineIdle) Schedule(fn func()) { go fn() }

type harness struct {
	factory *resolve.Factory
	modules *mocks.MockModuleLoader
	cache   *cache.ComponentCache
	hist    *history.Store
}

func newHarness(t *testing.T, relations map[string][]string) *harness {
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
	pre := preload.New(ld, c, hist, inlineIdle{}, tracer, log, relations, nil)

	return &harness{
		factory: resolve.NewFactory(ld, c, hist, pre, tracer, log),
		modules: modules,
		cache:   c,
		hist:    hist,
	}
}

func TestFactory_Resolve_MissLoadsAndCaches(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t, nil)
		route := domain.Route{Name: "device", Path: "/device", Component: "views/device/index"}
		want := &domain.Module{Path: "views/device/index", Title: "Devices"}
		h.modules.EXPECT().Load(gomock.Any(), "views/device/index").Return(want, nil).Times(1)

		got, err := h.factory.Resolve(context.Background(), route)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.True(t, h.cache.Contains("views/device/index"))

		// The second resolution hits the cache; the mock allows one load.
		got, err = h.factory.Resolve(context.Background(), route)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		synctest.Wait()
	})
}

func TestFactory_Resolve_RecordsAccess(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t, nil)
		route := domain.Route{Name: "alarm", Path: "/alarm", Component: "views/alarm/index"}
		h.modules.EXPECT().Load(gomock.Any(), "views/alarm/index").
			Return(&domain.Module{Path: "views/alarm/index"}, nil)

		_, err := h.factory.Resolve(context.Background(), route)
		require.NoError(t, err)
		synctest.Wait()

		rec, ok := h.hist.Record("/alarm")
		require.True(t, ok)
		assert.Equal(t, int64(1), rec.Count)
	})
}

func TestFactory_Resolve_SeedsRelatedPreloads(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		relations := map[string][]string{
			"device": {"views/device/detail"},
		}
		h := newHarness(t, relations)
		route := domain.Route{Name: "device-list", Path: "device/list", Component: "views/device/list"}

		h.modules.EXPECT().Load(gomock.Any(), "views/device/list").
			Return(&domain.Module{Path: "views/device/list"}, nil)
		h.modules.EXPECT().Load(gomock.Any(), "views/device/detail").
			Return(&domain.Module{Path: "views/device/detail"}, nil)

		_, err := h.factory.Resolve(context.Background(), route)
		require.NoError(t, err)
		synctest.Wait()

		assert.True(t, h.cache.Contains("views/device/detail"))
	})
}

func TestFactory_Resolve_FailureLeavesNoTrace(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t, nil)
		route := domain.Route{Name: "missing", Path: "/missing", Component: "views/missing"}
		h.modules.EXPECT().Load(gomock.Any(), "views/missing").
			Return(nil, domain.ErrModuleNotFound)

		_, err := h.factory.Resolve(context.Background(), route)
		require.Error(t, err)
		synctest.Wait()

		assert.False(t, h.cache.Contains("views/missing"))
		_, ok := h.hist.Record("/missing")
		assert.False(t, ok)
	})
}

func TestFactory_Lazy_CacheHitIsImmediatelyReady(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t, nil)
		route := domain.Route{Name: "home", Path: "/home", Component: "views/home"}
		h.cache.Set("views/home", &domain.Module{Path: "views/home"})

		c := h.factory.Lazy(context.Background(), route)
		assert.Equal(t, loader.PhaseReady, c.Phase())

		m, err := c.Result()
		require.NoError(t, err)
		assert.Equal(t, "views/home", m.Path)
		synctest.Wait()
	})
}

func TestFactory_Lazy_MissResolvesInBackground(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t, nil)
		route := domain.Route{Name: "report", Path: "/report", Component: "views/report"}
		h.modules.EXPECT().Load(gomock.Any(), "views/report").
			Return(&domain.Module{Path: "views/report"}, nil)

		c := h.factory.Lazy(context.Background(), route)
		_, err := c.Wait(context.Background())
		require.NoError(t, err)
		synctest.Wait()

		assert.True(t, h.cache.Contains("views/report"))
		rec, ok := h.hist.Record("/report")
		require.True(t, ok)
		assert.Equal(t, int64(1), rec.Count)
	})
}
