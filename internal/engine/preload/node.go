package preload

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/routeflow/internal/adapters/config"
	"go.trai.ch/routeflow/internal/adapters/idle"
	"go.trai.ch/routeflow/internal/adapters/logger"
	"go.trai.ch/routeflow/internal/adapters/telemetry"
	"go.trai.ch/routeflow/internal/core/ports"
	"go.trai.ch/routeflow/internal/engine/cache"
	"go.trai.ch/routeflow/internal/engine/history"
	"go.trai.ch/routeflow/internal/engine/loader"
)

// NodeID is the unique identifier for the preloader Graft node.
const NodeID graft.ID = "engine.preloader"

func init() {
	graft.Register(graft.Node[*Preloader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			loader.NodeID,
			cache.NodeID,
			history.NodeID,
			idle.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Preloader, error) {
			ld, err := graft.Dep[*loader.Loader](ctx)
			if err != nil {
				return nil, err
			}
			c, err := graft.Dep[*cache.ComponentCache](ctx)
			if err != nil {
				return nil, err
			}
			hist, err := graft.Dep[*history.Store](ctx)
			if err != nil {
				return nil, err
			}
			sched, err := graft.Dep[ports.IdleScheduler](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(ld, c, hist, sched, tracer, log,
				cfg.Preload.Relations, cfg.Preload.KnownRoutes), nil
		},
	})
}
