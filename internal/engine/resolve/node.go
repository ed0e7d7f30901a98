package resolve

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/routeflow/internal/adapters/logger"
	"go.trai.ch/routeflow/internal/adapters/telemetry"
	"go.trai.ch/routeflow/internal/core/ports"
	"go.trai.ch/routeflow/internal/engine/cache"
	"go.trai.ch/routeflow/internal/engine/history"
	"go.trai.ch/routeflow/internal/engine/loader"
	"go.trai.ch/routeflow/internal/engine/preload"
)

// NodeID is the unique identifier for the component factory Graft node.
const NodeID graft.ID = "engine.component_factory"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			loader.NodeID,
			cache.NodeID,
			history.NodeID,
			preload.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
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
			pre, err := graft.Dep[*preload.Preloader](ctx)
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
			return NewFactory(ld, c, hist, pre, tracer, log), nil
		},
	})
}
