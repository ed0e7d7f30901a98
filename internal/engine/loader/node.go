package loader

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/grindlemire/graft"
	clockadapter "go.trai.ch/routeflow/internal/adapters/clock"
	"go.trai.ch/routeflow/internal/adapters/config"
	"go.trai.ch/routeflow/internal/adapters/logger"
	"go.trai.ch/routeflow/internal/adapters/modules"
	"go.trai.ch/routeflow/internal/core/ports"
)

// NodeID is the unique identifier for the component loader Graft node.
const NodeID graft.ID = "engine.component_loader"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{modules.NodeID, clockadapter.NodeID, logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Loader, error) {
			ml, err := graft.Dep[ports.ModuleLoader](ctx)
			if err != nil {
				return nil, err
			}
			clk, err := graft.Dep[clock.Clock](ctx)
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
			return New(ml, clk, log, Options{
				Delay:      cfg.Loader.Delay,
				Timeout:    cfg.Loader.Timeout,
				RetryTimes: cfg.Loader.RetryTimes,
				RetryDelay: cfg.Loader.RetryDelay,
			}), nil
		},
	})
}
