package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/routeflow/internal/adapters/config"
)

// NodeID is the unique identifier for the component cache Graft node.
const NodeID graft.ID = "engine.component_cache"

func init() {
	graft.Register(graft.Node[*ComponentCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*ComponentCache, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.Cache.MaxEntries)
		},
	})
}
