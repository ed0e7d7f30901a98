package modules

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/routeflow/internal/adapters/config"
	"go.trai.ch/routeflow/internal/core/ports"
)

// NodeID is the unique identifier for the module loader Graft node.
const NodeID graft.ID = "adapter.module_loader"

func init() {
	graft.Register(graft.Node[ports.ModuleLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ModuleLoader, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewManifestLoader(cfg.Modules), nil
		},
	})
}
