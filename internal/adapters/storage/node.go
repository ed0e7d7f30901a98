package storage

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/routeflow/internal/adapters/config"
	"go.trai.ch/routeflow/internal/core/ports"
)

// NodeID is the unique identifier for the key-value storage Graft node.
const NodeID graft.ID = "adapter.storage"

func init() {
	graft.Register(graft.Node[ports.KeyValueStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.KeyValueStore, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			if cfg.Storage.Path == "" {
				return NewMemory(), nil
			}
			return NewFile(cfg.Storage.Path)
		},
	})
}
