package history

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/grindlemire/graft"
	clockadapter "go.trai.ch/routeflow/internal/adapters/clock"
	"go.trai.ch/routeflow/internal/adapters/logger"
	"go.trai.ch/routeflow/internal/adapters/storage"
	"go.trai.ch/routeflow/internal/core/ports"
)

// NodeID is the unique identifier for the access history Graft node.
const NodeID graft.ID = "engine.access_history"

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{storage.NodeID, clockadapter.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Store, error) {
			kv, err := graft.Dep[ports.KeyValueStore](ctx)
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
			return NewStore(kv, clk, log), nil
		},
	})
}
