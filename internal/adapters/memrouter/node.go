package memrouter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/routeflow/internal/core/ports"
)

// NodeID is the unique identifier for the router Graft node.
const NodeID graft.ID = "adapter.router"

func init() {
	graft.Register(graft.Node[ports.Router]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Router, error) {
			return New(), nil
		},
	})
}
