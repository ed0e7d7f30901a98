// Package clock wires the wall clock into the dependency graph so engines
// can take an injected clock and tests can substitute a mock.
package clock

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the clock Graft node.
const NodeID graft.ID = "adapter.clock"

func init() {
	graft.Register(graft.Node[clock.Clock]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (clock.Clock, error) {
			return clock.New(), nil
		},
	})
}
