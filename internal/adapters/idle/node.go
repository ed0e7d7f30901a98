package idle

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/grindlemire/graft"
	clockadapter "go.trai.ch/routeflow/internal/adapters/clock"
	"go.trai.ch/routeflow/internal/adapters/config"
	"go.trai.ch/routeflow/internal/core/ports"
)

// NodeID is the unique identifier for the idle scheduler Graft node.
const NodeID graft.ID = "adapter.idle_scheduler"

func init() {
	graft.Register(graft.Node[ports.IdleScheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{clockadapter.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.IdleScheduler, error) {
			clk, err := graft.Dep[clock.Clock](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			// No native idle hook exists in this process model, so the
			// timer fallback applies.
			return NewTimerScheduler(nil, clk, cfg.Preload.IdleDelay), nil
		},
	})
}
