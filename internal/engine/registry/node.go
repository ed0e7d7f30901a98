package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/routeflow/internal/adapters/auth"
	"go.trai.ch/routeflow/internal/adapters/config"
	"go.trai.ch/routeflow/internal/adapters/logger"
	"go.trai.ch/routeflow/internal/adapters/memrouter"
	"go.trai.ch/routeflow/internal/adapters/provider"
	"go.trai.ch/routeflow/internal/adapters/telemetry"
	"go.trai.ch/routeflow/internal/core/ports"
	"go.trai.ch/routeflow/internal/engine/preload"
)

// NodeID is the unique identifier for the route registry Graft node.
const NodeID graft.ID = "engine.route_registry"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			memrouter.NodeID,
			provider.NodeID,
			auth.NodeID,
			preload.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Manager, error) {
			router, err := graft.Dep[ports.Router](ctx)
			if err != nil {
				return nil, err
			}
			prov, err := graft.Dep[ports.RouteProvider](ctx)
			if err != nil {
				return nil, err
			}
			creds, err := graft.Dep[ports.CredentialSource](ctx)
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
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			mgr := NewManager(router, prov, creds, pre, tracer, log,
				cfg.BaseRoutes, cfg.StaticRoutes)

			for _, r := range cfg.BaseRoutes {
				if router.HasRoute(r.Name) {
					continue
				}
				if err := router.AddRoute(r); err != nil {
					return nil, err
				}
			}
			return mgr, nil
		},
	})
}
