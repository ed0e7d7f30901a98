package provider

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/routeflow/internal/adapters/auth"
	"go.trai.ch/routeflow/internal/adapters/config"
	"go.trai.ch/routeflow/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the route provider Graft node.
const NodeID graft.ID = "adapter.route_provider"

func init() {
	graft.Register(graft.Node[ports.RouteProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, auth.NodeID},
		Run: func(ctx context.Context) (ports.RouteProvider, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			creds, err := graft.Dep[ports.CredentialSource](ctx)
			if err != nil {
				return nil, err
			}
			switch {
			case cfg.Provider.URL != "":
				return NewHTTP(cfg.Provider.URL, creds), nil
			case cfg.Provider.RoutesFile != "":
				return NewFile(cfg.Provider.RoutesFile), nil
			default:
				return nil, zerr.New("no route provider configured")
			}
		},
	})
}
