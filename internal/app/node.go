package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/routeflow/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/routeflow/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/routeflow/internal/adapters/memrouter" //nolint:depguard // Wired in app layer
	"go.trai.ch/routeflow/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/routeflow/internal/core/ports"
	"go.trai.ch/routeflow/internal/engine/cache"
	"go.trai.ch/routeflow/internal/engine/history"
	"go.trai.ch/routeflow/internal/engine/registry"
	"go.trai.ch/routeflow/internal/engine/resolve"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.NodeID,
			resolve.NodeID,
			memrouter.NodeID,
			cache.NodeID,
			history.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			reg, err := graft.Dep[*registry.Manager](ctx)
			if err != nil {
				return nil, err
			}
			factory, err := graft.Dep[*resolve.Factory](ctx)
			if err != nil {
				return nil, err
			}
			router, err := graft.Dep[ports.Router](ctx)
			if err != nil {
				return nil, err
			}
			c, err := graft.Dep[*cache.ComponentCache](ctx)
			if err != nil {
				return nil, err
			}
			hist, err := graft.Dep[*history.Store](ctx)
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
			return New(reg, factory, router, c, hist, tracer, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
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
			return &Components{App: a, Logger: log, Config: cfg}, nil
		},
	})
}

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Config *config.Config
}
