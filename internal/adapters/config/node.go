package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config"

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "ROUTEFLOW_CONFIG"

func init() {
	graft.Register(graft.Node[*Config]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Config, error) {
			path := os.Getenv(EnvConfigPath)
			if path == "" {
				path = DefaultFilename
			}
			return Load(path)
		},
	})
}
