// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/routeflow/internal/adapters/auth"
	_ "go.trai.ch/routeflow/internal/adapters/clock"
	_ "go.trai.ch/routeflow/internal/adapters/config"
	_ "go.trai.ch/routeflow/internal/adapters/idle"
	_ "go.trai.ch/routeflow/internal/adapters/logger"
	_ "go.trai.ch/routeflow/internal/adapters/memrouter"
	_ "go.trai.ch/routeflow/internal/adapters/modules"
	_ "go.trai.ch/routeflow/internal/adapters/provider"
	_ "go.trai.ch/routeflow/internal/adapters/storage"
	_ "go.trai.ch/routeflow/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/routeflow/internal/app"
	_ "go.trai.ch/routeflow/internal/engine/cache"
	_ "go.trai.ch/routeflow/internal/engine/history"
	_ "go.trai.ch/routeflow/internal/engine/loader"
	_ "go.trai.ch/routeflow/internal/engine/preload"
	_ "go.trai.ch/routeflow/internal/engine/registry"
	_ "go.trai.ch/routeflow/internal/engine/resolve"
)
