// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/runcache/internal/adapters/cas"
	_ "go.trai.ch/runcache/internal/adapters/config"
	_ "go.trai.ch/runcache/internal/adapters/kv"
	_ "go.trai.ch/runcache/internal/adapters/logger"
	_ "go.trai.ch/runcache/internal/adapters/shell"
	_ "go.trai.ch/runcache/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/runcache/internal/app"
	_ "go.trai.ch/runcache/internal/engine/cache"
)
