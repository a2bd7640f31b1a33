// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/javelin/internal/adapters/config"
	_ "go.trai.ch/javelin/internal/adapters/fs"
	_ "go.trai.ch/javelin/internal/adapters/logger"
	_ "go.trai.ch/javelin/internal/adapters/shell"
	_ "go.trai.ch/javelin/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/javelin/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "go.trai.ch/javelin/internal/app"
	_ "go.trai.ch/javelin/internal/engine/pipeline"
)
