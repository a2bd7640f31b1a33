package app

import (
	"io"

	"go.trai.ch/javelin/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(a *App, logger ports.Logger, telemetry ports.Telemetry) *Components {
	return &Components{
		App:       a,
		Logger:    logger,
		Telemetry: telemetry,
	}
}

// Close flushes the telemetry recording, if it needs flushing.
func (c *Components) Close() error {
	if closer, ok := c.Telemetry.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
