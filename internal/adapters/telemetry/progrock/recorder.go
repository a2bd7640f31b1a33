// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/javelin/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface using the progrock library.
type Recorder struct {
	summary *Summary
	rec     *progrock.Recorder
	logger  ports.Logger
}

// New creates a new Recorder that reports a per-stage summary to logger on Close.
func New(logger ports.Logger) *Recorder {
	summary := NewSummary()
	return &Recorder{
		summary: summary,
		rec:     progrock.NewRecorder(summary),
		logger:  logger,
	}
}

// Record starts a vertex for a pipeline stage. The vertex digest is derived
// from the stage name.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Stages returns the stages recorded so far.
func (r *Recorder) Stages() []Stage {
	return r.summary.Stages()
}

// Close logs one debug line per recorded stage.
func (r *Recorder) Close() error {
	for _, s := range r.summary.Stages() {
		switch {
		case !s.Done():
			r.logger.Debug(fmt.Sprintf("stage %s did not finish (%d lines)", s.Name, s.Lines))
		case s.Err != "":
			r.logger.Debug(fmt.Sprintf("stage %s failed after %s: %s (%d lines)", s.Name, s.Duration(), s.Err, s.Lines))
		default:
			r.logger.Debug(fmt.Sprintf("stage %s finished in %s (%d lines)", s.Name, s.Duration(), s.Lines))
		}
	}
	return r.summary.Close()
}
