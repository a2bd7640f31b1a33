package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/javelin/internal/adapters/fs"
	"go.trai.ch/javelin/internal/adapters/logger"
	"go.trai.ch/javelin/internal/adapters/shell"
	"go.trai.ch/javelin/internal/adapters/telemetry/progrock"
	"go.trai.ch/javelin/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.CollectorNodeID,
			fs.ResponseFileNodeID,
			fs.CleanerNodeID,
			fs.VerifierNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			collector, err := graft.Dep[ports.SourceCollector](ctx)
			if err != nil {
				return nil, err
			}
			responses, err := graft.Dep[ports.ResponseFileWriter](ctx)
			if err != nil {
				return nil, err
			}
			cleaner, err := graft.Dep[ports.OutputCleaner](ctx)
			if err != nil {
				return nil, err
			}
			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner, collector, responses, cleaner, verifier, telemetry, log), nil
		},
	})
}
