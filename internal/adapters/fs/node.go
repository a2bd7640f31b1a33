package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/javelin/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// CollectorNodeID is the unique identifier for the source collector Graft node.
	CollectorNodeID graft.ID = "adapter.fs.collector"
	// ResponseFileNodeID is the unique identifier for the response file Graft node.
	ResponseFileNodeID graft.ID = "adapter.fs.responsefile"
	// CleanerNodeID is the unique identifier for the output cleaner Graft node.
	CleanerNodeID graft.ID = "adapter.fs.cleaner"
	// VerifierNodeID is the unique identifier for the artifact verifier Graft node.
	VerifierNodeID graft.ID = "adapter.fs.verifier"
)

func init() {
	// Walker Node (Concrete implementation needed by Collector)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.SourceCollector]{
		ID:        CollectorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.SourceCollector, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewCollector(walker), nil
		},
	})

	graft.Register(graft.Node[ports.ResponseFileWriter]{
		ID:        ResponseFileNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ResponseFileWriter, error) {
			return NewResponseFile(), nil
		},
	})

	graft.Register(graft.Node[ports.OutputCleaner]{
		ID:        CleanerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OutputCleaner, error) {
			return NewCleaner(), nil
		},
	})

	graft.Register(graft.Node[ports.Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Verifier, error) {
			return NewVerifier(), nil
		},
	})
}
