// Package ports defines the core interfaces for the application.
package ports

import "context"

// LineFunc receives one line of process output, including its trailing newline.
type LineFunc func(line string)

// ProcessRunner defines the interface for running external tools.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ProcessRunner interface {
	// Run starts argv in dir with stdout and stderr merged into one stream and
	// calls onLine for every line in the order it was produced.
	//
	// It reports whether the process exited with status zero. A process that
	// cannot be started reports false without calling onLine.
	Run(ctx context.Context, dir string, argv []string, onLine LineFunc) bool
}
