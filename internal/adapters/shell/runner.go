// Package shell provides the process runner adapter.
package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/javelin/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	logger ports.Logger
	stdin  io.Reader
}

// Option configures a Runner.
type Option func(*Runner)

// WithStdin connects r to the standard input of every started process.
func WithStdin(r io.Reader) Option {
	return func(rn *Runner) {
		rn.stdin = r
	}
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger, opts ...Option) *Runner {
	r := &Runner{logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts argv in dir and streams its merged output to onLine.
//
// Stdout and stderr share a single pipe, so lines arrive in the order the
// process wrote them. The stream is drained on the calling goroutine while
// a second goroutine waits for the process to exit.
func (r *Runner) Run(ctx context.Context, dir string, argv []string, onLine ports.LineFunc) bool {
	if len(argv) == 0 {
		r.logger.Error(zerr.New("empty command"))
		return false
	}

	name := argv[0]

	// Bare names are resolved against PATH by exec.
	cmd := exec.CommandContext(ctx, name, argv[1:]...) //nolint:gosec // argv comes from the build configuration
	cmd.Dir = dir
	cmd.Stdin = r.stdin

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	r.logger.Debug("exec: " + strings.Join(argv, " "))

	if err := cmd.Start(); err != nil {
		_ = pw.Close()
		_ = pr.Close()
		err = zerr.With(zerr.Wrap(err, "failed to start process"), "command", name)
		r.logger.Error(zerr.With(err, "dir", dir))
		return false
	}

	var g errgroup.Group
	g.Go(func() error {
		err := cmd.Wait()
		// Wait returns only after the copy into pw is finished, so closing
		// here delivers EOF after the last byte.
		_ = pw.Close()
		return err
	})

	emit := onLine
	if v, ok := ports.VertexFromContext(ctx); ok {
		out := v.Stdout()
		emit = func(line string) {
			_, _ = io.WriteString(out, line)
			if onLine != nil {
				onLine(line)
			}
		}
	}
	drain(pr, emit)

	if err := g.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		r.logger.Debug(zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode).Error())
		return false
	}
	return true
}

// drain reads r until EOF and calls emit once per line. A line ends at
// "\n", "\r" or "\r\n", and every emitted line ends in "\n".
func drain(r io.Reader, emit ports.LineFunc) {
	if emit == nil {
		emit = func(string) {}
	}

	br := bufio.NewReader(r)
	var line strings.Builder
	afterCR := false
	for {
		b, err := br.ReadByte()
		if err != nil {
			if line.Len() > 0 {
				emit(line.String() + "\n")
			}
			// Keep reading until the writer side closes so the child never
			// blocks on a full pipe.
			if !errors.Is(err, io.EOF) {
				_, _ = io.Copy(io.Discard, br)
			}
			return
		}

		switch {
		case b == '\n' && afterCR:
			// Second half of "\r\n".
			afterCR = false
		case b == '\n' || b == '\r':
			afterCR = b == '\r'
			emit(line.String() + "\n")
			line.Reset()
		default:
			afterCR = false
			line.WriteByte(b)
		}
	}
}
