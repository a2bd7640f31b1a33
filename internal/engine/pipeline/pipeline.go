// Package pipeline implements the build and run operations.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/javelin/internal/core/domain"
	"go.trai.ch/javelin/internal/core/ports"
	"go.trai.ch/zerr"
)

// Stage names one step of a pipeline run. Each stage is recorded as a
// telemetry vertex of the same name.
type Stage string

const (
	// StageDiscover collects the source files to compile.
	StageDiscover Stage = "discover"
	// StageResponseFile writes the compiler response file.
	StageResponseFile Stage = "response-file"
	// StageClean removes the previous output directory.
	StageClean Stage = "clean"
	// StageCompile runs the compiler.
	StageCompile Stage = "compile"
	// StageVerify checks that the entry point was produced.
	StageVerify Stage = "verify"
	// StageRun launches the compiled program.
	StageRun Stage = "run"
)

const (
	verdictSuccess = "Build success"
	verdictFailure = "Build failed"
)

var (
	errCompileFailed = zerr.New("compiler reported failure")
	errProgramFailed = zerr.New("program exited with failure")
)

// Pipeline drives the compiler and runtime for one source tree.
type Pipeline struct {
	runner    ports.ProcessRunner
	collector ports.SourceCollector
	responses ports.ResponseFileWriter
	cleaner   ports.OutputCleaner
	verifier  ports.Verifier
	telemetry ports.Telemetry
	logger    ports.Logger
	out       io.Writer
}

// New creates a new Pipeline writing human-facing output to stdout.
func New(
	runner ports.ProcessRunner,
	collector ports.SourceCollector,
	responses ports.ResponseFileWriter,
	cleaner ports.OutputCleaner,
	verifier ports.Verifier,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		runner:    runner,
		collector: collector,
		responses: responses,
		cleaner:   cleaner,
		verifier:  verifier,
		telemetry: telemetry,
		logger:    logger,
		out:       os.Stdout,
	}
}

// WithOutput sets the writer that receives compiler output, verdicts and
// program output.
func (p *Pipeline) WithOutput(w io.Writer) *Pipeline {
	p.out = w
	return p
}

// Build compiles the source tree described by cfg.
//
// The returned bool is the compiler verdict, which is also printed. A failed
// compilation is not an error. Errors are reserved for the fatal stages:
// source discovery, writing the response file and cleaning the output
// directory. The response file is removed on every return path.
func (p *Pipeline) Build(ctx context.Context, cfg domain.BuildConfiguration) (bool, error) {
	sources, err := p.discover(ctx, cfg)
	if err != nil {
		return false, err
	}

	release, err := p.writeResponseFile(ctx, cfg, sources)
	defer release()
	if err != nil {
		return false, err
	}

	if err := p.Clean(ctx, cfg); err != nil {
		return false, err
	}

	result := p.compile(ctx, cfg)
	p.report(result)

	if result.Success {
		p.verify(ctx, cfg)
	}
	return result.Success, nil
}

// Clean removes the output directory described by cfg. A missing directory
// is not an error.
func (p *Pipeline) Clean(ctx context.Context, cfg domain.BuildConfiguration) error {
	dir := cfg.Path(cfg.OutputDir)
	return p.stage(ctx, StageClean, func(context.Context) error {
		return p.cleaner.Clean(dir)
	})
}

// Launch runs the compiled program, copying each line of its output to the
// pipeline output as it arrives. It reports whether the program exited
// successfully.
func (p *Pipeline) Launch(ctx context.Context, cfg domain.BuildConfiguration) bool {
	inv := cfg.RuntimeInvocation()

	var ok bool
	_ = p.stage(ctx, StageRun, func(ctx context.Context) error {
		ok = p.runner.Run(ctx, cfg.WorkingDir, inv.Argv(), func(line string) {
			_, _ = io.WriteString(p.out, line)
		})
		if !ok {
			return errProgramFailed
		}
		return nil
	})

	if !ok {
		p.logger.Warn(fmt.Sprintf("%s did not exit successfully", cfg.EntryPoint))
	}
	return ok
}

func (p *Pipeline) discover(ctx context.Context, cfg domain.BuildConfiguration) (domain.SourceFileSet, error) {
	var sources domain.SourceFileSet
	err := p.stage(ctx, StageDiscover, func(context.Context) error {
		var err error
		switch cfg.Discovery {
		case domain.DiscoveryEntry:
			sources, err = p.entryPoint(cfg)
		default:
			sources, err = p.collector.Collect(cfg.Path(cfg.SourceDir), cfg.SourceSuffix)
		}
		return err
	})
	if err != nil {
		return domain.SourceFileSet{}, err
	}

	if sources.Len() == 0 {
		p.logger.Warn("no source files found in " + cfg.Path(cfg.SourceDir))
	}
	p.logger.Debug(fmt.Sprintf("discovered %d source files (fingerprint %s)", sources.Len(), sources.Fingerprint()))
	return sources, nil
}

func (p *Pipeline) entryPoint(cfg domain.BuildConfiguration) (domain.SourceFileSet, error) {
	root := cfg.Path(cfg.SourceDir)
	rel := cfg.EntryPointFile(cfg.SourceSuffix)

	found, err := p.verifier.VerifyOutputs(root, []string{rel})
	if err != nil {
		return domain.SourceFileSet{}, zerr.With(errors.Join(domain.ErrEntryPointNotFound, err), "path", filepath.Join(root, rel))
	}
	if !found {
		return domain.SourceFileSet{}, zerr.With(zerr.Wrap(domain.ErrEntryPointNotFound, "entry discovery"), "path", filepath.Join(root, rel))
	}

	abs, err := filepath.Abs(filepath.Join(root, rel))
	if err != nil {
		return domain.SourceFileSet{}, zerr.With(errors.Join(domain.ErrSourceDiscoveryFailed, err), "path", filepath.Join(root, rel))
	}
	return domain.NewSourceFileSet([]string{abs}), nil
}

func (p *Pipeline) writeResponseFile(
	ctx context.Context,
	cfg domain.BuildConfiguration,
	sources domain.SourceFileSet,
) (func(), error) {
	release := func() {}
	err := p.stage(ctx, StageResponseFile, func(context.Context) error {
		var err error
		release, err = p.responses.Write(cfg.Path(cfg.ResponseFile), sources.Paths())
		return err
	})
	if release == nil {
		release = func() {}
	}
	return release, err
}

func (p *Pipeline) compile(ctx context.Context, cfg domain.BuildConfiguration) domain.ExecutionResult {
	inv := cfg.CompilerInvocation()
	p.logger.Debug("compiling: " + inv.String())

	var buf strings.Builder
	var ok bool
	_ = p.stage(ctx, StageCompile, func(ctx context.Context) error {
		ok = p.runner.Run(ctx, cfg.WorkingDir, inv.Argv(), func(line string) {
			buf.WriteString(line)
		})
		if !ok {
			return errCompileFailed
		}
		return nil
	})

	return domain.ExecutionResult{Success: ok, Output: buf.String()}
}

func (p *Pipeline) report(result domain.ExecutionResult) {
	if result.Output != "" {
		_, _ = io.WriteString(p.out, result.Output)
	}
	verdict := verdictFailure
	if result.Success {
		verdict = verdictSuccess
	}
	_, _ = fmt.Fprintln(p.out, verdict)
}

// verify only logs: the compiler verdict is already final.
func (p *Pipeline) verify(ctx context.Context, cfg domain.BuildConfiguration) {
	outDir := cfg.Path(cfg.OutputDir)
	artifact := cfg.EntryPointArtifact()

	_ = p.stage(ctx, StageVerify, func(context.Context) error {
		found, err := p.verifier.VerifyOutputs(outDir, []string{artifact})
		if err != nil {
			p.logger.Error(err)
			return err
		}
		if !found {
			p.logger.Warn("entry point " + filepath.Join(outDir, artifact) + " was not produced")
		}
		return nil
	})
}

func (p *Pipeline) stage(ctx context.Context, s Stage, fn func(context.Context) error) error {
	ctx, vertex := p.telemetry.Record(ctx, string(s))
	err := fn(ctx)
	vertex.Complete(err)
	return err
}
