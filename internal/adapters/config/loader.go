// Package config provides the configuration loader for javelin.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/javelin/internal/core/domain"
	"go.trai.ch/javelin/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up in the working directory.
const DefaultFilename = "javelin.yaml"

// FileConfigLoader implements ports.ConfigLoader using an optional YAML file.
type FileConfigLoader struct {
	Filename string
	logger   ports.Logger
	locator  ports.ToolchainLocator
}

// NewLoader creates a new FileConfigLoader reading DefaultFilename.
func NewLoader(logger ports.Logger, locator ports.ToolchainLocator) *FileConfigLoader {
	return &FileConfigLoader{
		Filename: DefaultFilename,
		logger:   logger,
		locator:  locator,
	}
}

// Load builds the configuration for cwd. A missing config file yields the
// defaults; a present one is overlaid on them.
func (l *FileConfigLoader) Load(cwd string) (domain.BuildConfiguration, error) {
	path := filepath.Join(cwd, l.Filename)

	file, err := Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.logger.Debug("no " + l.Filename + " found, using defaults")
		file = &Javelinfile{}
	case err != nil:
		return domain.BuildConfiguration{}, err
	default:
		l.logger.Debug("loaded configuration from " + path)
	}

	cfg, err := file.Apply(domain.DefaultConfiguration())
	if err != nil {
		return domain.BuildConfiguration{}, zerr.With(err, "path", path)
	}
	cfg.WorkingDir = cwd
	cfg.Toolchain = l.locator.Locate(file.JavaHome)

	return cfg, nil
}

// Load reads and parses the config file at path. Unknown keys are rejected.
// A missing file is reported as fs.ErrNotExist.
func Load(path string) (*Javelinfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the working directory
	if errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var file Javelinfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	return &file, nil
}

// Apply overlays the values set in f onto cfg and validates the result.
func (f *Javelinfile) Apply(cfg domain.BuildConfiguration) (domain.BuildConfiguration, error) {
	set(&cfg.SourceDir, f.SourceDir)
	set(&cfg.OutputDir, f.OutputDir)
	set(&cfg.ResponseFile, f.ResponseFile)
	set(&cfg.SourceSuffix, f.SourceSuffix)
	set(&cfg.EntryPoint, f.EntryPoint)
	if f.Discovery != nil {
		cfg.Discovery = domain.DiscoveryMode(*f.Discovery)
	}

	set(&cfg.Compiler.Heap, f.Compiler.Heap)
	set(&cfg.Compiler.GC, f.Compiler.GC)
	set(&cfg.Compiler.Lint, f.Compiler.Lint)
	set(&cfg.Compiler.MaxErrors, f.Compiler.MaxErrors)
	set(&cfg.Compiler.Encoding, f.Compiler.Encoding)
	set(&cfg.Compiler.Release, f.Compiler.Release)
	set(&cfg.Compiler.Debug, f.Compiler.Debug)

	set(&cfg.Runtime.Heap, f.Runtime.Heap)
	set(&cfg.Runtime.GC, f.Runtime.GC)
	set(&cfg.Runtime.PreTouch, f.Runtime.PreTouch)
	set(&cfg.Runtime.Assertions, f.Runtime.Assertions)

	if !cfg.Discovery.Valid() {
		err := zerr.Wrap(domain.ErrInvalidDiscoveryMode, "invalid configuration")
		return domain.BuildConfiguration{}, zerr.With(err, "discovery", string(cfg.Discovery))
	}
	if cfg.Compiler.MaxErrors < 1 {
		err := zerr.Wrap(domain.ErrInvalidMaxErrors, "invalid configuration")
		return domain.BuildConfiguration{}, zerr.With(err, "max_errors", cfg.Compiler.MaxErrors)
	}
	required := []struct{ key, value string }{
		{"source_dir", cfg.SourceDir},
		{"output_dir", cfg.OutputDir},
		{"response_file", cfg.ResponseFile},
		{"entry_point", cfg.EntryPoint},
	}
	for _, r := range required {
		if r.value == "" {
			err := zerr.Wrap(domain.ErrEmptyConfigValue, "invalid configuration")
			return domain.BuildConfiguration{}, zerr.With(err, "key", r.key)
		}
	}

	return cfg, nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
