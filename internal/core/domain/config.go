package domain

import (
	"path/filepath"
	"strconv"
	"strings"
)

// DiscoveryMode selects how the build finds the sources it hands to the compiler.
type DiscoveryMode string

const (
	// DiscoveryScan collects every matching file under the source directory.
	DiscoveryScan DiscoveryMode = "scan"
	// DiscoveryEntry compiles only the entry point source file and lets the
	// compiler resolve the rest through the source path.
	DiscoveryEntry DiscoveryMode = "entry"
)

// Valid reports whether m is a known discovery mode.
func (m DiscoveryMode) Valid() bool {
	return m == DiscoveryScan || m == DiscoveryEntry
}

// Invocation is an external command and its ordered arguments.
type Invocation struct {
	Command string
	Args    []string
}

// Argv returns the full argument vector, command first.
func (i Invocation) Argv() []string {
	argv := make([]string, 0, len(i.Args)+1)
	argv = append(argv, i.Command)
	return append(argv, i.Args...)
}

// String renders the invocation for logs.
func (i Invocation) String() string {
	return strings.Join(i.Argv(), " ")
}

// Toolchain holds the resolved paths of the compiler and the runtime launcher.
type Toolchain struct {
	Compiler string
	Runtime  string
}

// CompilerOptions are the inputs the compiler argument vector is built from.
type CompilerOptions struct {
	Heap      string
	GC        string
	Lint      string
	MaxErrors int
	Encoding  string
	Release   string
	Debug     bool
}

// RuntimeOptions are the inputs the runtime argument vector is built from.
type RuntimeOptions struct {
	Heap       string
	GC         string
	PreTouch   bool
	Assertions bool
}

// BuildConfiguration describes one build of a source tree.
//
// It is a value: variants such as Release return a modified copy and the
// argument vectors are rebuilt from the options on every call.
type BuildConfiguration struct {
	// WorkingDir is where the compiler and runtime are started. All other
	// paths are relative to it unless absolute.
	WorkingDir   string
	SourceDir    string
	OutputDir    string
	ResponseFile string
	SourceSuffix string
	Discovery    DiscoveryMode
	// EntryPoint is the fully qualified name of the class to launch.
	EntryPoint string
	Toolchain  Toolchain
	Compiler   CompilerOptions
	Runtime    RuntimeOptions
}

// DefaultConfiguration returns the configuration used when no config file overrides it.
func DefaultConfiguration() BuildConfiguration {
	return BuildConfiguration{
		WorkingDir:   ".",
		SourceDir:    "src",
		OutputDir:    "bin",
		ResponseFile: "sources.txt",
		SourceSuffix: ".java",
		Discovery:    DiscoveryScan,
		EntryPoint:   "Main",
		Toolchain: Toolchain{
			Compiler: "javac",
			Runtime:  "java",
		},
		Compiler: CompilerOptions{
			Heap:      "2048m",
			GC:        "G1",
			Lint:      "all",
			MaxErrors: 5,
			Encoding:  "UTF8",
			Release:   "17",
			Debug:     true,
		},
		Runtime: RuntimeOptions{
			Heap:       "2048m",
			GC:         "G1",
			PreTouch:   true,
			Assertions: true,
		},
	}
}

// Release returns a copy of c tuned for release builds: no debug information,
// the compiler stops at the first error and assertions are disabled at runtime.
func (c BuildConfiguration) Release() BuildConfiguration {
	c.Compiler.Debug = false
	c.Compiler.MaxErrors = 1
	c.Runtime.Assertions = false
	return c
}

// Path resolves p against the working directory.
func (c BuildConfiguration) Path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.WorkingDir, p)
}

// EntryPointFile maps the entry point class name to a relative file path
// with the given extension, e.g. "com.example.App" to "com/example/App.java".
func (c BuildConfiguration) EntryPointFile(ext string) string {
	return strings.ReplaceAll(c.EntryPoint, ".", string(filepath.Separator)) + ext
}

// EntryPointSource returns the source file that declares the entry point.
func (c BuildConfiguration) EntryPointSource() string {
	return filepath.Join(c.Path(c.SourceDir), c.EntryPointFile(c.SourceSuffix))
}

// EntryPointArtifact returns the compiled class file of the entry point,
// relative to the output directory.
func (c BuildConfiguration) EntryPointArtifact() string {
	return c.EntryPointFile(".class")
}

// CompilerInvocation builds the compiler command line.
func (c BuildConfiguration) CompilerInvocation() Invocation {
	o := c.Compiler
	var args []string

	if o.Heap != "" {
		args = append(args, "-J-Xms"+o.Heap, "-J-Xmx"+o.Heap)
	}
	if o.GC != "" {
		args = append(args, "-J-XX:+Use"+o.GC+"GC")
	}
	args = append(args, "-Xdiags:verbose")
	if o.Lint != "" {
		args = append(args, "-Xlint:"+o.Lint)
	}
	if o.MaxErrors > 0 {
		args = append(args, "-Xmaxerrs", strconv.Itoa(o.MaxErrors))
	}
	if o.Encoding != "" {
		args = append(args, "-encoding", o.Encoding)
	}
	if o.Release != "" {
		args = append(args, "--release", o.Release)
	}
	if o.Debug {
		args = append(args, "-g")
	} else {
		args = append(args, "-g:none")
	}
	args = append(args,
		"-d", c.OutputDir,
		"-sourcepath", c.SourceDir,
		"@"+c.ResponseFile,
	)

	return Invocation{Command: c.Toolchain.Compiler, Args: args}
}

// RuntimeInvocation builds the command line that launches the compiled program.
func (c BuildConfiguration) RuntimeInvocation() Invocation {
	o := c.Runtime
	var args []string

	if o.Assertions {
		args = append(args, "-ea")
	}
	if o.Heap != "" {
		args = append(args, "-Xms"+o.Heap, "-Xmx"+o.Heap)
	}
	if o.PreTouch {
		args = append(args, "-XX:+AlwaysPreTouch")
	}
	if o.GC != "" {
		args = append(args, "-XX:+Use"+o.GC+"GC")
	}
	args = append(args, "-cp", c.OutputDir, c.EntryPoint)

	return Invocation{Command: c.Toolchain.Runtime, Args: args}
}
