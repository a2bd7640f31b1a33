// Package toolchain locates the compiler and runtime executables.
package toolchain

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"go.trai.ch/javelin/internal/core/domain"
)

// HomeEnv names the environment variable consulted when no home is configured.
const HomeEnv = "JAVA_HOME"

const (
	compilerName = "javac"
	runtimeName  = "java"
)

// Locator implements ports.ToolchainLocator.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate resolves the compiler and runtime.
//
// A configured javaHome is used as is. Otherwise HomeEnv is used if it holds
// the executable, then PATH is searched. If both fail the bare tool name is
// returned and the failure surfaces when the tool is started.
func (l *Locator) Locate(javaHome string) domain.Toolchain {
	if javaHome != "" {
		return domain.Toolchain{
			Compiler: inHome(javaHome, compilerName),
			Runtime:  inHome(javaHome, runtimeName),
		}
	}

	return domain.Toolchain{
		Compiler: l.find(compilerName),
		Runtime:  l.find(runtimeName),
	}
}

func (l *Locator) find(name string) string {
	if home := os.Getenv(HomeEnv); home != "" {
		candidate := inHome(home, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	if path, err := exec.LookPath(name); err == nil {
		return path
	}
	return name
}

func inHome(home, name string) string {
	return filepath.Join(home, "bin", executable(name))
}

func executable(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}
