package ports

import "go.trai.ch/javelin/internal/core/domain"

// ToolchainLocator resolves the compiler and runtime executables.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type ToolchainLocator interface {
	// Locate returns the tools found under javaHome, or on PATH when javaHome is empty.
	Locate(javaHome string) domain.Toolchain
}
