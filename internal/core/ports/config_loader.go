package ports

import "go.trai.ch/javelin/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the project rooted at cwd.
	// A missing config file yields the defaults.
	Load(cwd string) (domain.BuildConfiguration, error)
}
