package ports

import "go.trai.ch/javelin/internal/core/domain"

// SourceCollector defines the interface for enumerating source files.
//
//go:generate go run go.uber.org/mock/mockgen -source=sources.go -destination=mocks/mock_sources.go -package=mocks
type SourceCollector interface {
	// Collect returns every regular file under root whose name ends with
	// suffix (all files if suffix is empty), sorted by path.
	Collect(root, suffix string) (domain.SourceFileSet, error)
}

// ResponseFileWriter defines the interface for writing compiler response files.
type ResponseFileWriter interface {
	// Write replaces the file at path with one line per entry.
	// The returned release function removes the file again and is never nil,
	// even when Write fails.
	Write(path string, lines []string) (release func(), err error)
}

// OutputCleaner defines the interface for clearing the build output directory.
type OutputCleaner interface {
	// Clean removes path and everything below it, children before parents.
	// A missing path is not an error.
	Clean(path string) error
}
