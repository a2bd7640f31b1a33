package domain

import "go.trai.ch/zerr"

var (
	// ErrNoCommand is returned when the command line contains no command token.
	ErrNoCommand = zerr.New("no command specified")

	// ErrTooManyArguments is returned when more than one command token is given.
	ErrTooManyArguments = zerr.New("too many arguments")

	// ErrMissingPrefix is returned when the command token is not prefixed with "--".
	ErrMissingPrefix = zerr.New("command name must be prefixed with two dashes")

	// ErrCommandNotFound is returned when no operation is registered under the requested name.
	ErrCommandNotFound = zerr.New("command not found")

	// ErrDuplicateCommand is returned when an operation name is registered twice.
	ErrDuplicateCommand = zerr.New("command already registered")

	// ErrInvalidCommandName is returned when an operation is registered with an empty name or a nil operation.
	ErrInvalidCommandName = zerr.New("invalid command registration")

	// ErrInvocationFault is returned when an operation panics while executing.
	ErrInvocationFault = zerr.New("command raised a fault")

	// ErrCommandFailed is returned when an operation returns an error.
	ErrCommandFailed = zerr.New("command failed")

	// ErrSourceDiscoveryFailed is returned when the source tree cannot be enumerated.
	ErrSourceDiscoveryFailed = zerr.New("failed to collect source files")

	// ErrEntryPointNotFound is returned in entry discovery mode when the entry point source file is missing.
	ErrEntryPointNotFound = zerr.New("entry point source file not found")

	// ErrResponseFileWriteFailed is returned when the compiler response file cannot be written.
	ErrResponseFileWriteFailed = zerr.New("failed to write sources file")

	// ErrCleanFailed is returned when the output directory cannot be fully removed.
	ErrCleanFailed = zerr.New("failed to clean up previous output files")

	// ErrConfigReadFailed is returned when the config file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidDiscoveryMode is returned when the discovery mode is neither "scan" nor "entry".
	ErrInvalidDiscoveryMode = zerr.New("invalid discovery mode, expected 'scan' or 'entry'")

	// ErrEmptyConfigValue is returned when a required path or name is configured as empty.
	ErrEmptyConfigValue = zerr.New("value must not be empty")

	// ErrInvalidMaxErrors is returned when the compiler error cutoff is not positive.
	ErrInvalidMaxErrors = zerr.New("max_errors must be at least 1")
)
