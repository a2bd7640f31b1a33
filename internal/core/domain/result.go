package domain

// ExecutionResult is the outcome of one external process run with its output buffered.
type ExecutionResult struct {
	Success bool
	Output  string
}
