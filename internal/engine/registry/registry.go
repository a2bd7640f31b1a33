// Package registry maps command-line tokens to named operations.
package registry

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/javelin/internal/core/domain"
	"go.trai.ch/zerr"
)

// Prefix must precede every operation name on the command line.
const Prefix = "--"

// Operation is a named, argument-less unit of work.
type Operation func(ctx context.Context) error

// Registry holds the operations that can be invoked by name.
// Names are exact and case-sensitive.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Operation
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

// Register adds op under name.
func (r *Registry) Register(name string, op Operation) error {
	if name == "" || op == nil || strings.HasPrefix(name, Prefix) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidCommandName, "cannot register command"), "command", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ops[name]; exists {
		return zerr.With(zerr.Wrap(domain.ErrDuplicateCommand, "cannot register command"), "command", name)
	}
	r.ops[name] = op
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, op Operation) {
	if err := r.Register(name, op); err != nil {
		panic(err)
	}
}

// Resolve returns the operation registered under name.
func (r *Registry) Resolve(name string) (Operation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[name]
	return op, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Dispatch runs the operation selected by args, which must hold exactly one
// "--name" token.
//
// Usage problems are reported as ErrNoCommand, ErrTooManyArguments,
// ErrMissingPrefix or ErrCommandNotFound. An error returned by the operation
// is wrapped in ErrCommandFailed and a panic is recovered as
// ErrInvocationFault; both carry the command name as metadata.
func (r *Registry) Dispatch(ctx context.Context, args []string) (err error) {
	switch {
	case len(args) == 0:
		return domain.ErrNoCommand
	case len(args) > 1:
		return zerr.With(zerr.Wrap(domain.ErrTooManyArguments, "cannot dispatch"), "count", len(args))
	}

	token := args[0]
	if !strings.HasPrefix(token, Prefix) {
		return zerr.With(zerr.Wrap(domain.ErrMissingPrefix, "cannot dispatch"), "command", token)
	}
	name := strings.TrimPrefix(token, Prefix)

	op, ok := r.Resolve(name)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrCommandNotFound, "cannot dispatch"), "command", name)
	}

	defer zerr.Defer(func(fault error) {
		err = zerr.With(errors.Join(domain.ErrInvocationFault, fault), "command", name)
	})

	if opErr := op(ctx); opErr != nil {
		return zerr.With(errors.Join(domain.ErrCommandFailed, opErr), "command", name)
	}
	return nil
}

// CommandName extracts the command name recorded on a dispatch error.
func CommandName(err error) (string, bool) {
	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		return "", false
	}
	name, ok := zErr.Metadata()["command"].(string)
	return name, ok
}

// Cause returns the error raised by the operation itself, without the
// dispatch sentinel it was joined with. Other errors are returned unchanged.
func Cause(err error) error {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return err
	}
	for _, e := range joined.Unwrap() {
		if e != domain.ErrCommandFailed && e != domain.ErrInvocationFault { //nolint:errorlint // identity check against sentinels
			return e
		}
	}
	return err
}

// String lists the registered commands as they are typed on the command line.
func (r *Registry) String() string {
	names := r.Names()
	for i, n := range names {
		names[i] = Prefix + n
	}
	return strings.Join(names, " ")
}
