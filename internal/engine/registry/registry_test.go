package registry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/javelin/internal/core/domain"
	"go.trai.ch/javelin/internal/engine/registry"
)

func noop(context.Context) error { return nil }

func TestRegistry_Register(t *testing.T) {
	r := registry.New()

	require.NoError(t, r.Register("build", noop))
	require.NoError(t, r.Register("Build", noop), "names are case-sensitive")

	err := r.Register("build", noop)
	require.ErrorIs(t, err, domain.ErrDuplicateCommand)
	name, ok := registry.CommandName(err)
	require.True(t, ok)
	assert.Equal(t, "build", name)

	require.ErrorIs(t, r.Register("", noop), domain.ErrInvalidCommandName)
	require.ErrorIs(t, r.Register("run", nil), domain.ErrInvalidCommandName)
	require.ErrorIs(t, r.Register("--run", noop), domain.ErrInvalidCommandName)

	assert.Equal(t, []string{"Build", "build"}, r.Names())
}

func TestRegistry_MustRegister(t *testing.T) {
	r := registry.New()
	r.MustRegister("clean", noop)

	assert.Panics(t, func() { r.MustRegister("clean", noop) })
}

func TestRegistry_Resolve(t *testing.T) {
	r := registry.New()
	r.MustRegister("build", noop)

	op, ok := r.Resolve("build")
	require.True(t, ok)
	require.NotNil(t, op)

	_, ok = r.Resolve("BUILD")
	assert.False(t, ok)
}

func TestRegistry_Dispatch(t *testing.T) {
	called := ""
	r := registry.New()
	r.MustRegister("build", func(context.Context) error { called = "build"; return nil })
	r.MustRegister("clean", func(context.Context) error { called = "clean"; return nil })

	require.NoError(t, r.Dispatch(context.Background(), []string{"--clean"}))
	assert.Equal(t, "clean", called)
}

func TestRegistry_Dispatch_UsageErrors(t *testing.T) {
	r := registry.New()
	r.MustRegister("build", noop)

	tests := []struct {
		name    string
		args    []string
		want    error
		command string
	}{
		{"no arguments", nil, domain.ErrNoCommand, ""},
		{"too many", []string{"--build", "--run"}, domain.ErrTooManyArguments, ""},
		{"missing prefix", []string{"build"}, domain.ErrMissingPrefix, "build"},
		{"single dash", []string{"-build"}, domain.ErrMissingPrefix, "-build"},
		{"unknown", []string{"--deploy"}, domain.ErrCommandNotFound, "deploy"},
		{"wrong case", []string{"--Build"}, domain.ErrCommandNotFound, "Build"},
		{"bare prefix", []string{"--"}, domain.ErrCommandNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Dispatch(context.Background(), tt.args)
			require.ErrorIs(t, err, tt.want)

			if tt.command != "" {
				name, ok := registry.CommandName(err)
				require.True(t, ok)
				assert.Equal(t, tt.command, name)
			}
		})
	}
}

func TestRegistry_Dispatch_OnlyFirstPrefixStripped(t *testing.T) {
	called := false
	r := registry.New()
	r.MustRegister("x--y", func(context.Context) error { called = true; return nil })

	require.NoError(t, r.Dispatch(context.Background(), []string{"--x--y"}))
	assert.True(t, called)
}

func TestRegistry_Dispatch_OperationError(t *testing.T) {
	boom := errors.New("failed to clean up previous output files")
	r := registry.New()
	r.MustRegister("build", func(context.Context) error { return boom })

	err := r.Dispatch(context.Background(), []string{"--build"})
	require.ErrorIs(t, err, domain.ErrCommandFailed)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, boom, registry.Cause(err))

	name, ok := registry.CommandName(err)
	require.True(t, ok)
	assert.Equal(t, "build", name)
}

func TestRegistry_Dispatch_Panic(t *testing.T) {
	r := registry.New()
	r.MustRegister("run", func(context.Context) error { panic("index out of range") })

	var err error
	require.NotPanics(t, func() {
		err = r.Dispatch(context.Background(), []string{"--run"})
	})
	require.ErrorIs(t, err, domain.ErrInvocationFault)
	assert.Contains(t, registry.Cause(err).Error(), "index out of range")
}

func TestRegistry_Dispatch_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "value")

	var got any
	r := registry.New()
	r.MustRegister("build", func(ctx context.Context) error { got = ctx.Value(key{}); return nil })

	require.NoError(t, r.Dispatch(ctx, []string{"--build"}))
	assert.Equal(t, "value", got)
}

func TestCause_Passthrough(t *testing.T) {
	err := errors.New("plain")
	assert.Equal(t, err, registry.Cause(err))
}

func TestRegistry_String(t *testing.T) {
	r := registry.New()
	r.MustRegister("run", noop)
	r.MustRegister("build", noop)

	assert.Equal(t, "--build --run", r.String())
}
