package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/javelin/internal/adapters/telemetry"
	"go.trai.ch/javelin/internal/core/ports"
)

func TestNoOp_Record(t *testing.T) {
	ctx := context.Background()

	got, vertex := telemetry.NewNoOp().Record(ctx, "compile")
	require.NotNil(t, vertex)
	assert.Equal(t, ctx, got)

	_, ok := ports.VertexFromContext(got)
	assert.False(t, ok, "no-op telemetry must not attach a vertex")

	n, err := vertex.Stdout().Write([]byte("ignored\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	vertex.Complete(nil)
}
