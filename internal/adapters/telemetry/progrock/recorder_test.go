package progrock_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/javelin/internal/adapters/telemetry/progrock"
	"go.trai.ch/javelin/internal/core/ports"
	"go.trai.ch/javelin/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func debugLines(t *testing.T) (*mocks.MockLogger, *[]string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var lines []string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		lines = append(lines, msg)
	}).AnyTimes()
	return mockLogger, &lines
}

func TestNew(t *testing.T) {
	mockLogger, lines := debugLines(t)

	recorder := progrock.New(mockLogger)
	assert.NotNil(t, recorder)
	require.NoError(t, recorder.Close())
	assert.Empty(t, *lines)
}

func TestRecorder_Record(t *testing.T) {
	mockLogger, _ := debugLines(t)
	recorder := progrock.New(mockLogger)

	ctx, vertex := recorder.Record(context.Background(), "compile")
	require.NotNil(t, vertex)

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stdout().Write([]byte("Main.java:1: error\n"))
	require.NoError(t, err)
	_, err = vertex.Stdout().Write([]byte("1 error\n"))
	require.NoError(t, err)

	vertex.Complete(errors.New("compilation failed"))

	_, second := recorder.Record(context.Background(), "clean")
	second.Complete(nil)

	stages := recorder.Stages()
	require.Len(t, stages, 2)

	assert.Equal(t, "compile", stages[0].Name)
	assert.True(t, stages[0].Done())
	assert.Equal(t, "compilation failed", stages[0].Err)
	assert.Equal(t, 2, stages[0].Lines)
	assert.Equal(t, len("Main.java:1: error\n1 error\n"), stages[0].Bytes)

	assert.Equal(t, "clean", stages[1].Name)
	assert.True(t, stages[1].Done())
	assert.Empty(t, stages[1].Err)
	assert.Zero(t, stages[1].Lines)
}

func TestRecorder_Close_LogsStageSummary(t *testing.T) {
	mockLogger, lines := debugLines(t)
	recorder := progrock.New(mockLogger)

	_, discover := recorder.Record(context.Background(), "discover")
	discover.Complete(nil)

	_, compile := recorder.Record(context.Background(), "compile")
	_, _ = compile.Stdout().Write([]byte("Main.java:3: error: ';' expected\n"))
	compile.Complete(errors.New("compilation failed"))

	_, _ = recorder.Record(context.Background(), "run")

	require.NoError(t, recorder.Close())
	require.Len(t, *lines, 3)

	assert.True(t, strings.HasPrefix((*lines)[0], "stage discover finished in "), (*lines)[0])
	assert.True(t, strings.HasSuffix((*lines)[0], "(0 lines)"), (*lines)[0])

	assert.True(t, strings.HasPrefix((*lines)[1], "stage compile failed after "), (*lines)[1])
	assert.Contains(t, (*lines)[1], ": compilation failed (1 lines)")

	assert.Equal(t, "stage run did not finish (0 lines)", (*lines)[2])
}

func TestSummary_Stages_IsACopy(t *testing.T) {
	mockLogger, _ := debugLines(t)
	recorder := progrock.New(mockLogger)

	_, v := recorder.Record(context.Background(), "verify")
	v.Complete(nil)

	stages := recorder.Stages()
	stages[0].Name = "changed"
	assert.Equal(t, "verify", recorder.Stages()[0].Name)
	assert.GreaterOrEqual(t, recorder.Stages()[0].Duration().Nanoseconds(), int64(0))
}
