package logger_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/javelin/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(fn func()) (string, error) {
	// Save the original stderr
	originalStderr := os.Stderr

	// Create a pipe to capture stderr
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}

	// Replace os.Stderr with the write end of the pipe
	os.Stderr = w

	// Create a channel to signal when reading is complete
	done := make(chan string, 1)

	// Start reading in a goroutine
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	// Execute the function
	fn()

	// Close the write end of the pipe to signal EOF to the reader
	if err := w.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}

	// Wait for the reading to complete
	output := <-done

	// Close the read end
	if err := r.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}

	// Restore the original stderr
	os.Stderr = originalStderr

	return output, nil
}

func TestLogger_Info(t *testing.T) {
	t.Setenv(logger.LevelEnv, "")

	output, err := captureStderr(func() {
		// Create the logger inside the capture function so it uses the redirected stderr
		lg := logger.New()
		lg.Info("some message")
	})
	require.NoError(t, err)

	assert.Contains(t, output, "some message")
	assert.Contains(t, output, "INFO")
}

func TestLogger_Error(t *testing.T) {
	t.Setenv(logger.LevelEnv, "")

	output, err := captureStderr(func() {
		lg := logger.New()
		lg.Error(os.ErrPermission)
	})
	require.NoError(t, err)

	assert.Contains(t, output, "permission denied")
	assert.Contains(t, output, "ERROR")
}

func TestLogger_ErrorIncludesMetadata(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithLevel(slog.LevelInfo)
	lg.SetOutput(&buf)

	lg.Error(zerr.With(zerr.Wrap(os.ErrNotExist, "failed to start process"), "command", "javac"))

	out := buf.String()
	assert.Contains(t, out, "failed to start process")
	assert.Contains(t, out, "command=javac")
}

func TestLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithLevel(slog.LevelInfo)
	lg.SetOutput(&buf)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_Warn(t *testing.T) {
	t.Setenv(logger.LevelEnv, "")

	output, err := captureStderr(func() {
		lg := logger.New()
		lg.Warn("some warning")
	})
	require.NoError(t, err)

	assert.Contains(t, output, "some warning")
	assert.Contains(t, output, "WARN")
}

func TestLogger_DebugHiddenByDefault(t *testing.T) {
	t.Setenv(logger.LevelEnv, "")

	output, err := captureStderr(func() {
		lg := logger.New()
		lg.Debug("hidden detail")
	})
	require.NoError(t, err)

	assert.NotContains(t, output, "hidden detail")
}

func TestLogger_DebugEnabledByEnv(t *testing.T) {
	t.Setenv(logger.LevelEnv, "debug")

	output, err := captureStderr(func() {
		lg := logger.New()
		lg.Debug("visible detail")
	})
	require.NoError(t, err)

	assert.Contains(t, output, "visible detail")
	assert.Contains(t, output, "DEBUG")
}

func TestLogger_SetOutputKeepsLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithLevel(slog.LevelWarn)
	lg.SetOutput(&buf)

	lg.Info("dropped")
	lg.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

func TestNew(t *testing.T) {
	lg := logger.New()
	require.NotNil(t, lg)
}
