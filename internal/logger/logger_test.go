package logger_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/deskcycle/internal/logger"
)

func TestNewLogger_DefaultOptions(t *testing.T) {
	// Set custom LOCALAPPDATA for testing
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", tmpDir)

	log, err := logger.NewLogger(logger.LoggerOptions{})
	require.NoError(t, err)
	defer log.Close()

	assert.NotNil(t, log)

	logPath := log.GetLogPath()
	assert.NotEmpty(t, logPath)
	assert.Contains(t, logPath, "deskcycle.log")
	assert.True(t, filepath.IsAbs(logPath), "Log path should be absolute")
}

func TestNewLogger_CreatesLogDirectory(t *testing.T) {
	// Set custom LOCALAPPDATA for testing
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", tmpDir)

	log, err := logger.NewLogger(logger.LoggerOptions{})
	require.NoError(t, err)
	defer log.Close()

	expectedDir := filepath.Join(tmpDir, "deskcycle")
	assert.DirExists(t, expectedDir)
}

func TestNewLogger_CustomLogDir(t *testing.T) {
	tmpDir := t.TempDir()

	log, err := logger.NewLogger(logger.LoggerOptions{
		LogDir: tmpDir,
	})
	require.NoError(t, err)
	defer log.Close()

	logPath := log.GetLogPath()
	expectedPath := filepath.Join(tmpDir, "deskcycle.log")
	assert.Equal(t, expectedPath, logPath)
}

func TestNewLogger_Verbose(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", tmpDir)

	// Test with verbose=true
	log, err := logger.NewLogger(logger.LoggerOptions{
		Verbose: true,
	})
	require.NoError(t, err)
	defer log.Close()

	assert.NotNil(t, log)
}

func TestNewLogger_NonVerbose(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", tmpDir)

	// Test with verbose=false
	log, err := logger.NewLogger(logger.LoggerOptions{
		Verbose: false,
	})
	require.NoError(t, err)
	defer log.Close()

	assert.NotNil(t, log)
}

func TestNewLogger_FallbackToUserProfile(t *testing.T) {
	// Clear LOCALAPPDATA and set USERPROFILE
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", "")
	t.Setenv("USERPROFILE", tmpDir)

	log, err := logger.NewLogger(logger.LoggerOptions{})
	require.NoError(t, err)
	defer log.Close()

	logPath := log.GetLogPath()
	assert.NotEmpty(t, logPath)

	// Should use USERPROFILE/AppData/Local/deskcycle/deskcycle.log
	expectedPath := filepath.Join(tmpDir, "AppData", "Local", "deskcycle", "deskcycle.log")
	assert.Equal(t, expectedPath, logPath)
}

func TestNewLogger_WithCompression(t *testing.T) {
	tmpDir := t.TempDir()

	log, err := logger.NewLogger(logger.LoggerOptions{
		LogDir:   tmpDir,
		Compress: true,
	})
	require.NoError(t, err)
	defer log.Close()

	assert.NotNil(t, log)
}

func TestLogger_Close(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", tmpDir)

	log, err := logger.NewLogger(logger.LoggerOptions{})
	require.NoError(t, err)

	// Close should not panic
	assert.NotPanics(t, func() {
		log.Close()
	})
}

func TestLogger_LogMethods(t *testing.T) {
	tmpDir := t.TempDir()

	log, err := logger.NewLogger(logger.LoggerOptions{
		LogDir: tmpDir,
	})
	require.NoError(t, err)
	defer log.Close()

	// Test that logging methods don't panic
	assert.NotPanics(t, func() {
		log.Debug("debug message", slog.String("key", "value"))
		log.Info("info message", slog.Int("count", 42))
		log.Warn("warn message", slog.Bool("flag", true))
		log.Error("error message", slog.Any("error", assert.AnError))
	})
}

func TestLogger_ConsoleFiltersDebugUnlessVerbose(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "quiet", verbose: false, wantDebug: false},
		{name: "verbose", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			log, err := logger.NewLogger(logger.LoggerOptions{
				LogDir:  t.TempDir(),
				Console: &buf,
				Verbose: tt.verbose,
			})
			require.NoError(t, err)
			defer log.Close()

			log.Trace("trace line")
			log.Debug("debug line")
			log.Info("info line")

			out := buf.String()
			assert.NotContains(t, out, "trace line", "Trace must never reach the console")
			assert.Contains(t, out, "info line")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("VERBOSE: debug line")))
		})
	}
}

func TestLogger_WithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	dir := t.TempDir()

	log, err := logger.NewLogger(logger.LoggerOptions{LogDir: dir, Console: &buf})
	require.NoError(t, err)

	scoped := log.With(slog.String("component", "engine"))
	scoped.Warn("desktop not tracked", slog.Int("index", 3))
	log.Close()

	assert.Contains(t, buf.String(), "WARNING: desktop not tracked component=engine index=3")

	data, err := os.ReadFile(filepath.Join(dir, "deskcycle.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "component=engine")
	assert.Equal(t, log.GetLogPath(), scoped.GetLogPath())
}

func TestLogger_TraceWrittenToFile(t *testing.T) {
	dir := t.TempDir()

	log, err := logger.NewLogger(logger.LoggerOptions{LogDir: dir, Console: &bytes.Buffer{}})
	require.NoError(t, err)

	log.Trace("raw message", slog.Uint64("msg", 0x8001))
	log.Close()

	data, err := os.ReadFile(filepath.Join(dir, "deskcycle.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=TRACE")
	assert.Contains(t, string(data), "raw message")
}

func TestPrintLogFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deskcycle.log"), []byte("line 1\nline 2"), 0o644))

	var buf bytes.Buffer
	err := logger.PrintLogFile(&buf, logger.LoggerOptions{LogDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "line 1\nline 2", buf.String())
}

func TestPrintLogFile_Missing(t *testing.T) {
	err := logger.PrintLogFile(&bytes.Buffer{}, logger.LoggerOptions{LogDir: t.TempDir()})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNoOpLogger(t *testing.T) {
	log := logger.NewNoOpLogger()
	assert.NotNil(t, log)

	// NoOp logger should not panic on any operations
	assert.NotPanics(t, func() {
		log.Debug("test")
		log.Info("test")
		log.Warn("test")
		log.Error("test")
		log.With("k", "v").Info("test")
	})
}
