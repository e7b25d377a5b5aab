package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/deskcycle/internal/config"
	"github.com/Norgate-AV/deskcycle/internal/engine"
	"github.com/Norgate-AV/deskcycle/internal/logger"
	"github.com/Norgate-AV/deskcycle/internal/version"
)

// resetFlags resets all flags to their default values between tests
func resetFlags() {
	_ = RootCmd.PersistentFlags().Set("verbose", "false")
	_ = RootCmd.PersistentFlags().Set("logs", "false")
	_ = RootCmd.PersistentFlags().Set("config", "")

	for _, name := range []string{"enable", "disable", "alt", "no-alt"} {
		_ = hotkeysCmd.Flags().Set(name, "false")
	}

	// Cobra adds --help lazily and never clears it between Execute calls
	resetHelp(RootCmd)
}

func resetHelp(c *cobra.Command) {
	if f := c.Flags().Lookup("help"); f != nil {
		_ = f.Value.Set("false")
		f.Changed = false
	}

	for _, sub := range c.Commands() {
		resetHelp(sub)
	}
}

// runCommand executes RootCmd with args and returns everything it printed
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags()
	t.Cleanup(func() {
		resetFlags()
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()
	return buf.String(), err
}

// TestHandleLogsFlag tests the --logs flag functionality
func TestHandleLogsFlag(t *testing.T) {
	resetFlags()
	defer resetFlags() // Clean up after test

	// Create temp directory for log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "deskcycle", "deskcycle.log")
	t.Setenv("LOCALAPPDATA", tmpDir)

	// Write some test content to log file
	testContent := "Test log content\nLine 2\nLine 3"
	require.NoError(t, os.MkdirAll(filepath.Dir(logPath), 0o755))
	require.NoError(t, os.WriteFile(logPath, []byte(testContent), 0o644))

	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	exitCalled := false
	var exitCode int
	mockExit := func(code int) {
		exitCalled = true
		exitCode = code
	}

	err := handleLogsFlag(&Config{ShowLogs: true}, mockExit)
	assert.NoError(t, err)

	// Restore stdout
	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	assert.True(t, exitCalled, "Should call exit function for --logs flag")
	assert.Equal(t, 0, exitCode, "Should exit with code 0 for --logs")
	assert.Contains(t, buf.String(), testContent, "Should print log file content to stdout")
}

// TestHandleLogsFlag_NoLogFile tests --logs when the log file doesn't exist
func TestHandleLogsFlag_NoLogFile(t *testing.T) {
	t.Setenv("LOCALAPPDATA", t.TempDir())

	var codes []int
	err := handleLogsFlag(&Config{ShowLogs: true}, func(code int) { codes = append(codes, code) })
	assert.NoError(t, err)

	require.NotEmpty(t, codes)
	assert.Equal(t, 1, codes[0], "Missing log file should exit with code 1")
}

// TestHandleLogsFlag_NotSet tests that nothing happens without --logs
func TestHandleLogsFlag_NotSet(t *testing.T) {
	t.Parallel()

	exitCalled := false
	err := handleLogsFlag(&Config{}, func(int) { exitCalled = true })

	assert.NoError(t, err)
	assert.False(t, exitCalled)
}

// TestRootCmd_Version tests --version flag
func TestRootCmd_Version(t *testing.T) {
	output, err := runCommand(t, "--version")
	require.NoError(t, err)

	assert.Contains(t, output, version.GetVersion(), "Should print version information")
}

// TestRootCmd_Help tests --help flag
func TestRootCmd_Help(t *testing.T) {
	output, err := runCommand(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "deskcycle", "Should show usage")
	assert.Contains(t, output, "virtual desktop", "Should show description")
	assert.Contains(t, output, "--verbose", "Should list verbose flag")
	assert.Contains(t, output, "--config", "Should list config flag")
	assert.Contains(t, output, "--logs", "Should list logs flag")
	assert.Contains(t, output, "wallpaper", "Should list wallpaper command")
	assert.Contains(t, output, "hotkeys", "Should list hotkeys command")
}

// TestRootCmd_RejectsArguments tests that the tray instance takes no arguments
func TestRootCmd_RejectsArguments(t *testing.T) {
	_, err := runCommand(t, "extra")
	assert.Error(t, err)
}

// TestRootCmd_HelpDoesNotLeakIntoNextRun tests that --help from one run does
// not turn the next run into a help request
func TestRootCmd_HelpDoesNotLeakIntoNextRun(t *testing.T) {
	out, err := runCommand(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")

	_, err = runCommand(t, "unexpected")
	assert.Error(t, err)

	out, err = runCommand(t, "wallpaper", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")

	_, err = runCommand(t, "wallpaper", "remove")
	assert.Error(t, err)
}

// TestRootCmd_Flags tests flag parsing
func TestRootCmd_Flags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		args            []string
		expectedVerbose bool
		expectedLogs    bool
		expectedConfig  string
	}{
		{
			name: "no flags",
			args: []string{},
		},
		{
			name:            "verbose flag short",
			args:            []string{"-V"},
			expectedVerbose: true,
		},
		{
			name:            "verbose flag long",
			args:            []string{"--verbose"},
			expectedVerbose: true,
		},
		{
			name:         "logs flag short",
			args:         []string{"-l"},
			expectedLogs: true,
		},
		{
			name:           "config flag short",
			args:           []string{"-c", "x.yaml"},
			expectedConfig: "x.yaml",
		},
		{
			name:            "all flags",
			args:            []string{"--verbose", "--logs", "--config", "y.yaml"},
			expectedVerbose: true,
			expectedLogs:    true,
			expectedConfig:  "y.yaml",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Create a new command instance to avoid flag conflicts
			cmd := &cobra.Command{Use: "test"}
			cmd.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
			cmd.PersistentFlags().BoolP("logs", "l", false, "print log file")
			cmd.PersistentFlags().StringP("config", "c", "", "settings file")

			err := cmd.ParseFlags(tt.args)
			assert.NoError(t, err, "Flag parsing should not error")

			cfg := NewConfigFromFlags(cmd)
			assert.Equal(t, tt.expectedVerbose, cfg.Verbose, "Verbose flag mismatch")
			assert.Equal(t, tt.expectedLogs, cfg.ShowLogs, "Logs flag mismatch")

			if tt.expectedConfig != "" {
				assert.Equal(t, tt.expectedConfig, cfg.ConfigPath)
			} else {
				assert.NotEmpty(t, cfg.ConfigPath, "Config path should fall back to the default")
			}
		})
	}
}

// TestNewConfigFromFlags_EnvDefault tests the DESKCYCLE_CONFIG fallback
func TestNewConfigFromFlags_EnvDefault(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "from-env.yaml")

	cmd := &cobra.Command{Use: "test"}
	cmd.PersistentFlags().StringP("config", "c", "", "settings file")

	assert.Equal(t, "from-env.yaml", NewConfigFromFlags(cmd).ConfigPath)
}

// TestRootCmd_InvalidFlag tests behavior with unknown flags
func TestRootCmd_InvalidFlag(t *testing.T) {
	output, err := runCommand(t, "--invalid-flag")

	assert.Error(t, err, "Should return error for invalid flag")
	assert.Contains(t, output, "unknown flag", "Error message should mention unknown flag")
}

// TestLoadSettings_CreatesDefaultFile tests that a first run writes the defaults
func TestLoadSettings_CreatesDefaultFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deskcycle", "config.yaml")

	s, err := loadSettings(path, logger.NewNoOpLogger())
	require.NoError(t, err)

	assert.True(t, s.EnableHotkeys)
	assert.FileExists(t, path)
}

// TestLoadSettings_KeepsExistingFile tests that existing settings are not overwritten
func TestLoadSettings_KeepsExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	want := config.Default()
	want.AltModifier = true
	require.NoError(t, config.Save(path, want))

	s, err := loadSettings(path, logger.NewNoOpLogger())
	require.NoError(t, err)

	assert.Equal(t, want, s)
}

// TestRelay_DropsEventsBeforeManager tests that early OS callbacks are harmless
func TestRelay_DropsEventsBeforeManager(t *testing.T) {
	t.Parallel()

	r := &relay{}
	assert.NotPanics(t, func() {
		r.post(engine.DesktopChanged())
	})
}
