package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/riordanpawley/toastbar/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureRunner records what the root command would start the TUI with
type captureRunner struct {
	calls int
	cfg   *config.Config
}

func (c *captureRunner) run(_ context.Context, cfg *config.Config, logger *slog.Logger) error {
	c.calls++
	c.cfg = cfg
	return nil
}

func execute(t *testing.T, run Runner, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(run)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func logFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "logs", "toastbar.log")
}

func TestRoot_Defaults(t *testing.T) {
	var runner captureRunner
	log := logFile(t)

	_, err := execute(t, runner.run, "--log-file", log)
	require.NoError(t, err)

	require.Equal(t, 1, runner.calls)
	assert.Equal(t, "macchiato", runner.cfg.Theme)
	assert.False(t, runner.cfg.Layout.RTL)
	assert.True(t, runner.cfg.Layout.MouseEnabled())
	assert.Equal(t, log, runner.cfg.Log.File)

	data, err := os.ReadFile(log)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=starting")
}

func TestRoot_FlagOverrides(t *testing.T) {
	path := writeConfig(t, `{"version": 2, "theme": "latte", "layout": {"rtl": false, "mouse": true}, "log": {"level": "warn"}}`)
	var runner captureRunner

	_, err := execute(t, runner.run, "--config", path, "--rtl", "--no-mouse", "--debug", "--log-file", logFile(t))
	require.NoError(t, err)

	assert.Equal(t, "latte", runner.cfg.Theme)
	assert.True(t, runner.cfg.Layout.RTL)
	assert.False(t, runner.cfg.Layout.MouseEnabled())
	assert.Equal(t, "debug", runner.cfg.Log.Level)
}

func TestRoot_ConfigKeptWithoutFlags(t *testing.T) {
	path := writeConfig(t, `{"version": 2, "layout": {"rtl": true, "mouse": false}}`)
	var runner captureRunner

	_, err := execute(t, runner.run, "-c", path, "--log-file", logFile(t))
	require.NoError(t, err)

	assert.True(t, runner.cfg.Layout.RTL)
	assert.False(t, runner.cfg.Layout.MouseEnabled())
	assert.Equal(t, "info", runner.cfg.Log.Level)
}

func TestRoot_ExplicitFalseFlagOverridesConfig(t *testing.T) {
	path := writeConfig(t, `{"version": 2, "layout": {"rtl": true}}`)
	var runner captureRunner

	_, err := execute(t, runner.run, "-c", path, "--rtl=false", "--log-file", logFile(t))
	require.NoError(t, err)

	assert.False(t, runner.cfg.Layout.RTL)
}

func TestRoot_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    func(t *testing.T) []string
		wantErr string
	}{
		{
			name: "missing config file",
			args: func(t *testing.T) []string {
				return []string{"--config", filepath.Join(t.TempDir(), "nope.json")}
			},
			wantErr: "failed to read config file",
		},
		{
			name: "invalid theme",
			args: func(t *testing.T) []string {
				return []string{"--config", writeConfig(t, `{"version": 2, "theme": "neon"}`)}
			},
			wantErr: "invalid config",
		},
		{
			name: "unexpected argument",
			args: func(t *testing.T) []string {
				return []string{"inbox"}
			},
			wantErr: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var runner captureRunner
			args := append(tt.args(t), "--log-file", logFile(t))

			_, err := execute(t, runner.run, args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Zero(t, runner.calls)
		})
	}
}

func TestRoot_LogFallbackToStderr(t *testing.T) {
	// a file where the log directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	var runner captureRunner

	out, err := execute(t, runner.run, "--log-file", filepath.Join(blocker, "toastbar.log"))
	require.NoError(t, err)

	assert.Equal(t, 1, runner.calls)
	assert.Contains(t, out, "Failed to open log file")
}

func TestConfigShow(t *testing.T) {
	path := writeConfig(t, `{"theme": "latte"}`)

	out, err := execute(t, nil, "config", "show", "--config", path, "--log-file", logFile(t))
	require.NoError(t, err)

	assert.Contains(t, out, `"version": 2`)
	assert.Contains(t, out, `"theme": "latte"`)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo", config.FileName)

	out, err := execute(t, nil, "config", "init", path, "--log-file", logFile(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	_, err = execute(t, nil, "config", "init", path, "--log-file", logFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, nil, "config", "init", path, "--force", "--log-file", logFile(t))
	assert.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, nil, "version", "--log-file", logFile(t))
	require.NoError(t, err)
	assert.Equal(t, "toastbar version dev\n", out)
}
