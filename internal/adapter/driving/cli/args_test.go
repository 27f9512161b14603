package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/wlan-autoassign-go/internal/shared/types"
)

func TestMergeArgs_FlagsOverrideFile(t *testing.T) {
	cfg := &types.Config{
		Controller: types.ControllerConfig{URL: "https://file", Username: "file-user", Password: "file-pass"},
		Assignment: types.AssignmentConfig{BatchSize: 3, CallTimeout: "10s"},
		Report:     types.ReportConfig{Name: "file-report", Types: []string{"pdf"}},
	}

	mergeArgs(cfg, &types.CLIArgs{
		Controller: "https://flag",
		BatchSize:  8,
		ReportType: []string{"csv", "json"},
		NoHistory:  true,
	})

	assert.Equal(t, "https://flag", cfg.Controller.URL)
	assert.Equal(t, "file-user", cfg.Controller.Username)
	assert.Equal(t, "file-pass", cfg.Controller.Password)
	assert.Equal(t, 8, cfg.Assignment.BatchSize)
	assert.Equal(t, "10s", cfg.Assignment.CallTimeout)
	assert.Equal(t, "file-report", cfg.Report.Name)
	assert.Equal(t, []string{"csv", "json"}, cfg.Report.Types)
	assert.True(t, cfg.History.Disabled)
}

func TestMergeArgs_PasswordFromEnvironment(t *testing.T) {
	t.Setenv(passwordEnv, "env-pass")

	cfg := &types.Config{}
	mergeArgs(cfg, &types.CLIArgs{})
	assert.Equal(t, "env-pass", cfg.Controller.Password)
	assert.Equal(t, []string{"csv"}, cfg.Report.Types)

	cfg = &types.Config{}
	mergeArgs(cfg, &types.CLIArgs{Password: "flag-pass"})
	assert.Equal(t, "flag-pass", cfg.Controller.Password)
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	app := newTestApp()

	cfg, err := app.loadConfig(&types.CLIArgs{Controller: "https://ctl"})
	require.NoError(t, err)

	assert.Equal(t, types.DefaultBatchSize, cfg.Assignment.BatchSize)
	assert.Equal(t, types.DefaultCallTimeout, cfg.Assignment.CallTimeout)
	assert.Equal(t, types.DefaultMaxRetries, cfg.Controller.MaxRetries)
	assert.Equal(t, types.DefaultHistoryFile, cfg.History.Path)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := newTestApp().loadConfig(&types.CLIArgs{ConfigFile: "does-not-exist.toml"})
	assert.ErrorContains(t, err, "failed to load config file")
}

func TestParseArgs_ReportTypeDefaultDoesNotOverrideFile(t *testing.T) {
	app := newTestApp()
	cmd, _, err := app.rootCmd.Find([]string{"history"})
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags([]string{"--dir", "out"}))

	args, err := parseArgs(cmd)
	require.NoError(t, err)
	assert.Nil(t, args.ReportType)
	assert.True(t, len(args.Dir) > len("out"))
}
