package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load("missing.yaml")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 4*time.Second, cfg.Demo.CycleInterval)
	assert.Equal(t, 800*time.Millisecond, cfg.Demo.PlaybackInterval)
	assert.Equal(t, "stable", cfg.Demo.StartScenario)
	assert.True(t, cfg.Demo.Autoplay)
	assert.Equal(t, "*/30 * * * * *", cfg.Schedule.RotateCron)
	assert.Equal(t, "0 * * * * *", cfg.Schedule.SummaryCron)
	assert.Equal(t, "dark", cfg.Display.Theme)
	assert.Empty(t, cfg.Database.SQLitePath)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
demo:
  cycle_interval: 2s
  start_scenario: crash
  autoplay: false
display:
  theme: light
  color: false
database:
  sqlite_path: data/demo.db
`), 0644))

	t.Setenv("PLAYBACK_INTERVAL", "250ms")
	t.Setenv("THEME", "dark")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 2*time.Second, cfg.Demo.CycleInterval)
	assert.Equal(t, 250*time.Millisecond, cfg.Demo.PlaybackInterval)
	assert.Equal(t, "crash", cfg.Demo.StartScenario)
	assert.False(t, cfg.Demo.Autoplay)
	assert.Equal(t, "dark", cfg.Display.Theme)
	assert.False(t, cfg.Display.Color)
	assert.Equal(t, "data/demo.db", cfg.Database.SQLitePath)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ROTATE_CRON=*/5 * * * * *\n"), 0644))
	t.Setenv("ROTATE_CRON", "")
	os.Unsetenv("ROTATE_CRON")

	cfg, err := Load("missing.yaml")
	require.NoError(t, err)
	assert.Equal(t, "*/5 * * * * *", cfg.Schedule.RotateCron)
	os.Unsetenv("ROTATE_CRON")
}

func TestLoad_BadInterval(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CYCLE_INTERVAL", "soon")
	_, err := Load("missing.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load("missing.yaml")
	require.NoError(t, err)

	bad := *cfg
	bad.Demo.StartScenario = "moon"
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Display.Theme = "sepia"
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Demo.CycleInterval = -time.Second
	assert.Error(t, bad.Validate())
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
