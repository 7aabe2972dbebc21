package server

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "enclose-cfg")
	require.NoError(t, err)
	path := filepath.Join(dir, "enclose.env")
	require.NoError(t, ioutil.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 96, cfg.Cols)
	assert.Equal(t, 64, cfg.Rows)
	assert.Equal(t, 3, cfg.Lives)
	assert.Equal(t, 75.0, cfg.TargetPercent)
	assert.InDelta(t, 1.0/14, cfg.StepInterval(), 1e-12)
}

func TestLevelScaling(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 2, cfg.EnemyCountFor(1))
	assert.Equal(t, 4, cfg.EnemyCountFor(3))
	assert.Equal(t, 6, cfg.EnemyCountFor(5))
	assert.Equal(t, 6, cfg.EnemyCountFor(40))
	assert.Equal(t, 8.0, cfg.EnemySpeedFor(1))
	assert.Equal(t, 10.0, cfg.EnemySpeedFor(3))
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "# field\nENCLOSE_COLS=40\nENCLOSE_ROWS=30\nENCLOSE_TARGET_PERCENT=80.5\nENCLOSE_SEED=99\n")
	defer os.RemoveAll(filepath.Dir(path))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Cols)
	assert.Equal(t, 30, cfg.Rows)
	assert.Equal(t, 80.5, cfg.TargetPercent)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 3, cfg.Lives, "untouched keys keep defaults")
}

func TestLoadConfigEnvironmentWins(t *testing.T) {
	path := writeConfig(t, "ENCLOSE_LIVES=5\n")
	defer os.RemoveAll(filepath.Dir(path))
	require.NoError(t, os.Setenv(KEY_LIVES, "7"))
	defer os.Unsetenv(KEY_LIVES)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Lives)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(os.TempDir(), "enclose-does-not-exist.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigRejectsGarbage(t *testing.T) {
	path := writeConfig(t, "ENCLOSE_COLS=wide\n")
	defer os.RemoveAll(filepath.Dir(path))
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	path2 := writeConfig(t, "ENCLOSE_ROWS=2\n")
	defer os.RemoveAll(filepath.Dir(path2))
	_, err = LoadConfig(path2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestValidate(t *testing.T) {
	broken := []func(*Config){
		func(c *Config) { c.Cols = 2 },
		func(c *Config) { c.StepsPerSecond = 0 },
		func(c *Config) { c.EnemySpeed = -1 },
		func(c *Config) { c.EnemyCountMax = -1 },
		func(c *Config) { c.TargetPercent = 0 },
		func(c *Config) { c.TargetPercent = 101 },
		func(c *Config) { c.Lives = 0 },
		func(c *Config) { c.FrameRate = 0 },
		func(c *Config) { c.MaxFrameDelta = 0 },
		func(c *Config) { c.MaxSessions = 0 },
	}
	for i, mutate := range broken {
		cfg := DefaultConfig()
		mutate(&cfg)
		err := cfg.Validate()
		assert.Error(t, err, "case %d", i)
		assert.True(t, errors.Is(err, ErrInvalidConfig), "case %d", i)
	}
}
