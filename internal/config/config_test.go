package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CUBEWORLD_CONFIG", "")
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.GetWidth())
	assert.Equal(t, 720, cfg.Window.GetHeight())
	assert.Equal(t, "Cube World", cfg.Window.GetTitle())
	assert.Equal(t, "worlds/world.txt", cfg.World.GetPath())
	assert.Equal(t, "worlds/new_world.txt", cfg.World.GetSavePath())
	assert.Equal(t, 32, cfg.World.GetSize())
	assert.Equal(t, 4, cfg.World.GetHeight())
	assert.Equal(t, 50, cfg.GetTickRate())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 800
  height: 600
  title: Test
camera:
  fov: 90
  scope_fov: 35
player:
  walk_speed: 0.25
  gravity: -0.05
world:
  path: maps/a.txt.zst
  generate: true
  seed: 99
tick_rate: 30
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.GetWidth())
	assert.Equal(t, 600, cfg.Window.GetHeight())
	assert.Equal(t, "Test", cfg.Window.GetTitle())
	assert.Equal(t, "maps/a.txt.zst", cfg.World.GetPath())
	assert.True(t, cfg.World.Generate)
	assert.Equal(t, int64(99), cfg.World.Seed)
	assert.Equal(t, 30, cfg.GetTickRate())

	opts := cfg.SessionOptions()
	assert.Equal(t, 90.0, opts.Fov)
	assert.Equal(t, 35.0, opts.ScopeFov)
	assert.Equal(t, 0.25, opts.WalkSpeed)
	assert.Equal(t, -0.05, opts.Gravity)
	assert.Equal(t, 0.0, opts.SprintSpeed, "left for the session default")
}

func TestLoadFromEnvPath(t *testing.T) {
	t.Setenv("CUBEWORLD_CONFIG", writeConfig(t, "tick_rate: 20\n"))
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.GetTickRate())
}

func TestEnvFallback(t *testing.T) {
	t.Setenv("CUBEWORLD_WIDTH", "1024")
	t.Setenv("CUBEWORLD_HEIGHT", "not a number")
	t.Setenv("CUBEWORLD_WORLD", "env.txt")

	cfg := &Config{}
	assert.Equal(t, 1024, cfg.Window.GetWidth())
	assert.Equal(t, 720, cfg.Window.GetHeight(), "bad values fall through to the default")
	assert.Equal(t, "env.txt", cfg.World.GetPath())

	cfg.Window.Width = 640
	assert.Equal(t, 640, cfg.Window.GetWidth(), "config beats env")
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"fov too wide", "camera:\n  fov: 120\n"},
		{"scope fov too narrow", "camera:\n  scope_fov: 10\n"},
		{"upward gravity", "player:\n  gravity: 0.1\n"},
		{"bad yaml", "window: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
