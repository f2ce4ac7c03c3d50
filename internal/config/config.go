package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/smasonuk/cubeworld"
)

const (
	MinFov = 30.0
	MaxFov = 110.0
)

// Config is the root of the viewer's YAML configuration. Zero values fall
// back to the environment and then to the built-in defaults.
type Config struct {
	Window   WindowConfig `yaml:"window"`
	Camera   CameraConfig `yaml:"camera"`
	Player   PlayerConfig `yaml:"player"`
	World    WorldConfig  `yaml:"world"`
	TickRate int          `yaml:"tick_rate"`
}

type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type CameraConfig struct {
	Fov              float64 `yaml:"fov"`
	ScopeFov         float64 `yaml:"scope_fov"`
	ScopeSensitivity float64 `yaml:"scope_sensitivity"`
}

type PlayerConfig struct {
	WalkSpeed   float64 `yaml:"walk_speed"`
	SprintSpeed float64 `yaml:"sprint_speed"`
	Gravity     float64 `yaml:"gravity"`
	Jump        float64 `yaml:"jump"`
}

type WorldConfig struct {
	Path     string `yaml:"path"`
	SavePath string `yaml:"save_path"`
	Generate bool   `yaml:"generate"`
	Seed     int64  `yaml:"seed"`
	Size     int    `yaml:"size"`
	Height   int    `yaml:"height"`
}

// GetWidth returns the window width with env fallback
func (w *WindowConfig) GetWidth() int {
	return getIntWithEnvFallback(w.Width, "CUBEWORLD_WIDTH", 1280)
}

// GetHeight returns the window height with env fallback
func (w *WindowConfig) GetHeight() int {
	return getIntWithEnvFallback(w.Height, "CUBEWORLD_HEIGHT", 720)
}

func (w *WindowConfig) GetTitle() string {
	if w.Title != "" {
		return w.Title
	}
	return "Cube World"
}

// GetPath returns the world file to load
func (w *WorldConfig) GetPath() string {
	return getStringWithEnvFallback(w.Path, "CUBEWORLD_WORLD", "worlds/world.txt")
}

// GetSavePath returns where the menu's Save World writes to
func (w *WorldConfig) GetSavePath() string {
	return getStringWithEnvFallback(w.SavePath, "CUBEWORLD_SAVE", "worlds/new_world.txt")
}

func (w *WorldConfig) GetSize() int {
	return getIntWithEnvFallback(w.Size, "CUBEWORLD_SIZE", 32)
}

func (w *WorldConfig) GetHeight() int {
	return getIntWithEnvFallback(w.Height, "CUBEWORLD_TERRAIN_HEIGHT", 4)
}

func (c *Config) GetTickRate() int {
	return getIntWithEnvFallback(c.TickRate, "CUBEWORLD_TPS", 50)
}

// getIntWithEnvFallback picks config -> env -> default
func getIntWithEnvFallback(configValue int, envVar string, defaultValue int) int {
	if configValue > 0 {
		return configValue
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil && v > 0 {
			return v
		}
	}
	return defaultValue
}

func getStringWithEnvFallback(configValue, envVar, defaultValue string) string {
	if configValue != "" {
		return configValue
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		return envVal
	}
	return defaultValue
}

// Validate checks the values the camera relies on callers to range-check.
func (c *Config) Validate() error {
	for name, fov := range map[string]float64{"fov": c.Camera.Fov, "scope_fov": c.Camera.ScopeFov} {
		if fov != 0 && (fov < MinFov || fov > MaxFov) {
			return fmt.Errorf("camera.%s %.1f outside %.0f..%.0f", name, fov, MinFov, MaxFov)
		}
	}
	if c.Player.Gravity > 0 {
		return fmt.Errorf("player.gravity %.3f must not be positive", c.Player.Gravity)
	}
	return nil
}

// Load reads a YAML config file. An empty path falls back to CUBEWORLD_CONFIG;
// with neither set the zero Config is returned and every getter uses its
// default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CUBEWORLD_CONFIG")
		if path == "" {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// SessionOptions maps the camera and player sections onto session tuning.
func (c *Config) SessionOptions() cubeworld.Options {
	return cubeworld.Options{
		WalkSpeed:        c.Player.WalkSpeed,
		SprintSpeed:      c.Player.SprintSpeed,
		Gravity:          c.Player.Gravity,
		Jump:             c.Player.Jump,
		Fov:              c.Camera.Fov,
		ScopeFov:         c.Camera.ScopeFov,
		ScopeSensitivity: c.Camera.ScopeSensitivity,
	}
}
