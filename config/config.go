// Package config loads, validates and converts the orbitrig YAML configuration.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/Carmen-Shannon/orbitrig/engine/camera"
	"github.com/Carmen-Shannon/orbitrig/engine/input"
	"github.com/Carmen-Shannon/orbitrig/engine/occlusion"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Environment variables that override file values.
const (
	EnvLogLevel  = "ORBITRIG_LOG_LEVEL"
	EnvInputMode = "ORBITRIG_INPUT_MODE"
)

// Config holds all orbitrig configuration.
type Config struct {
	Rig       RigConfig       `yaml:"rig"`
	Camera    CameraConfig    `yaml:"camera"`
	Input     InputConfig     `yaml:"input"`
	Occlusion OcclusionConfig `yaml:"occlusion"`
	Engine    EngineConfig    `yaml:"engine"`
	Window    WindowConfig    `yaml:"window"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// RigConfig configures the gesture rig.
type RigConfig struct {
	camera.Tunables `yaml:",inline"`
	InputMode       string `yaml:"input_mode"` // all, touch, pointer
}

// CameraConfig configures the virtual camera and the followed target.
type CameraConfig struct {
	Pitch       float32    `yaml:"pitch"`
	Yaw         float32    `yaml:"yaw"`
	Distance    float32    `yaml:"distance"`
	MinDistance float32    `yaml:"min_distance"`
	MaxDistance float32    `yaml:"max_distance"`
	FOV         float32    `yaml:"fov"`
	Target      [3]float32 `yaml:"target"`
}

// InputConfig configures pointer conversion.
type InputConfig struct {
	AxisSensitivity   float32 `yaml:"axis_sensitivity"`
	ScrollSensitivity float32 `yaml:"scroll_sensitivity"`
}

// OcclusionConfig describes the UI that blocks camera gestures.
type OcclusionConfig struct {
	UILayer int            `yaml:"ui_layer"`
	Regions []RegionConfig `yaml:"regions"`
}

// RegionConfig is one rectangular UI element in bottom-left pixel space.
type RegionConfig struct {
	ID     string  `yaml:"id"`
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Layer  int     `yaml:"layer"`
}

// EngineConfig configures the tick loop.
type EngineConfig struct {
	TickRate  float64 `yaml:"tick_rate"`
	Profiling bool    `yaml:"profiling"`
}

// WindowConfig configures the desktop host window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Rig: RigConfig{
			Tunables:  camera.DefaultTunables(),
			InputMode: input.ModeAll.String(),
		},
		Camera: CameraConfig{
			Distance:    10,
			MinDistance: 1,
			MaxDistance: 1000,
			FOV:         60,
		},
		Input: InputConfig{
			AxisSensitivity:   input.DefaultAxisSensitivity,
			ScrollSensitivity: input.DefaultScrollSensitivity,
		},
		Occlusion: OcclusionConfig{
			UILayer: occlusion.DefaultUILayer,
		},
		Engine: EngineConfig{
			TickRate: 60,
		},
		Window: WindowConfig{
			Title:  "orbitrig",
			Width:  1280,
			Height: 720,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file over the defaults, applies environment overrides
// and validates the result. A missing file yields the defaults.
//
// Parameters:
//   - path: path to the YAML file
//
// Returns:
//   - *Config: the loaded configuration
//   - error: read, parse or validation error
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
	if mode := os.Getenv(EnvInputMode); mode != "" {
		c.Rig.InputMode = mode
	}
}

// Validate checks every value a rig, camera or host would reject or misbehave on.
// All problems are reported together, each wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	t := c.Rig.Tunables
	for _, f := range []struct {
		name  string
		value float32
	}{
		{"rig.x_speed", t.XSpeed},
		{"rig.y_speed", t.YSpeed},
		{"rig.zoom_rate", t.ZoomRate},
		{"rig.pan_speed", t.PanSpeed},
		{"rig.pan_touches_space", t.PanTouchesSpace},
	} {
		if !finite(f.value) {
			add("%s must be finite", f.name)
		}
	}
	if t.PanTouchesSpace < 0 {
		add("rig.pan_touches_space must not be negative, got %v", t.PanTouchesSpace)
	}
	if _, err := input.ParseMode(c.Rig.InputMode); err != nil {
		add("rig.input_mode: %v", err)
	}

	if c.Camera.MinDistance <= 0 {
		add("camera.min_distance must be positive, got %v", c.Camera.MinDistance)
	}
	if c.Camera.MaxDistance < c.Camera.MinDistance {
		add("camera.max_distance %v is below min_distance %v", c.Camera.MaxDistance, c.Camera.MinDistance)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		add("camera.fov must be in (0, 180), got %v", c.Camera.FOV)
	}

	if c.Input.AxisSensitivity <= 0 {
		add("input.axis_sensitivity must be positive, got %v", c.Input.AxisSensitivity)
	}
	if c.Input.ScrollSensitivity <= 0 {
		add("input.scroll_sensitivity must be positive, got %v", c.Input.ScrollSensitivity)
	}

	seen := make(map[string]struct{}, len(c.Occlusion.Regions))
	for i, r := range c.Occlusion.Regions {
		if r.ID == "" {
			add("occlusion.regions[%d] has no id", i)
		} else if _, dup := seen[r.ID]; dup {
			add("occlusion.regions[%d] duplicates id %q", i, r.ID)
		}
		seen[r.ID] = struct{}{}
		if r.Width < 0 || r.Height < 0 {
			add("occlusion.regions[%d] has a negative size", i)
		}
	}

	if c.Engine.TickRate <= 0 {
		add("engine.tick_rate must be positive, got %v", c.Engine.TickRate)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		add("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		add("logging.level: %v", err)
	}

	return errors.Join(errs...)
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
