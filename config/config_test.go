package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/orbitrig/engine/camera"
	"github.com/Carmen-Shannon/orbitrig/engine/input"
	"github.com/Carmen-Shannon/orbitrig/engine/occlusion"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const sampleConfig = `
rig:
  x_speed: 40
  y_speed: 30
  zoom_rate: 0.25
  pan_speed: 0.005
  pan_touches_space: 12
  input_mode: touch
camera:
  pitch: 20
  yaw: 45
  distance: 8
  min_distance: 2
  max_distance: 50
  fov: 70
  target: [1, 2, 3]
input:
  axis_sensitivity: 0.2
occlusion:
  ui_layer: 5
  regions:
    - {id: toolbar, x: 0, y: 656, width: 1280, height: 64, layer: 5}
engine:
  tick_rate: 120
  profiling: true
window:
  width: 800
  height: 600
`

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "orbitrig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, camera.DefaultTunables(), cfg.Tunables())
	assert.Equal(t, input.ModeAll, cfg.Mode())
	assert.Equal(t, 60.0, cfg.Engine.TickRate)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), sampleConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, camera.Tunables{XSpeed: 40, YSpeed: 30, ZoomRate: 0.25, PanSpeed: 0.005, PanTouchesSpace: 12}, cfg.Tunables())
	assert.Equal(t, input.ModeTouch, cfg.Mode())
	assert.Equal(t, [3]float32{1, 2, 3}, cfg.Camera.Target)
	assert.Equal(t, float32(0.2), cfg.Input.AxisSensitivity)
	// unset keys keep their defaults
	assert.Equal(t, float32(input.DefaultScrollSensitivity), cfg.Input.ScrollSensitivity)
	assert.Equal(t, "orbitrig", cfg.Window.Title)
	require.Len(t, cfg.Occlusion.Regions, 1)
	assert.Equal(t, "toolbar", cfg.Occlusion.Regions[0].ID)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(writeConfig(t, dir, "rig: [not, a, map]"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, dir, "engine:\n  tick_rate: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "orbitrig.yaml")
	cfg := DefaultConfig()
	cfg.Rig.XSpeed = 99
	cfg.Occlusion.Regions = []RegionConfig{{ID: "panel", Width: 10, Height: 10, Layer: 5}}

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("ORBITRIG_LOG_LEVEL sets level", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "debug")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("ORBITRIG_INPUT_MODE sets mode", func(t *testing.T) {
		t.Setenv(EnvInputMode, "pointer")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, input.ModePointer, cfg.Mode())
	})

	t.Run("empty values keep file settings", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "")
		t.Setenv(EnvInputMode, "")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("Load applies overrides after the file", func(t *testing.T) {
		t.Setenv(EnvInputMode, "all")
		cfg, err := Load(writeConfig(t, t.TempDir(), sampleConfig))
		require.NoError(t, err)
		assert.Equal(t, input.ModeAll, cfg.Mode())
	})

	t.Run("invalid override fails validation", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "loud")
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"negative pan space", func(c *Config) { c.Rig.PanTouchesSpace = -1 }},
		{"unknown input mode", func(c *Config) { c.Rig.InputMode = "gamepad" }},
		{"zero min distance", func(c *Config) { c.Camera.MinDistance = 0 }},
		{"max below min", func(c *Config) { c.Camera.MaxDistance = 0.5 }},
		{"fov out of range", func(c *Config) { c.Camera.FOV = 180 }},
		{"zero axis sensitivity", func(c *Config) { c.Input.AxisSensitivity = 0 }},
		{"region without id", func(c *Config) { c.Occlusion.Regions = []RegionConfig{{Width: 1, Height: 1}} }},
		{"duplicate region", func(c *Config) {
			c.Occlusion.Regions = []RegionConfig{{ID: "a"}, {ID: "a"}}
		}},
		{"negative region size", func(c *Config) { c.Occlusion.Regions = []RegionConfig{{ID: "a", Width: -1}} }},
		{"zero tick rate", func(c *Config) { c.Engine.TickRate = 0 }},
		{"empty window", func(c *Config) { c.Window.Width = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.TickRate = 0
	cfg.Window.Height = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "engine.tick_rate")
	assert.Contains(t, err.Error(), "window size")
}

func TestNewRigFromConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, t.TempDir(), sampleConfig))
	require.NoError(t, err)

	rig, err := cfg.NewRig(zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, cfg.Tunables(), rig.Tunables())
	assert.Equal(t, input.ModeTouch, rig.Mode())
	assert.Equal(t, float32(20), rig.Pitch())
	assert.Equal(t, float32(45), rig.Yaw())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, rig.Target().Position())

	vc := rig.Camera()
	assert.Equal(t, float32(8), vc.Distance())
	assert.Equal(t, camera.Lens{FieldOfView: 70, Width: 800, Height: 600}, vc.Lens())

	// a touch starting on the toolbar is suppressed
	frame := rig.Update(0.016, input.Snapshot{Touches: []input.Touch{
		{Position: mgl32.Vec2{100, 700}, Phase: input.PhaseBegan},
	}})
	assert.True(t, frame.Suppressed)
}

func TestOcclusionQuery(t *testing.T) {
	cfg := DefaultConfig()
	assert.IsType(t, occlusion.QueryFunc(nil), cfg.OcclusionQuery(nil))
	assert.False(t, cfg.OcclusionQuery(nil).IsOccluded(mgl32.Vec2{0, 0}))

	cfg.Occlusion.Regions = []RegionConfig{{ID: "panel", X: 0, Y: 0, Width: 100, Height: 100, Layer: 5}}
	q := cfg.OcclusionQuery(nil)
	assert.True(t, q.IsOccluded(mgl32.Vec2{50, 50}))
	assert.False(t, q.IsOccluded(mgl32.Vec2{150, 50}))
	assert.Equal(t, 1, cfg.Regions().Len())
}

func TestOptionsCoverage(t *testing.T) {
	cfg := DefaultConfig()
	assert.Len(t, cfg.PointerOptions(), 3)
	assert.Len(t, cfg.EngineOptions(nil), 3)

	cfg.Rig.InputMode = "bogus"
	assert.Equal(t, input.ModeAll, cfg.Mode())
}

func TestNewLogger(t *testing.T) {
	logger, err := LoggingConfig{Level: "warn"}.NewLogger(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))

	logger, err = LoggingConfig{Level: "warn", Development: true}.NewLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	_, err = LoggingConfig{Level: "loud"}.NewLogger(false)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
