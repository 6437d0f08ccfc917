package config

import (
	"github.com/Carmen-Shannon/orbitrig/engine"
	"github.com/Carmen-Shannon/orbitrig/engine/camera"
	"github.com/Carmen-Shannon/orbitrig/engine/input"
	"github.com/Carmen-Shannon/orbitrig/engine/occlusion"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Mode returns the configured input families, defaulting to input.ModeAll when unparseable.
func (c *Config) Mode() input.Mode {
	mode, err := input.ParseMode(c.Rig.InputMode)
	if err != nil {
		return input.ModeAll
	}
	return mode
}

// Tunables returns the rig sensitivities.
func (c *Config) Tunables() camera.Tunables {
	return c.Rig.Tunables
}

// Regions builds the UI regions used for occlusion raycasts.
func (c *Config) Regions() *occlusion.Regions {
	regions := occlusion.NewRegions()
	for _, r := range c.Occlusion.Regions {
		regions.Add(occlusion.Region{
			ID:     r.ID,
			X:      r.X,
			Y:      r.Y,
			Width:  r.Width,
			Height: r.Height,
			Layer:  r.Layer,
		})
	}
	return regions
}

// OcclusionQuery builds the UI occlusion query. Without configured regions nothing is UI.
//
// Parameters:
//   - logger: logger for hit diagnostics
//
// Returns:
//   - occlusion.Query: the query
func (c *Config) OcclusionQuery(logger *zap.Logger) occlusion.Query {
	if len(c.Occlusion.Regions) == 0 {
		return occlusion.Never
	}
	return occlusion.NewLayerQuery(c.Regions(),
		occlusion.WithUILayer(c.Occlusion.UILayer),
		occlusion.WithLogger(logger),
	)
}

// RigOptions converts the configuration into rig options.
//
// Parameters:
//   - logger: logger passed to the rig and its occlusion query
//
// Returns:
//   - []camera.RigOption: tunables, mode, occlusion and logger options
func (c *Config) RigOptions(logger *zap.Logger) []camera.RigOption {
	return []camera.RigOption{
		camera.WithTunables(c.Tunables()),
		camera.WithMode(c.Mode()),
		camera.WithOcclusion(c.OcclusionQuery(logger)),
		camera.WithLogger(logger),
	}
}

// CameraOptions converts the configuration into virtual camera options. The viewport is the
// configured window size.
func (c *Config) CameraOptions() []camera.VirtualCameraOption {
	return []camera.VirtualCameraOption{
		camera.WithEuler(c.Camera.Pitch, c.Camera.Yaw, 0),
		camera.WithDistanceBounds(c.Camera.MinDistance, c.Camera.MaxDistance),
		camera.WithDistance(c.Camera.Distance),
		camera.WithFieldOfView(c.Camera.FOV),
		camera.WithViewport(float32(c.Window.Width), float32(c.Window.Height)),
	}
}

// PointerOptions converts the configuration into pointer collector options.
func (c *Config) PointerOptions() []input.PointerCollectorOption {
	return []input.PointerCollectorOption{
		input.WithAxisSensitivity(c.Input.AxisSensitivity),
		input.WithScrollSensitivity(c.Input.ScrollSensitivity),
		input.WithViewportHeight(float32(c.Window.Height)),
	}
}

// EngineOptions converts the configuration into engine options.
func (c *Config) EngineOptions(logger *zap.Logger) []engine.EngineBuilderOption {
	return []engine.EngineBuilderOption{
		engine.WithTickRate(c.Engine.TickRate),
		engine.WithProfiling(c.Engine.Profiling),
		engine.WithLogger(logger),
	}
}

// Target creates the followed target at its configured position.
func (c *Config) Target() *camera.Transform {
	p := mgl32.Vec3(c.Camera.Target)
	return camera.NewTransform(p.X(), p.Y(), p.Z())
}

// NewRig builds the virtual camera, target and rig described by the configuration.
//
// Parameters:
//   - logger: logger for the rig
//
// Returns:
//   - camera.Rig: the configured rig
//   - error: construction error
func (c *Config) NewRig(logger *zap.Logger) (camera.Rig, error) {
	vcam := camera.NewVirtualCamera(c.CameraOptions()...)
	return camera.NewRig(vcam, c.Target(), c.RigOptions(logger)...)
}
