package camera

import (
	"github.com/Carmen-Shannon/orbitrig/engine/input"
	"github.com/Carmen-Shannon/orbitrig/engine/occlusion"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// RigOption is a functional option for configuring a Rig.
type RigOption func(*rigImpl)

// WithTunables replaces all sensitivities.
//
// Parameters:
//   - t: the sensitivities
//
// Returns:
//   - RigOption: functional option to set the tunables
func WithTunables(t Tunables) RigOption {
	return func(r *rigImpl) {
		r.tunables = t
	}
}

// WithXSpeed sets the horizontal look sensitivity.
//
// Parameters:
//   - speed: yaw multiplier
//
// Returns:
//   - RigOption: functional option to set the x speed
func WithXSpeed(speed float32) RigOption {
	return func(r *rigImpl) {
		r.tunables.XSpeed = speed
	}
}

// WithYSpeed sets the vertical look sensitivity.
//
// Parameters:
//   - speed: pitch multiplier
//
// Returns:
//   - RigOption: functional option to set the y speed
func WithYSpeed(speed float32) RigOption {
	return func(r *rigImpl) {
		r.tunables.YSpeed = speed
	}
}

// WithZoomRate sets the pinch and scroll zoom sensitivity.
//
// Parameters:
//   - rate: zoom multiplier
//
// Returns:
//   - RigOption: functional option to set the zoom rate
func WithZoomRate(rate float32) RigOption {
	return func(r *rigImpl) {
		r.tunables.ZoomRate = rate
	}
}

// WithPanSpeed sets the pan sensitivity.
//
// Parameters:
//   - speed: pan multiplier
//
// Returns:
//   - RigOption: functional option to set the pan speed
func WithPanSpeed(speed float32) RigOption {
	return func(r *rigImpl) {
		r.tunables.PanSpeed = speed
	}
}

// WithPanTouchesSpace sets the divergence threshold separating a two-finger pan from a pinch.
//
// Parameters:
//   - space: largest per-axis delta difference in pixels
//
// Returns:
//   - RigOption: functional option to set the threshold
func WithPanTouchesSpace(space float32) RigOption {
	return func(r *rigImpl) {
		r.tunables.PanTouchesSpace = space
	}
}

// WithMode sets the enabled input families.
//
// Parameters:
//   - mode: input.ModeTouch, input.ModePointer or input.ModeAll
//
// Returns:
//   - RigOption: functional option to set the mode
func WithMode(mode input.Mode) RigOption {
	return func(r *rigImpl) {
		r.mode = mode
	}
}

// WithOcclusion sets the UI occlusion query evaluated at gesture start.
//
// Parameters:
//   - query: the occlusion query; nil keeps occlusion.Never
//
// Returns:
//   - RigOption: functional option to set the query
func WithOcclusion(query occlusion.Query) RigOption {
	return func(r *rigImpl) {
		if query != nil {
			r.occlusion = query
		}
	}
}

// WithDesiredPosition sets the initial desired position. Defaults to the origin.
//
// Parameters:
//   - position: initial desired position
//
// Returns:
//   - RigOption: functional option to set the desired position
func WithDesiredPosition(position mgl32.Vec3) RigOption {
	return func(r *rigImpl) {
		r.desired = position
	}
}

// WithLogger sets the logger used for gesture and occlusion debug output.
//
// Parameters:
//   - logger: the zap logger
//
// Returns:
//   - RigOption: functional option to set the logger
func WithLogger(logger *zap.Logger) RigOption {
	return func(r *rigImpl) {
		if logger != nil {
			r.logger = logger
		}
	}
}
