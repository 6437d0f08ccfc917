package camera

import (
	"errors"

	"github.com/Carmen-Shannon/orbitrig/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrNilCamera is returned by NewRig when no virtual camera is supplied.
	ErrNilCamera = errors.New("camera: virtual camera is nil")
	// ErrNilTarget is returned by NewRig when no follow target is supplied.
	ErrNilTarget = errors.New("camera: follow target is nil")
)

// Tunables holds the rig sensitivities. All fields may be replaced at runtime.
type Tunables struct {
	// XSpeed scales horizontal look input into yaw.
	XSpeed float32 `yaml:"x_speed"`
	// YSpeed scales vertical look input into pitch.
	YSpeed float32 `yaml:"y_speed"`
	// ZoomRate scales pinch and scroll input into movement along the view.
	ZoomRate float32 `yaml:"zoom_rate"`
	// PanSpeed scales pan input into lateral movement.
	PanSpeed float32 `yaml:"pan_speed"`
	// PanTouchesSpace is the largest per-axis difference between the two finger deltas, in
	// pixels, for a two-finger drag to count as a pan.
	PanTouchesSpace float32 `yaml:"pan_touches_space"`
}

// DefaultTunables returns the stock sensitivities.
func DefaultTunables() Tunables {
	return Tunables{
		XSpeed:          50.0,
		YSpeed:          50.0,
		ZoomRate:        0.5,
		PanSpeed:        0.0025,
		PanTouchesSpace: 10.0,
	}
}

// Frame is the rig output for one tick.
type Frame struct {
	// Yaw and Pitch are the accumulated look angles in degrees.
	Yaw   float32
	Pitch float32
	// Rotation is the camera rotation, Euler(Pitch, Yaw, 0).
	Rotation mgl32.Quat
	// TargetPosition is the followed target's position after this tick.
	TargetPosition mgl32.Vec3
	// DesiredPosition is the smoothed pinch/pan accumulator.
	DesiredPosition mgl32.Vec3
	// Touch and Pointer are the gestures classified this tick.
	Touch   input.Gesture
	Pointer input.Gesture
	// Suppressed is true when the gesture started over UI and no motion was applied.
	Suppressed bool
}

// Rig defines the interface for the gesture-driven orbit/pan/zoom camera rig.
// Each Update consumes one input snapshot: look gestures rotate the virtual camera
// immediately, pointer pan and scroll move the target directly, and two-finger pan and pinch
// accumulate into a desired position the target is interpolated toward.
type Rig interface {
	// Update advances the rig by one frame.
	//
	// Parameters:
	//   - deltaTime: frame time in seconds
	//   - snap: the input for this frame
	//
	// Returns:
	//   - Frame: the resulting camera state
	Update(deltaTime float32, snap input.Snapshot) Frame

	// Yaw returns the accumulated yaw in degrees. It is never wrapped.
	Yaw() float32

	// Pitch returns the accumulated pitch in degrees. It is never clamped.
	Pitch() float32

	// DesiredPosition returns the position the target is interpolated toward during pinch gestures.
	DesiredPosition() mgl32.Vec3

	// SetDesiredPosition replaces the desired position.
	//
	// Parameters:
	//   - position: new desired position
	SetDesiredPosition(position mgl32.Vec3)

	// Baseline returns the last recorded distance between two touches in pixels.
	Baseline() float32

	// OnUI reports whether the current gesture started over UI.
	OnUI() bool

	// Tunables returns the current sensitivities.
	Tunables() Tunables

	// SetTunables replaces the sensitivities. Takes effect on the next Update.
	//
	// Parameters:
	//   - t: new sensitivities
	SetTunables(t Tunables)

	// Mode returns the enabled input families.
	Mode() input.Mode

	// SetMode sets the enabled input families.
	//
	// Parameters:
	//   - mode: input families to react to
	SetMode(mode input.Mode)

	// Camera returns the virtual camera the rig orients.
	Camera() VirtualCamera

	// Target returns the followed target.
	Target() Target
}
