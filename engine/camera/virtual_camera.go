package camera

import (
	"math"

	"github.com/Carmen-Shannon/orbitrig/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultPriority is the priority a virtual camera starts with.
	DefaultPriority = 10
	// MaxPriority is the priority a rig assigns to the camera it drives, so that it wins
	// over every other virtual camera.
	MaxPriority = math.MaxInt32
)

// VirtualCamera defines the interface for the follow camera a Rig orients.
// The camera owns its rotation, follow target, follow distance and lens. Its world position
// is derived each call: the follow target's position pulled back along the view direction
// by the follow distance.
type VirtualCamera interface {
	// Priority returns the camera priority. Hosts render through the highest-priority camera.
	//
	// Returns:
	//   - int: current priority
	Priority() int

	// SetPriority sets the camera priority.
	//
	// Parameters:
	//   - priority: new priority
	SetPriority(priority int)

	// Follow returns the followed target, or nil if none.
	//
	// Returns:
	//   - Target: the followed target
	Follow() Target

	// SetFollow sets the followed target.
	//
	// Parameters:
	//   - target: the target to follow, nil to stop following
	SetFollow(target Target)

	// Euler returns the Euler angles last applied, in degrees.
	//
	// Returns:
	//   - pitch, yaw, roll: rotation angles in degrees
	Euler() (pitch, yaw, roll float32)

	// SetEuler sets the rotation to Euler(pitch, yaw, roll) immediately, without smoothing.
	// Angles are stored as given; they are not wrapped.
	//
	// Parameters:
	//   - pitch, yaw, roll: rotation angles in degrees
	SetEuler(pitch, yaw, roll float32)

	// Rotation returns the current rotation.
	//
	// Returns:
	//   - mgl32.Quat: the rotation
	Rotation() mgl32.Quat

	// Right returns the camera's local right axis in world space.
	//
	// Returns:
	//   - mgl32.Vec3: unit right vector
	Right() mgl32.Vec3

	// Up returns the camera's local up axis in world space.
	//
	// Returns:
	//   - mgl32.Vec3: unit up vector
	Up() mgl32.Vec3

	// Forward returns the camera's view direction in world space.
	//
	// Returns:
	//   - mgl32.Vec3: unit forward vector
	Forward() mgl32.Vec3

	// Distance returns the follow distance.
	//
	// Returns:
	//   - float32: distance behind the target
	Distance() float32

	// SetDistance sets the follow distance, clamped to min/max bounds.
	//
	// Parameters:
	//   - distance: new follow distance
	SetDistance(distance float32)

	// Zoom moves the camera toward its target by delta, clamped to min/max bounds.
	//
	// Parameters:
	//   - delta: distance to move in (positive) or out (negative)
	Zoom(delta float32)

	// MinDistance returns the minimum allowed follow distance.
	//
	// Returns:
	//   - float32: minimum distance
	MinDistance() float32

	// MaxDistance returns the maximum allowed follow distance.
	//
	// Returns:
	//   - float32: maximum distance
	MaxDistance() float32

	// Lens returns the projection settings.
	//
	// Returns:
	//   - Lens: the lens
	Lens() Lens

	// SetLens replaces the projection settings.
	//
	// Parameters:
	//   - lens: the new lens
	SetLens(lens Lens)

	// SetViewport updates the lens viewport size, typically from a resize callback.
	//
	// Parameters:
	//   - width, height: viewport size in pixels
	SetViewport(width, height float32)

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: follow position - forward * distance
	Position() mgl32.Vec3

	// ScreenPointToRay returns a ray from the camera through a screen point.
	// With an empty viewport the ray points along Forward.
	//
	// Parameters:
	//   - screen: screen position in pixels, origin bottom-left
	//
	// Returns:
	//   - common.Ray: ray with a unit direction
	ScreenPointToRay(screen mgl32.Vec2) common.Ray
}
