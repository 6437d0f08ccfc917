package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// World axes for the rig's coordinate system: left-handed, +Y up, +Z forward.
var (
	WorldRight   = mgl32.Vec3{1, 0, 0}
	WorldUp      = mgl32.Vec3{0, 1, 0}
	WorldForward = mgl32.Vec3{0, 0, 1}
)

// Ray is a half-line starting at Origin and extending along Direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// Point returns the point at the given distance along the ray.
//
// Parameters:
//   - distance: distance from the origin in world units
//
// Returns:
//   - mgl32.Vec3: Origin + Direction * distance
func (r Ray) Point(distance float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(distance))
}

// EulerRotation builds a rotation from Euler angles in degrees.
// Roll is applied first, then pitch around X, then yaw around Y, so that
// EulerRotation(pitch, yaw, 0) equals Ry(yaw) * Rx(pitch).
// Positive pitch looks down, positive yaw turns to the right.
//
// Parameters:
//   - pitch: rotation around the X axis in degrees
//   - yaw: rotation around the Y axis in degrees
//   - roll: rotation around the Z axis in degrees
//
// Returns:
//   - mgl32.Quat: the composed rotation
func EulerRotation(pitch, yaw, roll float32) mgl32.Quat {
	qy := mgl32.QuatRotate(mgl32.DegToRad(yaw), WorldUp)
	qx := mgl32.QuatRotate(mgl32.DegToRad(pitch), WorldRight)
	qz := mgl32.QuatRotate(mgl32.DegToRad(roll), WorldForward)
	return qy.Mul(qx).Mul(qz)
}

// Lerp linearly interpolates between a and b. The factor t is clamped to [0, 1],
// so large factors snap to b and negative factors keep a.
//
// Parameters:
//   - a: start point
//   - b: end point
//   - t: interpolation factor
//
// Returns:
//   - mgl32.Vec3: the interpolated point
func Lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	t = mgl32.Clamp(t, 0, 1)
	return a.Add(b.Sub(a).Mul(t))
}

// ScreenDistance returns the distance in pixels between two screen points.
//
// Parameters:
//   - a, b: screen-space points
//
// Returns:
//   - float32: euclidean distance
func ScreenDistance(a, b mgl32.Vec2) float32 {
	return b.Sub(a).Len()
}

// ScreenMidpoint returns the point halfway between two screen points.
//
// Parameters:
//   - a, b: screen-space points
//
// Returns:
//   - mgl32.Vec2: the midpoint
func ScreenMidpoint(a, b mgl32.Vec2) mgl32.Vec2 {
	return a.Add(b).Mul(0.5)
}

// FlipY converts a y coordinate between top-left and bottom-left screen origins.
//
// Parameters:
//   - y: coordinate in the source convention
//   - height: viewport height in pixels
//
// Returns:
//   - float32: coordinate in the other convention
func FlipY(y, height float32) float32 {
	return height - y
}
