package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Lens holds the projection settings used to cast rays through screen points.
type Lens struct {
	// FieldOfView is the vertical field of view in degrees.
	FieldOfView float32
	// Width is the viewport width in pixels.
	Width float32
	// Height is the viewport height in pixels.
	Height float32
}

// DefaultLens returns a 60 degree lens over a 1280x720 viewport.
func DefaultLens() Lens {
	return Lens{FieldOfView: 60, Width: 1280, Height: 720}
}

// Aspect returns the viewport aspect ratio (width / height), or 0 for an empty viewport.
func (l Lens) Aspect() float32 {
	if l.Height <= 0 {
		return 0
	}
	return l.Width / l.Height
}

// ViewDirection returns the normalized camera-space direction through a screen point.
// Camera space looks down +Z with +X right and +Y up.
//
// Parameters:
//   - screen: screen position in pixels, origin bottom-left
//
// Returns:
//   - mgl32.Vec3: the camera-space direction
//   - bool: false if the viewport is empty
func (l Lens) ViewDirection(screen mgl32.Vec2) (mgl32.Vec3, bool) {
	if l.Width <= 0 || l.Height <= 0 {
		return mgl32.Vec3{}, false
	}
	tanHalf := float32(math.Tan(float64(mgl32.DegToRad(l.FieldOfView)) / 2))
	ndcX := 2*screen.X()/l.Width - 1
	ndcY := 2*screen.Y()/l.Height - 1
	return mgl32.Vec3{ndcX * tanHalf * l.Aspect(), ndcY * tanHalf, 1}.Normalize(), true
}
