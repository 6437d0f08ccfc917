package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Target is an externally owned object the camera follows.
// The rig only reads and writes its world position.
type Target interface {
	// Position returns the world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: current position
	Position() mgl32.Vec3

	// SetPosition moves the target.
	//
	// Parameters:
	//   - position: new world-space position
	SetPosition(position mgl32.Vec3)
}

// Transform is an in-memory Target, safe for concurrent use.
type Transform struct {
	mu       sync.Mutex
	position mgl32.Vec3
}

var _ Target = &Transform{}

// NewTransform creates a Transform at the given position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - *Transform: the newly created transform
func NewTransform(x, y, z float32) *Transform {
	return &Transform{position: mgl32.Vec3{x, y, z}}
}

func (t *Transform) Position() mgl32.Vec3 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.position
}

func (t *Transform) SetPosition(position mgl32.Vec3) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.position = position
}
