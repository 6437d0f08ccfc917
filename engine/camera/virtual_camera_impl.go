package camera

import (
	"sync"

	"github.com/Carmen-Shannon/orbitrig/common"
	"github.com/go-gl/mathgl/mgl32"
)

// virtualCameraImpl is the single implementation of VirtualCamera.
type virtualCameraImpl struct {
	mu *sync.Mutex

	priority int
	follow   Target

	// Euler angles as last set (degrees), and the rotation built from them
	pitch    float32
	yaw      float32
	roll     float32
	rotation mgl32.Quat

	// Follow distance and its constraints
	distance    float32
	minDistance float32
	maxDistance float32

	lens Lens
}

// Compile-time interface compliance check
var _ VirtualCamera = &virtualCameraImpl{}

// NewVirtualCamera creates a new virtual camera with sensible defaults: priority 10, no
// rotation, 10 units behind its target, and DefaultLens.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - VirtualCamera: the newly created camera
func NewVirtualCamera(options ...VirtualCameraOption) VirtualCamera {
	vc := &virtualCameraImpl{
		mu:       &sync.Mutex{},
		priority: DefaultPriority,

		distance:    10.0,
		minDistance: 1.0,
		maxDistance: 1000.0,

		lens: DefaultLens(),
	}

	for _, option := range options {
		option(vc)
	}

	vc.clampDistance()
	vc.updateRotation()
	return vc
}

// --- internal helpers ---

// updateRotation rebuilds the rotation from the stored Euler angles.
// Caller must hold the mutex.
func (vc *virtualCameraImpl) updateRotation() {
	vc.rotation = common.EulerRotation(vc.pitch, vc.yaw, vc.roll)
}

// clampDistance keeps the follow distance within bounds.
// Caller must hold the mutex.
func (vc *virtualCameraImpl) clampDistance() {
	if vc.distance < vc.minDistance {
		vc.distance = vc.minDistance
	}
	if vc.distance > vc.maxDistance {
		vc.distance = vc.maxDistance
	}
}

// position computes the world-space camera position.
// Caller must hold the mutex.
func (vc *virtualCameraImpl) position() mgl32.Vec3 {
	var anchor mgl32.Vec3
	if vc.follow != nil {
		anchor = vc.follow.Position()
	}
	return anchor.Sub(vc.rotation.Rotate(common.WorldForward).Mul(vc.distance))
}

// --- VirtualCamera implementation ---

func (vc *virtualCameraImpl) Priority() int {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.priority
}

func (vc *virtualCameraImpl) SetPriority(priority int) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.priority = priority
}

func (vc *virtualCameraImpl) Follow() Target {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.follow
}

func (vc *virtualCameraImpl) SetFollow(target Target) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.follow = target
}

func (vc *virtualCameraImpl) Euler() (pitch, yaw, roll float32) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.pitch, vc.yaw, vc.roll
}

func (vc *virtualCameraImpl) SetEuler(pitch, yaw, roll float32) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.pitch = pitch
	vc.yaw = yaw
	vc.roll = roll
	vc.updateRotation()
}

func (vc *virtualCameraImpl) Rotation() mgl32.Quat {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.rotation
}

func (vc *virtualCameraImpl) Right() mgl32.Vec3 {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.rotation.Rotate(common.WorldRight)
}

func (vc *virtualCameraImpl) Up() mgl32.Vec3 {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.rotation.Rotate(common.WorldUp)
}

func (vc *virtualCameraImpl) Forward() mgl32.Vec3 {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.rotation.Rotate(common.WorldForward)
}

func (vc *virtualCameraImpl) Distance() float32 {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.distance
}

func (vc *virtualCameraImpl) SetDistance(distance float32) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.distance = distance
	vc.clampDistance()
}

func (vc *virtualCameraImpl) Zoom(delta float32) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.distance -= delta
	vc.clampDistance()
}

func (vc *virtualCameraImpl) MinDistance() float32 {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.minDistance
}

func (vc *virtualCameraImpl) MaxDistance() float32 {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.maxDistance
}

func (vc *virtualCameraImpl) Lens() Lens {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.lens
}

func (vc *virtualCameraImpl) SetLens(lens Lens) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.lens = lens
}

func (vc *virtualCameraImpl) SetViewport(width, height float32) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.lens.Width = width
	vc.lens.Height = height
}

func (vc *virtualCameraImpl) Position() mgl32.Vec3 {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.position()
}

func (vc *virtualCameraImpl) ScreenPointToRay(screen mgl32.Vec2) common.Ray {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	ray := common.Ray{Origin: vc.position()}
	dir, ok := vc.lens.ViewDirection(screen)
	if !ok {
		ray.Direction = vc.rotation.Rotate(common.WorldForward)
		return ray
	}
	ray.Direction = vc.rotation.Rotate(dir)
	return ray
}
