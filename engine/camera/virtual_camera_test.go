package camera

import (
	"testing"

	"github.com/Carmen-Shannon/orbitrig/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-4

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], epsilon, "component %d of %v", i, got)
	}
}

func TestNewVirtualCameraDefaults(t *testing.T) {
	vc := NewVirtualCamera()

	assert.Equal(t, DefaultPriority, vc.Priority())
	assert.Nil(t, vc.Follow())
	assert.Equal(t, float32(10), vc.Distance())
	assert.Equal(t, DefaultLens(), vc.Lens())
	assertVec3(t, common.WorldForward, vc.Forward())
	assertVec3(t, common.WorldRight, vc.Right())
	assertVec3(t, common.WorldUp, vc.Up())
}

func TestVirtualCameraOptions(t *testing.T) {
	target := NewTransform(1, 2, 3)
	vc := NewVirtualCamera(
		WithPriority(3),
		WithFollow(target),
		WithEuler(0, 90, 0),
		WithDistanceBounds(2, 20),
		WithDistance(50),
		WithFieldOfView(90),
		WithViewport(800, 600),
	)

	assert.Equal(t, 3, vc.Priority())
	assert.Same(t, target, vc.Follow())
	assert.Equal(t, float32(20), vc.Distance(), "distance is clamped to the max bound")
	assert.Equal(t, Lens{FieldOfView: 90, Width: 800, Height: 600}, vc.Lens())

	pitch, yaw, roll := vc.Euler()
	assert.Equal(t, float32(0), pitch)
	assert.Equal(t, float32(90), yaw)
	assert.Equal(t, float32(0), roll)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, vc.Forward())
}

func TestVirtualCameraPositionTrailsTarget(t *testing.T) {
	target := NewTransform(0, 0, 5)
	vc := NewVirtualCamera(WithFollow(target), WithDistance(4))
	assertVec3(t, mgl32.Vec3{0, 0, 1}, vc.Position())

	target.SetPosition(mgl32.Vec3{2, 0, 5})
	assertVec3(t, mgl32.Vec3{2, 0, 1}, vc.Position())
}

func TestVirtualCameraSetDistanceClamps(t *testing.T) {
	vc := NewVirtualCamera(WithDistanceBounds(1, 5))

	vc.SetDistance(0.1)
	assert.Equal(t, float32(1), vc.Distance())
	vc.SetDistance(3)
	assert.Equal(t, float32(3), vc.Distance())
	vc.SetDistance(100)
	assert.Equal(t, float32(5), vc.Distance())
	vc.Zoom(1)
	assert.Equal(t, float32(4), vc.Distance())
	vc.Zoom(-10)
	assert.Equal(t, float32(5), vc.Distance())
	vc.Zoom(10)
	assert.Equal(t, float32(1), vc.Distance())
	assert.Equal(t, float32(1), vc.MinDistance())
	assert.Equal(t, float32(5), vc.MaxDistance())
}

func TestVirtualCameraEulerBasis(t *testing.T) {
	vc := NewVirtualCamera()

	vc.SetEuler(90, 0, 0)
	assertVec3(t, mgl32.Vec3{0, -1, 0}, vc.Forward())

	vc.SetEuler(0, -90, 0)
	assertVec3(t, mgl32.Vec3{-1, 0, 0}, vc.Forward())
	assertVec3(t, mgl32.Vec3{0, 0, 1}, vc.Right())
}

func TestScreenPointToRay(t *testing.T) {
	t.Run("center of viewport is forward", func(t *testing.T) {
		vc := NewVirtualCamera(WithViewport(1280, 720))
		ray := vc.ScreenPointToRay(mgl32.Vec2{640, 360})
		assertVec3(t, common.WorldForward, ray.Direction)
		assertVec3(t, vc.Position(), ray.Origin)
	})

	t.Run("right edge tilts right", func(t *testing.T) {
		vc := NewVirtualCamera(WithFieldOfView(90), WithViewport(100, 100))
		ray := vc.ScreenPointToRay(mgl32.Vec2{100, 50})
		assertVec3(t, mgl32.Vec3{1, 0, 1}.Normalize(), ray.Direction)
	})

	t.Run("top edge tilts up", func(t *testing.T) {
		vc := NewVirtualCamera(WithFieldOfView(90), WithViewport(100, 100))
		ray := vc.ScreenPointToRay(mgl32.Vec2{50, 100})
		assertVec3(t, mgl32.Vec3{0, 1, 1}.Normalize(), ray.Direction)
	})

	t.Run("follows camera rotation", func(t *testing.T) {
		vc := NewVirtualCamera(WithEuler(0, 90, 0))
		ray := vc.ScreenPointToRay(mgl32.Vec2{640, 360})
		assertVec3(t, mgl32.Vec3{1, 0, 0}, ray.Direction)
	})

	t.Run("empty viewport falls back to forward", func(t *testing.T) {
		vc := NewVirtualCamera(WithViewport(0, 0))
		ray := vc.ScreenPointToRay(mgl32.Vec2{10, 10})
		assertVec3(t, common.WorldForward, ray.Direction)
	})
}

func TestLensAspect(t *testing.T) {
	assert.InDelta(t, 16.0/9.0, DefaultLens().Aspect(), epsilon)
	assert.Equal(t, float32(0), Lens{Width: 100}.Aspect())
}
