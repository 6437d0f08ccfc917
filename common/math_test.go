package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], eps, "component %d: want %v, got %v", i, want, got)
	}
}

func TestEulerRotation(t *testing.T) {
	t.Run("identity keeps world axes", func(t *testing.T) {
		q := EulerRotation(0, 0, 0)
		assertVec3(t, WorldForward, q.Rotate(WorldForward))
		assertVec3(t, WorldRight, q.Rotate(WorldRight))
		assertVec3(t, WorldUp, q.Rotate(WorldUp))
	})

	t.Run("positive yaw turns right", func(t *testing.T) {
		q := EulerRotation(0, 90, 0)
		assertVec3(t, mgl32.Vec3{1, 0, 0}, q.Rotate(WorldForward))
		assertVec3(t, mgl32.Vec3{0, 0, -1}, q.Rotate(WorldRight))
	})

	t.Run("positive pitch looks down", func(t *testing.T) {
		q := EulerRotation(90, 0, 0)
		assertVec3(t, mgl32.Vec3{0, -1, 0}, q.Rotate(WorldForward))
		assertVec3(t, mgl32.Vec3{0, 0, 1}, q.Rotate(WorldUp))
	})

	t.Run("pitch is applied before yaw", func(t *testing.T) {
		q := EulerRotation(90, 90, 0)
		// Looking straight down, the up vector follows the yaw.
		assertVec3(t, mgl32.Vec3{0, -1, 0}, q.Rotate(WorldForward))
		assertVec3(t, mgl32.Vec3{1, 0, 0}, q.Rotate(WorldUp))
	})
}

func TestLerp(t *testing.T) {
	a := mgl32.Vec3{0, 0, 0}
	b := mgl32.Vec3{10, -2, 4}

	assertVec3(t, mgl32.Vec3{5, -1, 2}, Lerp(a, b, 0.5))
	assertVec3(t, b, Lerp(a, b, 320))
	assertVec3(t, a, Lerp(a, b, -3))
	assertVec3(t, a, Lerp(a, b, 0))
}

func TestScreenHelpers(t *testing.T) {
	a := mgl32.Vec2{590, 360}
	b := mgl32.Vec2{690, 360}

	assert.InDelta(t, 100, ScreenDistance(a, b), eps)
	assert.Equal(t, mgl32.Vec2{640, 360}, ScreenMidpoint(a, b))
	assert.InDelta(t, 620, FlipY(100, 720), eps)
}

func TestRayPoint(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{1, 2, 3}, Direction: WorldForward}
	assertVec3(t, mgl32.Vec3{1, 2, 8}, r.Point(5))
}

func TestAbsAndCoalesce(t *testing.T) {
	assert.Equal(t, float32(3), Abs(-3))
	assert.Equal(t, float32(3), Abs(3))
	assert.Equal(t, "orbitrig", Coalesce("", "orbitrig", "other"))
	assert.Equal(t, 0, Coalesce(0, 0))
}
