package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/orbitrig/engine/camera"
	"github.com/Carmen-Shannon/orbitrig/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newRig(t *testing.T) camera.Rig {
	t.Helper()
	rig, err := camera.NewRig(camera.NewVirtualCamera(), camera.NewTransform(0, 0, 0))
	require.NoError(t, err)
	return rig
}

var scrolling = input.SourceFunc(func() input.Snapshot {
	return input.Snapshot{Pointer: input.PointerState{Scroll: 0.1}}
})

// fakeWindow runs a fixed number of message loop iterations.
type fakeWindow struct {
	width, height int
	iterations    int
	updates       int
	onResize      func(width, height int)
}

var _ Window = &fakeWindow{}

func (w *fakeWindow) SetResizeCallback(callback func(width, height int)) { w.onResize = callback }
func (w *fakeWindow) Width() int                                        { return w.width }
func (w *fakeWindow) Height() int                                       { return w.height }

func (w *fakeWindow) ProcessMessages() {
	for ; w.iterations > 0; w.iterations-- {
		w.updates++
	}
}

func TestNewEngineValidatesCollaborators(t *testing.T) {
	_, err := NewEngine(nil, scrolling)
	assert.ErrorIs(t, err, ErrNilRig)

	_, err = NewEngine(newRig(t), nil)
	assert.ErrorIs(t, err, ErrNilSource)
}

func TestStepFeedsRig(t *testing.T) {
	rig := newRig(t)
	eng, err := NewEngine(rig, scrolling, WithProfiling(true), WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	var got []camera.Frame
	eng.SetFrameCallback(func(frame camera.Frame) {
		got = append(got, frame)
	})

	frame := eng.Step(0.016)
	eng.Step(0.016)

	assert.Equal(t, input.GesturePointerZoom, frame.Pointer)
	require.Len(t, got, 2)
	assert.InDelta(t, 0.5, got[1].TargetPosition.Z(), 1e-5)
	assert.Same(t, rig, eng.Rig())
	assert.Nil(t, eng.Window())
}

func TestRunHeadlessUntilQuit(t *testing.T) {
	eng, err := NewEngine(newRig(t), scrolling, WithTickRate(500))
	require.NoError(t, err)

	var ticks atomic.Int32
	ready := make(chan struct{})
	eng.SetFrameCallback(func(camera.Frame) {
		if ticks.Add(1) == 3 {
			close(ready)
		}
	})

	done := make(chan struct{})
	go func() {
		eng.Run()
		close(done)
	}()

	select {
	case <-ready:
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not tick")
	}

	eng.SetTickRate(1000)
	eng.Quit()
	eng.Quit()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
	assert.GreaterOrEqual(t, ticks.Load(), int32(3))
}

func TestRunRecoversFromPanic(t *testing.T) {
	panicking := input.SourceFunc(func() input.Snapshot {
		panic("boom")
	})
	eng, err := NewEngine(newRig(t), panicking, WithTickRate(500), WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		eng.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after panic")
	}
}

func TestRunWithWindow(t *testing.T) {
	rig := newRig(t)
	collector := input.NewPointerCollector()
	win := &fakeWindow{width: 800, height: 600, iterations: 3}

	eng, err := NewEngine(rig, collector, WithWindow(win))
	require.NoError(t, err)
	assert.Equal(t, win, eng.Window())

	lens := rig.Camera().Lens()
	assert.Equal(t, float32(800), lens.Width)
	assert.Equal(t, float32(600), lens.Height)

	require.NotNil(t, win.onResize)
	win.onResize(1024, 768)
	lens = rig.Camera().Lens()
	assert.Equal(t, float32(1024), lens.Width)
	assert.Equal(t, float32(768), lens.Height)

	// zero sizes arrive while minimized and are ignored
	win.onResize(0, 0)
	assert.Equal(t, float32(1024), rig.Camera().Lens().Width)

	// Run returns once the window loop exits
	eng.Run()
	assert.Equal(t, 3, win.updates)
}

func TestTickInterval(t *testing.T) {
	assert.Equal(t, time.Second/60, tickInterval(0))
	assert.Equal(t, time.Second/60, tickInterval(-5))
	assert.Equal(t, 10*time.Millisecond, tickInterval(100))
}

func TestStepWithoutCallback(t *testing.T) {
	rig := newRig(t)
	eng, err := NewEngine(rig, input.SourceFunc(func() input.Snapshot {
		return input.Snapshot{Touches: []input.Touch{{Delta: mgl32.Vec2{10, 0}, Phase: input.PhaseMoved}}}
	}))
	require.NoError(t, err)

	eng.DisableProfiler()
	eng.Step(0.016)
	eng.EnableProfiler()
	frame := eng.Step(0.016)
	assert.InDelta(t, 4.0, frame.Yaw, 1e-5)
}
