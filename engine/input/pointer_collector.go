package input

import (
	"sync"

	"github.com/Carmen-Shannon/orbitrig/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultAxisSensitivity converts cursor pixels to axis units.
	DefaultAxisSensitivity = 0.1
	// DefaultScrollSensitivity converts scroll wheel steps to axis units.
	DefaultScrollSensitivity = 0.1
)

// PointerCollector accumulates pointer events between ticks and hands them to the rig as one
// Snapshot per tick. Event callbacks may arrive on a different goroutine (e.g. the window
// thread) than Snapshot (the tick thread).
type PointerCollector struct {
	mu *sync.Mutex

	axisSensitivity   float32
	scrollSensitivity float32
	viewportHeight    float32

	// raw is the last cursor position in the host's top-left pixel space.
	raw     mgl32.Vec2
	hasLast bool

	axis   mgl32.Vec2
	scroll float32

	held     [2]bool
	pressed  [2]bool
	released [2]bool
}

var _ Source = &PointerCollector{}

// NewPointerCollector creates a collector with default sensitivities and a 720 pixel viewport.
//
// Parameters:
//   - options: functional options to configure the collector
//
// Returns:
//   - *PointerCollector: the newly created collector
func NewPointerCollector(options ...PointerCollectorOption) *PointerCollector {
	pc := &PointerCollector{
		mu:                &sync.Mutex{},
		axisSensitivity:   DefaultAxisSensitivity,
		scrollSensitivity: DefaultScrollSensitivity,
		viewportHeight:    720,
	}
	for _, option := range options {
		option(pc)
	}
	return pc
}

// SetViewportHeight updates the height used to flip cursor positions to a bottom-left origin.
//
// Parameters:
//   - height: viewport height in pixels
func (pc *PointerCollector) SetViewportHeight(height float32) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.viewportHeight = height
}

// OnMouseButton records a button press or release. Buttons other than primary and
// secondary are ignored.
//
// Parameters:
//   - button: common.MouseButtonPrimary or common.MouseButtonSecondary
//   - pressed: true on press, false on release
func (pc *PointerCollector) OnMouseButton(button int, pressed bool) {
	if button != common.MouseButtonPrimary && button != common.MouseButtonSecondary {
		return
	}
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pressed {
		if !pc.held[button] {
			pc.pressed[button] = true
		}
		pc.held[button] = true
		return
	}
	if pc.held[button] {
		pc.released[button] = true
	}
	pc.held[button] = false
}

// OnMouseMove records a cursor position in top-left pixel space and accumulates the axis delta.
// The first call only establishes the reference position.
//
// Parameters:
//   - x, y: cursor position in pixels, origin top-left
func (pc *PointerCollector) OnMouseMove(x, y float32) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pos := mgl32.Vec2{x, y}
	if pc.hasLast {
		d := pos.Sub(pc.raw)
		// Screen y grows downward in the host; axis y grows upward.
		pc.axis = pc.axis.Add(mgl32.Vec2{d.X(), -d.Y()}.Mul(pc.axisSensitivity))
	}
	pc.raw = pos
	pc.hasLast = true
}

// OnScroll accumulates vertical scroll wheel movement.
//
// Parameters:
//   - delta: wheel steps, positive away from the user
func (pc *PointerCollector) OnScroll(delta float32) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.scroll += delta * pc.scrollSensitivity
}

// Pointer returns the pointer state accumulated since the previous call and resets the
// per-frame deltas and button edges.
//
// Returns:
//   - PointerState: the pointer state for this tick
func (pc *PointerCollector) Pointer() PointerState {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	state := PointerState{
		Position:  mgl32.Vec2{pc.raw.X(), common.FlipY(pc.raw.Y(), pc.viewportHeight)},
		Axis:      pc.axis,
		Primary:   pc.button(common.MouseButtonPrimary),
		Secondary: pc.button(common.MouseButtonSecondary),
		Scroll:    pc.scroll,
	}

	pc.axis = mgl32.Vec2{}
	pc.scroll = 0
	pc.pressed = [2]bool{}
	pc.released = [2]bool{}
	return state
}

// Snapshot returns a Snapshot carrying only pointer state.
func (pc *PointerCollector) Snapshot() Snapshot {
	return Snapshot{Pointer: pc.Pointer()}
}

// button builds the Button for index i.
// Caller must hold the mutex.
func (pc *PointerCollector) button(i int) Button {
	return Button{
		Down: pc.pressed[i],
		Held: pc.held[i] || pc.pressed[i],
		Up:   pc.released[i],
	}
}
