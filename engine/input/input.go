// package input describes the per-frame gesture state consumed by the camera rig and the
// host-side collectors that produce it. Screen coordinates use a bottom-left origin with +y up.
package input

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Phase is the lifecycle stage of a touch within a single frame.
type Phase uint8

const (
	// PhaseBegan marks the first frame a finger touched the screen.
	PhaseBegan Phase = iota
	// PhaseMoved marks a frame where the finger moved.
	PhaseMoved
	// PhaseStationary marks a frame where the finger is down but did not move.
	PhaseStationary
	// PhaseEnded marks the frame a finger was lifted.
	PhaseEnded
	// PhaseCanceled marks a touch the platform stopped tracking.
	PhaseCanceled
)

var phaseNames = [...]string{
	PhaseBegan:      "began",
	PhaseMoved:      "moved",
	PhaseStationary: "stationary",
	PhaseEnded:      "ended",
	PhaseCanceled:   "canceled",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// ParsePhase converts a phase name (case-insensitive) into a Phase.
//
// Parameters:
//   - s: one of began, moved, stationary, ended, canceled
//
// Returns:
//   - Phase: the parsed phase
//   - error: error if the name is not recognized
func ParsePhase(s string) (Phase, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range phaseNames {
		if n == name {
			return Phase(i), nil
		}
	}
	return 0, fmt.Errorf("unknown touch phase %q", s)
}

// Touch is a single finger contact as seen in one frame.
type Touch struct {
	// ID identifies the finger across frames.
	ID int
	// Position is the current screen position in pixels.
	Position mgl32.Vec2
	// Delta is the movement since the previous frame in pixels.
	Delta mgl32.Vec2
	// Phase is the touch lifecycle stage for this frame.
	Phase Phase
}

// Button is the per-frame state of a pointer button.
type Button struct {
	// Down is true on the frame the button was pressed.
	Down bool
	// Held is true while the button is pressed, including the press frame.
	Held bool
	// Up is true on the frame the button was released.
	Up bool
}

// PointerState is the per-frame state of a mouse-like pointer.
type PointerState struct {
	// Position is the cursor position in pixels.
	Position mgl32.Vec2
	// Axis is the cursor movement this frame in axis units (pixels scaled by the axis sensitivity).
	Axis mgl32.Vec2
	// Primary is the left button.
	Primary Button
	// Secondary is the right button.
	Secondary Button
	// Scroll is the scroll wheel movement this frame in axis units.
	Scroll float32
}

// Snapshot is the complete gesture state for one frame. It is produced fresh each tick
// by a host and consumed immediately by the rig.
type Snapshot struct {
	Touches []Touch
	Pointer PointerState
}

// TouchCount returns the number of touches in the frame, including touches that ended this frame.
func (s Snapshot) TouchCount() int {
	return len(s.Touches)
}

// Source produces one Snapshot per call. Implementations reset per-frame deltas on each call.
type Source interface {
	Snapshot() Snapshot
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() Snapshot

// Snapshot calls f.
func (f SourceFunc) Snapshot() Snapshot {
	return f()
}
