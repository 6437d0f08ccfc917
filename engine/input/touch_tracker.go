package input

import (
	"sort"

	"github.com/Carmen-Shannon/orbitrig/common"
	"github.com/go-gl/mathgl/mgl32"
)

// RawTouch is an active touch as polled from a host, in top-left pixel space.
type RawTouch struct {
	ID   int
	X, Y float32
}

// TouchTracker turns polled lists of active touches into Touch values with phases and deltas.
// A touch seen for the first time is Began; a touch that disappears is reported once as Ended at
// its last known position. Not safe for concurrent use.
type TouchTracker struct {
	viewportHeight float32
	last           map[int]mgl32.Vec2
	out            []Touch
}

// NewTouchTracker creates a tracker for a viewport of the given height.
//
// Parameters:
//   - viewportHeight: height in pixels used to flip y to a bottom-left origin
//
// Returns:
//   - *TouchTracker: the newly created tracker
func NewTouchTracker(viewportHeight float32) *TouchTracker {
	return &TouchTracker{
		viewportHeight: viewportHeight,
		last:           make(map[int]mgl32.Vec2),
	}
}

// SetViewportHeight updates the viewport height used to flip touch positions.
func (t *TouchTracker) SetViewportHeight(height float32) {
	t.viewportHeight = height
}

// Update consumes the touches active this frame and returns the frame's touches ordered by ID.
// The returned slice is reused by the next call.
//
// Parameters:
//   - active: touches currently on the screen
//
// Returns:
//   - []Touch: active touches plus touches that ended since the previous call
func (t *TouchTracker) Update(active []RawTouch) []Touch {
	t.out = t.out[:0]
	seen := make(map[int]struct{}, len(active))

	for _, raw := range active {
		pos := mgl32.Vec2{raw.X, common.FlipY(raw.Y, t.viewportHeight)}
		seen[raw.ID] = struct{}{}

		prev, ok := t.last[raw.ID]
		touch := Touch{ID: raw.ID, Position: pos}
		switch {
		case !ok:
			touch.Phase = PhaseBegan
		case pos != prev:
			touch.Delta = pos.Sub(prev)
			touch.Phase = PhaseMoved
		default:
			touch.Phase = PhaseStationary
		}
		t.out = append(t.out, touch)
		t.last[raw.ID] = pos
	}

	for id, pos := range t.last {
		if _, ok := seen[id]; ok {
			continue
		}
		t.out = append(t.out, Touch{ID: id, Position: pos, Phase: PhaseEnded})
		delete(t.last, id)
	}

	sort.Slice(t.out, func(i, j int) bool { return t.out[i].ID < t.out[j].ID })
	return t.out
}
