// Package touch adapts ebiten's polled touch and mouse state into rig input snapshots.
// It lives apart from the GLFW window host so that binaries link only one windowing backend.
package touch

import (
	"github.com/Carmen-Shannon/orbitrig/common"
	"github.com/Carmen-Shannon/orbitrig/engine/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// mouseButtons maps ebiten buttons to the rig's button indices.
var mouseButtons = [...]struct {
	button ebiten.MouseButton
	index  int
}{
	{ebiten.MouseButtonLeft, common.MouseButtonPrimary},
	{ebiten.MouseButtonRight, common.MouseButtonSecondary},
}

// Source polls ebiten input state. Snapshot must be called from the game's Update, once per tick.
type Source struct {
	tracker *input.TouchTracker
	pointer *input.PointerCollector

	ids []ebiten.TouchID
	raw []input.RawTouch
}

var _ input.Source = &Source{}

// NewSource creates a Source for a screen of the given height.
//
// Parameters:
//   - viewportHeight: screen height in pixels
//   - options: pointer collector options (sensitivities)
//
// Returns:
//   - *Source: the newly created source
func NewSource(viewportHeight float32, options ...input.PointerCollectorOption) *Source {
	options = append(options, input.WithViewportHeight(viewportHeight))
	return &Source{
		tracker: input.NewTouchTracker(viewportHeight),
		pointer: input.NewPointerCollector(options...),
	}
}

// SetViewportHeight updates the height used to flip positions to a bottom-left origin.
func (s *Source) SetViewportHeight(height float32) {
	s.tracker.SetViewportHeight(height)
	s.pointer.SetViewportHeight(height)
}

// Snapshot polls touches, cursor, mouse buttons and wheel for this tick.
func (s *Source) Snapshot() input.Snapshot {
	s.ids = ebiten.AppendTouchIDs(s.ids[:0])
	s.raw = s.raw[:0]
	for _, id := range s.ids {
		x, y := ebiten.TouchPosition(id)
		s.raw = append(s.raw, input.RawTouch{ID: int(id), X: float32(x), Y: float32(y)})
	}

	// Some platforms also report a touch as a left click; ignore new presses while a finger is
	// down so a touch gesture is not doubled as a pointer look. Releases are always forwarded.
	touching := len(s.ids) > 0
	if !touching {
		cx, cy := ebiten.CursorPosition()
		s.pointer.OnMouseMove(float32(cx), float32(cy))
	}
	for _, mb := range mouseButtons {
		if !touching && inpututil.IsMouseButtonJustPressed(mb.button) {
			s.pointer.OnMouseButton(mb.index, true)
		}
		if inpututil.IsMouseButtonJustReleased(mb.button) {
			s.pointer.OnMouseButton(mb.index, false)
		}
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		s.pointer.OnScroll(float32(dy))
	}

	return input.Snapshot{
		Touches: s.tracker.Update(s.raw),
		Pointer: s.pointer.Pointer(),
	}
}
