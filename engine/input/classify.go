package input

// Gesture is the gesture a snapshot maps to for one input family.
type Gesture uint8

const (
	GestureNone Gesture = iota
	// GestureLook is a single-touch drag.
	GestureLook
	// GesturePinchBegin is a two-touch frame where either finger just touched down.
	GesturePinchBegin
	// GesturePinchMove is a two-touch frame where either finger moved.
	GesturePinchMove
	// GesturePinchIdle is a two-touch frame with no new or moving finger.
	GesturePinchIdle
	// GesturePointerLook is a primary-button drag.
	GesturePointerLook
	// GesturePointerPan is a secondary-button drag.
	GesturePointerPan
	// GesturePointerZoom is a scroll wheel movement.
	GesturePointerZoom
)

var gestureNames = [...]string{
	GestureNone:        "none",
	GestureLook:        "look",
	GesturePinchBegin:  "pinch-begin",
	GesturePinchMove:   "pinch-move",
	GesturePinchIdle:   "pinch-idle",
	GesturePointerLook: "pointer-look",
	GesturePointerPan:  "pointer-pan",
	GesturePointerZoom: "pointer-zoom",
}

func (g Gesture) String() string {
	if int(g) < len(gestureNames) {
		return gestureNames[g]
	}
	return "unknown"
}

// Classification holds the touch and pointer gestures of one snapshot.
type Classification struct {
	Touch   Gesture
	Pointer Gesture
}

// Classify maps a snapshot to its gestures. Families disabled by mode classify as GestureNone.
//
// Parameters:
//   - s: the frame snapshot
//   - mode: enabled input families
//
// Returns:
//   - Classification: the touch and pointer gestures
func Classify(s Snapshot, mode Mode) Classification {
	var c Classification
	if mode.Touch() {
		c.Touch = ClassifyTouch(s.Touches)
	}
	if mode.Pointer() {
		c.Pointer = ClassifyPointer(s.Pointer)
	}
	return c
}

// ClassifyTouch maps the touch list to a gesture.
// One touch looks; two touches pinch/pan; zero or three or more touches do nothing.
func ClassifyTouch(touches []Touch) Gesture {
	switch len(touches) {
	case 1:
		return GestureLook
	case 2:
		t0, t1 := touches[0], touches[1]
		if t0.Phase == PhaseBegan || t1.Phase == PhaseBegan {
			return GesturePinchBegin
		}
		if t0.Phase == PhaseMoved || t1.Phase == PhaseMoved {
			return GesturePinchMove
		}
		return GesturePinchIdle
	}
	return GestureNone
}

// ClassifyPointer maps pointer state to a gesture, checked in priority order:
// primary held, secondary held, nonzero scroll.
func ClassifyPointer(p PointerState) Gesture {
	switch {
	case p.Primary.Held:
		return GesturePointerLook
	case p.Secondary.Held:
		return GesturePointerPan
	case p.Scroll != 0:
		return GesturePointerZoom
	}
	return GestureNone
}
