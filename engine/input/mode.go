package input

import (
	"fmt"
	"strings"
)

// Mode selects which input families the rig reacts to.
// ModeAll runs the touch block and the pointer block in the same tick, touch first.
type Mode uint8

const (
	ModeTouch Mode = 1 << iota
	ModePointer

	ModeAll = ModeTouch | ModePointer
)

// Touch reports whether touch input is enabled.
func (m Mode) Touch() bool {
	return m&ModeTouch != 0
}

// Pointer reports whether mouse/pointer input is enabled.
func (m Mode) Pointer() bool {
	return m&ModePointer != 0
}

func (m Mode) String() string {
	switch m {
	case ModeTouch:
		return "touch"
	case ModePointer:
		return "pointer"
	case ModeAll:
		return "all"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode converts a mode name into a Mode. An empty string selects ModeAll.
//
// Parameters:
//   - s: one of all, touch, pointer
//
// Returns:
//   - Mode: the parsed mode
//   - error: error if the name is not recognized
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return ModeAll, nil
	case "touch":
		return ModeTouch, nil
	case "pointer", "mouse":
		return ModePointer, nil
	}
	return 0, fmt.Errorf("unknown input mode %q", s)
}
