// Package replay loads scripted input traces from YAML and feeds them through a rig
// deterministically, one snapshot per frame.
package replay

import (
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/orbitrig/common"
	"github.com/Carmen-Shannon/orbitrig/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultDeltaTime is the frame time used when a trace does not set one.
	DefaultDeltaTime = float32(1.0 / 60.0)
)

var (
	// ErrEmptyTrace is returned when a trace has no frames.
	ErrEmptyTrace = errors.New("replay: trace has no frames")
	// ErrUnknownPhase is returned when a trace touch names an unknown phase.
	ErrUnknownPhase = errors.New("replay: unknown touch phase")
)

// Trace is a scripted sequence of input frames.
type Trace struct {
	Name string `yaml:"name"`
	// DeltaTime is the frame time in seconds applied to every frame without its own.
	DeltaTime float32 `yaml:"delta_time"`
	// Viewport is the screen size in pixels the positions refer to.
	Viewport [2]float32   `yaml:"viewport"`
	Frames   []TraceFrame `yaml:"frames"`
}

// TraceFrame is the input of one tick.
type TraceFrame struct {
	// DeltaTime overrides the trace frame time when nonzero.
	DeltaTime float32       `yaml:"delta_time,omitempty"`
	Touches   []TraceTouch  `yaml:"touches,omitempty"`
	Pointer   *TracePointer `yaml:"pointer,omitempty"`
}

// TraceTouch is one touch contact, in bottom-left pixel space.
type TraceTouch struct {
	ID       int        `yaml:"id"`
	Position [2]float32 `yaml:"position"`
	Delta    [2]float32 `yaml:"delta"`
	Phase    string     `yaml:"phase"`
}

// TracePointer is the mouse state of one tick.
type TracePointer struct {
	Position  [2]float32  `yaml:"position"`
	Axis      [2]float32  `yaml:"axis"`
	Primary   TraceButton `yaml:"primary"`
	Secondary TraceButton `yaml:"secondary"`
	Scroll    float32     `yaml:"scroll"`
}

// TraceButton is a mouse button's edge and level state.
type TraceButton struct {
	Down bool `yaml:"down"`
	Held bool `yaml:"held"`
	Up   bool `yaml:"up"`
}

// LoadTrace reads and validates a trace file.
//
// Parameters:
//   - path: path to a YAML trace
//
// Returns:
//   - *Trace: the parsed trace, named after the file if it has no name
//   - error: read, decode or validation error
func LoadTrace(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace %s: %w", path, err)
	}
	tr, err := ParseTrace(data)
	if err != nil {
		return nil, fmt.Errorf("trace %s: %w", path, err)
	}
	tr.Name = common.Coalesce(tr.Name, path)
	return tr, nil
}

// ParseTrace decodes and validates a YAML trace, filling in the default frame time and viewport.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *Trace: the parsed trace
//   - error: decode error, ErrEmptyTrace or ErrUnknownPhase
func ParseTrace(data []byte) (*Trace, error) {
	var tr Trace
	if err := yaml.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("decode trace: %w", err)
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	if tr.DeltaTime <= 0 {
		tr.DeltaTime = DefaultDeltaTime
	}
	if tr.Viewport[0] <= 0 || tr.Viewport[1] <= 0 {
		tr.Viewport = [2]float32{1280, 720}
	}
	return &tr, nil
}

// Validate checks that the trace has frames and every touch phase is known.
func (tr *Trace) Validate() error {
	if len(tr.Frames) == 0 {
		return ErrEmptyTrace
	}
	for i, f := range tr.Frames {
		for j, t := range f.Touches {
			if _, err := input.ParsePhase(t.Phase); err != nil {
				return fmt.Errorf("%w: frame %d touch %d: %q", ErrUnknownPhase, i, j, t.Phase)
			}
		}
	}
	return nil
}

// FrameTime returns the frame time for frame i.
func (tr *Trace) FrameTime(i int) float32 {
	if dt := tr.Frames[i].DeltaTime; dt > 0 {
		return dt
	}
	if tr.DeltaTime > 0 {
		return tr.DeltaTime
	}
	return DefaultDeltaTime
}

// Snapshots converts every frame into an input snapshot. The trace must be valid.
//
// Returns:
//   - []input.Snapshot: one snapshot per frame
func (tr *Trace) Snapshots() []input.Snapshot {
	out := make([]input.Snapshot, len(tr.Frames))
	for i, f := range tr.Frames {
		out[i] = f.Snapshot()
	}
	return out
}

// Snapshot converts the frame into an input snapshot. Phases are assumed valid.
func (f TraceFrame) Snapshot() input.Snapshot {
	var s input.Snapshot
	if len(f.Touches) > 0 {
		s.Touches = make([]input.Touch, len(f.Touches))
		for i, t := range f.Touches {
			phase, _ := input.ParsePhase(t.Phase)
			s.Touches[i] = input.Touch{
				ID:       t.ID,
				Position: mgl32.Vec2(t.Position),
				Delta:    mgl32.Vec2(t.Delta),
				Phase:    phase,
			}
		}
	}
	if p := f.Pointer; p != nil {
		s.Pointer = input.PointerState{
			Position:  mgl32.Vec2(p.Position),
			Axis:      mgl32.Vec2(p.Axis),
			Primary:   input.Button(p.Primary),
			Secondary: input.Button(p.Secondary),
			Scroll:    p.Scroll,
		}
	}
	return s
}
