package replay

import (
	"errors"

	"github.com/Carmen-Shannon/orbitrig/engine/camera"
)

// Result summarizes one replayed trace.
type Result struct {
	Name       string     `yaml:"name"`
	Frames     int        `yaml:"frames"`
	Suppressed int        `yaml:"suppressed"`
	Yaw        float32    `yaml:"yaw"`
	Pitch      float32    `yaml:"pitch"`
	Target     [3]float32 `yaml:"target"`
	Desired    [3]float32 `yaml:"desired"`
}

// Play feeds every frame of trace through rig in order. The rig's camera viewport is set to the
// trace viewport first so rays are cast through the same screen the trace was recorded on.
//
// Parameters:
//   - rig: the rig to drive; its state carries over from any previous use
//   - trace: a validated trace
//
// Returns:
//   - Result: the final rig state
//   - []camera.Frame: the frame produced for every trace frame
//   - error: ErrEmptyTrace if the trace is nil or has no frames
func Play(rig camera.Rig, trace *Trace) (Result, []camera.Frame, error) {
	if rig == nil {
		return Result{}, nil, errors.New("replay: rig is nil")
	}
	if trace == nil || len(trace.Frames) == 0 {
		return Result{}, nil, ErrEmptyTrace
	}

	if trace.Viewport[0] > 0 && trace.Viewport[1] > 0 {
		rig.Camera().SetViewport(trace.Viewport[0], trace.Viewport[1])
	}

	res := Result{Name: trace.Name}
	frames := make([]camera.Frame, 0, len(trace.Frames))
	for i, f := range trace.Frames {
		frame := rig.Update(trace.FrameTime(i), f.Snapshot())
		if frame.Suppressed {
			res.Suppressed++
		}
		frames = append(frames, frame)
	}

	last := frames[len(frames)-1]
	res.Frames = len(frames)
	res.Yaw = last.Yaw
	res.Pitch = last.Pitch
	res.Target = last.TargetPosition
	res.Desired = last.DesiredPosition
	return res, frames, nil
}
