package camera

import (
	"sync"

	"github.com/Carmen-Shannon/orbitrig/common"
	"github.com/Carmen-Shannon/orbitrig/engine/input"
	"github.com/Carmen-Shannon/orbitrig/engine/occlusion"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	// touchLookGain scales finger pixels into degrees before the speed multipliers.
	touchLookGain = 0.004
	// pointerLookGain scales mouse axis units into degrees before the speed multipliers.
	pointerLookGain = 0.1
	// pointerPanScale scales mouse pan relative to touch pan.
	pointerPanScale = 50
	// pointerZoomScale scales scroll zoom.
	pointerZoomScale = 10
	// pinchDivisor converts pinch pixels into world units.
	pinchDivisor = 150
	// pinchLerpRate scales the target interpolation factor per pixel of pinch per second.
	pinchLerpRate = 1000
)

// rigImpl is the single implementation of Rig.
type rigImpl struct {
	mu *sync.Mutex

	vcam      VirtualCamera
	target    Target
	occlusion occlusion.Query
	logger    *zap.Logger

	tunables Tunables
	mode     input.Mode

	// Look angles in degrees, accumulated without wrapping
	yaw   float32
	pitch float32

	// Pinch/pan state
	desired   mgl32.Vec3
	baseline  float32
	zoomDelta float32

	// onUI is latched at gesture start and cleared at gesture end
	onUI bool

	lastTouch   input.Gesture
	lastPointer input.Gesture
}

// Compile-time interface compliance check
var _ Rig = &rigImpl{}

// NewRig creates a rig driving vcam and following target. The camera is given MaxPriority,
// told to follow target, and the rig's yaw and pitch start from the camera's current angles.
//
// Parameters:
//   - vcam: the virtual camera to orient
//   - target: the object to follow and move
//   - options: functional options to configure the rig
//
// Returns:
//   - Rig: the newly created rig
//   - error: ErrNilCamera or ErrNilTarget if a collaborator is missing
func NewRig(vcam VirtualCamera, target Target, options ...RigOption) (Rig, error) {
	if vcam == nil {
		return nil, ErrNilCamera
	}
	if target == nil {
		return nil, ErrNilTarget
	}

	r := &rigImpl{
		mu:        &sync.Mutex{},
		vcam:      vcam,
		target:    target,
		occlusion: occlusion.Never,
		logger:    zap.NewNop(),
		tunables:  DefaultTunables(),
		mode:      input.ModeAll,
	}

	for _, option := range options {
		option(r)
	}

	vcam.SetPriority(MaxPriority)
	vcam.SetFollow(target)
	r.pitch, r.yaw, _ = vcam.Euler()

	return r, nil
}

func (r *rigImpl) Update(deltaTime float32, snap input.Snapshot) Frame {
	r.mu.Lock()
	defer r.mu.Unlock()

	class := input.Classify(snap, r.mode)
	r.logTransitions(class)
	r.latch(snap)

	if r.onUI {
		return r.frame(class, true)
	}

	if r.mode.Touch() {
		r.applyTouch(deltaTime, snap.Touches, class.Touch)
	}
	if r.mode.Pointer() {
		r.applyPointer(snap.Pointer, class.Pointer)
	}

	return r.frame(class, false)
}

// latch evaluates the occlusion gate at gesture start and releases it at gesture end.
// Caller must hold the mutex.
func (r *rigImpl) latch(snap input.Snapshot) {
	if r.mode.Touch() && len(snap.Touches) > 0 {
		t := snap.Touches[0]
		switch t.Phase {
		case input.PhaseBegan:
			r.setOnUI(r.occlusion.IsOccluded(t.Position))
		case input.PhaseEnded, input.PhaseCanceled:
			r.setOnUI(false)
		}
	}

	if r.mode.Pointer() {
		p := snap.Pointer
		if p.Primary.Down {
			r.setOnUI(r.occlusion.IsOccluded(p.Position))
		} else if p.Primary.Up {
			r.setOnUI(false)
		}
	}
}

// setOnUI updates the occlusion latch.
// Caller must hold the mutex.
func (r *rigImpl) setOnUI(onUI bool) {
	if r.onUI != onUI {
		r.logger.Debug("ui occlusion latch", zap.Bool("on_ui", onUI))
	}
	r.onUI = onUI
}

// applyTouch integrates touch gestures.
// Caller must hold the mutex.
func (r *rigImpl) applyTouch(deltaTime float32, touches []input.Touch, gesture input.Gesture) {
	switch gesture {
	case input.GestureLook:
		d := touches[0].Delta
		r.look(d.X()*r.tunables.XSpeed*touchLookGain, d.Y()*r.tunables.YSpeed*touchLookGain)
	case input.GesturePinchBegin:
		r.baseline = common.ScreenDistance(touches[0].Position, touches[1].Position)
	case input.GesturePinchMove:
		r.pinch(deltaTime, touches[0], touches[1])
	}
}

// pinch applies a two-finger move: pan when both fingers travel together, zoom along the
// ray through their midpoint, then pull the target toward the desired position at a rate
// proportional to how fast the pinch is changing.
// Caller must hold the mutex.
func (r *rigImpl) pinch(deltaTime float32, t0, t1 input.Touch) {
	distance := common.ScreenDistance(t0.Position, t1.Position)
	r.zoomDelta = distance - r.baseline

	ray := r.vcam.ScreenPointToRay(common.ScreenMidpoint(t0.Position, t1.Position))

	spreadX := common.Abs(t0.Delta.X() - t1.Delta.X())
	spreadY := common.Abs(t0.Delta.Y() - t1.Delta.Y())
	if spreadX < r.tunables.PanTouchesSpace && spreadY < r.tunables.PanTouchesSpace {
		pan := r.vcam.Right().Mul(-t0.Delta.X() * r.tunables.PanSpeed)
		pan = pan.Add(r.vcam.Up().Mul(-t0.Delta.Y() * r.tunables.PanSpeed))
		r.desired = r.desired.Add(pan)
	}

	r.baseline = distance
	r.desired = r.desired.Add(ray.Direction.Mul(r.tunables.ZoomRate * r.zoomDelta / pinchDivisor))

	t := deltaTime * common.Abs(r.zoomDelta) * pinchLerpRate
	r.target.SetPosition(common.Lerp(r.target.Position(), r.desired, t))
}

// applyPointer integrates mouse gestures. Pan and zoom move the target directly.
// Caller must hold the mutex.
func (r *rigImpl) applyPointer(p input.PointerState, gesture input.Gesture) {
	switch gesture {
	case input.GesturePointerLook:
		r.look(p.Axis.X()*r.tunables.XSpeed*pointerLookGain, p.Axis.Y()*r.tunables.YSpeed*pointerLookGain)
	case input.GesturePointerPan:
		scale := r.tunables.PanSpeed * pointerPanScale
		offset := r.vcam.Right().Mul(-p.Axis.X() * scale)
		offset = offset.Add(r.vcam.Up().Mul(-p.Axis.Y() * scale))
		r.target.SetPosition(r.target.Position().Add(offset))
	case input.GesturePointerZoom:
		offset := r.vcam.Forward().Mul(r.tunables.ZoomRate * p.Scroll * r.tunables.ZoomRate * pointerZoomScale)
		r.target.SetPosition(r.target.Position().Add(offset))
	}
}

// look accumulates look angles and applies the rotation immediately.
// Caller must hold the mutex.
func (r *rigImpl) look(dYaw, dPitch float32) {
	r.yaw += dYaw
	r.pitch -= dPitch
	r.vcam.SetEuler(r.pitch, r.yaw, 0)
}

// logTransitions logs gesture changes at debug level.
// Caller must hold the mutex.
func (r *rigImpl) logTransitions(class input.Classification) {
	if class.Touch != r.lastTouch {
		r.logger.Debug("touch gesture",
			zap.Stringer("from", r.lastTouch),
			zap.Stringer("to", class.Touch),
		)
		r.lastTouch = class.Touch
	}
	if class.Pointer != r.lastPointer {
		r.logger.Debug("pointer gesture",
			zap.Stringer("from", r.lastPointer),
			zap.Stringer("to", class.Pointer),
		)
		r.lastPointer = class.Pointer
	}
}

// frame builds the tick output.
// Caller must hold the mutex.
func (r *rigImpl) frame(class input.Classification, suppressed bool) Frame {
	return Frame{
		Yaw:             r.yaw,
		Pitch:           r.pitch,
		Rotation:        r.vcam.Rotation(),
		TargetPosition:  r.target.Position(),
		DesiredPosition: r.desired,
		Touch:           class.Touch,
		Pointer:         class.Pointer,
		Suppressed:      suppressed,
	}
}

func (r *rigImpl) Yaw() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.yaw
}

func (r *rigImpl) Pitch() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pitch
}

func (r *rigImpl) DesiredPosition() mgl32.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.desired
}

func (r *rigImpl) SetDesiredPosition(position mgl32.Vec3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.desired = position
}

func (r *rigImpl) Baseline() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.baseline
}

func (r *rigImpl) OnUI() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.onUI
}

func (r *rigImpl) Tunables() Tunables {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tunables
}

func (r *rigImpl) SetTunables(t Tunables) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tunables = t
}

func (r *rigImpl) Mode() input.Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

func (r *rigImpl) SetMode(mode input.Mode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mode = mode
}

func (r *rigImpl) Camera() VirtualCamera {
	return r.vcam
}

func (r *rigImpl) Target() Target {
	return r.target
}
