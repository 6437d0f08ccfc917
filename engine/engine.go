package engine

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/orbitrig/engine/camera"
	"github.com/Carmen-Shannon/orbitrig/engine/input"
	"github.com/Carmen-Shannon/orbitrig/engine/profiler"
	"go.uber.org/zap"
)

var (
	// ErrNilRig is returned by NewEngine when no rig is supplied.
	ErrNilRig = errors.New("engine: rig is nil")
	// ErrNilSource is returned by NewEngine when no input source is supplied.
	ErrNilSource = errors.New("engine: input source is nil")
)

// Window is the part of a host window the engine drives. window.Window satisfies it; the
// engine depends only on this subset so headless and ebiten hosts do not link GLFW.
type Window interface {
	// ProcessMessages runs the window message loop until the window closes.
	ProcessMessages()
	// SetResizeCallback sets the function called when the window is resized.
	SetResizeCallback(callback func(width, height int))
	// Width returns the current client width in pixels.
	Width() int
	// Height returns the current client height in pixels.
	Height() int
}

// viewportSetter is implemented by input sources that convert pixel coordinates and need
// to know the viewport height.
type viewportSetter interface {
	SetViewportHeight(height float32)
}

// engine implements the Engine interface.
// Coordinates the tick goroutine and the window message loop.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	rig    camera.Rig
	source input.Source
	window Window
	logger *zap.Logger

	// stepMu serializes Step so hosts may call it from their own loop alongside the ticker
	stepMu           sync.Mutex
	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	engineTickRate time.Duration
	frameCallback  func(frame camera.Frame)
}

// Engine drives a Rig from an input source. Each tick it takes one snapshot from the source,
// feeds it to the rig with the elapsed time, and hands the resulting frame to the frame callback.
type Engine interface {
	// Rig returns the rig being driven.
	//
	// Returns:
	//   - camera.Rig: the rig
	Rig() camera.Rig

	// Window returns the window, or nil when the engine runs headless.
	//
	// Returns:
	//   - Window: the window instance
	Window() Window

	// EnableProfiler enables periodic stats output to the logger.
	EnableProfiler()

	// DisableProfiler disables periodic stats output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetFrameCallback registers the function called with every frame the rig produces.
	//
	// Parameters:
	//   - callback: function receiving the frame (or nil to disable)
	SetFrameCallback(callback func(frame camera.Frame))

	// Step runs one update synchronously: snapshot, rig update, profiler, frame callback.
	// Hosts that own their loop (ebiten) call Step instead of Run.
	//
	// Parameters:
	//   - deltaTime: elapsed time in seconds
	//
	// Returns:
	//   - camera.Frame: the frame produced by the rig
	Step(deltaTime float32) camera.Frame

	// Run starts the tick loop and blocks. With a window it runs the window message loop until
	// the window closes; without one it blocks until Quit is called.
	Run()

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine driving rig from source.
//
// Parameters:
//   - rig: the camera rig to update
//   - source: the per-tick input provider
//   - options: functional options for engine configuration (window, profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
//   - error: ErrNilRig or ErrNilSource if a collaborator is missing
func NewEngine(rig camera.Rig, source input.Source, options ...EngineBuilderOption) (Engine, error) {
	if rig == nil {
		return nil, ErrNilRig
	}
	if source == nil {
		return nil, ErrNilSource
	}

	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		rig:             rig,
		source:          source,
		logger:          zap.NewNop(),
		engineTickRate:  time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}
	e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))

	if e.window != nil {
		e.resize(e.window.Width(), e.window.Height())
		e.window.SetResizeCallback(e.resize)
	}

	return e, nil
}

// resize propagates a new viewport size to the camera lens and the input source.
func (e *engine) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	e.rig.Camera().SetViewport(float32(width), float32(height))
	if vs, ok := e.source.(viewportSetter); ok {
		vs.SetViewportHeight(float32(height))
	}
	e.logger.Debug("viewport resized", zap.Int("width", width), zap.Int("height", height))
}

func (e *engine) Rig() camera.Rig {
	return e.rig
}

func (e *engine) Window() Window {
	return e.window
}

func (e *engine) Step(deltaTime float32) camera.Frame {
	e.stepMu.Lock()
	defer e.stepMu.Unlock()

	frame := e.rig.Update(deltaTime, e.source.Snapshot())

	if e.profilingEnabled.Load() {
		e.profiler.Tick(frame)
	}
	if e.frameCallback != nil {
		e.frameCallback(frame)
	}
	return frame
}

func (e *engine) Run() {
	e.running.Store(true)
	e.handle()

	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	}

	e.wg.Wait()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running.Store(false)
		close(e.quitChannel)
	})
}

// handle launches the tick and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleQuit()
}

// handleEngine runs the fixed-rate tick loop in its own goroutine.
// Steps the rig at the configured tick rate and listens for dynamic rate changes
// via tickRateChannel. Recovers from panics in the rig or callbacks, logs them and signals quit.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("tick goroutine recovered from panic", zap.Any("panic", r))
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			e.Step(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)

	if e.running.Load() {
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

func (e *engine) SetFrameCallback(callback func(frame camera.Frame)) {
	e.stepMu.Lock()
	defer e.stepMu.Unlock()
	e.frameCallback = callback
}

// tickInterval converts a tick rate into a ticker period, defaulting to 60Hz.
func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
