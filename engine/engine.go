package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-dolly/engine/camera"
	"github.com/Carmen-Shannon/oxy-dolly/engine/profiler"
	"github.com/Carmen-Shannon/oxy-dolly/engine/window"
)

// engine implements the Engine interface.
// Coordinates the tick goroutine with the window message loop on the calling thread.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	mu      *sync.Mutex
	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window
	camera camera.Camera

	profiler         *profiler.Profiler
	profilerOptions  []profiler.ProfilerOption
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	frameCallback  func()
}

// Engine is the main entry point for the engine.
// It drives a fixed-rate tick loop for camera and input updates and, when a window is
// attached, runs the window message loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, or nil when running headless
	Window() window.Window

	// Camera returns the camera kept in sync with the window size.
	//
	// Returns:
	//   - camera.Camera: the camera instance, or nil if none was attached
	Camera() camera.Camera

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// ProfilerEnabled reports whether profiling output is enabled.
	//
	// Returns:
	//   - bool: true if the profiler is ticked each engine tick
	ProfilerEnabled() bool

	// SetTickRate sets the engine tick rate in ticks per second.
	// The tick callback will be called at this rate.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick.
	// Use this to sample input and advance the camera controller.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetFrameCallback registers the function called each window message loop iteration,
	// on the thread that called Run. Window calls such as SetTitle belong here.
	//
	// Parameters:
	//   - callback: function to call each iteration (or nil to disable)
	SetFrameCallback(callback func())

	// Run starts the engine. Blocks until the window closes or Quit is called.
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, window, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		mu:               &sync.Mutex{},
		running:          false,
		wg:               sync.WaitGroup{},
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}
	e.profiler = profiler.NewProfiler(e.profilerOptions...)

	if e.window != nil {
		if e.camera != nil {
			e.camera.SetViewport(e.window.Width(), e.window.Height())
		}
		e.window.SetResizeCallback(func(width, height int) {
			if e.camera != nil {
				e.camera.SetViewport(width, height)
			}
		})
		e.window.SetUpdateCallback(func() {
			select {
			case <-e.quitChannel:
				// Window calls must stay on the message loop thread.
				if err := e.window.Close(); err != nil {
					log.Printf("[Engine] failed to close window: %v", err)
				}
				return
			default:
			}
			if cb := e.currentFrameCallback(); cb != nil {
				cb()
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Run() {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
		if err := e.window.Close(); err != nil {
			log.Printf("[Engine] failed to close window: %v", err)
		}
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
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
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

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Fires the tick callback at the configured tick rate and listens for dynamic rate changes
// via tickRateChannel. Exits when the quit channel is closed.
// Recovers from panics in the tick callback, logs them and signals quit.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] tick goroutine recovered from panic: %v", r)
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

			if cb := e.currentTickCallback(); cb != nil {
				cb(dt)
			}
			if e.ProfilerEnabled() {
				e.profiler.Tick()
			}
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

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func (e *engine) ProfilerEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profilingEnabled
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	e.mu.Lock()
	running := e.running
	e.mu.Unlock()

	if running {
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

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

// SetFrameCallback registers the function called each window message loop iteration.
func (e *engine) SetFrameCallback(callback func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.frameCallback = callback
}

func (e *engine) currentTickCallback() func(deltaTime float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tickCallback
}

func (e *engine) currentFrameCallback() func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frameCallback
}
