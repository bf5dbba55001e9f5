package replay

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-dolly/engine/camera"
)

// Result is the outcome of replaying one recording.
type Result struct {
	Name       string
	Ticks      int
	Position   mgl32.Vec3
	State      camera.CameraState
	Violations []Violation
	// Err is set when the recording could not be replayed at all.
	Err error
}

// Passed reports whether the recording replayed without errors or violations.
func (r Result) Passed() bool {
	return r.Err == nil && len(r.Violations) == 0
}

// Runner replays recordings in parallel on a worker pool.
type Runner interface {
	// Run replays every recording on its own camera and controller.
	// Blocks until all recordings are done.
	//
	// Parameters:
	//   - recordings: the sessions to replay
	//
	// Returns:
	//   - []Result: one result per recording, in input order
	Run(recordings []*Recording) []Result

	// Workers returns the maximum number of recordings replayed at once.
	//
	// Returns:
	//   - int: the worker count
	Workers() int
}

type runnerImpl struct {
	workers   int
	queueSize int
	debug     bool

	pool     worker.DynamicWorkerPool
	poolOnce sync.Once
}

var _ Runner = &runnerImpl{}

// NewRunner creates a Runner. The worker pool is created on the first Run and reused afterwards.
//
// Parameters:
//   - options: functional options to configure the runner
//
// Returns:
//   - Runner: the newly created runner
func NewRunner(options ...RunnerOption) Runner {
	r := &runnerImpl{
		workers:   runtime.NumCPU(),
		queueSize: 256,
	}
	for _, opt := range options {
		opt(r)
	}
	if r.workers <= 0 {
		r.workers = 1
	}
	if r.queueSize <= 0 {
		r.queueSize = 1
	}
	return r
}

func (r *runnerImpl) Workers() int {
	return r.workers
}

func (r *runnerImpl) Run(recordings []*Recording) []Result {
	r.poolOnce.Do(func() {
		r.pool = worker.NewDynamicWorkerPool(r.workers, r.queueSize, 1*time.Second)
	})

	results := make([]Result, len(recordings))

	// Workers are reused across runs; the WaitGroup is the per-run barrier.
	var wg sync.WaitGroup
	for i, rec := range recordings {
		wg.Add(1)
		idx := i
		recCap := rec
		r.pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				defer func() {
					if p := recover(); p != nil {
						results[idx] = Result{Name: recCap.Name, Err: fmt.Errorf("replay panicked: %v", p)}
					}
				}()
				results[idx] = replay(recCap, r.debug)
				return nil, results[idx].Err
			},
		})
	}
	wg.Wait()

	return results
}

// replay runs one recording through a fresh camera and controller.
func replay(rec *Recording, debug bool) Result {
	if rec == nil {
		return Result{Err: fmt.Errorf("nil recording")}
	}
	res := Result{Name: rec.Name}

	cfg, err := rec.ControllerConfig()
	if err != nil {
		res.Err = err
		return res
	}

	cam := rec.Camera.NewCamera()
	tc := camera.NewTouchController(cam,
		camera.WithConfig(cfg),
		camera.WithDebugLogging(debug),
	)

	for i, frame := range rec.Frames {
		sample, err := frame.Sample()
		if err != nil {
			res.Err = fmt.Errorf("frame %d: %w", i, err)
			return res
		}

		before := tc.State()
		res.Position = tc.Tick(frame.DeltaTime, sample)
		res.State = tc.State()
		res.Ticks++

		res.Violations = append(res.Violations, checkTick(tickCheck{
			tick:     i,
			cfg:      cfg,
			sample:   sample,
			before:   before,
			after:    res.State,
			position: res.Position,
		})...)
	}

	if debug {
		log.Printf("[Replay] %s: %d ticks, position %v, %d violations", res.Name, res.Ticks, res.Position, len(res.Violations))
	}
	return res
}
