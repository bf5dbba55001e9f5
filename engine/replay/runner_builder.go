package replay

// RunnerOption is a functional option for configuring a Runner.
type RunnerOption func(*runnerImpl)

// WithWorkers sets how many recordings are replayed at once.
//
// Parameters:
//   - n: worker count (values <= 0 mean 1)
//
// Returns:
//   - RunnerOption: option function to apply
func WithWorkers(n int) RunnerOption {
	return func(r *runnerImpl) {
		r.workers = n
	}
}

// WithQueueSize sets the worker pool task queue size.
//
// Parameters:
//   - n: queued recordings before Run blocks on submission
//
// Returns:
//   - RunnerOption: option function to apply
func WithQueueSize(n int) RunnerOption {
	return func(r *runnerImpl) {
		r.queueSize = n
	}
}

// WithDebugLogging enables controller debug logging and a summary line per recording.
//
// Parameters:
//   - enabled: true to log
//
// Returns:
//   - RunnerOption: option function to apply
func WithDebugLogging(enabled bool) RunnerOption {
	return func(r *runnerImpl) {
		r.debug = enabled
	}
}
