package mix

import (
	"fmt"
	"io"
	"log"

	"github.com/disintegration/imaging"
)

// MaxInputs is the number of inputs a Mixer accepts by default.
const MaxInputs = 4

// Option configures a [Mixer].
type Option func(*config) error

type config struct {
	logger    *log.Logger
	filter    imaging.ResampleFilter
	workers   int
	maxInputs int
}

func defaultConfig() config {
	return config{
		logger:    log.New(io.Discard, "", 0),
		filter:    imaging.Linear,
		workers:   1,
		maxInputs: MaxInputs,
	}
}

// WithLogger sets the logger for per-input diagnostics and job outcomes.
// A nil logger discards output (the default).
func WithLogger(logger *log.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			logger = log.New(io.Discard, "", 0)
		}
		cfg.logger = logger
		return nil
	}
}

// WithResampleFilter sets the filter used to resize inputs to the target
// shape (default imaging.Linear).
func WithResampleFilter(filter imaging.ResampleFilter) Option {
	return func(cfg *config) error {
		if filter.Kernel == nil && filter.Support != 0 {
			return fmt.Errorf("mix: resample filter has no kernel")
		}
		cfg.filter = filter
		return nil
	}
}

// WithWorkers sets how many inputs are transformed concurrently (default 1).
// Results do not depend on the worker count.
func WithWorkers(workers int) Option {
	return func(cfg *config) error {
		if workers < 1 {
			return fmt.Errorf("mix: workers must be >= 1: %d", workers)
		}
		cfg.workers = workers
		return nil
	}
}

// WithMaxInputs sets the maximum number of inputs per job (default
// [MaxInputs]).
func WithMaxInputs(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("mix: max inputs must be >= 1: %d", n)
		}
		cfg.maxInputs = n
		return nil
	}
}
