package mix

import (
	"context"
	"image"
	"sync"
)

// Mixer runs mixing jobs, at most one at a time.
type Mixer struct {
	cfg config

	// startMu orders concurrent Start calls.
	startMu sync.Mutex

	mu     sync.Mutex
	active *Handle
}

// New creates a Mixer.
func New(opts ...Option) (*Mixer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Mixer{cfg: cfg}, nil
}

// Start validates job and runs it on a new worker goroutine.
//
// An invalid job is rejected without touching the active job. Otherwise the
// active job, if any, is cancelled and awaited before the new one starts.
// When every input is absent Start returns [ErrNoValidInputs] and no
// notification fires.
func (m *Mixer) Start(ctx context.Context, job Job) (*Handle, error) {
	if err := job.validate(m.cfg.maxInputs); err != nil {
		return nil, err
	}
	job.Inputs = append([]Input(nil), job.Inputs...)

	m.startMu.Lock()
	defer m.startMu.Unlock()

	if prev := m.Active(); prev != nil {
		prev.Cancel()
		<-prev.Done()
	}

	h := newHandle(ctx, &job)
	m.mu.Lock()
	m.active = h
	m.mu.Unlock()

	w := &worker{cfg: m.cfg, h: h, job: job, width: 1, height: 1}
	go w.run()
	return h, nil
}

// Active returns the running job, or nil.
func (m *Mixer) Active() *Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return nil
	}
	select {
	case <-m.active.Done():
		return nil
	default:
		return m.active
	}
}

// Cancel cancels the running job, if any, without waiting for it.
func (m *Mixer) Cancel() {
	if h := m.Active(); h != nil {
		h.Cancel()
	}
}

// Mix runs job to completion on a fresh Mixer and returns the result.
func Mix(ctx context.Context, job Job, opts ...Option) (*image.Gray, error) {
	m, err := New(opts...)
	if err != nil {
		return nil, err
	}
	h, err := m.Start(ctx, job)
	if err != nil {
		return nil, err
	}
	return h.Wait()
}
