package mix

import (
	"context"
	"image"
	"sync"
	"sync/atomic"
)

// Handle tracks one started job.
type Handle struct {
	ctx    context.Context
	cancel context.CancelFunc

	state    atomic.Int32
	progress atomic.Int32

	// notifyMu serializes callbacks and the terminal transition.
	notifyMu   sync.Mutex
	onProgress ProgressFunc
	onResult   ResultFunc
	resultSent bool

	done     chan struct{}
	doneOnce sync.Once
	result   *image.Gray
	err      error
}

func newHandle(parent context.Context, job *Job) *Handle {
	ctx, cancel := context.WithCancel(parent)
	return &Handle{
		ctx:        ctx,
		cancel:     cancel,
		onProgress: job.OnProgress,
		onResult:   job.OnResult,
		done:       make(chan struct{}),
	}
}

// Cancel requests cooperative cancellation. It does not wait; use [Handle.Wait]
// or [Handle.Done] for that. Cancel after the job terminated has no effect.
func (h *Handle) Cancel() { h.cancel() }

// Done is closed when the job reaches a terminal state.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Wait blocks until the job terminates. A completed job returns its image.
// A failed job returns the placeholder image and the failure. A cancelled
// job returns ErrCancelled and no image.
func (h *Handle) Wait() (*image.Gray, error) {
	<-h.done
	return h.result, h.err
}

// State returns the current lifecycle state.
func (h *Handle) State() State { return State(h.state.Load()) }

// Progress returns the last emitted progress value.
func (h *Handle) Progress() int { return int(h.progress.Load()) }

func (h *Handle) setState(s State) {
	for {
		cur := h.state.Load()
		if State(cur).Terminal() {
			return
		}
		if h.state.CompareAndSwap(cur, int32(s)) {
			return
		}
	}
}

func (h *Handle) cancelled() bool { return h.ctx.Err() != nil }

// emitProgress delivers p if it increases the last emitted value and the job
// is still live.
func (h *Handle) emitProgress(p int) {
	h.notifyMu.Lock()
	defer h.notifyMu.Unlock()
	h.emitProgressLocked(p)
}

func (h *Handle) emitProgressLocked(p int) {
	if h.cancelled() || int32(p) <= h.progress.Load() {
		return
	}
	h.progress.Store(int32(p))
	if h.onProgress != nil {
		h.onProgress(p)
	}
}

// deliver emits progress 100 and the image, then enters state. A cancel
// observed before either notification turns the outcome into Cancelled.
func (h *Handle) deliver(state State, img *image.Gray, err error) {
	h.notifyMu.Lock()
	defer h.notifyMu.Unlock()

	if h.cancelled() {
		h.finish(Cancelled, nil, h.cancelErr())
		return
	}
	h.emitProgressLocked(100)
	if h.cancelled() {
		h.finish(Cancelled, nil, h.cancelErr())
		return
	}
	if h.onResult != nil && !h.resultSent {
		h.resultSent = true
		h.onResult(img)
	}
	h.finish(state, img, err)
}

func (h *Handle) abort() {
	h.notifyMu.Lock()
	defer h.notifyMu.Unlock()
	h.finish(Cancelled, nil, h.cancelErr())
}

func (h *Handle) cancelErr() error {
	if cause := context.Cause(h.ctx); cause != nil && cause != context.Canceled {
		return &cancelError{cause: cause}
	}
	return ErrCancelled
}

func (h *Handle) finish(state State, img *image.Gray, err error) {
	h.doneOnce.Do(func() {
		h.result = img
		h.err = err
		h.state.Store(int32(state))
		close(h.done)
	})
}

// cancelError reports a cancellation caused by the parent context, for
// example a deadline.
type cancelError struct{ cause error }

func (e *cancelError) Error() string { return ErrCancelled.Error() + ": " + e.cause.Error() }

func (e *cancelError) Unwrap() []error { return []error{ErrCancelled, e.cause} }
