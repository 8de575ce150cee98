package mix

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-fftmix/dsp/core"
	"github.com/cwbudde/algo-fftmix/dsp/region"
	"github.com/cwbudde/algo-fftmix/dsp/spectrum"
)

// extraction is the decomposition of one present input.
type extraction struct {
	index int
	set   *spectrum.ComponentSet
	err   error
}

type worker struct {
	cfg config
	h   *Handle
	job Job

	width, height int
	total         int
}

func (w *worker) run() {
	defer w.h.cancel()
	defer func() {
		if r := recover(); r != nil {
			w.recoverFail(fmt.Errorf("%w: %v", ErrInternal, r))
		}
	}()

	present := w.job.present()
	w.total = len(present)
	w.h.setState(Extracting)

	width, height, ok := targetShape(w.job.Inputs, present)
	if !ok {
		w.fail(fmt.Errorf("%w: every present image is empty", ErrNoMixableComponents))
		return
	}
	w.width, w.height = width, height
	w.cfg.logger.Printf("fftmix: mixing %d input(s) at %dx%d, region %v %d%%",
		len(present), width, height, w.job.Region, w.job.RegionSize)

	results := w.extractAll(present)
	if w.h.cancelled() {
		w.h.abort()
		return
	}

	w.h.setState(Mixing)
	sum, err := w.mixAll(results)
	if w.h.cancelled() {
		w.h.abort()
		return
	}
	if err != nil {
		w.fail(err)
		return
	}

	w.h.setState(Finalizing)
	g, err := spectrum.Inverse(sum)
	if err != nil {
		w.fail(fmt.Errorf("%w: %w", ErrTransformFailure, err))
		return
	}
	w.h.deliver(Completed, g.Gray(), nil)
}

// extractAll decomposes every present input on up to cfg.workers goroutines.
// Progress is reported from the calling goroutine as inputs finish. Results
// keep input order; inputs not dispatched before cancellation stay zero.
func (w *worker) extractAll(present []int) []extraction {
	results := make([]extraction, len(present))
	next := make(chan int)
	finished := make(chan struct{})

	n := min(w.cfg.workers, len(present))
	var wg sync.WaitGroup
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			var plan *spectrum.Plan
			for k := range next {
				idx := present[k]
				set, err := w.extract(&plan, w.job.Inputs[idx])
				results[k] = extraction{index: idx, set: set, err: err}
				finished <- struct{}{}
			}
		}()
	}

	sent, done := 0, 0
	for {
		var dispatch chan int
		if sent < len(present) && !w.h.cancelled() {
			dispatch = next
		}
		if dispatch == nil && done == sent {
			break
		}
		select {
		case dispatch <- sent:
			sent++
		case <-finished:
			done++
			w.tick(done)
		}
	}
	close(next)
	wg.Wait()
	return results
}

func (w *worker) extract(plan **spectrum.Plan, in Input) (set *spectrum.ComponentSet, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	if in.Component.Pair() == 0 {
		return nil, fmt.Errorf("%w: %v", spectrum.ErrUnsupportedComponent, in.Component)
	}

	img, err := fitGray(in.Image, w.width, w.height, w.cfg.filter)
	if err != nil {
		return nil, err
	}

	if *plan == nil {
		p, err := spectrum.NewPlan(w.width, w.height)
		if err != nil {
			return nil, err
		}
		*plan = p
	}

	s, err := (*plan).Forward(core.GridFromGray(img))
	if err != nil {
		return nil, err
	}
	return spectrum.Decompose(s)
}

// tick reports rounded progress after done inputs finished.
func (w *worker) tick(done int) {
	w.h.emitProgress((done*200 + w.total) / (2 * w.total))
}

// mixAll masks, weights and sums the usable extractions.
func (w *worker) mixAll(results []extraction) (*spectrum.Spectrum, error) {
	mask, err := region.New(w.height, w.width, w.job.Region, w.job.RegionSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	sum := spectrum.NewSpectrum(w.width, w.height)
	mixed := 0
	for _, r := range results {
		if w.h.cancelled() {
			break
		}
		if r.set == nil && r.err == nil {
			continue
		}
		if r.err != nil {
			w.cfg.logger.Printf("fftmix: input %d: skipped: %v", r.index, r.err)
			continue
		}

		in := w.job.Inputs[r.index]
		s, err := spectrum.Reconstruct(in.Component.Pair(), r.set)
		if err == nil {
			err = mask.Apply(s)
		}
		if err == nil {
			err = sum.AddScaled(s, in.Weight)
		}
		if err != nil {
			w.cfg.logger.Printf("fftmix: input %d: skipped: %v", r.index, err)
			continue
		}
		mixed++
	}

	if mixed == 0 {
		return nil, ErrNoMixableComponents
	}
	return sum, nil
}

// fail delivers a placeholder of the target shape.
func (w *worker) fail(err error) {
	w.cfg.logger.Printf("fftmix: job failed: %v", err)
	w.h.deliver(Failed, placeholder(w.width, w.height), err)
}

// recoverFail is fail for a recovered panic. A callback that panics again
// ends the job without further notifications.
func (w *worker) recoverFail(err error) {
	defer func() {
		if recover() != nil {
			w.h.finish(Failed, placeholder(w.width, w.height), err)
		}
	}()
	w.fail(err)
}
