package mix

import (
	"errors"
	"fmt"
	"image"

	"github.com/cwbudde/algo-fftmix/dsp/region"
	"github.com/cwbudde/algo-fftmix/dsp/spectrum"
)

// Errors reported by the engine.
var (
	ErrNoValidInputs       = errors.New("mix: no valid inputs")
	ErrNoMixableComponents = errors.New("mix: no mixable components")
	ErrTransformFailure    = errors.New("mix: inverse transform failed")
	ErrCancelled           = errors.New("mix: cancelled")
	ErrTooManyInputs       = errors.New("mix: too many inputs")
	ErrInvalidRegionSize   = errors.New("mix: invalid region size")
	ErrInternal            = errors.New("mix: internal error")
)

// ProgressFunc receives the completion percentage of a job.
type ProgressFunc func(percent int)

// ResultFunc receives the mixed image, or the zero-filled placeholder of a
// failed job. The image is owned by the receiver.
type ResultFunc func(img *image.Gray)

// Input is one image and the component it contributes. A nil Image marks
// an absent input.
type Input struct {
	Image     *image.Gray
	Component spectrum.Component
	Weight    float64
}

// Job is one mixing request.
type Job struct {
	Inputs     []Input
	Region     region.Kind
	RegionSize int

	OnProgress ProgressFunc
	OnResult   ResultFunc
}

// WeightFromPercent maps a 0..100 slider position to a weight in 0..1.
func WeightFromPercent(percent int) float64 {
	return float64(percent) / 100
}

// present returns the indices of non-nil inputs in order.
func (j *Job) present() []int {
	var idx []int
	for i, in := range j.Inputs {
		if in.Image != nil {
			idx = append(idx, i)
		}
	}
	return idx
}

func (j *Job) validate(maxInputs int) error {
	if len(j.Inputs) > maxInputs {
		return fmt.Errorf("%w: %d > %d", ErrTooManyInputs, len(j.Inputs), maxInputs)
	}
	if j.RegionSize < 0 || j.RegionSize > 100 {
		return fmt.Errorf("%w: must be in [0, 100]: %d", ErrInvalidRegionSize, j.RegionSize)
	}
	switch j.Region {
	case region.Inner, region.Outer:
	default:
		return fmt.Errorf("mix: %w: %v", region.ErrUnknownKind, j.Region)
	}
	if len(j.present()) == 0 {
		return ErrNoValidInputs
	}
	return nil
}

// State is the lifecycle position of a job.
type State int32

const (
	// Idle is a job that has not started work yet.
	Idle State = iota
	// Extracting transforms and decomposes the inputs.
	Extracting
	// Mixing masks, weights and sums the extracted spectra.
	Mixing
	// Finalizing runs the inverse transform and delivers the image.
	Finalizing
	// Completed delivered the mixed image.
	Completed
	// Cancelled stopped without delivering anything.
	Cancelled
	// Failed delivered a zero-filled placeholder.
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Extracting:
		return "extracting"
	case Mixing:
		return "mixing"
	case Finalizing:
		return "finalizing"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Terminal reports whether s is Completed, Cancelled or Failed.
func (s State) Terminal() bool {
	return s == Completed || s == Cancelled || s == Failed
}
