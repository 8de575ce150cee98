package region

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/cwbudde/algo-fftmix/dsp/spectrum"
)

// DefaultPercent is the region size used when none is chosen.
const DefaultPercent = 50

// Errors returned by region functions.
var (
	ErrInvalidSize = errors.New("region: invalid size")
	ErrUnknownKind = errors.New("region: unknown kind")
)

// Kind selects which side of the region boundary a mask keeps.
type Kind int

const (
	// Inner keeps the centered square.
	Inner Kind = iota
	// Outer keeps everything outside the centered square.
	Outer
)

func (k Kind) String() string {
	switch k {
	case Inner:
		return "Inner"
	case Outer:
		return "Outer"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind resolves "inner" or "outer", case-insensitively.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "inner", "in":
		return Inner, nil
	case "outer", "out":
		return Outer, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Size returns the side of the centered square: floor(min(h, w) * percent / 100).
func Size(h, w, percent int) int {
	return min(h, w) * percent / 100
}

// Bounds returns the centered square for an h x w grid as a rectangle in
// (column, row) coordinates.
func Bounds(h, w, percent int) image.Rectangle {
	s := Size(h, w, percent)
	r := image.Rect((w-s)/2, (h-s)/2, (w+s)/2, (h+s)/2)
	return r.Intersect(image.Rect(0, 0, w, h))
}

// Mask is a boolean selection over a spectrum grid.
type Mask struct {
	Width  int
	Height int
	Kind   Kind
	Rect   image.Rectangle

	weights []float64
}

// New builds the mask of kind k for an h x w grid.
func New(h, w int, k Kind, percent int) (*Mask, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidSize, w, h)
	}
	if percent < 0 || percent > 100 {
		return nil, fmt.Errorf("%w: percent must be in [0, 100]: %d", ErrInvalidSize, percent)
	}

	var inside bool
	switch k {
	case Inner:
		inside = true
	case Outer:
		inside = false
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}

	m := &Mask{
		Width:   w,
		Height:  h,
		Kind:    k,
		Rect:    Bounds(h, w, percent),
		weights: make([]float64, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if image.Pt(x, y).In(m.Rect) == inside {
				m.weights[y*w+x] = 1
			}
		}
	}
	return m, nil
}

// At reports whether the bin at column x, row y is selected.
func (m *Mask) At(x, y int) bool { return m.weights[y*m.Width+x] != 0 }

// Count returns the number of selected bins.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.weights {
		if v != 0 {
			n++
		}
	}
	return n
}

// Weights returns a copy of the mask as 0 and 1 values.
func (m *Mask) Weights() []float64 {
	out := make([]float64, len(m.weights))
	copy(out, m.weights)
	return out
}

// Apply zeroes every unselected bin of s in place.
func (m *Mask) Apply(s *spectrum.Spectrum) error {
	if !s.Valid() {
		return fmt.Errorf("region: %w", spectrum.ErrInvalidInput)
	}
	if s.Width != m.Width || s.Height != m.Height {
		return fmt.Errorf("region: mask %dx%d, spectrum %dx%d: %w", m.Width, m.Height, s.Width, s.Height, spectrum.ErrShapeMismatch)
	}
	return s.Scale(m.weights)
}
