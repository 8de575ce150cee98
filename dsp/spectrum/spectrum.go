package spectrum

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fftmix/dsp/core"
)

// Errors returned by spectrum functions.
var (
	ErrInvalidInput         = errors.New("spectrum: invalid input")
	ErrUnsupportedComponent = errors.New("spectrum: unsupported component")
	ErrShapeMismatch        = errors.New("spectrum: shape mismatch")
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	buf.data = core.EnsureLen(buf.data, 2*n)
	return buf.data[:n], buf.data[n:], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Spectrum is a row-major 2D grid of complex frequency bins with the
// zero-frequency bin at (Width/2, Height/2).
type Spectrum struct {
	Width  int
	Height int
	Data   []complex128
}

// NewSpectrum allocates a zero-filled spectrum.
func NewSpectrum(width, height int) *Spectrum {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Spectrum{
		Width:  width,
		Height: height,
		Data:   make([]complex128, width*height),
	}
}

// Valid reports whether s is non-empty and its data length matches its
// dimensions.
func (s *Spectrum) Valid() bool {
	return s != nil && s.Width > 0 && s.Height > 0 && len(s.Data) == s.Width*s.Height
}

// At returns the bin at column x, row y.
func (s *Spectrum) At(x, y int) complex128 { return s.Data[y*s.Width+x] }

// Clone returns a deep copy of s.
func (s *Spectrum) Clone() *Spectrum {
	out := &Spectrum{Width: s.Width, Height: s.Height, Data: make([]complex128, len(s.Data))}
	copy(out.Data, s.Data)
	return out
}

// Scale multiplies every bin by the matching real weight in place.
//
// weights must have one entry per bin. Real and imaginary parts are scaled
// through pooled scratch planes with the SIMD block multiply.
func (s *Spectrum) Scale(weights []float64) error {
	if !s.Valid() {
		return fmt.Errorf("%w: spectrum", ErrInvalidInput)
	}
	if len(weights) != len(s.Data) {
		return fmt.Errorf("%w: %d weights for %d bins", ErrShapeMismatch, len(weights), len(s.Data))
	}

	re, im, buf := getScratch(len(s.Data))
	for i, c := range s.Data {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.MulBlockInPlace(re, weights)
	vecmath.MulBlockInPlace(im, weights)

	for i := range s.Data {
		s.Data[i] = complex(re[i], im[i])
	}
	putScratch(buf)
	return nil
}

// AddScaled accumulates w*src into s.
func (s *Spectrum) AddScaled(src *Spectrum, w float64) error {
	if !s.Valid() || !src.Valid() {
		return fmt.Errorf("%w: spectrum", ErrInvalidInput)
	}
	if s.Width != src.Width || s.Height != src.Height {
		return fmt.Errorf("%w: %dx%d += %dx%d", ErrShapeMismatch, s.Width, s.Height, src.Width, src.Height)
	}

	cw := complex(w, 0)
	for i, c := range src.Data {
		s.Data[i] += cw * c
	}
	return nil
}
