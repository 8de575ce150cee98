package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-fftmix/dsp/core"
)

// axisFFT is a 1D complex transform of fixed length. Forward is unscaled and
// Inverse is scaled by 1/N.
type axisFFT interface {
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

// gonumFFT adapts gonum's CmplxFFT to the algo-fft normalization.
type gonumFFT struct {
	fft *fourier.CmplxFFT
	n   int
}

func newGonumFFT(n int) *gonumFFT {
	return &gonumFFT{fft: fourier.NewCmplxFFT(n), n: n}
}

func (g *gonumFFT) Forward(dst, src []complex128) error {
	g.fft.Coefficients(dst, src)
	return nil
}

func (g *gonumFFT) Inverse(dst, src []complex128) error {
	g.fft.Sequence(dst, src)
	scale := complex(1/float64(g.n), 0)
	for i := range dst {
		dst[i] *= scale
	}
	return nil
}

// identityFFT is the length-1 transform.
type identityFFT struct{}

func (identityFFT) Forward(dst, src []complex128) error {
	dst[0] = src[0]
	return nil
}

func (identityFFT) Inverse(dst, src []complex128) error {
	dst[0] = src[0]
	return nil
}

func newAxisFFT(n int) (axisFFT, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: transform length %d", ErrInvalidInput, n)
	}
	if n == 1 {
		return identityFFT{}, nil
	}

	plan, err := algofft.NewPlan64(n)
	if err == nil {
		return plan, nil
	}

	// algo-fft plans every length tried so far; gonum covers any it rejects.
	return newGonumFFT(n), nil
}

// Plan performs 2D transforms for one grid size.
//
// The plan owns scratch buffers and is not safe for concurrent use; create
// one plan per goroutine.
type Plan struct {
	width  int
	height int

	rows axisFFT
	cols axisFFT

	lineIn  []complex128
	lineOut []complex128
}

// NewPlan creates a transform plan for width x height grids.
func NewPlan(width, height int) (*Plan, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidInput, width, height)
	}

	rows, err := newAxisFFT(width)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create row FFT plan: %w", err)
	}

	cols := rows
	if height != width {
		cols, err = newAxisFFT(height)
		if err != nil {
			return nil, fmt.Errorf("spectrum: failed to create column FFT plan: %w", err)
		}
	}

	n := max(width, height)
	return &Plan{
		width:   width,
		height:  height,
		rows:    rows,
		cols:    cols,
		lineIn:  make([]complex128, n),
		lineOut: make([]complex128, n),
	}, nil
}

// Width returns the grid width the plan was built for.
func (p *Plan) Width() int { return p.width }

// Height returns the grid height the plan was built for.
func (p *Plan) Height() int { return p.height }

// Forward computes the centered 2D DFT of g.
func (p *Plan) Forward(g *core.Grid) (*Spectrum, error) {
	if !g.Valid() {
		return nil, invalidGrid(g)
	}
	if g.Width != p.width || g.Height != p.height {
		return nil, fmt.Errorf("%w: grid %dx%d, plan %dx%d", ErrShapeMismatch, g.Width, g.Height, p.width, p.height)
	}

	work := make([]complex128, len(g.Data))
	for i, v := range g.Data {
		work[i] = complex(v, 0)
	}

	err := p.transform(work, true)
	if err != nil {
		return nil, err
	}

	out := NewSpectrum(p.width, p.height)
	circShift(out.Data, work, p.width, p.height, p.width/2, p.height/2)
	return out, nil
}

// Inverse undoes the centering shift of s, computes the inverse 2D DFT and
// returns its real part. Values are not clipped.
func (p *Plan) Inverse(s *Spectrum) (*core.Grid, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: spectrum", ErrInvalidInput)
	}
	if s.Width != p.width || s.Height != p.height {
		return nil, fmt.Errorf("%w: spectrum %dx%d, plan %dx%d", ErrShapeMismatch, s.Width, s.Height, p.width, p.height)
	}

	work := make([]complex128, len(s.Data))
	circShift(work, s.Data, p.width, p.height, p.width-p.width/2, p.height-p.height/2)

	err := p.transform(work, false)
	if err != nil {
		return nil, err
	}

	out := core.NewGrid(p.width, p.height)
	for i, c := range work {
		out.Data[i] = real(c)
	}
	return out, nil
}

// transform runs the separable 2D DFT in place: every row, then every column.
func (p *Plan) transform(data []complex128, forward bool) error {
	w, h := p.width, p.height

	rowIn, rowOut := p.lineIn[:w], p.lineOut[:w]
	for y := 0; y < h; y++ {
		row := data[y*w : (y+1)*w]
		copy(rowIn, row)
		if err := run(p.rows, rowOut, rowIn, forward); err != nil {
			return fmt.Errorf("spectrum: row %d: %w", y, err)
		}
		copy(row, rowOut)
	}

	colIn, colOut := p.lineIn[:h], p.lineOut[:h]
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			colIn[y] = data[y*w+x]
		}
		if err := run(p.cols, colOut, colIn, forward); err != nil {
			return fmt.Errorf("spectrum: column %d: %w", x, err)
		}
		for y := 0; y < h; y++ {
			data[y*w+x] = colOut[y]
		}
	}
	return nil
}

func run(fft axisFFT, dst, src []complex128, forward bool) error {
	if forward {
		return fft.Forward(dst, src)
	}
	return fft.Inverse(dst, src)
}

// Forward computes the centered 2D DFT of g.
func Forward(g *core.Grid) (*Spectrum, error) {
	if !g.Valid() {
		return nil, invalidGrid(g)
	}

	p, err := NewPlan(g.Width, g.Height)
	if err != nil {
		return nil, err
	}
	return p.Forward(g)
}

// Inverse undoes the centering shift of s and returns the real part of its
// inverse 2D DFT.
func Inverse(s *Spectrum) (*core.Grid, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: spectrum", ErrInvalidInput)
	}

	p, err := NewPlan(s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	return p.Inverse(s)
}

func invalidGrid(g *core.Grid) error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidInput)
	}
	return fmt.Errorf("%w: grid %dx%d with %d samples", ErrInvalidInput, g.Width, g.Height, len(g.Data))
}
