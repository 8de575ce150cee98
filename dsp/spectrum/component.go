package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Component selects one of the four planes derived from a spectrum.
// The zero value selects nothing and reconstructs to an error.
type Component int

const (
	// Magnitude is |X|.
	Magnitude Component = iota + 1
	// Phase is arg(X) in radians.
	Phase
	// Real is Re(X).
	Real
	// Imaginary is Im(X).
	Imaginary
)

// Components lists every selectable component in display order.
var Components = []Component{Magnitude, Phase, Real, Imaginary}

// String returns the display label of c.
func (c Component) String() string {
	switch c {
	case Magnitude:
		return "FT Magnitude"
	case Phase:
		return "FT Phase"
	case Real:
		return "FT Real"
	case Imaginary:
		return "FT Imaginary"
	default:
		return fmt.Sprintf("Component(%d)", int(c))
	}
}

// Pair returns the reconstruction mode that c belongs to, or 0 for an
// unknown component.
func (c Component) Pair() Pair {
	switch c {
	case Magnitude, Phase:
		return MagnitudePhase
	case Real, Imaginary:
		return RealImaginary
	default:
		return 0
	}
}

// ParseComponent resolves a component name. It accepts the display labels
// ("FT Magnitude") and short forms ("magnitude", "mag", "re", "imag", ...)
// case-insensitively.
func ParseComponent(name string) (Component, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, "ft ")

	switch strings.TrimSpace(key) {
	case "magnitude", "mag", "abs":
		return Magnitude, nil
	case "phase", "angle", "arg":
		return Phase, nil
	case "real", "re":
		return Real, nil
	case "imaginary", "imag", "im":
		return Imaginary, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedComponent, name)
}

// Pair is a reconstruction mode: the two planes that together rebuild a
// complex spectrum.
type Pair int

const (
	// MagnitudePhase rebuilds X = |X| * exp(i*arg(X)).
	MagnitudePhase Pair = iota + 1
	// RealImaginary rebuilds X = Re(X) + i*Im(X).
	RealImaginary
)

func (p Pair) String() string {
	switch p {
	case MagnitudePhase:
		return "magnitude/phase"
	case RealImaginary:
		return "real/imaginary"
	default:
		return fmt.Sprintf("Pair(%d)", int(p))
	}
}

// ComponentSet holds the four co-located planes of one spectrum.
type ComponentSet struct {
	Width     int
	Height    int
	Magnitude []float64
	Phase     []float64
	Real      []float64
	Imaginary []float64
}

func (cs *ComponentSet) valid() bool {
	if cs == nil || cs.Width <= 0 || cs.Height <= 0 {
		return false
	}
	n := cs.Width * cs.Height
	return len(cs.Magnitude) == n && len(cs.Phase) == n && len(cs.Real) == n && len(cs.Imaginary) == n
}

// Plane returns the plane for component c.
func (cs *ComponentSet) Plane(c Component) ([]float64, error) {
	if !cs.valid() {
		return nil, fmt.Errorf("%w: component set", ErrInvalidInput)
	}

	switch c {
	case Magnitude:
		return cs.Magnitude, nil
	case Phase:
		return cs.Phase, nil
	case Real:
		return cs.Real, nil
	case Imaginary:
		return cs.Imaginary, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedComponent, c)
	}
}

// Decompose splits s into magnitude, phase, real and imaginary planes.
func Decompose(s *Spectrum) (*ComponentSet, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: spectrum", ErrInvalidInput)
	}

	n := len(s.Data)
	cs := &ComponentSet{
		Width:     s.Width,
		Height:    s.Height,
		Magnitude: make([]float64, n),
		Phase:     make([]float64, n),
		Real:      make([]float64, n),
		Imaginary: make([]float64, n),
	}

	for i, c := range s.Data {
		re, im := real(c), imag(c)
		cs.Real[i] = re
		cs.Imaginary[i] = im
		cs.Phase[i] = principalPhase(math.Atan2(im, re))
	}
	vecmath.Magnitude(cs.Magnitude, cs.Real, cs.Imaginary)

	return cs, nil
}

// Reconstruct rebuilds a complex spectrum from the pair of planes selected
// by p.
func Reconstruct(p Pair, cs *ComponentSet) (*Spectrum, error) {
	if !cs.valid() {
		return nil, fmt.Errorf("%w: component set", ErrInvalidInput)
	}

	out := NewSpectrum(cs.Width, cs.Height)
	switch p {
	case MagnitudePhase:
		for i := range out.Data {
			out.Data[i] = cmplx.Rect(cs.Magnitude[i], cs.Phase[i])
		}
	case RealImaginary:
		for i := range out.Data {
			out.Data[i] = complex(cs.Real[i], cs.Imaginary[i])
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedComponent, p)
	}
	return out, nil
}

// principalPhase folds -pi onto pi so phases stay in (-pi, pi].
func principalPhase(phi float64) float64 {
	if phi == -math.Pi {
		return math.Pi
	}
	return phi
}
