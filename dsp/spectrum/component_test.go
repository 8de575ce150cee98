package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-fftmix/internal/testutil"
)

func noiseSpectrum(t *testing.T, seed int64, w, h int) *Spectrum {
	t.Helper()
	spec, err := Forward(testutil.NoiseGrid(seed, w, h, 50))
	if err != nil {
		t.Fatal(err)
	}
	return spec
}

func TestDecompose(t *testing.T) {
	s := &Spectrum{Width: 2, Height: 2, Data: []complex128{3 + 4i, -1, 0, -2i}}

	cs, err := Decompose(s)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, cs.Magnitude, []float64{5, 1, 0, 2}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, cs.Phase, []float64{math.Atan2(4, 3), math.Pi, 0, -math.Pi / 2}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, cs.Real, []float64{3, -1, 0, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, cs.Imaginary, []float64{4, 0, 0, -2}, 0)
}

func TestDecomposePhaseRange(t *testing.T) {
	s := &Spectrum{Width: 3, Height: 1, Data: []complex128{
		complex(-1, math.Copysign(0, -1)),
		complex(-1, 0),
		complex(0, -1),
	}}

	cs, err := Decompose(s)
	if err != nil {
		t.Fatal(err)
	}

	for i, p := range cs.Phase {
		if p <= -math.Pi || p > math.Pi {
			t.Fatalf("Phase[%d] = %v outside (-pi, pi]", i, p)
		}
	}
	if cs.Phase[0] != math.Pi {
		t.Fatalf("Phase of -1-0i = %v, want pi", cs.Phase[0])
	}
}

func TestReconstructRealImaginaryIsExact(t *testing.T) {
	s := noiseSpectrum(t, 3, 16, 12)

	cs, err := Decompose(s)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Reconstruct(RealImaginary, cs)
	if err != nil {
		t.Fatal(err)
	}

	for i := range s.Data {
		if got.Data[i] != s.Data[i] {
			t.Fatalf("bin %d: got %v, want %v", i, got.Data[i], s.Data[i])
		}
	}
}

func TestReconstructMagnitudePhase(t *testing.T) {
	s := noiseSpectrum(t, 5, 9, 14)

	cs, err := Decompose(s)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Reconstruct(MagnitudePhase, cs)
	if err != nil {
		t.Fatal(err)
	}

	for i := range s.Data {
		tol := 1e-9 * math.Max(1, cmplx.Abs(s.Data[i]))
		if cmplx.Abs(got.Data[i]-s.Data[i]) > tol {
			t.Fatalf("bin %d: got %v, want %v", i, got.Data[i], s.Data[i])
		}
	}
}

func TestReconstructUnsupported(t *testing.T) {
	cs, err := Decompose(NewSpectrum(2, 2))
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range []Pair{0, Pair(7), Component(0).Pair(), Component(99).Pair()} {
		_, err := Reconstruct(p, cs)
		if !errors.Is(err, ErrUnsupportedComponent) {
			t.Fatalf("Reconstruct(%v) err = %v, want ErrUnsupportedComponent", p, err)
		}
	}
}

func TestReconstructInvalidSet(t *testing.T) {
	_, err := Reconstruct(RealImaginary, &ComponentSet{Width: 2, Height: 2, Real: make([]float64, 4)})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}

	_, err = Decompose(nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Decompose(nil) err = %v, want ErrInvalidInput", err)
	}
}

func TestComponentPair(t *testing.T) {
	tests := []struct {
		c    Component
		want Pair
	}{
		{Magnitude, MagnitudePhase},
		{Phase, MagnitudePhase},
		{Real, RealImaginary},
		{Imaginary, RealImaginary},
		{0, 0},
	}

	for _, tt := range tests {
		if got := tt.c.Pair(); got != tt.want {
			t.Fatalf("%v.Pair() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestParseComponent(t *testing.T) {
	tests := []struct {
		in   string
		want Component
	}{
		{"FT Magnitude", Magnitude},
		{"ft phase", Phase},
		{" Real ", Real},
		{"FT Imaginary", Imaginary},
		{"mag", Magnitude},
		{"im", Imaginary},
		{"re", Real},
	}

	for _, tt := range tests {
		got, err := ParseComponent(tt.in)
		if err != nil {
			t.Fatalf("ParseComponent(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseComponent(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "Select Component", "power"} {
		if _, err := ParseComponent(bad); !errors.Is(err, ErrUnsupportedComponent) {
			t.Fatalf("ParseComponent(%q) err = %v, want ErrUnsupportedComponent", bad, err)
		}
	}
}

func TestComponentStringRoundTrip(t *testing.T) {
	for _, c := range Components {
		got, err := ParseComponent(c.String())
		if err != nil || got != c {
			t.Fatalf("ParseComponent(%q) = %v, %v", c.String(), got, err)
		}
	}
}

func TestPlane(t *testing.T) {
	cs, err := Decompose(&Spectrum{Width: 1, Height: 1, Data: []complex128{-2i}})
	if err != nil {
		t.Fatal(err)
	}

	want := map[Component]float64{Magnitude: 2, Phase: -math.Pi / 2, Real: 0, Imaginary: -2}
	for c, v := range want {
		plane, err := cs.Plane(c)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(plane[0]-v) > 1e-12 {
			t.Fatalf("%v plane = %v, want %v", c, plane[0], v)
		}
	}

	if _, err := cs.Plane(0); !errors.Is(err, ErrUnsupportedComponent) {
		t.Fatalf("Plane(0) err = %v, want ErrUnsupportedComponent", err)
	}
}
