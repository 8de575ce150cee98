package preview

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/cwbudde/algo-fftmix/dsp/region"
	"github.com/cwbudde/algo-fftmix/dsp/spectrum"
)

func set(mag, phase, re, im []float64) *spectrum.ComponentSet {
	return &spectrum.ComponentSet{
		Width: len(mag), Height: 1,
		Magnitude: mag, Phase: phase, Real: re, Imaginary: im,
	}
}

func TestPlaneStretchesLinearly(t *testing.T) {
	cs := set(make([]float64, 3), make([]float64, 3), []float64{-1, 0, 3}, make([]float64, 3))

	img, err := Plane(cs, spectrum.Real)
	if err != nil {
		t.Fatal(err)
	}

	want := []uint8{0, 64, 255}
	for i, v := range want {
		if img.Pix[i] != v {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
	if cs.Real[0] != -1 {
		t.Fatal("Plane modified its input")
	}
}

func TestPlaneMagnitudeIsLogScaled(t *testing.T) {
	cs := set([]float64{0, math.E - 1, math.Exp(0.25) - 1}, make([]float64, 3), make([]float64, 3), make([]float64, 3))

	img, err := Plane(cs, spectrum.Magnitude)
	if err != nil {
		t.Fatal(err)
	}

	want := []uint8{0, 255, 64}
	for i, v := range want {
		if img.Pix[i] != v {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}

func TestPlaneConstantIsBlack(t *testing.T) {
	cs := set([]float64{2, 2}, []float64{1, 1}, []float64{1, 1}, []float64{1, 1})

	img, err := Plane(cs, spectrum.Phase)
	if err != nil {
		t.Fatal(err)
	}
	if img.Pix[0] != 0 || img.Pix[1] != 0 {
		t.Fatalf("Pix = %v, want zeros", img.Pix)
	}
}

func TestPlaneErrors(t *testing.T) {
	cs := set([]float64{1}, []float64{0}, []float64{1}, []float64{0})
	if _, err := Plane(cs, spectrum.Component(0)); !errors.Is(err, spectrum.ErrUnsupportedComponent) {
		t.Fatalf("err = %v, want ErrUnsupportedComponent", err)
	}
	if _, err := Plane(&spectrum.ComponentSet{}, spectrum.Real); !errors.Is(err, spectrum.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestPhaseWheel(t *testing.T) {
	cs := set([]float64{0, 5}, []float64{0, 0}, []float64{0, 5}, []float64{0, 0})

	img, err := PhaseWheel(cs)
	if err != nil {
		t.Fatal(err)
	}

	dark := img.NRGBAAt(0, 0)
	if dark.R != 0 || dark.G != 0 || dark.B != 0 || dark.A != 0xff {
		t.Fatalf("zero bin = %v, want opaque black", dark)
	}

	// Phase 0 sits half way round the wheel.
	cyan := img.NRGBAAt(1, 0)
	if cyan.R != 0 || cyan.G != 255 || cyan.B != 255 {
		t.Fatalf("phase 0 bin = %v, want cyan", cyan)
	}
}

func TestOutline(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 8, 8))
	rect := region.Bounds(8, 8, 50)

	out, err := Outline(src, rect, region.Inner)
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds().Dx() != 8 || out.Bounds().Dy() != 8 {
		t.Fatalf("bounds = %v", out.Bounds())
	}

	r, g, _, _ := out.At(rect.Min.X, 4).RGBA()
	if g < 0x8000 || r > 0x4000 {
		t.Fatalf("edge pixel r=%#x g=%#x, want green", r, g)
	}
	if r, g, b, _ := out.At(4, 4).RGBA(); r|g|b != 0 {
		t.Fatal("interior pixel was painted")
	}
	if r, g, b, _ := out.At(0, 0).RGBA(); r|g|b != 0 {
		t.Fatal("exterior pixel was painted")
	}

	out, err = Outline(src, rect, region.Outer)
	if err != nil {
		t.Fatal(err)
	}
	r, g, _, _ = out.At(rect.Max.X-1, 4).RGBA()
	if r < 0x8000 || g > 0x4000 {
		t.Fatalf("edge pixel r=%#x g=%#x, want red", r, g)
	}
}

func TestOutlineEmptyRegion(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	src.Pix[5] = 77

	out, err := Outline(src, image.Rectangle{}, region.Inner)
	if err != nil {
		t.Fatal(err)
	}
	r, _, _, _ := out.At(1, 1).RGBA()
	if r>>8 != 77 {
		t.Fatalf("pixel = %d, want 77", r>>8)
	}

	if _, err := Outline(src, image.Rect(0, 0, 2, 2), region.Kind(3)); !errors.Is(err, region.ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
	if _, err := Outline(nil, image.Rect(0, 0, 2, 2), region.Inner); err == nil {
		t.Fatal("expected error for nil image")
	}
}
