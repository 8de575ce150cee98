package testutil

import (
	"fmt"
	"image"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireComplexNearlyEqual fails t if got and want differ in length or if
// any element pair is further apart than eps.
func RequireComplexNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		re := math.Abs(real(got[i]) - real(want[i]))
		im := math.Abs(imag(got[i]) - imag(want[i]))
		if re > eps || im > eps {
			t.Fatalf("index %d: got %v, want %v (eps %v)", i, got[i], want[i], eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireGrayNearlyEqual fails t if the images differ in size or if any pixel
// pair differs by more than tol.
func RequireGrayNearlyEqual(t *testing.T, got, want *image.Gray, tol int) {
	t.Helper()
	if got == nil || want == nil {
		t.Fatalf("nil image: got %v, want %v", got == nil, want == nil)
	}
	gb, wb := got.Bounds(), want.Bounds()
	if gb.Dx() != wb.Dx() || gb.Dy() != wb.Dy() {
		t.Fatalf("size mismatch: got %dx%d, want %dx%d", gb.Dx(), gb.Dy(), wb.Dx(), wb.Dy())
	}
	for y := 0; y < gb.Dy(); y++ {
		for x := 0; x < gb.Dx(); x++ {
			g := int(got.GrayAt(gb.Min.X+x, gb.Min.Y+y).Y)
			w := int(want.GrayAt(wb.Min.X+x, wb.Min.Y+y).Y)
			if d := g - w; d > tol || d < -tol {
				t.Fatalf("pixel (%d,%d): got %d, want %d (tol %d)", x, y, g, w, tol)
			}
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// MaxGrayDiff returns the largest per-pixel difference between two images of
// equal size. Images of different size report 255.
func MaxGrayDiff(a, b *image.Gray) int {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return 255
	}
	maxDiff := 0
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			d := int(a.GrayAt(ab.Min.X+x, ab.Min.Y+y).Y) - int(b.GrayAt(bb.Min.X+x, bb.Min.Y+y).Y)
			maxDiff = max(maxDiff, d, -d)
		}
	}
	return maxDiff
}
