// Package preview renders component planes and region overlays for display.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-fftmix/dsp/core"
	"github.com/cwbudde/algo-fftmix/dsp/region"
	"github.com/cwbudde/algo-fftmix/dsp/spectrum"
)

// Plane renders component c of cs as an 8-bit image stretched to the full
// gray range. Magnitudes are shown as log(1+|F|). A constant plane renders
// black; rounding noise counts as constant.
func Plane(cs *spectrum.ComponentSet, c spectrum.Component) (*image.Gray, error) {
	plane, err := cs.Plane(c)
	if err != nil {
		return nil, err
	}

	values := make([]float64, len(plane))
	copy(values, plane)
	if c == spectrum.Magnitude {
		for i, v := range values {
			values[i] = math.Log1p(v)
		}
	}
	stretch(values)

	return (&core.Grid{Width: cs.Width, Height: cs.Height, Data: values}).Gray(), nil
}

// stretch maps values linearly onto 0..255 in place.
func stretch(values []float64) {
	if len(values) == 0 {
		return
	}
	lo, hi := floats.Min(values), floats.Max(values)
	if core.NearlyEqual(lo, hi, 0) {
		core.Zero(values)
		return
	}
	floats.AddConst(-lo, values)
	floats.Scale(255/(hi-lo), values)
}

// PhaseWheel renders the spectrum with phase as hue and log magnitude as
// brightness.
func PhaseWheel(cs *spectrum.ComponentSet) (*image.NRGBA, error) {
	mag, err := cs.Plane(spectrum.Magnitude)
	if err != nil {
		return nil, err
	}
	phase, err := cs.Plane(spectrum.Phase)
	if err != nil {
		return nil, err
	}

	bright := make([]float64, len(mag))
	for i, v := range mag {
		bright[i] = math.Log1p(v)
	}
	stretch(bright)

	out := image.NewNRGBA(image.Rect(0, 0, cs.Width, cs.Height))
	for i := range mag {
		hue := (phase[i] + math.Pi) * 180 / math.Pi
		r, g, b := colorful.Hsv(math.Mod(hue, 360), 1, bright[i]/255).Clamped().RGB255()
		out.SetNRGBA(i%cs.Width, i/cs.Width, color.NRGBA{R: r, G: g, B: b, A: 0xff})
	}
	return out, nil
}

// Outline draws the region boundary over img. Inner regions are outlined in
// green and outer regions in red. An empty region leaves the image as is.
func Outline(img image.Image, rect image.Rectangle, kind region.Kind) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("preview: nil image")
	}

	dc := gg.NewContextForImage(img)
	if rect.Empty() {
		return dc.Image(), nil
	}

	switch kind {
	case region.Inner:
		dc.SetRGB(0, 1, 0)
	case region.Outer:
		dc.SetRGB(1, 0, 0)
	default:
		return nil, fmt.Errorf("preview: %w: %v", region.ErrUnknownKind, kind)
	}

	b := img.Bounds()
	dc.SetLineWidth(1)
	dc.DrawRectangle(
		float64(rect.Min.X-b.Min.X)+0.5,
		float64(rect.Min.Y-b.Min.Y)+0.5,
		float64(rect.Dx()-1),
		float64(rect.Dy()-1),
	)
	dc.Stroke()
	return dc.Image(), nil
}
