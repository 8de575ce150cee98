package mix

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/cwbudde/algo-fftmix/dsp/spectrum"
)

// fitGray returns src resized to width x height. An image that already has
// the target size is returned as is.
func fitGray(src *image.Gray, width, height int, filter imaging.ResampleFilter) (*image.Gray, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty image", spectrum.ErrInvalidInput)
	}
	b := src.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return src, nil
	}

	resized := imaging.Resize(src, width, height, filter)
	out := image.NewGray(resized.Bounds())
	draw.Draw(out, out.Bounds(), resized, resized.Bounds().Min, draw.Src)
	return out, nil
}

// targetShape returns the size of the first present, non-empty image.
func targetShape(inputs []Input, present []int) (width, height int, ok bool) {
	for _, i := range present {
		b := inputs[i].Image.Bounds()
		if !b.Empty() {
			return b.Dx(), b.Dy(), true
		}
	}
	return 0, 0, false
}

// placeholder is the zero-filled image delivered by a failed job.
func placeholder(width, height int) *image.Gray {
	return image.NewGray(image.Rect(0, 0, width, height))
}
