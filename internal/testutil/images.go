package testutil

import (
	"image"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-fftmix/dsp/core"
)

// Uniform returns a width x height gray image filled with value.
func Uniform(width, height int, value uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = value
	}
	return img
}

// Gradient returns a diagonal ramp from 0 at the top-left corner to 255 at
// the bottom-right corner.
func Gradient(width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	span := float64(width + height - 2)
	if span <= 0 {
		span = 1
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Pix[y*img.Stride+x] = uint8(math.Round(255 * float64(x+y) / span))
		}
	}
	return img
}

// Checkerboard returns alternating cell-sized squares of lo and hi.
func Checkerboard(width, height, cell int, lo, hi uint8) *image.Gray {
	if cell <= 0 {
		cell = 1
	}
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := lo
			if (x/cell+y/cell)%2 == 1 {
				v = hi
			}
			img.Pix[y*img.Stride+x] = v
		}
	}
	return img
}

// DeterministicNoise returns a gray image of uniform noise with a fixed seed.
func DeterministicNoise(seed int64, width, height int) *image.Gray {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.Intn(256))
	}
	return img
}

// NoiseGrid returns a float grid of noise in [-amplitude, amplitude] with a
// fixed seed.
func NoiseGrid(seed int64, width, height int, amplitude float64) *core.Grid {
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGrid(width, height)
	for i := range g.Data {
		g.Data[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return g
}
