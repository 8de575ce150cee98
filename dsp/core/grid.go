package core

import "image"

// Grid is a row-major 2D grid of float64 samples.
type Grid struct {
	Width  int
	Height int
	Data   []float64
}

// NewGrid allocates a zero-filled grid.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Width:  width,
		Height: height,
		Data:   make([]float64, width*height),
	}
}

// Valid reports whether g is non-empty and its data length matches its
// dimensions.
func (g *Grid) Valid() bool {
	return g != nil && g.Width > 0 && g.Height > 0 && len(g.Data) == g.Width*g.Height
}

// At returns the sample at column x, row y.
func (g *Grid) At(x, y int) float64 { return g.Data[y*g.Width+x] }

// Set stores v at column x, row y.
func (g *Grid) Set(x, y int, v float64) { g.Data[y*g.Width+x] = v }

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	out := &Grid{Width: g.Width, Height: g.Height, Data: make([]float64, len(g.Data))}
	copy(out.Data, g.Data)
	return out
}

// GridFromGray copies the pixels of img into a new grid. The image bounds
// may have a non-zero origin and a stride wider than the row.
func GridFromGray(img *image.Gray) *Grid {
	if img == nil {
		return &Grid{}
	}

	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	for y := 0; y < g.Height; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < g.Width; x++ {
			g.Data[y*g.Width+x] = float64(row[x])
		}
	}
	return g
}

// Gray converts g to an 8-bit image, rounding and clipping every sample to
// the displayable range.
func (g *Grid) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for i, v := range g.Data {
		img.Pix[i] = ToByte(v)
	}
	return img
}
