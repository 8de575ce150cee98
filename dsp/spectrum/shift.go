package spectrum

import "fmt"

// Shift moves the zero-frequency bin of an uncentered spectrum to the grid
// center. It returns a new spectrum.
func Shift(s *Spectrum) (*Spectrum, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: spectrum", ErrInvalidInput)
	}
	out := NewSpectrum(s.Width, s.Height)
	circShift(out.Data, s.Data, s.Width, s.Height, s.Width/2, s.Height/2)
	return out, nil
}

// Unshift is the exact inverse of [Shift] for odd and even sizes.
func Unshift(s *Spectrum) (*Spectrum, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: spectrum", ErrInvalidInput)
	}
	out := NewSpectrum(s.Width, s.Height)
	circShift(out.Data, s.Data, s.Width, s.Height, s.Width-s.Width/2, s.Height-s.Height/2)
	return out, nil
}

// circShift writes src rolled by (dx, dy) into dst:
// dst[(y+dy)%h][(x+dx)%w] = src[y][x]. dst and src must not overlap.
func circShift(dst, src []complex128, w, h, dx, dy int) {
	for y := 0; y < h; y++ {
		ty := (y + dy) % h
		srcRow := src[y*w : (y+1)*w]
		dstRow := dst[ty*w : (ty+1)*w]
		split := w - dx%w
		copy(dstRow[dx%w:], srcRow[:split])
		copy(dstRow[:dx%w], srcRow[split:])
	}
}
