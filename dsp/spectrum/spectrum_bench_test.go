package spectrum

import (
	"testing"

	"github.com/cwbudde/algo-fftmix/internal/testutil"
)

var benchSizes = []struct {
	name string
	w, h int
}{
	{"64x64", 64, 64},
	{"256x256", 256, 256},
	{"300x200", 300, 200},
	{"512x512", 512, 512},
}

func BenchmarkForward(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			g := testutil.NoiseGrid(1, tc.w, tc.h, 128)
			p, err := NewPlan(tc.w, tc.h)
			if err != nil {
				b.Fatal(err)
			}

			b.SetBytes(int64(tc.w * tc.h * 8))
			b.ResetTimer()

			for range b.N {
				_, _ = p.Forward(g)
			}
		})
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			g := testutil.NoiseGrid(2, tc.w, tc.h, 128)
			p, err := NewPlan(tc.w, tc.h)
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()

			for range b.N {
				spec, _ := p.Forward(g)
				_, _ = p.Inverse(spec)
			}
		})
	}
}

func BenchmarkDecompose(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			p, err := NewPlan(tc.w, tc.h)
			if err != nil {
				b.Fatal(err)
			}
			spec, err := p.Forward(testutil.NoiseGrid(3, tc.w, tc.h, 128))
			if err != nil {
				b.Fatal(err)
			}

			b.SetBytes(int64(tc.w * tc.h * 16))
			b.ResetTimer()

			for range b.N {
				_, _ = Decompose(spec)
			}
		})
	}
}
