package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-fftmix/dsp/core"
	"github.com/cwbudde/algo-fftmix/dsp/spectrum"
)

func ExampleForward() {
	g := &core.Grid{Width: 4, Height: 2, Data: []float64{1, 1, 1, 1, 1, 1, 1, 1}}

	spec, _ := spectrum.Forward(g)
	dc := spec.At(spec.Width/2, spec.Height/2)
	fmt.Printf("%.1f\n", real(dc))
	// Output:
	// 8.0
}

func ExampleReconstruct() {
	g := &core.Grid{Width: 3, Height: 1, Data: []float64{10, 20, 30}}

	spec, _ := spectrum.Forward(g)
	set, _ := spectrum.Decompose(spec)
	rebuilt, _ := spectrum.Reconstruct(spectrum.Phase.Pair(), set)
	out, _ := spectrum.Inverse(rebuilt)

	fmt.Println(out.Gray().Pix)
	// Output:
	// [10 20 30]
}

func ExampleParseComponent() {
	c, _ := spectrum.ParseComponent("FT Imaginary")
	fmt.Println(c, "->", c.Pair())
	// Output:
	// FT Imaginary -> real/imaginary
}
