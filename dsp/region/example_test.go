package region_test

import (
	"fmt"

	"github.com/cwbudde/algo-fftmix/dsp/region"
)

func ExampleNew() {
	inner, _ := region.New(6, 6, region.Inner, 50)
	outer, _ := region.New(6, 6, region.Outer, 50)

	fmt.Println(inner.Rect, inner.Count(), outer.Count())
	// Output:
	// (1,1)-(4,4) 9 27
}
