// Package region builds masks that select a band of spatial frequencies in a
// centered spectrum.
//
// The selected area is a centered square whose side is a percentage of the
// grid's minor dimension. [Inner] keeps the square (low frequencies around
// DC) and [Outer] keeps everything else, so for the same size the two masks
// partition the grid.
package region
