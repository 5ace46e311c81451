package pix

import (
	"fmt"
	"math/bits"
)

const (
	hashCols = 16
	hashRows = 8
)

// Hash is a 128-bit content hash for images: the source is box-averaged
// down to a 16x8 grid and each cell contributes one bit, set when the
// cell's mean normalized intensity exceeds 0.5. Similar images produce
// hashes with a small Diff.
type Hash [2]uint64

// Diff returns the number of differing bits between two hashes.
func (h Hash) Diff(o Hash) int {
	return bits.OnesCount64(h[0]^o[0]) + bits.OnesCount64(h[1]^o[1])
}

func (h Hash) String() string {
	return fmt.Sprintf("%016x%016x", h[0], h[1])
}

// HashImage computes the content hash of an image. Cells average every
// channel of every pixel they cover.
func HashImage[T Value](im *Image[T]) Hash {
	var h Hash
	ch := im.Channels()
	for row := 0; row < hashRows; row++ {
		y0 := row * im.height / hashRows
		y1 := (row + 1) * im.height / hashRows
		if y1 == y0 {
			y1 = y0 + 1
		}
		for col := 0; col < hashCols; col++ {
			x0 := col * im.width / hashCols
			x1 := (col + 1) * im.width / hashCols
			if x1 == x0 {
				x1 = x0 + 1
			}
			var sum float64
			var n int
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					for c := 0; c < ch; c++ {
						sum += im.NormAt(x, y, c)
					}
					n += ch
				}
			}
			if sum/float64(n) > 0.5 {
				i := row*hashCols + col
				h[i/64] |= 1 << (i % 64)
			}
		}
	}
	return h
}
