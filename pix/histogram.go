package pix

// Histogram counts normalized channel values in equal-width bins over
// [0, 1]. Values at exactly 1 land in the top bin.
type Histogram struct {
	Bins []int
	step float64
}

// NewHistogram returns an empty histogram with nbins bins.
func NewHistogram(nbins int) *Histogram {
	return &Histogram{Bins: make([]int, nbins), step: 1 / float64(nbins)}
}

// Add counts one normalized value.
func (h *Histogram) Add(v float64) {
	i := int(v / h.step)
	if i < 0 {
		i = 0
	}
	if i >= len(h.Bins) {
		i = len(h.Bins) - 1
	}
	h.Bins[i]++
}

// Total returns the number of values counted.
func (h *Histogram) Total() int {
	n := 0
	for _, b := range h.Bins {
		n += b
	}
	return n
}

// Min returns the index of the emptiest bin. Ties resolve to the lowest
// index.
func (h *Histogram) Min() int {
	index, min := 0, h.Bins[0]
	for i, n := range h.Bins {
		if n < min {
			min, index = n, i
		}
	}
	return index
}

// Max returns the index of the fullest bin. Ties resolve to the lowest
// index.
func (h *Histogram) Max() int {
	index, max := 0, h.Bins[0]
	for i, n := range h.Bins {
		if n > max {
			max, index = n, i
		}
	}
	return index
}

// Histograms computes one histogram per channel over the whole image.
func Histograms[T Value](im *Image[T], nbins int) []*Histogram {
	ch := im.Channels()
	hs := make([]*Histogram, ch)
	for c := range hs {
		hs[c] = NewHistogram(nbins)
	}
	for i, v := range im.Data() {
		hs[i%ch].Add(Norm(v))
	}
	return hs
}
