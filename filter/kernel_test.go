package filter

import (
	"errors"
	"math"
	"testing"

	"github.com/ironsheep/imgcore/pix"
)

func mustKernel(t *testing.T, weights [][]float64) Kernel {
	t.Helper()
	k, err := NewKernel(weights)
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}
	return k
}

func TestKernelIdentity(t *testing.T) {
	src := newImage(t, 3, 3, pix.Gray, 10, 20, 30, 40, 50, 60, 70, 80, 90)
	dst := newImage(t, 3, 3, pix.Gray)
	id := mustKernel(t, [][]float64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	if err := Apply(id, dst, src); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for i, v := range src.Data() {
		if dst.Data()[i] != v {
			t.Errorf("pixel %d: got %d, want %d", i, dst.Data()[i], v)
		}
	}
}

func TestKernelBoxBlurUniform(t *testing.T) {
	// A flat image stays flat under any normalized kernel: the edge
	// replication keeps border sums intact.
	src := newImage(t, 4, 4, pix.Gray)
	for i := range src.Data() {
		src.Data()[i] = 120
	}
	dst := newImage(t, 4, 4, pix.Gray)
	box := mustKernel(t, [][]float64{
		{1. / 9, 1. / 9, 1. / 9},
		{1. / 9, 1. / 9, 1. / 9},
		{1. / 9, 1. / 9, 1. / 9},
	})
	if err := Apply(box, dst, src); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for i, v := range dst.Data() {
		if v != 120 {
			t.Errorf("pixel %d: got %d, want 120", i, v)
		}
	}
}

func TestNewKernelRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name    string
		weights [][]float64
	}{
		{"empty", nil},
		{"empty row", [][]float64{{}}},
		{"even rows", [][]float64{{1, 1, 1}, {1, 1, 1}}},
		{"even cols", [][]float64{{1, 1}, {1, 1}, {1, 1}}},
		{"ragged", [][]float64{{1, 1, 1}, {1, 1}, {1, 1, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewKernel(tt.weights); !errors.Is(err, pix.ErrShapeMismatch) {
				t.Errorf("got %v, want ErrShapeMismatch", err)
			}
		})
	}
}

func TestGaussianEvenSizeRoundsUp(t *testing.T) {
	// Even sizes round up to keep a center; evaluation must not panic.
	src := newImage(t, 4, 4, pix.Gray)
	for i := range src.Data() {
		src.Data()[i] = 99
	}
	dst := newImage(t, 4, 4, pix.Gray)
	if err := Apply(Gaussian(4, 1.0), dst, src); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for i, v := range dst.Data() {
		if v != 99 {
			t.Errorf("pixel %d: got %d, want 99", i, v)
		}
	}
}

func TestSobelFlatIsZero(t *testing.T) {
	src := newImage(t, 5, 5, pix.Gray)
	for i := range src.Data() {
		src.Data()[i] = 200
	}
	dst := newImage(t, 5, 5, pix.Gray)
	if err := Apply(Sobel(), dst, src); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for i, v := range dst.Data() {
		if v != 0 {
			t.Errorf("pixel %d: got %d, want 0", i, v)
		}
	}
}

func TestSobelVerticalEdge(t *testing.T) {
	// Left half black, right half white: the gradient peaks at the seam and
	// vanishes inside each half.
	src := newImage(t, 6, 3, pix.Gray)
	for y := 0; y < 3; y++ {
		for x := 3; x < 6; x++ {
			src.SetNorm(x, y, 0, 1)
		}
	}
	dst := newImage(t, 6, 3, pix.Gray)
	if err := Apply(Sobel(), dst, src); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := dst.NormAt(0, 1, 0); got != 0 {
		t.Errorf("flat black region: got %v, want 0", got)
	}
	if got := dst.NormAt(5, 1, 0); got != 0 {
		t.Errorf("flat white region: got %v, want 0", got)
	}
	if got := dst.NormAt(2, 1, 0); got == 0 {
		t.Error("seam gradient is zero")
	}
	if got := dst.NormAt(3, 1, 0); got == 0 {
		t.Error("seam gradient is zero")
	}
}

func TestGaussianWeightsNormalized(t *testing.T) {
	for _, tt := range []struct {
		size  int
		sigma float64
	}{
		{3, 0.8},
		{5, 1.4},
		{7, 2.0},
	} {
		k := Gaussian(tt.size, tt.sigma)
		sum := 0.0
		for _, w := range k.weights {
			sum += w
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("Gaussian(%d, %v) weights sum to %v", tt.size, tt.sigma, sum)
		}
		center := k.weights[(tt.size/2)*tt.size+tt.size/2]
		for _, w := range k.weights {
			if w > center {
				t.Errorf("Gaussian(%d, %v): off-center weight %v exceeds center %v",
					tt.size, tt.sigma, w, center)
			}
		}
	}
}

func TestGaussianPreservesFlat(t *testing.T) {
	src := newImage(t, 8, 8, pix.Gray)
	for i := range src.Data() {
		src.Data()[i] = 77
	}
	dst := newImage(t, 8, 8, pix.Gray)
	if err := Apply(Gaussian(5, 1.4), dst, src); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for i, v := range dst.Data() {
		if v != 77 {
			t.Errorf("pixel %d: got %d, want 77", i, v)
		}
	}
}
