package filter

import (
	"fmt"
	"math"

	"github.com/ironsheep/imgcore/pix"
)

// Kernel is a convolution filter. Sampling past the input border uses
// replicated edge values (Source.NormAt clamps coordinates).
type Kernel struct {
	weights []float64
	rows    int
	cols    int
}

// NewKernel builds a kernel from a row-major weight matrix. The matrix must
// be non-empty and rectangular with odd dimensions, so the kernel has a
// center; anything else fails with ErrShapeMismatch.
func NewKernel(weights [][]float64) (Kernel, error) {
	rows := len(weights)
	if rows == 0 || len(weights[0]) == 0 {
		return Kernel{}, fmt.Errorf("%w: empty kernel", pix.ErrShapeMismatch)
	}
	cols := len(weights[0])
	if rows%2 == 0 || cols%2 == 0 {
		return Kernel{}, fmt.Errorf("%w: %dx%d kernel has no center", pix.ErrShapeMismatch, rows, cols)
	}
	for i, row := range weights {
		if len(row) != cols {
			return Kernel{}, fmt.Errorf("%w: kernel row %d has %d weights, want %d",
				pix.ErrShapeMismatch, i, len(row), cols)
		}
	}
	return flattenKernel(weights, rows, cols), nil
}

func flattenKernel(weights [][]float64, rows, cols int) Kernel {
	k := Kernel{weights: make([]float64, 0, rows*cols), rows: rows, cols: cols}
	for _, row := range weights {
		k.weights = append(k.weights, row...)
	}
	return k
}

// At implements Filter.
func (k Kernel) At(x, y, c int, src []Source) float64 {
	r2, c2 := k.rows/2, k.cols/2
	var f float64
	for ky := -r2; ky <= r2; ky++ {
		row := k.weights[(ky+r2)*k.cols:]
		for kx := -c2; kx <= c2; kx++ {
			f += src[0].NormAt(x+kx, y+ky, c) * row[kx+c2]
		}
	}
	return f
}

// Validate implements Validator.
func (k Kernel) Validate(_ Target, src []Source) error {
	return requireInputs("kernel", src, 1)
}

// SobelX returns the horizontal Sobel gradient kernel.
func SobelX() Kernel {
	return flattenKernel([][]float64{
		{1, 0, -1},
		{2, 0, -2},
		{1, 0, -1},
	}, 3, 3)
}

// SobelY returns the vertical Sobel gradient kernel.
func SobelY() Kernel {
	return flattenKernel([][]float64{
		{1, 2, 1},
		{0, 0, 0},
		{-1, -2, -1},
	}, 3, 3)
}

// Sobel returns a gradient magnitude filter, sqrt(gx^2 + gy^2) of the two
// Sobel kernels.
func Sobel() Filter {
	return Join(SobelX(), SobelY(), func(_, _, _ int, gx, gy float64) float64 {
		return math.Sqrt(gx*gx + gy*gy)
	})
}

// Gaussian returns a normalized size x size Gaussian blur kernel with the
// given standard deviation. The kernel needs a center, so sizes below 1
// become 1 and even sizes round up to the next odd.
func Gaussian(size int, sigma float64) Kernel {
	if size < 1 {
		size = 1
	}
	if size%2 == 0 {
		size++
	}
	weights := make([][]float64, size)
	half := size / 2
	sum := 0.0
	for y := range weights {
		weights[y] = make([]float64, size)
		for x := range weights[y] {
			dx, dy := float64(x-half), float64(y-half)
			w := math.Exp(-(dx*dx + dy*dy) / (2 * sigma * sigma))
			weights[y][x] = w
			sum += w
		}
	}
	for y := range weights {
		for x := range weights[y] {
			weights[y][x] /= sum
		}
	}
	return flattenKernel(weights, size, size)
}
