package filter

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"

	"github.com/ironsheep/imgcore/pix"
)

// ErrWorkerFailure is the aggregate error returned when one or more chunks
// of a parallel evaluation fail. It is surfaced only after every chunk has
// finished; the output buffer's content is unspecified when it is returned.
var ErrWorkerFailure = errors.New("parallel evaluation failed")

// Source is read-only access to an image in normalized space. NormAt clamps
// coordinates to the image extent, so filters sample past the border safely.
type Source interface {
	Width() int
	Height() int
	Channels() int
	Model() pix.Model
	NormAt(x, y, c int) float64
}

// Target is a Source whose pixels can be written.
type Target interface {
	Source
	SetNorm(x, y, c int, v float64)
}

// Filter is a unit of computation mapping input images to an output image.
// At computes the normalized value of output channel c at (x, y), reading
// any of the inputs. A filter holds no state across evaluations; parameters
// are immutable configuration captured at construction.
type Filter interface {
	At(x, y, c int, src []Source) float64
}

// Validator is implemented by filters with input or output shape
// requirements. Apply and ApplyPool call Validate before evaluating and
// abort on error.
type Validator interface {
	Validate(dst Target, src []Source) error
}

// Func adapts a plain function to the Filter interface.
type Func func(x, y, c int, src []Source) float64

// At implements Filter.
func (f Func) At(x, y, c int, src []Source) float64 { return f(x, y, c, src) }

func validate(f Filter, dst Target, src []Source) error {
	if v, ok := f.(Validator); ok {
		return v.Validate(dst, src)
	}
	return nil
}

// requireInputs is the shared input-count check used by built-in filters.
func requireInputs(f string, src []Source, n int) error {
	if len(src) < n {
		return fmt.Errorf("%w: %s needs %d input image(s), got %d",
			pix.ErrShapeMismatch, f, n, len(src))
	}
	return nil
}

func evalRows(f Filter, dst Target, src []Source, start, end int) {
	w, ch := dst.Width(), dst.Channels()
	for y := start; y < end; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < ch; c++ {
				dst.SetNorm(x, y, c, f.At(x, y, c, src))
			}
		}
	}
}

// Apply evaluates f for every pixel of dst on the calling goroutine.
func Apply(f Filter, dst Target, src ...Source) error {
	if err := validate(f, dst, src); err != nil {
		return err
	}
	evalRows(f, dst, src, 0, dst.Height())
	return nil
}

// ApplyPool evaluates f like Apply, partitioning dst's rows into contiguous
// chunks across the pool and blocking until every chunk completes. Chunks
// write disjoint row ranges and never read dst, so the result is
// byte-identical to Apply regardless of pool size or scheduling. A nil pool
// falls back to sequential evaluation.
//
// A panic inside a chunk is recovered and, after all chunks have joined,
// reported as an error wrapping ErrWorkerFailure. dst is left partially
// written in that case.
func ApplyPool(pool *workerpool.Pool, f Filter, dst Target, src ...Source) error {
	if err := validate(f, dst, src); err != nil {
		return err
	}
	if pool == nil {
		evalRows(f, dst, src, 0, dst.Height())
		return nil
	}

	var mu sync.Mutex
	var failures []error
	pool.ParallelFor(dst.Height(), func(start, end int) {
		defer func() {
			if r := recover(); r != nil {
				mu.Lock()
				failures = append(failures, fmt.Errorf("rows %d..%d: %v", start, end, r))
				mu.Unlock()
			}
		}()
		evalRows(f, dst, src, start, end)
	})
	if len(failures) > 0 {
		return fmt.Errorf("%w: %w", ErrWorkerFailure, errors.Join(failures...))
	}
	return nil
}

type andThen struct {
	f  Filter
	fn func(x, y, c int, v float64) float64
}

func (a andThen) At(x, y, c int, src []Source) float64 {
	return a.fn(x, y, c, a.f.At(x, y, c, src))
}

func (a andThen) Validate(dst Target, src []Source) error {
	return validate(a.f, dst, src)
}

// AndThen returns a filter that computes f and then applies fn pointwise to
// the computed value. It composes a pipeline without re-declaring f's
// inputs: AndThen(Grayscale(), func(_, _, _ int, v float64) float64 {
// return 1 - v }) inverts a grayscale result.
func AndThen(f Filter, fn func(x, y, c int, v float64) float64) Filter {
	return andThen{f: f, fn: fn}
}

type join struct {
	a, b  Filter
	merge func(x, y, c int, av, bv float64) float64
}

func (j join) At(x, y, c int, src []Source) float64 {
	return j.merge(x, y, c, j.a.At(x, y, c, src), j.b.At(x, y, c, src))
}

func (j join) Validate(dst Target, src []Source) error {
	if err := validate(j.a, dst, src); err != nil {
		return err
	}
	return validate(j.b, dst, src)
}

// Join returns a filter that evaluates a and b at every coordinate and
// merges their values.
func Join(a, b Filter, merge func(x, y, c int, av, bv float64) float64) Filter {
	return join{a: a, b: b, merge: merge}
}
