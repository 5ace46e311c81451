// Package filter implements composable per-pixel image operations.
//
// A Filter computes one output channel value at a coordinate in normalized
// [0, 1] space, reading any number of input images. Because filters work
// through the Source and Target interfaces, a single filter serves every
// combination of numeric storage type and color model that pix supports.
//
// Apply evaluates a filter over an output image sequentially. ApplyPool
// produces a byte-identical result by partitioning the output's rows into
// contiguous chunks across a worker pool; chunks write disjoint row ranges
// and never read the output, so the result is independent of scheduling and
// worker count.
//
// Filters compose with AndThen (pointwise post-transform of the computed
// value) and Join (merge the values of two filters).
package filter
