// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"iter"

	"github.com/pkg/errors"
)

// Strides returns the strides for each axis of the shape, assuming a "row-major" layout
// in memory, the one used by every container in this module.
//
// Notice the strides are **not in bytes**, but in indices.
func (s Shape) Strides() (strides []int) {
	rank := s.Rank()
	if rank == 0 {
		return
	}
	strides = make([]int, rank)
	currentStride := 1
	for axis := rank - 1; axis >= 0; axis-- {
		strides[axis] = currentStride
		currentStride *= s.Dimensions[axis]
	}
	return
}

// FlatIndex converts the per-axis indices to the index in a row-major flat buffer.
//
// It returns an error if len(indices) != s.Rank() or if any of the indices is out of bounds.
func (s Shape) FlatIndex(indices ...int) (int, error) {
	if len(indices) != s.Rank() {
		return 0, errors.Errorf("shape %s has rank %d, but %d indices were given", s, s.Rank(), len(indices))
	}
	flatIdx := 0
	for axis, idx := range indices {
		dim := s.Dimensions[axis]
		if idx < 0 || idx >= dim {
			return 0, errors.Errorf("index %d out-of-bounds for axis %d of shape %s", idx, axis, s)
		}
		flatIdx = flatIdx*dim + idx
	}
	return flatIdx, nil
}

// Iter iterates sequentially over all possible indices of the given shape.
//
// It yields the flat index (counter) and a slice of indices for each axis.
//
// To avoid allocating the slice of indices, the yielded indices is owned by the Iter() method:
// don't change it inside the loop.
func (s Shape) Iter() iter.Seq2[int, []int] {
	indices := make([]int, s.Rank())
	return func(yield func(int, []int) bool) {
		if !s.Ok() || s.Size() == 0 {
			return
		}
		rank := s.Rank()
		flatIdx := 0
	yielder:
		for {
			if !yield(flatIdx, indices) {
				return
			}
			flatIdx++

			// Row-major order: the last index changes fastest.
			for axis := rank - 1; axis >= 0; axis-- {
				indices[axis]++
				if indices[axis] < s.Dimensions[axis] {
					continue yielder
				}
				indices[axis] = 0
			}
			// All axes overflowed (or this is a scalar): done.
			return
		}
	}
}
