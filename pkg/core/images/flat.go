// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package images

import (
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/imgarith/pkg/core/shapes"
	"github.com/pkg/errors"
)

// Flat is an image backed by one contiguous row-major buffer.
//
// It implements FlatStorage and Accessor.
type Flat[T PODNumeric] struct {
	shape shapes.Shape
	data  []T
}

var (
	_ FlatStorage = (*Flat[float32])(nil)
	_ Accessor    = (*Flat[float32])(nil)
)

// NewFlat allocates a zero-initialized Flat image with the given dimensions.
func NewFlat[T PODNumeric](dimensions ...int) *Flat[T] {
	shape := shapes.Make(DTypeOf[T](), dimensions...)
	return &Flat[T]{
		shape: shape,
		data:  make([]T, shape.Size()),
	}
}

// FlatFromSlice creates a Flat image that uses data as its buffer, without copying it.
//
// It returns an error if len(data) doesn't match the size of the dimensions.
func FlatFromSlice[T PODNumeric](data []T, dimensions ...int) (*Flat[T], error) {
	shape := shapes.Make(DTypeOf[T](), dimensions...)
	if len(data) != shape.Size() {
		return nil, errors.Errorf("FlatFromSlice: shape %s requires %d elements, got %d", shape, shape.Size(), len(data))
	}
	return &Flat[T]{shape: shape, data: data}, nil
}

// MustFlatFromSlice is like FlatFromSlice but panics on error.
func MustFlatFromSlice[T PODNumeric](data []T, dimensions ...int) *Flat[T] {
	f, err := FlatFromSlice(data, dimensions...)
	if err != nil {
		panic(err)
	}
	return f
}

// Shape implements Image.
func (f *Flat[T]) Shape() shapes.Shape { return f.shape }

// FlatData implements FlatStorage. It returns the underlying []T.
func (f *Flat[T]) FlatData() any { return f.data }

// Data returns the underlying buffer. Changes to it are reflected in the image.
func (f *Flat[T]) Data() []T { return f.data }

// At returns the element at the given indices, one per axis.
// It panics if the indices are out-of-bounds.
func (f *Flat[T]) At(indices ...int) T {
	idx, err := f.shape.FlatIndex(indices...)
	if err != nil {
		exceptions.Panicf("Flat.At: %v", err)
	}
	return f.data[idx]
}

// Set the element at the given indices, one per axis.
// It panics if the indices are out-of-bounds.
func (f *Flat[T]) Set(value T, indices ...int) {
	idx, err := f.shape.FlatIndex(indices...)
	if err != nil {
		exceptions.Panicf("Flat.Set: %v", err)
	}
	f.data[idx] = value
}

// Fill sets all elements to value.
func (f *Flat[T]) Fill(value T) {
	for ii := range f.data {
		f.data[ii] = value
	}
}

// Clone returns a deep copy of the image.
func (f *Flat[T]) Clone() *Flat[T] {
	return &Flat[T]{shape: f.shape.Clone(), data: slices.Clone(f.data)}
}

// Float64At implements Accessor.
func (f *Flat[T]) Float64At(flatIdx int) float64 { return float64(f.data[flatIdx]) }

// SetFloat64At implements Accessor.
func (f *Flat[T]) SetFloat64At(flatIdx int, value float64) { f.data[flatIdx] = FromFloat64[T](value) }
