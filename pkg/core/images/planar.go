// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package images

import (
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/imgarith/pkg/core/shapes"
	"github.com/pkg/errors"
)

// Planar is an image backed by a sequence of equally shaped planes, each a contiguous row-major buffer.
//
// Its logical shape is `[numPlanes, planeDims...]`: the leading axis selects the plane.
//
// It implements PlanarStorage and Accessor.
type Planar[T PODNumeric] struct {
	shape, planeShape shapes.Shape
	planes            [][]T
}

var (
	_ PlanarStorage = (*Planar[float32])(nil)
	_ Accessor      = (*Planar[float32])(nil)
)

// NewPlanar allocates a zero-initialized Planar image with numPlanes planes of the given dimensions.
func NewPlanar[T PODNumeric](numPlanes int, planeDimensions ...int) *Planar[T] {
	if numPlanes < 0 {
		exceptions.Panicf("NewPlanar: numPlanes must be >= 0, got %d", numPlanes)
	}
	planeShape := shapes.Make(DTypeOf[T](), planeDimensions...)
	p := &Planar[T]{
		shape:      shapes.ConcatenateDimensions(shapes.Make(planeShape.DType, numPlanes), planeShape),
		planeShape: planeShape,
		planes:     make([][]T, numPlanes),
	}
	for ii := range p.planes {
		p.planes[ii] = make([]T, planeShape.Size())
	}
	return p
}

// PlanarFromSlices creates a Planar image using the given slices as planes, without copying them.
//
// It returns an error if any of the planes doesn't match the size of the plane dimensions.
func PlanarFromSlices[T PODNumeric](planes [][]T, planeDimensions ...int) (*Planar[T], error) {
	planeShape := shapes.Make(DTypeOf[T](), planeDimensions...)
	for ii, plane := range planes {
		if len(plane) != planeShape.Size() {
			return nil, errors.Errorf("PlanarFromSlices: plane shape %s requires %d elements, plane #%d has %d",
				planeShape, planeShape.Size(), ii, len(plane))
		}
	}
	return &Planar[T]{
		shape:      shapes.ConcatenateDimensions(shapes.Make(planeShape.DType, len(planes)), planeShape),
		planeShape: planeShape,
		planes:     planes,
	}, nil
}

// MustPlanarFromSlices is like PlanarFromSlices but panics on error.
func MustPlanarFromSlices[T PODNumeric](planes [][]T, planeDimensions ...int) *Planar[T] {
	p, err := PlanarFromSlices(planes, planeDimensions...)
	if err != nil {
		panic(err)
	}
	return p
}

// Shape implements Image. The leading axis is the plane index.
func (p *Planar[T]) Shape() shapes.Shape { return p.shape }

// NumPlanes implements PlanarStorage.
func (p *Planar[T]) NumPlanes() int { return len(p.planes) }

// PlaneShape implements PlanarStorage.
func (p *Planar[T]) PlaneShape() shapes.Shape { return p.planeShape }

// Plane implements PlanarStorage. It returns the []T of the plane.
func (p *Planar[T]) Plane(planeIdx int) any { return p.planes[planeIdx] }

// PlaneData returns the buffer of the given plane. Changes to it are reflected in the image.
func (p *Planar[T]) PlaneData(planeIdx int) []T { return p.planes[planeIdx] }

// PlaneAsFlat returns a Flat image sharing the buffer of the given plane.
func (p *Planar[T]) PlaneAsFlat(planeIdx int) *Flat[T] {
	return &Flat[T]{shape: p.planeShape, data: p.planes[planeIdx]}
}

// Clone returns a deep copy of the image.
func (p *Planar[T]) Clone() *Planar[T] {
	planes := make([][]T, len(p.planes))
	for ii, plane := range p.planes {
		planes[ii] = slices.Clone(plane)
	}
	return &Planar[T]{shape: p.shape.Clone(), planeShape: p.planeShape.Clone(), planes: planes}
}

// At returns the element at the given indices: the first one is the plane, the others index the plane.
// It panics if the indices are out-of-bounds.
func (p *Planar[T]) At(indices ...int) T {
	idx, err := p.shape.FlatIndex(indices...)
	if err != nil {
		exceptions.Panicf("Planar.At: %v", err)
	}
	return p.atFlat(idx)
}

// Set the element at the given indices: the first one is the plane, the others index the plane.
// It panics if the indices are out-of-bounds.
func (p *Planar[T]) Set(value T, indices ...int) {
	idx, err := p.shape.FlatIndex(indices...)
	if err != nil {
		exceptions.Panicf("Planar.Set: %v", err)
	}
	planeSize := p.planeShape.Size()
	p.planes[idx/planeSize][idx%planeSize] = value
}

// atFlat returns the element at the flat index of the logical shape.
func (p *Planar[T]) atFlat(flatIdx int) T {
	planeSize := p.planeShape.Size()
	return p.planes[flatIdx/planeSize][flatIdx%planeSize]
}

// Float64At implements Accessor.
func (p *Planar[T]) Float64At(flatIdx int) float64 {
	return float64(p.atFlat(flatIdx))
}

// SetFloat64At implements Accessor.
func (p *Planar[T]) SetFloat64At(flatIdx int, value float64) {
	planeSize := p.planeShape.Size()
	p.planes[flatIdx/planeSize][flatIdx%planeSize] = FromFloat64[T](value)
}
