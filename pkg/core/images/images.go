// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package images defines the containers of multidimensional numeric arrays ("images") used by the
// arithmetic engine, and the capabilities through which the engine inspects them.
//
// Two storage layouts are provided:
//
//   - Flat: one contiguous, row-major buffer holding all the elements (see Flat).
//   - Planar: an ordered sequence of equally shaped buffers, one per plane (see Planar). The
//     logical shape is `[numPlanes, planeDims...]`.
//
// Plus Scalar, a single constant that can be used as the second operand of an operation.
//
// The engine never looks at the concrete types: it queries the capabilities FlatStorage,
// PlanarStorage and ScalarValue. Any type implementing them can be used as an operand.
//
// It also includes conversion from/to Go's image.Image, see ToPlanar, ToImage, Load and Save.
package images

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/imgarith/pkg/core/shapes"
)

// PODNumeric lists the Go plain-old-data numeric types that can back an image.
//
// Go's `int` is not included since its DType is platform dependent.
type PODNumeric interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Image is anything with a Shape.
type Image interface {
	Shape() shapes.Shape
}

// FlatStorage is implemented by images backed by one contiguous buffer.
type FlatStorage interface {
	Image

	// FlatData returns the backing buffer, a slice of the Go type of Shape().DType.
	// It is expected to have Shape().Size() elements.
	FlatData() any
}

// PlanarStorage is implemented by images backed by a sequence of equally shaped planes.
type PlanarStorage interface {
	Image

	// NumPlanes returns the number of planes.
	NumPlanes() int

	// PlaneShape returns the shape of each plane.
	PlaneShape() shapes.Shape

	// Plane returns the buffer of the given plane, a slice of the Go type of PlaneShape().DType.
	// It is expected to have PlaneShape().Size() elements.
	Plane(p int) any
}

// ScalarValue is a constant convertible to float64.
type ScalarValue interface {
	Float64() float64
}

// Accessor gives slow, element by element, access to an image through float64 values, indexed
// by the row-major flat index of the logical shape.
//
// It is used by generic (unspecialized) algorithms.
type Accessor interface {
	Image

	// Float64At returns the element at the given flat index converted to float64.
	Float64At(flatIdx int) float64

	// SetFloat64At converts the value to the image element type and sets it at the given flat index.
	// Integer types wrap around, like a native Go conversion from int64 (or uint64).
	SetFloat64At(flatIdx int, value float64)
}

// FromFloat64 converts a float64 to T.
//
// Float values are simply converted. Integer values are first truncated to int64 (or uint64 for
// unsigned types) and then converted to T, so they wrap around the same way native fixed-width
// arithmetic does.
func FromFloat64[T PODNumeric](value float64) T {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return T(value)
	case uint8, uint16, uint32, uint64:
		if value < 0 {
			return T(int64(value))
		}
		return T(uint64(value))
	default:
		return T(int64(value))
	}
}

// DTypeOf returns the DType associated with the Go type T.
func DTypeOf[T PODNumeric]() dtypes.DType {
	return dtypes.FromGenericsType[T]()
}
