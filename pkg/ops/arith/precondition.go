// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arith

import (
	"reflect"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/imgarith/pkg/core/images"
	"github.com/gomlx/imgarith/pkg/core/shapes"
)

// Compatibility is the outcome of checking the operands of an operation.
type Compatibility int

//go:generate go tool enumer -type=Compatibility -output=gen_compatibility_enumer.go precondition.go

const (
	// Compatible operands can be handled by a specialized kernel.
	Compatible Compatibility = iota

	// AliasingHazard means the result is the same container as the second operand, but not the first.
	AliasingHazard

	// ShapeMismatch means the dimensions (or the number of planes, or a buffer length) differ.
	ShapeMismatch

	// DTypeMismatch means the element types differ.
	DTypeMismatch

	// LayoutMismatch means the operands have different or unsupported storage layouts.
	LayoutMismatch
)

// Precondition holds the result of CheckOperands. If Outcome is Compatible, the remaining fields
// describe the specialization to use.
type Precondition struct {
	Outcome  Compatibility
	Layout   Layout
	DType    dtypes.DType
	Constant bool
}

// Key returns the specialization key for the operator. Only meaningful if Outcome is Compatible.
func (p Precondition) Key(op Operator) Key {
	return Key{Op: op, Layout: p.Layout, DType: p.DType, Constant: p.Constant}
}

func refuse(outcome Compatibility) Precondition {
	return Precondition{Outcome: outcome, DType: dtypes.InvalidDType}
}

// CheckOperands decides whether the operation `result = a <op> b` can be executed by a specialized
// kernel.
//
// It requires:
//
//   - result and a to be the same layout (Flat or Planar), with the same dimensions and dtype.
//   - b to be of the same layout with the same dimensions and dtype, or (for Flat only) a constant scalar.
//   - For Planar, the same number of planes in the three operands.
//   - Every buffer to hold exactly the number of elements its shape declares.
//   - result not to be the same container as b, unless a is also that same container.
//
// It only inspects shapes, buffer lengths and identities: the cost doesn't depend on the number of
// elements (except for the planes, which are checked one by one).
// It never panics.
func CheckOperands(result, a, b any) Precondition {
	if sameContainer(result, b) && !sameContainer(a, b) {
		// The kernel would overwrite elements of b before reading them.
		return refuse(AliasingHazard)
	}
	switch Classify(a) {
	case LayoutFlat:
		return checkFlat(result, a.(images.FlatStorage), b)
	case LayoutPlanar:
		return checkPlanar(result, a.(images.PlanarStorage), b)
	default:
		return refuse(LayoutMismatch)
	}
}

// checkShape compares the shape of the operand with the reference shape.
func checkShape(reference, operand shapes.Shape) Compatibility {
	if !operand.EqualDimensions(reference) {
		return ShapeMismatch
	}
	if operand.DType != reference.DType {
		return DTypeMismatch
	}
	return Compatible
}

func checkFlat(result any, a images.FlatStorage, b any) Precondition {
	shape := a.Shape()
	if Classify(result) != LayoutFlat {
		return refuse(LayoutMismatch)
	}
	res := result.(images.FlatStorage)
	if outcome := checkShape(shape, res.Shape()); outcome != Compatible {
		return refuse(outcome)
	}
	if !bufferMatches(a.FlatData(), shape) || !bufferMatches(res.FlatData(), shape) {
		return refuse(ShapeMismatch)
	}

	switch Classify(b) {
	case LayoutConstantScalar:
		return Precondition{Outcome: Compatible, Layout: LayoutFlat, DType: shape.DType, Constant: true}
	case LayoutFlat:
		rhs := b.(images.FlatStorage)
		if outcome := checkShape(shape, rhs.Shape()); outcome != Compatible {
			return refuse(outcome)
		}
		if !bufferMatches(rhs.FlatData(), shape) {
			return refuse(ShapeMismatch)
		}
		return Precondition{Outcome: Compatible, Layout: LayoutFlat, DType: shape.DType}
	default:
		return refuse(LayoutMismatch)
	}
}

func checkPlanar(result any, a images.PlanarStorage, b any) Precondition {
	numPlanes := a.NumPlanes()
	if numPlanes <= 0 {
		// Nothing to specialize on.
		return refuse(LayoutMismatch)
	}
	if Classify(b) != LayoutPlanar || Classify(result) != LayoutPlanar {
		return refuse(LayoutMismatch)
	}
	rhs, res := b.(images.PlanarStorage), result.(images.PlanarStorage)
	if rhs.NumPlanes() != numPlanes || res.NumPlanes() != numPlanes {
		return refuse(ShapeMismatch)
	}
	planeShape := a.PlaneShape()
	for _, operand := range []images.PlanarStorage{rhs, res} {
		if outcome := checkShape(planeShape, operand.PlaneShape()); outcome != Compatible {
			return refuse(outcome)
		}
		if outcome := checkShape(a.Shape(), operand.Shape()); outcome != Compatible {
			return refuse(outcome)
		}
	}
	for _, operand := range []images.PlanarStorage{a, rhs, res} {
		for planeIdx := range numPlanes {
			if !bufferMatches(operand.Plane(planeIdx), planeShape) {
				return refuse(ShapeMismatch)
			}
		}
	}
	return Precondition{Outcome: Compatible, Layout: LayoutPlanar, DType: planeShape.DType}
}

// bufferMatches checks that buffer is a slice of the Go type of shape.DType with exactly shape.Size() elements.
func bufferMatches(buffer any, shape shapes.Shape) bool {
	if buffer == nil {
		return false
	}
	value := reflect.ValueOf(buffer)
	if value.Kind() != reflect.Slice {
		return false
	}
	if dtypes.FromGoType(value.Type().Elem()) != shape.DType {
		return false
	}
	return value.Len() == shape.Size()
}

// sameContainer reports whether x and y are the very same container: only pointers can be,
// any two values are considered distinct containers.
//
// It never panics, even for non-comparable types.
func sameContainer(x, y any) bool {
	if x == nil || y == nil {
		return false
	}
	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	if vx.Kind() != reflect.Pointer || vy.Kind() != reflect.Pointer || vx.Type() != vy.Type() {
		return false
	}
	return !vx.IsNil() && vx.Pointer() == vy.Pointer()
}
