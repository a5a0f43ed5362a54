/***** File generated by ./internal/cmd/arith_generator. Don't edit it directly. *****/

package arith

import (
	"github.com/gomlx/imgarith/pkg/core/images"
)

// flatAddGeneric implements result[i] = a[i] + b[i] for Flat operands.
func flatAddGeneric[T images.PODNumeric](result, a, b any) {
	lhs := a.(images.FlatStorage).FlatData().([]T)
	rhs := b.(images.FlatStorage).FlatData().([]T)
	output := result.(images.FlatStorage).FlatData().([]T)
	rhs = rhs[:len(lhs)]
	output = output[:len(lhs)]
	for ii, value := range lhs {
		output[ii] = value + rhs[ii]
	}
}

// flatConstantAddGeneric implements result[i] = a[i] + c for a Flat operand and a constant.
func flatConstantAddGeneric[T images.PODNumeric](result, a, b any) {
	lhs := a.(images.FlatStorage).FlatData().([]T)
	c := images.FromFloat64[T](b.(images.ScalarValue).Float64())
	output := result.(images.FlatStorage).FlatData().([]T)
	output = output[:len(lhs)]
	for ii, value := range lhs {
		output[ii] = value + c
	}
}

// planarAddGeneric implements result[p][i] = a[p][i] + b[p][i] for Planar operands.
func planarAddGeneric[T images.PODNumeric](result, a, b any) {
	lhsPlanes := a.(images.PlanarStorage)
	rhsPlanes := b.(images.PlanarStorage)
	outputPlanes := result.(images.PlanarStorage)
	for planeIdx := range lhsPlanes.NumPlanes() {
		lhs := lhsPlanes.Plane(planeIdx).([]T)
		rhs := rhsPlanes.Plane(planeIdx).([]T)
		output := outputPlanes.Plane(planeIdx).([]T)
		rhs = rhs[:len(lhs)]
		output = output[:len(lhs)]
		for ii, value := range lhs {
			output[ii] = value + rhs[ii]
		}
	}
}

// flatSubtractGeneric implements result[i] = a[i] - b[i] for Flat operands.
func flatSubtractGeneric[T images.PODNumeric](result, a, b any) {
	lhs := a.(images.FlatStorage).FlatData().([]T)
	rhs := b.(images.FlatStorage).FlatData().([]T)
	output := result.(images.FlatStorage).FlatData().([]T)
	rhs = rhs[:len(lhs)]
	output = output[:len(lhs)]
	for ii, value := range lhs {
		output[ii] = value - rhs[ii]
	}
}

// flatConstantSubtractGeneric implements result[i] = a[i] - c for a Flat operand and a constant.
func flatConstantSubtractGeneric[T images.PODNumeric](result, a, b any) {
	lhs := a.(images.FlatStorage).FlatData().([]T)
	c := images.FromFloat64[T](b.(images.ScalarValue).Float64())
	output := result.(images.FlatStorage).FlatData().([]T)
	output = output[:len(lhs)]
	for ii, value := range lhs {
		output[ii] = value - c
	}
}

// planarSubtractGeneric implements result[p][i] = a[p][i] - b[p][i] for Planar operands.
func planarSubtractGeneric[T images.PODNumeric](result, a, b any) {
	lhsPlanes := a.(images.PlanarStorage)
	rhsPlanes := b.(images.PlanarStorage)
	outputPlanes := result.(images.PlanarStorage)
	for planeIdx := range lhsPlanes.NumPlanes() {
		lhs := lhsPlanes.Plane(planeIdx).([]T)
		rhs := rhsPlanes.Plane(planeIdx).([]T)
		output := outputPlanes.Plane(planeIdx).([]T)
		rhs = rhs[:len(lhs)]
		output = output[:len(lhs)]
		for ii, value := range lhs {
			output[ii] = value - rhs[ii]
		}
	}
}

// flatMultiplyGeneric implements result[i] = a[i] * b[i] for Flat operands.
func flatMultiplyGeneric[T images.PODNumeric](result, a, b any) {
	lhs := a.(images.FlatStorage).FlatData().([]T)
	rhs := b.(images.FlatStorage).FlatData().([]T)
	output := result.(images.FlatStorage).FlatData().([]T)
	rhs = rhs[:len(lhs)]
	output = output[:len(lhs)]
	for ii, value := range lhs {
		output[ii] = value * rhs[ii]
	}
}

// flatConstantMultiplyGeneric implements result[i] = a[i] * c for a Flat operand and a constant.
func flatConstantMultiplyGeneric[T images.PODNumeric](result, a, b any) {
	lhs := a.(images.FlatStorage).FlatData().([]T)
	c := images.FromFloat64[T](b.(images.ScalarValue).Float64())
	output := result.(images.FlatStorage).FlatData().([]T)
	output = output[:len(lhs)]
	for ii, value := range lhs {
		output[ii] = value * c
	}
}

// planarMultiplyGeneric implements result[p][i] = a[p][i] * b[p][i] for Planar operands.
func planarMultiplyGeneric[T images.PODNumeric](result, a, b any) {
	lhsPlanes := a.(images.PlanarStorage)
	rhsPlanes := b.(images.PlanarStorage)
	outputPlanes := result.(images.PlanarStorage)
	for planeIdx := range lhsPlanes.NumPlanes() {
		lhs := lhsPlanes.Plane(planeIdx).([]T)
		rhs := rhsPlanes.Plane(planeIdx).([]T)
		output := outputPlanes.Plane(planeIdx).([]T)
		rhs = rhs[:len(lhs)]
		output = output[:len(lhs)]
		for ii, value := range lhs {
			output[ii] = value * rhs[ii]
		}
	}
}

// flatDivideGeneric implements result[i] = a[i] / b[i] for Flat operands.
func flatDivideGeneric[T images.PODNumeric](result, a, b any) {
	lhs := a.(images.FlatStorage).FlatData().([]T)
	rhs := b.(images.FlatStorage).FlatData().([]T)
	output := result.(images.FlatStorage).FlatData().([]T)
	rhs = rhs[:len(lhs)]
	output = output[:len(lhs)]
	for ii, value := range lhs {
		output[ii] = value / rhs[ii]
	}
}

// flatConstantDivideGeneric implements result[i] = a[i] / c for a Flat operand and a constant.
func flatConstantDivideGeneric[T images.PODNumeric](result, a, b any) {
	lhs := a.(images.FlatStorage).FlatData().([]T)
	c := images.FromFloat64[T](b.(images.ScalarValue).Float64())
	output := result.(images.FlatStorage).FlatData().([]T)
	output = output[:len(lhs)]
	for ii, value := range lhs {
		output[ii] = value / c
	}
}

// planarDivideGeneric implements result[p][i] = a[p][i] / b[p][i] for Planar operands.
func planarDivideGeneric[T images.PODNumeric](result, a, b any) {
	lhsPlanes := a.(images.PlanarStorage)
	rhsPlanes := b.(images.PlanarStorage)
	outputPlanes := result.(images.PlanarStorage)
	for planeIdx := range lhsPlanes.NumPlanes() {
		lhs := lhsPlanes.Plane(planeIdx).([]T)
		rhs := rhsPlanes.Plane(planeIdx).([]T)
		output := outputPlanes.Plane(planeIdx).([]T)
		rhs = rhs[:len(lhs)]
		output = output[:len(lhs)]
		for ii, value := range lhs {
			output[ii] = value / rhs[ii]
		}
	}
}
