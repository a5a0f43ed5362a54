// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arith

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/gomlx/imgarith/pkg/core/images"
)

// Vectorized float64 multiplication, registered with a higher priority than the generic loops.
//
// Only the multiplication is accelerated: vecmath offers no block subtraction or division, and its
// in-place addition would require copying an operand into the result, which is not safe when the
// result is the same container as an operand.
func init() {
	registerKernel[float64](defaultRegistry, OpMultiply, variantFlat, priorityAccelerated, flatMultiplyFloat64VecMath)
	registerKernel[float64](defaultRegistry, OpMultiply, variantFlatConstant, priorityAccelerated, flatConstantMultiplyFloat64VecMath)
	registerKernel[float64](defaultRegistry, OpMultiply, variantPlanar, priorityAccelerated, planarMultiplyFloat64VecMath)
}

func flatMultiplyFloat64VecMath(result, a, b any) {
	lhs := a.(images.FlatStorage).FlatData().([]float64)
	rhs := b.(images.FlatStorage).FlatData().([]float64)
	output := result.(images.FlatStorage).FlatData().([]float64)
	vecmath.MulBlock(output[:len(lhs)], lhs, rhs[:len(lhs)])
}

func flatConstantMultiplyFloat64VecMath(result, a, b any) {
	lhs := a.(images.FlatStorage).FlatData().([]float64)
	output := result.(images.FlatStorage).FlatData().([]float64)
	vecmath.ScaleBlock(output[:len(lhs)], lhs, b.(images.ScalarValue).Float64())
}

func planarMultiplyFloat64VecMath(result, a, b any) {
	lhsPlanes := a.(images.PlanarStorage)
	rhsPlanes := b.(images.PlanarStorage)
	outputPlanes := result.(images.PlanarStorage)
	for planeIdx := range lhsPlanes.NumPlanes() {
		lhs := lhsPlanes.Plane(planeIdx).([]float64)
		rhs := rhsPlanes.Plane(planeIdx).([]float64)
		output := outputPlanes.Plane(planeIdx).([]float64)
		vecmath.MulBlock(output[:len(lhs)], lhs, rhs[:len(lhs)])
	}
}
