// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package images

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes"
)

// Scalar is a constant of type T, to be used as the second operand of an operation.
//
// It implements ScalarValue.
type Scalar[T PODNumeric] struct {
	Value T
}

var _ ScalarValue = Scalar[float32]{}

// ScalarOf returns a Scalar holding value.
func ScalarOf[T PODNumeric](value T) Scalar[T] {
	return Scalar[T]{Value: value}
}

// Float64 implements ScalarValue.
func (s Scalar[T]) Float64() float64 { return float64(s.Value) }

// DType of the scalar.
func (s Scalar[T]) DType() dtypes.DType { return DTypeOf[T]() }

// String implements fmt.Stringer.
func (s Scalar[T]) String() string { return fmt.Sprintf("%v(%s)", s.Value, s.DType()) }
