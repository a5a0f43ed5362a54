// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arith

import (
	"math"

	"github.com/gomlx/imgarith/pkg/core/images"
	"github.com/pkg/errors"
)

// ErrNoSpecialization is returned (wrapped) by Apply when the operands can't be handled, neither by a
// specialized kernel nor by the generic fallback.
var ErrNoSpecialization = errors.New("no specialized or generic implementation for the operands")

// applyGeneric computes `result = a <op> b` element by element through images.Accessor, using float64
// arithmetic converted back to the result element type.
//
// It accepts any mix of layouts, as long as the dimensions are the same. The second operand can also be
// an images.ScalarValue. Each element is read before the same element of result is written, so result
// can be any of the operands.
// Precision is lost for 64-bit integers beyond 2^53.
func applyGeneric(op Operator, result, a, b any) error {
	if !op.IsAOperator() {
		return errors.Wrapf(ErrNoSpecialization, "arith: invalid operator %s", op)
	}
	output, okResult := result.(images.Accessor)
	lhs, okA := a.(images.Accessor)
	if !okResult || !okA || isNil(result) || isNil(a) {
		return errors.Wrapf(ErrNoSpecialization, "arith: generic %s requires result and a to be images.Accessor, got %T and %T",
			op, result, a)
	}
	if !output.Shape().EqualDimensions(lhs.Shape()) {
		return errors.Wrapf(ErrNoSpecialization, "arith: generic %s with shapes result=%s and a=%s: %s",
			op, output.Shape(), lhs.Shape(), ShapeMismatch)
	}
	isInt := !output.Shape().DType.IsFloat()
	size := lhs.Shape().Size()
	switch rhs := b.(type) {
	case images.Accessor:
		if isNil(b) {
			break
		}
		if !rhs.Shape().EqualDimensions(lhs.Shape()) {
			return errors.Wrapf(ErrNoSpecialization, "arith: generic %s with shapes a=%s and b=%s: %s",
				op, lhs.Shape(), rhs.Shape(), ShapeMismatch)
		}
		for ii := range size {
			value, err := applyGenericValue(op, isInt, lhs.Float64At(ii), rhs.Float64At(ii))
			if err != nil {
				return err
			}
			output.SetFloat64At(ii, value)
		}
		return nil
	case images.ScalarValue:
		if isNil(b) {
			break
		}
		c := rhs.Float64()
		if isInt {
			// Same as the specialized kernels, that convert the constant to the element type first.
			c = math.Trunc(c)
		}
		for ii := range size {
			value, err := applyGenericValue(op, isInt, lhs.Float64At(ii), c)
			if err != nil {
				return err
			}
			output.SetFloat64At(ii, value)
		}
		return nil
	}
	return errors.Wrapf(ErrNoSpecialization, "arith: generic %s doesn't support b=%T", op, b)
}

func applyGenericValue(op Operator, isInt bool, a, b float64) (float64, error) {
	if isInt && op == OpDivide && b == 0 {
		return 0, errors.Errorf("arith: integer divide by zero")
	}
	// For integers, the conversion back from float64 truncates toward zero, like integer division.
	return op.applyFloat64(a, b), nil
}
