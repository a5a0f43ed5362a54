// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arith

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes"
)

// MaxDTypes is the upper bound (exclusive) of the DType values the kernel tables can hold.
const MaxDTypes = 32

// Key identifies one specialization: the operator, the storage layout, the element type and whether
// the second operand is a constant scalar.
//
// Keys are comparable values. Two equal keys always map to the same CompiledKernel in a Cache.
type Key struct {
	Op       Operator
	Layout   Layout
	DType    dtypes.DType
	Constant bool
}

// String implements fmt.Stringer.
func (k Key) String() string {
	if k.Constant {
		return fmt.Sprintf("%s(%s, %s, constant)", k.Op, k.Layout, k.DType)
	}
	return fmt.Sprintf("%s(%s, %s)", k.Op, k.Layout, k.DType)
}

// variant is the loop structure used by a kernel.
type variant int

const (
	variantFlat variant = iota
	variantFlatConstant
	variantPlanar
	numVariants
)

// keyFor returns the Key built from a variant.
func keyFor(op Operator, v variant, dtype dtypes.DType) Key {
	switch v {
	case variantFlat:
		return Key{Op: op, Layout: LayoutFlat, DType: dtype}
	case variantFlatConstant:
		return Key{Op: op, Layout: LayoutFlat, DType: dtype, Constant: true}
	default:
		return Key{Op: op, Layout: LayoutPlanar, DType: dtype}
	}
}

// variant returns the loop structure for the key, and false if there is none.
func (k Key) variant() (variant, bool) {
	switch {
	case k.Layout == LayoutFlat && !k.Constant:
		return variantFlat, true
	case k.Layout == LayoutFlat && k.Constant:
		return variantFlatConstant, true
	case k.Layout == LayoutPlanar && !k.Constant:
		return variantPlanar, true
	}
	return 0, false
}

// numKeys is the size of the kernel tables.
const numKeys = numOperators * int(numVariants) * MaxDTypes

// index returns the position of the key in the kernel tables, and false if the key can never be
// specialized.
func (k Key) index() (int, bool) {
	if !k.Op.IsAOperator() || k.DType <= dtypes.InvalidDType || int(k.DType) >= MaxDTypes {
		return 0, false
	}
	v, ok := k.variant()
	if !ok {
		return 0, false
	}
	return (int(k.Op)*int(numVariants)+int(v))*MaxDTypes + int(k.DType), true
}
