// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arith

import (
	"reflect"

	"github.com/gomlx/imgarith/pkg/core/images"
)

// Layout is the storage layout of an operand, as seen by the engine.
type Layout int

//go:generate go tool enumer -type=Layout -trimprefix=Layout -output=gen_layout_enumer.go layout.go

const (
	// LayoutUnsupported is any operand the engine can't specialize on, including nil.
	LayoutUnsupported Layout = iota

	// LayoutFlat is an image with one contiguous buffer, see images.FlatStorage.
	LayoutFlat

	// LayoutPlanar is an image with one buffer per plane, see images.PlanarStorage.
	LayoutPlanar

	// LayoutConstantScalar is a single constant value, see images.ScalarValue.
	LayoutConstantScalar
)

// Classify returns the storage layout of the operand, by querying its capabilities in order:
// images.FlatStorage, images.PlanarStorage and then images.ScalarValue.
//
// An operand implementing more than one capability is classified by the first one that matches.
// It never panics: nil values (including typed nil pointers) are LayoutUnsupported.
func Classify(operand any) Layout {
	if isNil(operand) {
		return LayoutUnsupported
	}
	switch operand.(type) {
	case images.FlatStorage:
		return LayoutFlat
	case images.PlanarStorage:
		return LayoutPlanar
	case images.ScalarValue:
		return LayoutConstantScalar
	}
	return LayoutUnsupported
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return value.IsNil()
	default:
		return false
	}
}
