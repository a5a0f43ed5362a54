// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arith

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/imgarith/pkg/core/images"
	"github.com/pkg/errors"
)

// Operator is one of the supported binary elementwise arithmetic operators.
type Operator int

//go:generate go tool enumer -type=Operator -trimprefix=Op -transform=snake -output=gen_operator_enumer.go operator.go

const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
	OpDivide
)

// numOperators is the number of Operator values, used to size the kernel tables.
const numOperators = int(OpDivide) + 1

// Symbol returns the Go operator symbol: "+", "-", "*" or "/".
func (op Operator) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// ParseOperator accepts either the operator name ("add", "subtract", "multiply", "divide", case-insensitive)
// or its symbol ("+", "-", "*", "/").
func ParseOperator(nameOrSymbol string) (Operator, error) {
	for _, op := range OperatorValues() {
		if op.Symbol() == nameOrSymbol {
			return op, nil
		}
	}
	op, err := OperatorString(nameOrSymbol)
	if err != nil {
		return 0, errors.Errorf("unknown arithmetic operator %q, valid values are %q or their symbols \"+-*/\"",
			nameOrSymbol, OperatorStrings())
	}
	return op, nil
}

// applyScalar applies the operator to one pair of values with Go's native semantics.
//
// It is not used in the kernels' loops, only to validate them.
func applyScalar[T images.PODNumeric](op Operator, a, b T) T {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		return a / b
	}
	exceptions.Panicf("unknown arithmetic operator %s", op)
	panic(nil) // Quiet linter.
}

// applyFloat64 applies the operator on float64 values: used by the generic fallback.
func (op Operator) applyFloat64(a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		return a / b
	}
	exceptions.Panicf("unknown arithmetic operator %s", op)
	panic(nil) // Quiet linter.
}
