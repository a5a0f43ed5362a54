// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arith

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Matcher resolves operations to specialized kernels, obtained from its Cache.
//
// It is safe for concurrent use.
type Matcher struct {
	cache  *Cache
	config Config
}

// NewMatcher creates a Matcher using the given cache. The cache's acceleration setting is not changed
// by config.
func NewMatcher(cache *Cache, config Config) *Matcher {
	return &Matcher{cache: cache, config: config}
}

// Cache used by the matcher.
func (m *Matcher) Cache() *Cache { return m.cache }

// Config used by the matcher.
func (m *Matcher) Config() Config { return m.config }

// Resolve checks whether a specialized kernel can compute `result = a <op> b` and, if so, returns the
// kernel bound to the operands. The kernel is built on the first request for its Key.
//
// It returns false for any operands it can't handle: it doesn't panic on data conditions. A failure to
// build the kernel does panic, it's a defect of the kernel, not a property of the operands.
func (m *Matcher) Resolve(op Operator, result, a, b any) (*BoundOperation, bool) {
	kernel, ok := m.match(op, result, a, b)
	if !ok {
		return nil, false
	}
	return &BoundOperation{kernel: kernel, result: result, a: a, b: b}, true
}

// Conforms returns whether Resolve would succeed. It builds the kernel if needed.
func (m *Matcher) Conforms(op Operator, result, a, b any) bool {
	_, ok := m.match(op, result, a, b)
	return ok
}

func (m *Matcher) match(op Operator, result, a, b any) (*CompiledKernel, bool) {
	if !m.config.Specialize || !op.IsAOperator() {
		return nil, false
	}
	pre := CheckOperands(result, a, b)
	if pre.Outcome != Compatible {
		klog.V(2).Infof("arith: no specialization for %s: %s (result=%T, a=%T, b=%T)", op, pre.Outcome, result, a, b)
		return nil, false
	}
	key := pre.Key(op)
	if !m.cache.Supports(key) {
		klog.V(2).Infof("arith: no kernel available for %s", key)
		return nil, false
	}
	return m.cache.GetOrBuild(key), true
}

// Apply computes `result = a <op> b`, using a specialized kernel if one applies or the generic
// fallback otherwise (unless disabled in the Config).
//
// It returns an error wrapping ErrNoSpecialization if neither applies, and an error if execution
// fails (integer division by zero).
func (m *Matcher) Apply(op Operator, result, a, b any) error {
	if bound, ok := m.Resolve(op, result, a, b); ok {
		return bound.TryExecute()
	}
	if !m.config.Fallback {
		return errors.Wrapf(ErrNoSpecialization, "arith.Apply(%s) with result=%T, a=%T, b=%T, and fallback disabled",
			op, result, a, b)
	}
	return applyGeneric(op, result, a, b)
}

// BoundOperation is a kernel bound to its operands, ready to execute. It's cheap to create.
type BoundOperation struct {
	kernel       *CompiledKernel
	result, a, b any
}

// Kernel returns the kernel bound to the operands.
func (op *BoundOperation) Kernel() *CompiledKernel { return op.kernel }

// Execute computes the result, overwriting every element of it.
//
// It panics with a runtime error on an integer division by zero, like Go's division operator.
func (op *BoundOperation) Execute() {
	op.kernel.run(op.result, op.a, op.b)
}

// TryExecute is like Execute, but it returns runtime panics (integer division by zero) as an error.
// The contents of the result are undefined in that case.
func (op *BoundOperation) TryExecute() error {
	err := exceptions.TryCatch[error](op.Execute)
	if err != nil {
		return errors.WithMessagef(err, "executing %s", op.kernel)
	}
	return nil
}

// Resolve calls Default().Resolve.
func Resolve(op Operator, result, a, b any) (*BoundOperation, bool) {
	return Default().Resolve(op, result, a, b)
}

// Conforms calls Default().Conforms.
func Conforms(op Operator, result, a, b any) bool {
	return Default().Conforms(op, result, a, b)
}

// Apply calls Default().Apply.
func Apply(op Operator, result, a, b any) error {
	return Default().Apply(op, result, a, b)
}
