// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arith

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/imgarith/pkg/core/images"
	"github.com/pkg/errors"
)

// kernelFn is the signature of every kernel: it computes `result = a <op> b`.
//
// Operands are the containers given to Resolve, already validated by CheckOperands, so kernels
// don't check anything: they extract the typed buffers once and run the loop.
type kernelFn func(result, a, b any)

// probeFn validates a kernel for the given key, see probeKernel.
type probeFn func(key Key, fn kernelFn) error

// CompiledKernel is an executable routine for exactly one Key.
//
// It is immutable and safe for concurrent use. Create them with Cache.GetOrBuild.
type CompiledKernel struct {
	key         Key
	fn          kernelFn
	accelerated bool
}

// Key returns the specialization implemented by the kernel.
func (k *CompiledKernel) Key() Key { return k.key }

// Accelerated returns whether the kernel is a vectorized implementation, as opposed to a generic loop.
func (k *CompiledKernel) Accelerated() bool { return k.accelerated }

// String implements fmt.Stringer.
func (k *CompiledKernel) String() string {
	if k.accelerated {
		return fmt.Sprintf("kernel %s (accelerated)", k.key)
	}
	return fmt.Sprintf("kernel %s", k.key)
}

// run executes the kernel. The operands must conform to the key.
func (k *CompiledKernel) run(result, a, b any) {
	k.fn(result, a, b)
}

// priority of a kernel registration: the highest priority enabled is used.
type priority int

const (
	priorityGeneric     priority = 0
	priorityAccelerated priority = 10
)

type registration struct {
	fn       kernelFn
	priority priority
	probe    probeFn
}

// kernelRegistry holds the kernels available for each Key.
//
// Registration happens during package initialization only, it's read-only afterward.
type kernelRegistry struct {
	entries [numKeys][]registration
}

// defaultRegistry is populated by the init functions of the generated and accelerated kernels.
var defaultRegistry = &kernelRegistry{}

// register a kernel for the key. It panics for keys that can never be specialized.
func (r *kernelRegistry) register(key Key, prio priority, fn kernelFn, probe probeFn) {
	idx, ok := key.index()
	if !ok {
		exceptions.Panicf("arith: can't register a kernel for %s", key)
	}
	r.entries[idx] = append(r.entries[idx], registration{fn: fn, priority: prio, probe: probe})
}

// lookup returns the registration with the highest priority not above maxPriority.
func (r *kernelRegistry) lookup(key Key, maxPriority priority) (reg registration, found bool) {
	idx, ok := key.index()
	if !ok {
		return
	}
	for _, candidate := range r.entries[idx] {
		if candidate.priority > maxPriority {
			continue
		}
		if !found || candidate.priority > reg.priority {
			reg, found = candidate, true
		}
	}
	return
}

// registerKernel registers fn for the operator and variant, with the dtype of T.
func registerKernel[T images.PODNumeric](r *kernelRegistry, op Operator, v variant, prio priority, fn kernelFn) {
	r.register(keyFor(op, v, images.DTypeOf[T]()), prio, fn, probeKernel[T])
}

// probeKernel runs the kernel over one-element operands and compares the outcome with the native
// Go operator.
//
// It returns an error if the kernel panics or computes a different value.
func probeKernel[T images.PODNumeric](key Key, fn kernelFn) error {
	const lhs, rhs = 6, 3
	want := applyScalar(key.Op, T(lhs), T(rhs))
	var got T
	err := exceptions.TryCatch[error](func() {
		v, _ := key.variant()
		switch v {
		case variantFlat:
			output := images.NewFlat[T](1)
			fn(output, images.MustFlatFromSlice([]T{lhs}, 1), images.MustFlatFromSlice([]T{rhs}, 1))
			got = output.Data()[0]
		case variantFlatConstant:
			output := images.NewFlat[T](1)
			fn(output, images.MustFlatFromSlice([]T{lhs}, 1), images.ScalarOf(T(rhs)))
			got = output.Data()[0]
		case variantPlanar:
			output := images.NewPlanar[T](1, 1)
			fn(output, images.MustPlanarFromSlices([][]T{{lhs}}, 1), images.MustPlanarFromSlices([][]T{{rhs}}, 1))
			got = output.PlaneData(0)[0]
		}
	})
	if err != nil {
		return errors.WithMessagef(err, "kernel for %s panicked", key)
	}
	if got != want {
		return errors.Errorf("kernel for %s computed %v %s %v = %v, wanted %v", key, T(lhs), key.Op.Symbol(), T(rhs), got, want)
	}
	return nil
}
