// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arith

import (
	"sync/atomic"

	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// Cache holds at most one CompiledKernel per Key, built on first use.
//
// It is safe for concurrent use: concurrent first requests for the same key may each build a kernel,
// but exactly one is published and every caller gets the published one. Lookups of published kernels
// are lock-free.
//
// Most users will use the process-wide cache owned by Default, but independent caches can be created
// with NewCache (e.g. for tests).
type Cache struct {
	registry    *kernelRegistry
	maxPriority priority
	kernels     [numKeys]atomic.Pointer[CompiledKernel]
	numKernels  atomic.Int64
	numBuilds   atomic.Int64
}

// NewCache creates an empty Cache, with accelerated kernels enabled.
func NewCache() *Cache {
	return newCacheWithRegistry(defaultRegistry)
}

func newCacheWithRegistry(registry *kernelRegistry) *Cache {
	return &Cache{registry: registry, maxPriority: priorityAccelerated}
}

// SetAccelerated enables or disables the use of accelerated (vectorized) kernels. Generic kernels are
// used when disabled.
//
// It must be called before the cache is used. It returns the cache itself, so calls can be chained.
func (c *Cache) SetAccelerated(enabled bool) *Cache {
	if enabled {
		c.maxPriority = priorityAccelerated
	} else {
		c.maxPriority = priorityGeneric
	}
	return c
}

// Supports returns whether a kernel is available for the key.
func (c *Cache) Supports(key Key) bool {
	_, found := c.registry.lookup(key, c.maxPriority)
	return found
}

// Lookup returns the published kernel for the key, if it was already built.
func (c *Cache) Lookup(key Key) (*CompiledKernel, bool) {
	idx, ok := key.index()
	if !ok {
		return nil, false
	}
	kernel := c.kernels[idx].Load()
	return kernel, kernel != nil
}

// GetOrBuild returns the kernel for the key, building and publishing it if this is the first request.
//
// It panics (see package exceptions) if no kernel is available for the key (check with Supports), or
// if the kernel fails validation: the generation failure is not a recoverable condition.
func (c *Cache) GetOrBuild(key Key) *CompiledKernel {
	idx, ok := key.index()
	if !ok {
		exceptions.Panicf("arith: no kernel can be built for %s", key)
	}
	slot := &c.kernels[idx]
	if kernel := slot.Load(); kernel != nil {
		return kernel
	}
	kernel := c.build(key)
	if slot.CompareAndSwap(nil, kernel) {
		c.numKernels.Add(1)
		klog.V(1).Infof("arith: built %s", kernel)
		return kernel
	}
	// Another goroutine published first: its kernel is the one everybody uses.
	return slot.Load()
}

// build creates a new kernel for the key, and validates it.
func (c *Cache) build(key Key) *CompiledKernel {
	c.numBuilds.Add(1)
	reg, found := c.registry.lookup(key, c.maxPriority)
	if !found {
		exceptions.Panicf("arith: kernel generation failed for %s: no kernel available", key)
	}
	if reg.fn == nil {
		exceptions.Panicf("arith: kernel generation failed for %s: nil kernel registered", key)
	}
	if reg.probe != nil {
		if err := reg.probe(key, reg.fn); err != nil {
			exceptions.Panicf("arith: kernel generation failed for %s: %+v", key, err)
		}
	}
	return &CompiledKernel{key: key, fn: reg.fn, accelerated: reg.priority > priorityGeneric}
}

// Len returns the number of kernels published in the cache.
func (c *Cache) Len() int {
	return int(c.numKernels.Load())
}

// NumBuilds returns how many kernels were built, including those discarded because another
// goroutine published a kernel for the same key first.
func (c *Cache) NumBuilds() int64 {
	return c.numBuilds.Load()
}
