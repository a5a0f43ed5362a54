// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arith

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/imgarith/pkg/core/images"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCache(t *testing.T) {
	cache := NewCache()
	key := Key{Op: OpAdd, Layout: LayoutFlat, DType: dtypes.Int32}
	require.True(t, cache.Supports(key))
	_, found := cache.Lookup(key)
	require.False(t, found)

	k1 := cache.GetOrBuild(key)
	k2 := cache.GetOrBuild(key)
	require.Same(t, k1, k2)
	k3, found := cache.Lookup(key)
	require.True(t, found)
	require.Same(t, k1, k3)
	assert.Equal(t, key, k1.Key())
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, int64(1), cache.NumBuilds())

	// Keys differing in any field get different kernels.
	k4 := cache.GetOrBuild(Key{Op: OpAdd, Layout: LayoutFlat, DType: dtypes.Int32, Constant: true})
	k5 := cache.GetOrBuild(Key{Op: OpAdd, Layout: LayoutPlanar, DType: dtypes.Int32})
	k6 := cache.GetOrBuild(Key{Op: OpSubtract, Layout: LayoutFlat, DType: dtypes.Int32})
	k7 := cache.GetOrBuild(Key{Op: OpAdd, Layout: LayoutFlat, DType: dtypes.Int64})
	for _, k := range []*CompiledKernel{k4, k5, k6, k7} {
		require.NotSame(t, k1, k)
	}
	assert.Equal(t, 5, cache.Len())

	// Independent caches build their own kernels.
	other := NewCache()
	require.NotSame(t, k1, other.GetOrBuild(key))
	assert.Equal(t, 5, cache.Len())

	// Unsupported keys.
	for _, unsupported := range []Key{
		{Op: OpAdd, Layout: LayoutFlat, DType: dtypes.Float16},
		{Op: OpAdd, Layout: LayoutFlat, DType: dtypes.BFloat16},
		{Op: OpAdd, Layout: LayoutFlat, DType: dtypes.Bool},
		{Op: OpAdd, Layout: LayoutPlanar, DType: dtypes.Int32, Constant: true},
		{Op: Operator(10), Layout: LayoutFlat, DType: dtypes.Int32},
	} {
		assert.False(t, cache.Supports(unsupported), "key %s", unsupported)
		_, found = cache.Lookup(unsupported)
		assert.False(t, found)
		require.Panics(t, func() { cache.GetOrBuild(unsupported) }, "key %s", unsupported)
	}
}

func TestCache_Accelerated(t *testing.T) {
	mulKey := Key{Op: OpMultiply, Layout: LayoutFlat, DType: dtypes.Float64}
	addKey := Key{Op: OpAdd, Layout: LayoutFlat, DType: dtypes.Float64}

	cache := NewCache()
	assert.True(t, cache.GetOrBuild(mulKey).Accelerated())
	assert.True(t, cache.GetOrBuild(Key{Op: OpMultiply, Layout: LayoutPlanar, DType: dtypes.Float64}).Accelerated())
	assert.False(t, cache.GetOrBuild(addKey).Accelerated())
	assert.False(t, cache.GetOrBuild(Key{Op: OpMultiply, Layout: LayoutFlat, DType: dtypes.Float32}).Accelerated())

	generic := NewCache().SetAccelerated(false)
	assert.False(t, generic.GetOrBuild(mulKey).Accelerated())
	assert.Contains(t, cache.GetOrBuild(mulKey).String(), "accelerated")
}

func TestCache_ConcurrentFirstUse(t *testing.T) {
	const numWorkers = 64
	cache := NewCache()
	keys := []Key{
		{Op: OpDivide, Layout: LayoutFlat, DType: dtypes.Uint16},
		{Op: OpMultiply, Layout: LayoutPlanar, DType: dtypes.Float64},
		{Op: OpSubtract, Layout: LayoutFlat, DType: dtypes.Int8, Constant: true},
	}
	kernels := make([]*CompiledKernel, numWorkers)
	var g errgroup.Group
	for worker := range numWorkers {
		g.Go(func() error {
			key := keys[worker%len(keys)]
			kernels[worker] = cache.GetOrBuild(key)
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for worker, kernel := range kernels {
		require.Same(t, kernels[worker%len(keys)], kernel, "worker %d got a different kernel", worker)
		published, found := cache.Lookup(keys[worker%len(keys)])
		require.True(t, found)
		require.Same(t, published, kernel)
	}
	assert.Equal(t, len(keys), cache.Len())
	assert.GreaterOrEqual(t, cache.NumBuilds(), int64(len(keys)))
	assert.LessOrEqual(t, cache.NumBuilds(), int64(numWorkers))
}

func TestCache_GenerationFailure(t *testing.T) {
	key := Key{Op: OpAdd, Layout: LayoutFlat, DType: dtypes.Int32}

	// A kernel computing the wrong operation.
	wrong := &kernelRegistry{}
	registerKernel[int32](wrong, OpAdd, variantFlat, priorityGeneric, flatSubtractGeneric[int32])
	cache := newCacheWithRegistry(wrong)
	require.True(t, cache.Supports(key))
	err := exceptions.TryCatch[error](func() { cache.GetOrBuild(key) })
	require.Error(t, err)
	require.ErrorContains(t, err, "kernel generation failed")
	_, found := cache.Lookup(key)
	require.False(t, found)
	require.Equal(t, 0, cache.Len())

	// A missing kernel.
	missing := &kernelRegistry{}
	missing.register(key, priorityGeneric, nil, probeKernel[int32])
	cache = newCacheWithRegistry(missing)
	require.Panics(t, func() { cache.GetOrBuild(key) })

	// A kernel that panics.
	panicking := &kernelRegistry{}
	registerKernel[int32](panicking, OpAdd, variantFlat, priorityGeneric, func(_, _, _ any) {
		exceptions.Panicf("not implemented")
	})
	cache = newCacheWithRegistry(panicking)
	err = exceptions.TryCatch[error](func() { cache.GetOrBuild(key) })
	require.ErrorContains(t, err, "not implemented")

	// The matcher doesn't hide the failure.
	m := NewMatcher(newCacheWithRegistry(wrong), DefaultConfig)
	a := images.MustFlatFromSlice([]int32{1, 2}, 2)
	require.Panics(t, func() { m.Resolve(OpAdd, images.NewFlat[int32](2), a, a) })
	_, ok := m.Resolve(OpSubtract, images.NewFlat[int32](2), a, a)
	require.False(t, ok, "nothing is registered for subtract")

	// The highest priority available is used.
	prioritized := &kernelRegistry{}
	registerKernel[int32](prioritized, OpAdd, variantFlat, priorityGeneric, flatAddGeneric[int32])
	registerKernel[int32](prioritized, OpAdd, variantFlat, priorityAccelerated, flatSubtractGeneric[int32])
	require.Panics(t, func() { newCacheWithRegistry(prioritized).GetOrBuild(key) })
	require.NotPanics(t, func() { newCacheWithRegistry(prioritized).SetAccelerated(false).GetOrBuild(key) })
}
