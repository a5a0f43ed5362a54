// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arith

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/imgarith/pkg/core/images"
	"github.com/gomlx/imgarith/pkg/core/shapes"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
	"golang.org/x/sync/errgroup"
)

// halfImage is a flat image of float16 values: valid operands that have no specialized kernel.
type halfImage struct {
	data []float16.Float16
}

func (h *halfImage) Shape() shapes.Shape { return shapes.Make(dtypes.Float16, len(h.data)) }
func (h *halfImage) FlatData() any       { return h.data }

func TestMatcher_DivideByConstant(t *testing.T) {
	a := images.MustFlatFromSlice([]int32{1, 2, 3, 4}, 4)
	result := images.NewFlat[int32](4)
	bound, ok := Resolve(OpDivide, result, a, images.ScalarOf(int32(2)))
	require.True(t, ok)
	bound.Execute()
	require.Equal(t, []int32{0, 1, 1, 2}, result.Data())
}

func TestMatcher_PlanarAdd(t *testing.T) {
	a := images.MustPlanarFromSlices([][]float32{{1, 2}, {3, 4}}, 2)
	b := images.MustPlanarFromSlices([][]float32{{10, 20}, {30, 40}}, 2)
	result := images.NewPlanar[float32](2, 2)
	require.True(t, Conforms(OpAdd, result, a, b))
	bound, ok := Resolve(OpAdd, result, a, b)
	require.True(t, ok)
	bound.Execute()
	require.Equal(t, []float32{11, 22}, result.PlaneData(0))
	require.Equal(t, []float32{33, 44}, result.PlaneData(1))

	// x = x + x
	bound, ok = Resolve(OpAdd, a, a, a)
	require.True(t, ok)
	bound.Execute()
	require.Equal(t, []float32{2, 4}, a.PlaneData(0))
	require.Equal(t, []float32{6, 8}, a.PlaneData(1))
}

func TestMatcher_NoMatch(t *testing.T) {
	m := NewMatcher(NewCache(), DefaultConfig)
	flat := images.MustFlatFromSlice([]float32{1, 2, 3, 4}, 2, 2)
	planar := images.MustPlanarFromSlices([][]float32{{1, 2}, {3, 4}}, 2)
	b := images.MustFlatFromSlice([]float32{1, 1, 1, 1}, 2, 2)

	testCases := []struct {
		name         string
		result, a, b any
	}{
		{"flat-planar", images.NewFlat[float32](2, 2), flat, planar},
		{"shape-mismatch", images.NewFlat[float32](2, 2), flat, images.NewFlat[float32](4)},
		{"result-is-b", b, flat, b},
		{"dtype-mismatch", images.NewFlat[float32](2, 2), flat, images.NewFlat[int32](2, 2)},
		{"planar-constant", images.NewPlanar[float32](2, 2), planar, images.ScalarOf(float32(1))},
		{"float16", &halfImage{data: make([]float16.Float16, 2)}, &halfImage{data: make([]float16.Float16, 2)},
			&halfImage{data: []float16.Float16{float16.Fromfloat32(1), float16.Fromfloat32(2)}}},
		{"nil", nil, nil, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				bound, ok := m.Resolve(OpAdd, tc.result, tc.a, tc.b)
				assert.False(t, ok)
				assert.Nil(t, bound)
				assert.False(t, m.Conforms(OpMultiply, tc.result, tc.a, tc.b))
			})
		})
	}
	_, ok := m.Resolve(Operator(-1), images.NewFlat[float32](2, 2), flat, b)
	require.False(t, ok)

	// No kernel was built.
	require.Equal(t, 0, m.Cache().Len())
}

func TestMatcher_Cache(t *testing.T) {
	cache := NewCache()
	m := NewMatcher(cache, DefaultConfig)
	require.Same(t, cache, m.Cache())
	a := images.MustFlatFromSlice([]uint16{1, 2, 3}, 3)
	b1, ok := m.Resolve(OpMultiply, images.NewFlat[uint16](3), a, a)
	require.True(t, ok)
	b2, ok := m.Resolve(OpMultiply, images.NewFlat[uint16](3), a, images.MustFlatFromSlice([]uint16{4, 5, 6}, 3))
	require.True(t, ok)
	require.Same(t, b1.Kernel(), b2.Kernel())
	require.Equal(t, 1, cache.Len())
}

func TestMatcher_ConcurrentFirstUse(t *testing.T) {
	const numWorkers = 32
	m := NewMatcher(NewCache(), DefaultConfig)
	var g errgroup.Group
	results := make([]*images.Flat[int64], numWorkers)
	for worker := range numWorkers {
		g.Go(func() error {
			a := images.MustFlatFromSlice([]int64{int64(worker), 10}, 2)
			results[worker] = images.NewFlat[int64](2)
			return m.Apply(OpAdd, results[worker], a, images.ScalarOf(int64(1)))
		})
	}
	require.NoError(t, g.Wait())
	for worker, result := range results {
		require.Equal(t, []int64{int64(worker) + 1, 11}, result.Data())
	}
	require.Equal(t, 1, m.Cache().Len())
}

func TestConfig(t *testing.T) {
	cfg, err := ParseConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig, cfg)

	cfg, err = ParseConfig("noaccel, nofallback,")
	require.NoError(t, err)
	require.Equal(t, Config{Accelerated: false, Specialize: true, Fallback: false}, cfg)

	_, err = ParseConfig("noaccel,turbo")
	require.ErrorContains(t, err, "turbo")

	_, err = NewWithConfig("turbo")
	require.Error(t, err)

	t.Setenv(IMGARITH_CONFIG, "noaccel")
	m := New()
	require.False(t, m.Config().Accelerated)
	a := images.MustFlatFromSlice([]float64{1, 2}, 2)
	bound, ok := m.Resolve(OpMultiply, images.NewFlat[float64](2), a, a)
	require.True(t, ok)
	require.False(t, bound.Kernel().Accelerated())

	t.Setenv(IMGARITH_CONFIG, "bogus")
	require.Panics(t, func() { New() })
}

func TestApply(t *testing.T) {
	flat := images.MustFlatFromSlice([]int32{1, 2, 3, 4, 5, 6}, 2, 3)
	planar := images.MustPlanarFromSlices([][]int32{{10, 20, 30}, {40, 50, 60}}, 3)

	// Flat + Planar has no specialized kernel, but the generic fallback handles it.
	m := NewMatcher(NewCache(), DefaultConfig)
	require.False(t, m.Conforms(OpAdd, images.NewFlat[int32](2, 3), flat, planar))
	result := images.NewFlat[int32](2, 3)
	require.NoError(t, m.Apply(OpAdd, result, flat, planar))
	require.Equal(t, []int32{11, 22, 33, 44, 55, 66}, result.Data())

	// Planar result, different dtypes.
	pResult := images.NewPlanar[float32](2, 3)
	require.NoError(t, m.Apply(OpSubtract, pResult, planar, flat))
	require.Equal(t, []float32{9, 18, 27}, pResult.PlaneData(0))
	require.Equal(t, []float32{36, 45, 54}, pResult.PlaneData(1))

	// Integer semantics are preserved by the fallback: truncation and wrap around.
	i8 := images.MustPlanarFromSlices([][]int8{{127, -7}}, 2)
	i8Result := images.NewFlat[int8](1, 2)
	require.NoError(t, m.Apply(OpAdd, i8Result, i8, images.MustFlatFromSlice([]int8{1, 0}, 1, 2)))
	require.Equal(t, []int8{-128, -7}, i8Result.Data())
	require.NoError(t, m.Apply(OpDivide, i8Result, i8, images.MustFlatFromSlice([]int8{2, 2}, 1, 2)))
	require.Equal(t, []int8{63, -3}, i8Result.Data())
	require.Error(t, m.Apply(OpDivide, i8Result, i8, images.MustFlatFromSlice([]int8{2, 0}, 1, 2)))

	// Constant with a planar operand only works with the fallback.
	pResult = images.NewPlanar[float32](2, 3)
	require.NoError(t, m.Apply(OpMultiply, pResult, planar, images.ScalarOf(0.5)))
	require.Equal(t, []float32{5, 10, 15}, pResult.PlaneData(0))

	// Integer constants are truncated, the same as with the specialized kernels.
	pInt := planar.Clone()
	require.NoError(t, m.Apply(OpMultiply, pInt, planar, images.ScalarOf(2.9)))
	require.Equal(t, []int32{20, 40, 60}, pInt.PlaneData(0))

	// Shape mismatch or unsupported operands.
	err := m.Apply(OpAdd, images.NewFlat[int32](6), flat, planar)
	require.True(t, errors.Is(err, ErrNoSpecialization), "got %v", err)
	err = m.Apply(OpAdd, result, flat, images.NewPlanar[int32](3, 2))
	require.True(t, errors.Is(err, ErrNoSpecialization), "got %v", err)
	err = m.Apply(OpAdd, result, flat, "two")
	require.True(t, errors.Is(err, ErrNoSpecialization), "got %v", err)
	err = m.Apply(OpAdd, nil, flat, flat)
	require.True(t, errors.Is(err, ErrNoSpecialization), "got %v", err)
	half := &halfImage{data: make([]float16.Float16, 2)}
	err = m.Apply(OpAdd, half, half, half)
	require.True(t, errors.Is(err, ErrNoSpecialization), "got %v", err)

	// Without fallback.
	noFallback := must.M1(NewWithConfig("nofallback"))
	err = noFallback.Apply(OpAdd, result, flat, planar)
	require.True(t, errors.Is(err, ErrNoSpecialization), "got %v", err)
	require.NoError(t, noFallback.Apply(OpAdd, result, flat, flat))
	require.Equal(t, []int32{2, 4, 6, 8, 10, 12}, result.Data())

	// Without specialization, everything goes to the fallback.
	noSpecialize := must.M1(NewWithConfig("nospecialize"))
	require.False(t, noSpecialize.Conforms(OpAdd, result, flat, flat))
	require.NoError(t, noSpecialize.Apply(OpSubtract, result, flat, flat))
	require.Equal(t, []int32{0, 0, 0, 0, 0, 0}, result.Data())
	require.Equal(t, 0, noSpecialize.Cache().Len())
}
