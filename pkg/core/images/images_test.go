// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package images

import (
	"math"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlat(t *testing.T) {
	f := NewFlat[int32](2, 3)
	require.Equal(t, dtypes.Int32, f.Shape().DType)
	require.Equal(t, []int{2, 3}, f.Shape().Dimensions)
	require.Len(t, f.Data(), 6)

	f.Set(7, 1, 2)
	assert.Equal(t, int32(7), f.At(1, 2))
	assert.Equal(t, int32(7), f.Data()[5])
	assert.Equal(t, 7.0, f.Float64At(5))
	require.Panics(t, func() { _ = f.At(2, 0) })
	require.Panics(t, func() { f.Set(1, 0) })

	flatAny := f.FlatData()
	_, ok := flatAny.([]int32)
	require.True(t, ok)

	clone := f.Clone()
	clone.Fill(3)
	assert.Equal(t, int32(7), f.At(1, 2))
	assert.Equal(t, []int32{3, 3, 3, 3, 3, 3}, clone.Data())

	// FlatFromSlice shares the buffer.
	data := []uint8{1, 2, 3, 4}
	f2, err := FlatFromSlice(data, 2, 2)
	require.NoError(t, err)
	data[3] = 9
	assert.Equal(t, uint8(9), f2.At(1, 1))
	_, err = FlatFromSlice(data, 3)
	require.Error(t, err)
	require.Panics(t, func() { _ = MustFlatFromSlice(data, 5) })
}

func TestPlanar(t *testing.T) {
	p := NewPlanar[float32](2, 3, 4)
	require.Equal(t, 2, p.NumPlanes())
	require.Equal(t, []int{2, 3, 4}, p.Shape().Dimensions)
	require.Equal(t, []int{3, 4}, p.PlaneShape().Dimensions)
	require.Equal(t, dtypes.Float32, p.PlaneShape().DType)
	require.Len(t, p.PlaneData(1), 12)

	p.Set(5, 1, 2, 3)
	assert.Equal(t, float32(5), p.At(1, 2, 3))
	assert.Equal(t, float32(5), p.PlaneData(1)[2*4+3])
	assert.Equal(t, 5.0, p.Float64At(12+2*4+3))
	p.SetFloat64At(0, 0.5)
	assert.Equal(t, float32(0.5), p.PlaneData(0)[0])

	// PlaneAsFlat shares the buffer.
	f := p.PlaneAsFlat(1)
	f.Set(11, 0, 0)
	assert.Equal(t, float32(11), p.At(1, 0, 0))

	clone := p.Clone()
	clone.Set(-1, 1, 0, 0)
	assert.Equal(t, float32(11), p.At(1, 0, 0))

	_, err := PlanarFromSlices([][]int16{{1, 2}, {3}}, 2)
	require.Error(t, err)
	p2 := MustPlanarFromSlices([][]int16{{1, 2}, {3, 4}, {5, 6}}, 2)
	require.Equal(t, []int{3, 2}, p2.Shape().Dimensions)
	assert.Equal(t, int16(6), p2.At(2, 1))

	empty := NewPlanar[uint8](0, 2, 2)
	require.Equal(t, 0, empty.NumPlanes())
	require.Equal(t, 0, empty.Shape().Size())
}

func TestScalar(t *testing.T) {
	s := ScalarOf(int16(-3))
	assert.Equal(t, -3.0, s.Float64())
	assert.Equal(t, dtypes.Int16, s.DType())
	var sv ScalarValue = ScalarOf(2.5)
	assert.Equal(t, 2.5, sv.Float64())
}

func TestFromFloat64(t *testing.T) {
	assert.Equal(t, int8(-128), FromFloat64[int8](128))
	assert.Equal(t, int8(3), FromFloat64[int8](3.9))
	assert.Equal(t, int8(-3), FromFloat64[int8](-3.9))
	assert.Equal(t, uint8(255), FromFloat64[uint8](-1))
	assert.Equal(t, uint8(4), FromFloat64[uint8](260))
	assert.Equal(t, uint64(math.MaxUint64), FromFloat64[uint64](-1))
	assert.Equal(t, float32(0.25), FromFloat64[float32](0.25))
	assert.True(t, math.IsInf(FromFloat64[float64](math.Inf(1)), 1))
}
