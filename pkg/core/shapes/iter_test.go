// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"slices"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"
)

func TestShape_Strides(t *testing.T) {
	shape := Make(dtypes.Float32, 2, 3, 4)
	require.Equal(t, []int{12, 4, 1}, shape.Strides())

	shape = Make(dtypes.Float32, 5)
	require.Equal(t, []int{1}, shape.Strides())

	shape = Make(dtypes.Float32, 3, 1, 2)
	require.Equal(t, []int{2, 2, 1}, shape.Strides())

	require.Nil(t, Make(dtypes.Int8).Strides())
}

func TestShape_FlatIndex(t *testing.T) {
	shape := Make(dtypes.Uint8, 2, 3, 4)
	strides := shape.Strides()
	for flatIdx, indices := range shape.Iter() {
		got, err := shape.FlatIndex(indices...)
		require.NoError(t, err)
		require.Equal(t, flatIdx, got)
		require.Equal(t, indices[0]*strides[0]+indices[1]*strides[1]+indices[2], got)
	}
	_, err := shape.FlatIndex(1, 2)
	require.Error(t, err)
	_, err = shape.FlatIndex(1, 3, 0)
	require.Error(t, err)
	_, err = shape.FlatIndex(0, -1, 0)
	require.Error(t, err)
}

func TestShape_Iter(t *testing.T) {
	shape := Make(dtypes.Float64, 3, 2)
	collect := make([][]int, 0, shape.Size())
	var counter int
	for flatIdx, indices := range shape.Iter() {
		collect = append(collect, slices.Clone(indices))
		require.Equal(t, counter, flatIdx)
		counter++
	}
	want := [][]int{
		{0, 0},
		{0, 1},
		{1, 0},
		{1, 1},
		{2, 0},
		{2, 1},
	}
	require.Equal(t, want, collect)

	// Scalar: exactly one (empty) index.
	counter = 0
	for flatIdx, indices := range Make(dtypes.Int32).Iter() {
		require.Equal(t, 0, flatIdx)
		require.Empty(t, indices)
		counter++
	}
	require.Equal(t, 1, counter)

	// Empty shape: nothing to iterate.
	for range Make(dtypes.Int32, 3, 0).Iter() {
		t.Fatal("no indices expected for a zero-sized shape")
	}
}
