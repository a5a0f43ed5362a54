// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"fmt"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	invalidShape := Invalid()
	require.False(t, invalidShape.Ok())

	shape0 := Make(dtypes.Float64)
	require.True(t, shape0.Ok())
	require.True(t, shape0.IsScalar())
	require.Equal(t, 0, shape0.Rank())
	require.Len(t, shape0.Dimensions, 0)
	require.Equal(t, 1, shape0.Size())
	require.Equal(t, 8, int(shape0.Memory()))

	shape1 := Make(dtypes.Float32, 4, 3, 2)
	require.True(t, shape1.Ok())
	require.False(t, shape1.IsScalar())
	require.Equal(t, 3, shape1.Rank())
	require.Len(t, shape1.Dimensions, 3)
	require.Equal(t, 4*3*2, shape1.Size())
	require.Equal(t, 4*4*3*2, int(shape1.Memory()))

	empty := Make(dtypes.Uint8, 3, 0)
	require.Equal(t, 0, empty.Size())

	require.Panics(t, func() { _ = Make(dtypes.Int32, 2, -1) })
}

func TestDim(t *testing.T) {
	shape := Make(dtypes.Float32, 4, 3, 2)
	require.Equal(t, 4, shape.Dim(0))
	require.Equal(t, 3, shape.Dim(1))
	require.Equal(t, 2, shape.Dim(2))
	require.Equal(t, 4, shape.Dim(-3))
	require.Equal(t, 3, shape.Dim(-2))
	require.Equal(t, 2, shape.Dim(-1))
	require.Panics(t, func() { _ = shape.Dim(3) })
	require.Panics(t, func() { _ = shape.Dim(-4) })
}

func TestEqual(t *testing.T) {
	s := Make(dtypes.Int16, 2, 3)
	require.True(t, s.Equal(Make(dtypes.Int16, 2, 3)))
	require.False(t, s.Equal(Make(dtypes.Int32, 2, 3)))
	require.False(t, s.Equal(Make(dtypes.Int16, 3, 2)))
	require.False(t, s.Equal(Make(dtypes.Int16, 2, 3, 1)))

	// Dimensions only.
	require.True(t, s.EqualDimensions(Make(dtypes.Float64, 2, 3)))
	require.False(t, s.EqualDimensions(Make(dtypes.Int16, 6)))
	require.False(t, s.EqualDimensions(Make(dtypes.Int16, 2)))
	require.True(t, Make(dtypes.Int8).EqualDimensions(Make(dtypes.Uint8)))
}

func TestCloneAndConcatenate(t *testing.T) {
	s := Make(dtypes.Uint8, 2, 3)
	s2 := s.Clone()
	s2.Dimensions[0] = 7
	require.Equal(t, 2, s.Dim(0))

	planes := Make(dtypes.Uint8, 4)
	require.Equal(t, fmt.Sprintf("(%s)[4 2 3]", dtypes.Uint8), ConcatenateDimensions(planes, s).String())
	require.Equal(t, s.String(), ConcatenateDimensions(Make(dtypes.Uint8), s).String())
	require.False(t, ConcatenateDimensions(Make(dtypes.Int8, 1), s).Ok())
}
