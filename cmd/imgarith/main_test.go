// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gomlx/imgarith/pkg/core/images"
	"github.com/gomlx/imgarith/pkg/ops/arith"
	"github.com/stretchr/testify/require"
)

func setFlag(t *testing.T, flagPtr *string, value string) {
	previous := *flagPtr
	*flagPtr = value
	t.Cleanup(func() { *flagPtr = previous })
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	copy(img.Pix, []uint8{10, 20, 30, 255, 100, 110, 120, 255})
	aPath := filepath.Join(dir, "a.png")
	require.NoError(t, imaging.Save(img, aPath))
	setFlag(t, flagOut, filepath.Join(dir, "out.png"))
	m := arith.NewMatcher(arith.NewCache(), arith.DefaultConfig)

	require.NoError(t, run[int32](m, arith.OpAdd, []string{aPath, aPath}))
	out, err := images.Load[uint8](*flagOut)
	require.NoError(t, err)
	require.Equal(t, []uint8{20, 200}, out.PlaneData(0))
	require.Equal(t, []uint8{40, 220}, out.PlaneData(1))
	require.Equal(t, 1, m.Cache().Len())

	setFlag(t, flagConstant, "2")
	require.NoError(t, run[int32](m, arith.OpDivide, []string{aPath}))
	out, err = images.Load[uint8](*flagOut)
	require.NoError(t, err)
	require.Equal(t, []uint8{5, 50}, out.PlaneData(0))
	require.Equal(t, []uint8{15, 60}, out.PlaneData(2))

	setFlag(t, flagConstant, "two")
	require.Error(t, run[int32](m, arith.OpDivide, []string{aPath}))
	setFlag(t, flagConstant, "")
	require.Error(t, run[int32](m, arith.OpAdd, []string{aPath, filepath.Join(dir, "missing.png")}))
}

func TestBenchmark(t *testing.T) {
	specialized := arith.NewMatcher(arith.NewCache(), arith.DefaultConfig)
	generic := arith.NewMatcher(arith.NewCache(), arith.Config{Fallback: true})
	for _, fn := range benchDTypes {
		r, err := fn(specialized, generic, arith.OpMultiply, 100, 2)
		require.NoError(t, err)
		require.Equal(t, 3*100*int(r.dtype.Memory()), r.bytes)
	}
	require.Equal(t, 0, generic.Cache().Len())
	require.Equal(t, len(benchDTypes), specialized.Cache().Len())

	require.NoError(t, benchmarkConcurrentFirstUse(arith.DefaultConfig, 4))
	require.Error(t, benchmark(arith.DefaultConfig, 0, 1, 0))
}
