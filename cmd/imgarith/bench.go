// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/imgarith/pkg/core/images"
	"github.com/gomlx/imgarith/pkg/ops/arith"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

type benchResult struct {
	dtype       dtypes.DType
	op          arith.Operator
	accelerated bool

	// Time per execution.
	specialized, generic time.Duration

	// Number of bytes read and written per execution.
	bytes int
}

type benchFn func(specialized, generic *arith.Matcher, op arith.Operator, size, repeats int) (benchResult, error)

var benchDTypes = []benchFn{
	benchDType[int8], benchDType[int16], benchDType[int32], benchDType[int64],
	benchDType[uint8], benchDType[uint16], benchDType[uint32], benchDType[uint64],
	benchDType[float32], benchDType[float64],
}

// benchmark times every operator over every dtype, for Flat images of the given size, using the
// specialized kernels and the generic fallback.
func benchmark(config arith.Config, size, repeats, parallel int) error {
	if size <= 0 || repeats <= 0 {
		return errors.Errorf("invalid benchmark -size=%d and -repeats=%d, they must be > 0", size, repeats)
	}
	config.Specialize = true
	specialized := arith.NewMatcher(arith.NewCache().SetAccelerated(config.Accelerated), config)
	generic := arith.NewMatcher(arith.NewCache(), arith.Config{Fallback: true})

	numSteps := len(benchDTypes) * len(arith.OperatorValues())
	var bar *progressbar.ProgressBar
	if isTerminal() {
		bar = progressbar.NewOptions(numSteps,
			progressbar.OptionSetDescription("benchmarking"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.ThemeASCII),
			progressbar.OptionClearOnFinish(),
		)
	}
	results := make([]benchResult, 0, numSteps)
	for _, fn := range benchDTypes {
		for _, op := range arith.OperatorValues() {
			r, err := fn(specialized, generic, op, size, repeats)
			if err != nil {
				return err
			}
			results = append(results, r)
			klog.V(1).Infof("benchmark %s(%s): specialized=%s, generic=%s", r.op, r.dtype, r.specialized, r.generic)
			if bar != nil {
				_ = bar.Add(1)
			}
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	printBenchmark(results, size, repeats)

	if parallel > 0 {
		return benchmarkConcurrentFirstUse(config, parallel)
	}
	return nil
}

func benchDType[T images.PODNumeric](specialized, generic *arith.Matcher, op arith.Operator, size, repeats int) (benchResult, error) {
	a, b, result := images.NewFlat[T](size), images.NewFlat[T](size), images.NewFlat[T](size)
	aData, bData := a.Data(), b.Data()
	for ii := range size {
		aData[ii] = T(ii%100 + 1)
		bData[ii] = T(ii%7 + 1)
	}
	dtype := images.DTypeOf[T]()
	r := benchResult{dtype: dtype, op: op, bytes: 3 * size * int(dtype.Memory())}

	bound, ok := specialized.Resolve(op, result, a, b)
	if !ok {
		return r, errors.Errorf("no specialized kernel for %s of %s", op, a.Shape())
	}
	r.accelerated = bound.Kernel().Accelerated()
	start := time.Now()
	for range repeats {
		if err := bound.TryExecute(); err != nil {
			return r, err
		}
	}
	r.specialized = time.Since(start) / time.Duration(repeats)

	start = time.Now()
	for range repeats {
		if err := generic.Apply(op, result, a, b); err != nil {
			return r, err
		}
	}
	r.generic = time.Since(start) / time.Duration(repeats)
	return r, nil
}

func printBenchmark(results []benchResult, size, repeats int) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Specialized vs generic: %s elements, %d repeats",
		humanize.Comma(int64(size)), repeats)))
	table := newTable([]string{"dtype", "operator", "kernel", "specialized", "generic", "speedup", "throughput"},
		lipgloss.Left, lipgloss.Left, lipgloss.Left, lipgloss.Right)
	for _, r := range results {
		speedup := float64(r.generic) / float64(max(r.specialized, 1))
		kernel := "generic"
		if r.accelerated {
			kernel = "accelerated"
		}
		bytesPerSecond := float64(r.bytes) / max(r.specialized.Seconds(), 1e-9)
		table.Row(speedup < 1, r.dtype.String(), r.op.String(), kernel,
			r.specialized.String(), r.generic.String(),
			fmt.Sprintf("%.1fx", speedup), humanize.Bytes(uint64(bytesPerSecond))+"/s")
	}
	fmt.Println(table.Table.Render())
}

type operands struct {
	result, a, b any
}

// smallOperands returns the operands of one flat, one flat with constant and one planar operation.
func smallOperands[T images.PODNumeric]() []operands {
	flat := images.NewFlat[T](4)
	planar := images.NewPlanar[T](3, 4)
	return []operands{
		{images.NewFlat[T](4), flat, flat},
		{images.NewFlat[T](4), flat, images.ScalarOf(T(1))},
		{images.NewPlanar[T](3, 4), planar, planar},
	}
}

// benchmarkConcurrentFirstUse resolves every specialization from many goroutines at the same time, on a
// fresh cache, and reports how many kernels were built.
func benchmarkConcurrentFirstUse(config arith.Config, parallel int) error {
	cache := arith.NewCache().SetAccelerated(config.Accelerated)
	matcher := arith.NewMatcher(cache, config)
	var all []operands
	all = append(all, smallOperands[int8]()...)
	all = append(all, smallOperands[int16]()...)
	all = append(all, smallOperands[int32]()...)
	all = append(all, smallOperands[int64]()...)
	all = append(all, smallOperands[uint8]()...)
	all = append(all, smallOperands[uint16]()...)
	all = append(all, smallOperands[uint32]()...)
	all = append(all, smallOperands[uint64]()...)
	all = append(all, smallOperands[float32]()...)
	all = append(all, smallOperands[float64]()...)

	var g errgroup.Group
	start := time.Now()
	for worker := range parallel {
		g.Go(func() error {
			// Each worker starts at a different position, so first uses happen everywhere at once.
			for ii := range all {
				o := all[(ii+worker)%len(all)]
				for _, op := range arith.OperatorValues() {
					if !matcher.Conforms(op, o.result, o.a, o.b) {
						return errors.Errorf("failed to resolve %s with a=%T, b=%T", op, o.a, o.b)
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Println(titleStyle.Render("Concurrent first use"))
	table := newTable([]string{"", "value"}, lipgloss.Right, lipgloss.Left)
	table.Row(false, "goroutines", humanize.Comma(int64(parallel)))
	table.Row(false, "kernels published", humanize.Comma(int64(cache.Len())))
	table.Row(false, "kernels built", humanize.Comma(cache.NumBuilds()))
	discarded := cache.NumBuilds() - int64(cache.Len())
	table.Row(discarded > 0, "builds discarded", humanize.Comma(discarded))
	table.Row(false, "elapsed", elapsed.String())
	fmt.Println(table.Table.Render())
	return nil
}
