// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// imgarith applies an arithmetic operator to image files, or benchmarks the specialized kernels.
//
// Examples:
//
//	imgarith -op=add -out=sum.png a.png b.png
//	imgarith -op=multiply -constant=0.5 -out=darker.png a.png
//	imgarith -bench -size=1000000 -parallel=16
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/gomlx/imgarith/pkg/core/images"
	"github.com/gomlx/imgarith/pkg/ops/arith"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagOp = flag.String("op", "add", "Arithmetic operator: one of \"add\", \"subtract\", \"multiply\", \"divide\", "+
		"or their symbols \"+\", \"-\", \"*\", \"/\".")
	flagOut      = flag.String("out", "", "Output image file. The format is given by its extension (e.g. \".png\").")
	flagConstant = flag.String("constant", "", "If set, the second operand is this constant and only one input image "+
		"is given. For float dtypes, pixel values are in the range [0, 1], for integer dtypes in [0, 255].")
	flagDType = flag.String("dtype", "float32", "Element type used to operate on the images: "+
		"one of \"uint8\", \"int16\", \"int32\", \"float32\" or \"float64\". Integer types wrap around on overflow.")
	flagAlpha  = flag.Bool("alpha", false, "Include the alpha channel in the operation.")
	flagConfig = flag.String("config", "", fmt.Sprintf("Configuration of the arithmetic engine, a comma-separated "+
		"list of \"noaccel\", \"nospecialize\" and \"nofallback\". If empty, $%s is used.", arith.IMGARITH_CONFIG))

	flagBench    = flag.Bool("bench", false, "Benchmark the specialized kernels against the generic implementation.")
	flagSize     = flag.Int("size", 1<<20, "Number of elements of the images used in the benchmark.")
	flagRepeats  = flag.Int("repeats", 10, "Number of times each operation is repeated in the benchmark.")
	flagParallel = flag.Int("parallel", 0, "If > 0, the benchmark also resolves every operation concurrently "+
		"from this many goroutines, against a fresh cache.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	matcher, err := newMatcher()
	exitIfErr(err)
	if *flagBench {
		exitIfErr(benchmark(matcher.Config(), *flagSize, *flagRepeats, *flagParallel))
		return
	}

	op, err := arith.ParseOperator(*flagOp)
	exitIfErr(err)
	if *flagOut == "" {
		exitIfErr(errors.New("missing output file, please set -out. See 'imgarith -help'"))
	}
	args := flag.Args()
	wantArgs := 2
	if *flagConstant != "" {
		wantArgs = 1
	}
	if len(args) != wantArgs {
		exitIfErr(errors.Errorf("%s requires %d input image(s), got %d. See 'imgarith -help'", op, wantArgs, len(args)))
	}

	switch *flagDType {
	case "uint8":
		err = run[uint8](matcher, op, args)
	case "int16":
		err = run[int16](matcher, op, args)
	case "int32":
		err = run[int32](matcher, op, args)
	case "float32":
		err = run[float32](matcher, op, args)
	case "float64":
		err = run[float64](matcher, op, args)
	default:
		err = errors.Errorf("unsupported -dtype=%q", *flagDType)
	}
	exitIfErr(err)
}

func exitIfErr(err error) {
	if err != nil {
		klog.Errorf("imgarith: %+v", err)
		os.Exit(1)
	}
}

// newMatcher returns the matcher configured by -config, or the default one.
func newMatcher() (*arith.Matcher, error) {
	if *flagConfig == "" {
		return arith.Default(), nil
	}
	return arith.NewWithConfig(*flagConfig)
}

// load an image file as a Planar image, one plane per channel.
func load[T images.PODNumeric](path string) (*images.Planar[T], error) {
	img, err := images.Open(path)
	if err != nil {
		return nil, err
	}
	toPlanar := images.ToPlanar[T](img)
	if *flagAlpha {
		toPlanar.WithAlpha()
	}
	return toPlanar.Done(), nil
}

func run[T images.PODNumeric](matcher *arith.Matcher, op arith.Operator, args []string) error {
	a, err := load[T](args[0])
	if err != nil {
		return err
	}
	result := images.NewPlanar[T](a.NumPlanes(), a.PlaneShape().Dimensions...)

	if *flagConstant != "" {
		constant, err := strconv.ParseFloat(*flagConstant, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid -constant=%q", *flagConstant)
		}
		// The constant is only supported with Flat images: operate on a Flat view of each plane.
		for planeIdx := range a.NumPlanes() {
			err = matcher.Apply(op, result.PlaneAsFlat(planeIdx), a.PlaneAsFlat(planeIdx), images.ScalarOf(constant))
			if err != nil {
				return errors.WithMessagef(err, "plane #%d", planeIdx)
			}
		}
	} else {
		b, err := load[T](args[1])
		if err != nil {
			return err
		}
		if !matcher.Conforms(op, result, a, b) {
			klog.Warningf("no specialized kernel for %s of %s and %s, using generic implementation",
				op, a.Shape(), b.Shape())
		}
		if err = matcher.Apply(op, result, a, b); err != nil {
			return err
		}
	}

	if err = images.Save(result, *flagOut); err != nil {
		return err
	}
	klog.V(1).Infof("saved %s to %q", result.Shape(), *flagOut)
	return nil
}
