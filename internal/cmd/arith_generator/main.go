// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// arith_generator generates the generic kernels of package arith (gen_kernels.go) and their
// registration for every supported dtype (gen_register_kernels.go).
//
// It is meant to be run with `go generate` from the pkg/ops/arith directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path"
	"text/template"

	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

type DTypeInfo struct {
	DType, GoType string
}

type OperatorInfo struct {
	// Name is the suffix of the Operator constant and of the kernel names (e.g. "Add" for OpAdd).
	Name string

	// Symbol is the Go binary operator implementing it.
	Symbol string
}

type VariantInfo struct {
	// Variant is the name of the variant constant, and Prefix the prefix of the kernel functions.
	Variant, Prefix string
}

type Data struct {
	Operators []OperatorInfo
	Variants  []VariantInfo
	DTypes    []DTypeInfo
}

var (
	data = Data{
		Operators: []OperatorInfo{
			{"Add", "+"},
			{"Subtract", "-"},
			{"Multiply", "*"},
			{"Divide", "/"},
		},
		Variants: []VariantInfo{
			{"variantFlat", "flat"},
			{"variantFlatConstant", "flatConstant"},
			{"variantPlanar", "planar"},
		},
		DTypes: makeDTypes(true, true, true),
	}

	flagOutputDir = flag.String("output_dir", "", "Directory where to write the generated files. Defaults to the current directory.")
)

const (
	kernelsFileName  = "gen_kernels.go"
	registerFileName = "gen_register_kernels.go"
)

func makeDTypes(ints, uints, floats bool) []DTypeInfo {
	dtypes := make([]DTypeInfo, 0, 10)
	if ints {
		dtypes = append(dtypes,
			DTypeInfo{"Int8", "int8"},
			DTypeInfo{"Int16", "int16"},
			DTypeInfo{"Int32", "int32"},
			DTypeInfo{"Int64", "int64"},
		)
	}
	if uints {
		dtypes = append(dtypes,
			DTypeInfo{"Uint8", "uint8"},
			DTypeInfo{"Uint16", "uint16"},
			DTypeInfo{"Uint32", "uint32"},
			DTypeInfo{"Uint64", "uint64"},
		)
	}
	if floats {
		dtypes = append(dtypes,
			DTypeInfo{"Float32", "float32"},
			DTypeInfo{"Float64", "float64"},
		)
	}
	return dtypes
}

var kernelsTemplate = template.Must(template.New(kernelsFileName).Parse(
	`/***** File generated by ./internal/cmd/arith_generator. Don't edit it directly. *****/

package arith

import (
	"github.com/gomlx/imgarith/pkg/core/images"
)

{{- range .Operators}}

// flat{{.Name}}Generic implements result[i] = a[i] {{.Symbol}} b[i] for Flat operands.
func flat{{.Name}}Generic[T images.PODNumeric](result, a, b any) {
	lhs := a.(images.FlatStorage).FlatData().([]T)
	rhs := b.(images.FlatStorage).FlatData().([]T)
	output := result.(images.FlatStorage).FlatData().([]T)
	rhs = rhs[:len(lhs)]
	output = output[:len(lhs)]
	for ii, value := range lhs {
		output[ii] = value {{.Symbol}} rhs[ii]
	}
}

// flatConstant{{.Name}}Generic implements result[i] = a[i] {{.Symbol}} c for a Flat operand and a constant.
func flatConstant{{.Name}}Generic[T images.PODNumeric](result, a, b any) {
	lhs := a.(images.FlatStorage).FlatData().([]T)
	c := images.FromFloat64[T](b.(images.ScalarValue).Float64())
	output := result.(images.FlatStorage).FlatData().([]T)
	output = output[:len(lhs)]
	for ii, value := range lhs {
		output[ii] = value {{.Symbol}} c
	}
}

// planar{{.Name}}Generic implements result[p][i] = a[p][i] {{.Symbol}} b[p][i] for Planar operands.
func planar{{.Name}}Generic[T images.PODNumeric](result, a, b any) {
	lhsPlanes := a.(images.PlanarStorage)
	rhsPlanes := b.(images.PlanarStorage)
	outputPlanes := result.(images.PlanarStorage)
	for planeIdx := range lhsPlanes.NumPlanes() {
		lhs := lhsPlanes.Plane(planeIdx).([]T)
		rhs := rhsPlanes.Plane(planeIdx).([]T)
		output := outputPlanes.Plane(planeIdx).([]T)
		rhs = rhs[:len(lhs)]
		output = output[:len(lhs)]
		for ii, value := range lhs {
			output[ii] = value {{.Symbol}} rhs[ii]
		}
	}
}
{{- end}}
`))

var registerTemplate = template.Must(template.New(registerFileName).Parse(
	`/***** File generated by ./internal/cmd/arith_generator. Don't edit it directly. *****/

package arith

func init() {
{{- $dtypes := .DTypes }}
{{- $variants := .Variants }}
{{- range .Operators}}
{{- $name := .Name }}
{{- range $variants }}
{{- $variant := .Variant }}
{{- $prefix := .Prefix }}

	// Op{{$name}}: {{$variant}}
{{- range $dtypes }}
	registerKernel[{{.GoType}}](defaultRegistry, Op{{$name}}, {{$variant}}, priorityGeneric, {{$prefix}}{{$name}}Generic[{{.GoType}}])
{{- end }}
{{- end }}
{{- end }}
}
`))

func generate(tmpl *template.Template, fileName string) {
	dir := *flagOutputDir
	if dir == "" {
		dir = must.M1(os.Getwd())
	}
	fullPath := path.Join(dir, fileName)
	f := must.M1(os.Create(fullPath))
	must.M(tmpl.Execute(f, data))
	must.M(f.Close())

	cmd := exec.Command("gofmt", "-w", fullPath)
	klog.V(1).Infof("\t%s\n", cmd)
	must.M(cmd.Run())
	fmt.Printf("✅ arith_generator:      \tsuccessfully generated %s\n", fullPath)
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	generate(kernelsTemplate, kernelsFileName)
	generate(registerTemplate, registerFileName)
}
