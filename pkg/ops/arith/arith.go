// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package arith implements binary elementwise arithmetic (add, subtract, multiply and divide)
// over images, with kernels specialized by element type and storage layout.
//
// Given an operator and the operands `result = a <op> b`, a Matcher decides whether a specialized
// kernel applies (see CheckOperands), obtains it from its Cache (building it on first use) and
// returns a BoundOperation ready to be executed:
//
//	if op, ok := arith.Resolve(arith.OpAdd, result, a, b); ok {
//		op.Execute()
//	}
//
// Or, to fall back to a generic (slow) implementation when no specialized kernel applies:
//
//	err := arith.Apply(arith.OpAdd, result, a, b)
//
// Supported operands are images.FlatStorage (with an images.ScalarValue as an optional constant second
// operand) and images.PlanarStorage, with any of the images.PODNumeric element types.
// Arithmetic follows Go's native semantics for the element type: integers wrap around on overflow,
// integer division truncates toward zero, and integer division by zero panics.
package arith

//go:generate go run ../../../internal/cmd/arith_generator

import (
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// IMGARITH_CONFIG is the environment variable with the default configuration, used by New and Default.
//
// See NewWithConfig for the format of the configuration.
const IMGARITH_CONFIG = "IMGARITH_CONFIG"

// Config holds the options of a Matcher.
type Config struct {
	// Accelerated enables vectorized kernels, where available. Disabled with "noaccel".
	Accelerated bool

	// Specialize enables the specialized kernels. If disabled (with "nospecialize") nothing resolves,
	// and Apply always uses the generic fallback.
	Specialize bool

	// Fallback enables the generic fallback in Apply. Disabled with "nofallback".
	Fallback bool
}

// DefaultConfig has every feature enabled.
var DefaultConfig = Config{Accelerated: true, Specialize: true, Fallback: true}

// ParseConfig parses a comma-separated list of options: "noaccel", "nospecialize" and "nofallback".
// An empty config returns the DefaultConfig.
func ParseConfig(config string) (Config, error) {
	cfg := DefaultConfig
	if config == "" {
		return cfg, nil
	}
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		switch part {
		case "":
			continue
		case "noaccel":
			cfg.Accelerated = false
		case "nospecialize":
			cfg.Specialize = false
		case "nofallback":
			cfg.Fallback = false
		default:
			return cfg, errors.Errorf("unknown configuration option %q for arith, valid options are "+
				"\"noaccel\", \"nospecialize\" and \"nofallback\"", part)
		}
	}
	return cfg, nil
}

// New returns a new Matcher, with its own Cache, configured by the environment variable IMGARITH_CONFIG
// if it is set.
//
// It panics if the configuration is invalid.
func New() *Matcher {
	config, _ := os.LookupEnv(IMGARITH_CONFIG)
	m, err := NewWithConfig(config)
	if err != nil {
		panic(errors.WithMessagef(err, "invalid $%s", IMGARITH_CONFIG))
	}
	return m
}

// NewWithConfig returns a new Matcher, with its own Cache, with the given configuration.
// See ParseConfig for the format.
func NewWithConfig(config string) (*Matcher, error) {
	cfg, err := ParseConfig(config)
	if err != nil {
		return nil, err
	}
	return NewMatcher(NewCache().SetAccelerated(cfg.Accelerated), cfg), nil
}

var defaultMatcher = sync.OnceValue(New)

// Default returns the process-wide Matcher, created with New on first use.
// It is used by the package-level functions Resolve, Conforms and Apply.
func Default() *Matcher {
	return defaultMatcher()
}
