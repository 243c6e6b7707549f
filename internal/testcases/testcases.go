// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package testcases generates random test cases for the dot product benchmark,
// in the text format of package vectext.
package testcases

import (
	"io"
	"time"

	"github.com/gomlx/dotbench/internal/vectext"
	"github.com/gomlx/dotbench/pkg/dotproduct"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

const (
	// MaxVectorLength is the largest vector length generated.
	MaxVectorLength = 1_000_000

	DefaultNumCases     = 5
	DefaultVectorLength = 10
)

// Config for a Generator.
type Config struct {
	// NumCases to generate, must be > 0.
	NumCases int

	// Kind of all test cases. If set to dotproduct.InvalidKind, a random kind is picked
	// for each test case.
	Kind dotproduct.Kind

	// Length of the vectors, from 1 to MaxVectorLength. Ignored if RandomLength is set.
	Length int

	// RandomLength picks a random length from 1 to MaxVectorLength for each test case.
	RandomLength bool

	// Seed for the random number generator.
	Seed uint64
}

// DefaultConfig returns the default configuration: DefaultNumCases test cases of
// random kinds, with vectors of DefaultVectorLength, seeded from the clock.
func DefaultConfig() Config {
	return Config{
		NumCases: DefaultNumCases,
		Length:   DefaultVectorLength,
		Seed:     uint64(time.Now().UnixNano()),
	}
}

// Validate returns an error if the configuration is not usable.
func (c Config) Validate() error {
	if c.NumCases <= 0 {
		return errors.Errorf("number of test cases must be positive, got %d", c.NumCases)
	}
	if c.Kind != dotproduct.InvalidKind && !c.Kind.IsValid() {
		return errors.Wrapf(dotproduct.ErrUnsupportedKind, "kind %s", c.Kind)
	}
	if !c.RandomLength && (c.Length <= 0 || c.Length > MaxVectorLength) {
		return errors.Errorf("vector length must be between 1 and %d, got %d", MaxVectorLength, c.Length)
	}
	return nil
}

// Generator of random test cases.
type Generator struct {
	config Config
	rng    *rand.Rand
}

// New creates a Generator for the given configuration.
func New(config Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}, nil
}

// Config returns the configuration of the generator.
func (g *Generator) Config() Config {
	return g.config
}

// NextKind returns the kind of the next test case.
func (g *Generator) NextKind() dotproduct.Kind {
	if g.config.Kind != dotproduct.InvalidKind {
		return g.config.Kind
	}
	return dotproduct.Kinds[g.rng.Intn(len(dotproduct.Kinds))]
}

// NextLength returns the vector length of the next test case.
func (g *Generator) NextLength() int {
	if g.config.RandomLength {
		return 1 + g.rng.Intn(MaxVectorLength)
	}
	return g.config.Length
}

// Vector returns a random vector of the given kind and length, as a slice of the Go
// type of kind.
//
// Values are drawn uniformly from: [-100, 100] for int and short, [-1e6, 1e6] for
// long, [0, 100] for char and [-100, 100) for float and double.
func (g *Generator) Vector(kind dotproduct.Kind, length int) any {
	switch kind {
	case dotproduct.Int32:
		return randomInts[int32](g.rng, length, -100, 100)
	case dotproduct.Int64:
		return randomInts[int64](g.rng, length, -1_000_000, 1_000_000)
	case dotproduct.Int16:
		return randomInts[int16](g.rng, length, -100, 100)
	case dotproduct.Int8:
		return randomInts[int8](g.rng, length, 0, 100)
	case dotproduct.Float32:
		return randomFloats[float32](g.rng, length, -100, 100)
	case dotproduct.Float64:
		return randomFloats[float64](g.rng, length, -100, 100)
	}
	return nil
}

// randomInts returns n values drawn uniformly from [low, high].
func randomInts[T constraints.Signed](rng *rand.Rand, n int, low, high int) []T {
	values := make([]T, n)
	for i := range values {
		values[i] = T(low + rng.Intn(high-low+1))
	}
	return values
}

// randomFloats returns n values drawn uniformly from [low, high).
func randomFloats[T constraints.Float](rng *rand.Rand, n int, low, high float64) []T {
	values := make([]T, n)
	for i := range values {
		values[i] = T(low + rng.Float64()*(high-low))
	}
	return values
}

// Generate writes all test cases to w. If onCase is not nil, it is called after each
// test case is generated, with the index of the case and its vector length.
func (g *Generator) Generate(w io.Writer, onCase func(caseIdx, length int)) error {
	out := vectext.NewWriter(w)
	if err := out.WriteCount(g.config.NumCases); err != nil {
		return errors.Wrap(err, "failed to write number of test cases")
	}
	for caseIdx := range g.config.NumCases {
		kind := g.NextKind()
		length := g.NextLength()
		if err := out.WriteHeader(kind, length); err != nil {
			return errors.WithMessagef(err, "test case #%d", caseIdx)
		}
		if err := out.WriteVectors(g.Vector(kind, length), g.Vector(kind, length)); err != nil {
			return errors.WithMessagef(err, "test case #%d", caseIdx)
		}
		if onCase != nil {
			onCase(caseIdx, length)
		}
	}
	return errors.Wrap(out.Flush(), "failed to flush test cases")
}
