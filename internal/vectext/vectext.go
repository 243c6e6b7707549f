// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package vectext reads and writes the text format of the dot product benchmark:
//
//	<number of test cases>
//	<tag> <size>
//	[a0,a1,...] [b0,b1,...]
//	...
//
// where <tag> is one of the dotproduct.Kind tags ("int", "long", "short", "char", "float"
// or "double"). Whitespace between tokens, and inside the brackets, is ignored.
package vectext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gomlx/dotbench/pkg/dotproduct"
	"github.com/pkg/errors"
)

var (
	// ErrElementCount is wrapped by a CaseError when a vector doesn't have the declared size.
	ErrElementCount = errors.New("wrong number of elements")

	// ErrMalformedElement is wrapped by a CaseError when an element can't be parsed.
	ErrMalformedElement = errors.New("malformed element")
)

// CaseError reports a problem with a single test case. The whole case has been
// consumed from the input when it is returned, so reading can continue with the
// next case.
type CaseError struct {
	// Index of the test case, starting from 0.
	Index int

	// Tag as written in the input.
	Tag string

	Err error
}

// Error implements error.
func (e *CaseError) Error() string {
	return fmt.Sprintf("test case #%d (%q): %v", e.Index, e.Tag, e.Err)
}

// Unwrap allows errors.Is and errors.As to inspect the cause.
func (e *CaseError) Unwrap() error {
	return e.Err
}

// splitElements splits the contents of a vector literal (without the brackets).
func splitElements(literal string) []string {
	literal = strings.TrimSpace(literal)
	if literal == "" {
		return nil
	}
	fields := strings.Split(literal, ",")
	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}
	return fields
}

type parseFn func(fields []string) (any, error)

var parsers = make(map[dotproduct.Kind]parseFn, len(dotproduct.Kinds))

func init() {
	registerParser[int32]()
	registerParser[int64]()
	registerParser[int16]()
	registerParser[int8]()
	registerParser[float32]()
	registerParser[float64]()
}

func registerParser[T dotproduct.Element]() {
	parsers[dotproduct.KindOf[T]()] = func(fields []string) (any, error) {
		return parseElements[T](fields)
	}
}

// parseElements converts each field to T. Integers are read as 64-bit values and
// then narrowed to T, wrapping around like a C cast; floats are read with the
// precision of T, and values out of its range become ±Inf.
func parseElements[T dotproduct.Element](fields []string) ([]T, error) {
	kind := dotproduct.KindOf[T]()
	vec := make([]T, len(fields))
	for i, field := range fields {
		if kind.IsFloat() {
			bitSize := 64
			if kind == dotproduct.Float32 {
				bitSize = 32
			}
			v, err := strconv.ParseFloat(field, bitSize)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return nil, errors.Wrapf(ErrMalformedElement, "element #%d %q is not a valid %s", i, field, kind.Tag())
			}
			vec[i] = T(v)
			continue
		}
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedElement, "element #%d %q is not a valid %s", i, field, kind.Tag())
		}
		vec[i] = T(v)
	}
	return vec, nil
}

// ParseVector parses the contents of a vector literal, without the brackets, into
// a slice of the Go type of kind ([]int32 for dotproduct.Int32, etc.).
//
// If size is positive the number of elements must match it. For non-positive sizes
// the elements aren't parsed and an empty vector is returned: the engine reports
// those as dotproduct.InvalidSize.
// The returned vector is never nil on success, even if empty.
func ParseVector(kind dotproduct.Kind, literal string, size int) (any, error) {
	if !kind.IsValid() {
		return nil, errors.Wrapf(dotproduct.ErrUnsupportedKind, "kind %s", kind)
	}
	if size <= 0 {
		return parsers[kind](nil)
	}
	fields := splitElements(literal)
	if len(fields) != size {
		return nil, errors.Wrapf(ErrElementCount, "vector has %d elements, but declared size is %d", len(fields), size)
	}
	return parsers[kind](fields)
}
