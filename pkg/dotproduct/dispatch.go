// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dotproduct

import (
	"github.com/gomlx/exceptions"
)

// funcForDispatcher computes the dot product for one kind: the vectors are
// []T for the Go type T of that kind, and the result is a T.
type funcForDispatcher func(vecA, vecB any, size int) (Status, any)

// kindDispatcher maps each Kind to the instantiation of Compute that handles it.
type kindDispatcher struct {
	name  string
	fnMap [numKinds]funcForDispatcher
}

func newKindDispatcher(name string) *kindDispatcher {
	return &kindDispatcher{name: name}
}

// register a function to handle a specific kind.
// This overwrites any previous setting for the same kind.
func (d *kindDispatcher) register(kind Kind, fn funcForDispatcher) {
	if !kind.IsValid() {
		exceptions.Panicf("kind %s not supported by %s", kind, d.name)
	}
	d.fnMap[kind] = fn
}

// dispatch calls the function that matches the kind.
func (d *kindDispatcher) dispatch(kind Kind, vecA, vecB any, size int) (Status, any) {
	if !kind.IsValid() {
		exceptions.Panicf("kind %s not supported by %s", kind, d.name)
	}
	fn := d.fnMap[kind]
	if fn == nil {
		exceptions.Panicf("kind %s not supported by %s", kind, d.name)
	}
	return fn(vecA, vecB, size)
}

var dotProductDispatcher = newKindDispatcher("DotProduct")

func init() {
	registerCompute[int32](dotProductDispatcher)
	registerCompute[int64](dotProductDispatcher)
	registerCompute[int16](dotProductDispatcher)
	registerCompute[int8](dotProductDispatcher)
	registerCompute[float32](dotProductDispatcher)
	registerCompute[float64](dotProductDispatcher)
}

func registerCompute[T Element](d *kindDispatcher) {
	kind := KindOf[T]()
	d.register(kind, func(vecA, vecB any, size int) (Status, any) {
		a := vectorAs[T](vecA, kind, "vecA")
		b := vectorAs[T](vecB, kind, "vecB")
		status, result := Compute(a, b, size)
		return status, result
	})
}

// vectorAs converts vec to []T. A nil interface converts to a nil slice.
func vectorAs[T Element](vec any, kind Kind, name string) []T {
	if vec == nil {
		return nil
	}
	typed, ok := vec.([]T)
	if !ok {
		exceptions.Panicf("%s has type %T, but kind %s requires []%s", name, vec, kind, kind.DType().GoType())
	}
	return typed
}

// Dispatch computes the dot product of vecA and vecB for the given kind.
//
// The vectors must be slices of the Go type of kind ([]int32 for Int32, []float64 for
// Float64, etc.) or nil, which is reported as NullInput. The result, on Success,
// has the same Go type as the elements.
//
// The kind is expected to have been validated at the boundary (see KindFromName):
// an invalid kind, or a vector of the wrong type, is a programming error and panics.
func Dispatch(kind Kind, vecA, vecB any, size int) (Status, any) {
	return dotProductDispatcher.dispatch(kind, vecA, vecB, size)
}
