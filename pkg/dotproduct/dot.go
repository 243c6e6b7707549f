// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dotproduct

// Compute returns the dot product of the first size elements of vecA and vecB.
//
// A nil vector (as opposed to an empty one) yields NullInput, and a non-positive
// size yields InvalidSize; in both cases the returned value is the zero value.
// Both checks happen in this order, before any element is read.
//
// size must not exceed len(vecA) or len(vecB): like any out-of-range slice index,
// that panics.
//
// The accumulator has type T: integers wrap at their own width after every
// addition, and floats are summed in their own precision, left to right.
func Compute[T Element](vecA, vecB []T, size int) (Status, T) {
	var sum T
	if vecA == nil || vecB == nil {
		return NullInput, sum
	}
	if size <= 0 {
		return InvalidSize, sum
	}
	for i := 0; i < size; i++ {
		// The conversion rounds the product to T, so it can't be fused into a
		// multiply-add on architectures that support it.
		sum += T(vecA[i] * vecB[i])
	}
	return Success, sum
}

// ComputeInt32 is Compute for 32-bit integers ("int").
func ComputeInt32(vecA, vecB []int32, size int) (Status, int32) {
	return Compute(vecA, vecB, size)
}

// ComputeInt64 is Compute for 64-bit integers ("long").
func ComputeInt64(vecA, vecB []int64, size int) (Status, int64) {
	return Compute(vecA, vecB, size)
}

// ComputeInt16 is Compute for 16-bit integers ("short").
func ComputeInt16(vecA, vecB []int16, size int) (Status, int16) {
	return Compute(vecA, vecB, size)
}

// ComputeInt8 is Compute for 8-bit integers ("char").
func ComputeInt8(vecA, vecB []int8, size int) (Status, int8) {
	return Compute(vecA, vecB, size)
}

// ComputeFloat32 is Compute for single precision floats ("float").
func ComputeFloat32(vecA, vecB []float32, size int) (Status, float32) {
	return Compute(vecA, vecB, size)
}

// ComputeFloat64 is Compute for double precision floats ("double").
func ComputeFloat64(vecA, vecB []float64, size int) (Status, float64) {
	return Compute(vecA, vecB, size)
}
