// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package dotproduct computes the dot product of two vectors for each of the
// supported element kinds: Int32, Int64, Int16, Int8, Float32 and Float64.
//
// There is one generic routine, Compute, with a thin named wrapper per kind
// (ComputeInt32, ComputeInt64, ...). Each call returns a Status alongside the
// result: invalid inputs are reported as data (NullInput, InvalidSize), never as
// panics.
//
// Arithmetic follows the native semantics of the element type: integer kinds
// wrap around silently at their width (the accumulator has the same width as
// the elements, so for Int8 and Int16 every partial sum is truncated), and float
// kinds use plain IEEE arithmetic at their own precision.
//
// Example:
//
//	status, result := dotproduct.ComputeInt8([]int8{127}, []int8{2}, 1)
//	if status != dotproduct.Success {
//		fmt.Println(status.Message())
//	}
//	fmt.Println(result) // -2
//
// Callers that receive the element kind at runtime (e.g. from a text tag) should
// validate it once with KindFromName and then use Dispatch.
package dotproduct
