// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dotproduct

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// referenceDot sums the products of the first size elements in T, without any shortcut.
func referenceDot[T Element](a, b []T, size int) T {
	var sum T
	for i := 0; i < size; i++ {
		product := a[i] * b[i]
		sum = sum + product
	}
	return sum
}

func testComputeImpl[T Element](t *testing.T, a, b []T) {
	status, got := Compute(a, b, len(a))
	require.Equal(t, Success, status)
	assert.Equal(t, referenceDot(a, b, len(a)), got)
}

func TestCompute(t *testing.T) {
	t.Run("Int32", func(t *testing.T) {
		testComputeImpl(t, []int32{1, 2, 3}, []int32{4, 5, 6})
		status, got := ComputeInt32([]int32{1, 2, 3}, []int32{4, 5, 6}, 3)
		require.Equal(t, Success, status)
		assert.Equal(t, int32(32), got)
	})
	t.Run("Int64", func(t *testing.T) {
		testComputeImpl(t, []int64{-7, 11, 1 << 40}, []int64{3, -2, 5})
		status, got := ComputeInt64([]int64{1000000000000}, []int64{3}, 1)
		require.Equal(t, Success, status)
		assert.Equal(t, int64(3000000000000), got)
	})
	t.Run("Int16", func(t *testing.T) {
		testComputeImpl(t, []int16{-100, 50, 7}, []int16{100, -3, 9})
		status, got := ComputeInt16([]int16{-100, 50, 7}, []int16{100, -3, 9}, 3)
		require.Equal(t, Success, status)
		assert.Equal(t, int16(-10000-150+63), got)
	})
	t.Run("Int8", func(t *testing.T) {
		testComputeImpl(t, []int8{1, -2, 3, 4}, []int8{5, 6, -7, 8})
		status, got := ComputeInt8([]int8{1, -2, 3, 4}, []int8{5, 6, -7, 8}, 4)
		require.Equal(t, Success, status)
		assert.Equal(t, int8(5-12-21+32), got)
	})
	t.Run("Float32", func(t *testing.T) {
		status, got := ComputeFloat32([]float32{1.5, 2.5}, []float32{2, 2}, 2)
		require.Equal(t, Success, status)
		assert.Equal(t, float32(8), got)
	})
	t.Run("Float64", func(t *testing.T) {
		status, got := ComputeFloat64([]float64{1.5, 2.5}, []float64{2, 2}, 2)
		require.Equal(t, Success, status)
		assert.Equal(t, 8.0, got)
	})
}

func TestComputeNullInput(t *testing.T) {
	for _, size := range []int{-1, 0, 1, 3} {
		status, got := ComputeInt32(nil, []int32{1, 2, 3}, size)
		assert.Equal(t, NullInput, status, "size=%d", size)
		assert.Zero(t, got)

		status, got = ComputeInt32([]int32{1, 2, 3}, nil, size)
		assert.Equal(t, NullInput, status, "size=%d", size)
		assert.Zero(t, got)

		statusF, gotF := ComputeFloat64(nil, nil, size)
		assert.Equal(t, NullInput, statusF, "size=%d", size)
		assert.Zero(t, gotF)
	}
}

func TestComputeInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, math.MinInt} {
		status, got := ComputeInt64([]int64{1, 2}, []int64{3, 4}, size)
		assert.Equal(t, InvalidSize, status, "size=%d", size)
		assert.Zero(t, got)

		statusF, gotF := ComputeFloat32([]float32{1}, []float32{1}, size)
		assert.Equal(t, InvalidSize, statusF, "size=%d", size)
		assert.Zero(t, gotF)
	}

	// Empty but present vectors are not "null".
	status, _ := ComputeInt8([]int8{}, []int8{}, 0)
	assert.Equal(t, InvalidSize, status)
}

func TestComputeUsesDeclaredSize(t *testing.T) {
	status, got := ComputeInt32([]int32{1, 2, 100}, []int32{3, 4, 100}, 2)
	require.Equal(t, Success, status)
	assert.Equal(t, int32(11), got)

	require.Panics(t, func() { _, _ = ComputeInt32([]int32{1}, []int32{1}, 2) })
}

func TestComputeWrapAround(t *testing.T) {
	status, gotInt8 := ComputeInt8([]int8{127}, []int8{2}, 1)
	require.Equal(t, Success, status)
	assert.Equal(t, int8(-2), gotInt8)

	// 100+100 = 200 overflows int8 on the second addition.
	_, gotInt8 = ComputeInt8([]int8{10, 10}, []int8{10, 10}, 2)
	assert.Equal(t, int8(-56), gotInt8)

	// 300*300 = 90000 = 65536 + 24464.
	_, gotInt16 := ComputeInt16([]int16{300}, []int16{300}, 1)
	assert.Equal(t, int16(24464), gotInt16)
	_, gotInt16 = ComputeInt16([]int16{200, 200}, []int16{100, 100}, 2)
	assert.Equal(t, int16(40000-65536), gotInt16)

	_, gotInt32 := ComputeInt32([]int32{math.MaxInt32, 1}, []int32{1, 1}, 2)
	assert.Equal(t, int32(math.MinInt32), gotInt32)

	_, gotInt64 := ComputeInt64([]int64{math.MaxInt64}, []int64{2}, 1)
	assert.Equal(t, int64(-2), gotInt64)
}

func TestComputeFloatPrecision(t *testing.T) {
	// 2^24+1 is not representable in float32: the accumulator must not be widened.
	a32, b32 := []float32{1 << 24, 1}, []float32{1, 1}
	_, got32 := ComputeFloat32(a32, b32, 2)
	assert.Equal(t, float32(1<<24), got32)

	a64, b64 := []float64{1 << 24, 1}, []float64{1, 1}
	_, got64 := ComputeFloat64(a64, b64, 2)
	assert.Equal(t, float64(1<<24+1), got64)

	// Summation happens left to right with no compensation.
	_, got64 = ComputeFloat64([]float64{1e16, 1, -1e16}, []float64{1, 1, 1}, 3)
	assert.Equal(t, 0.0, got64)
}

func TestComputeFloat64AgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	for _, size := range []int{1, 3, 17, 1000} {
		a, b := make([]float64, size), make([]float64, size)
		for i := range a {
			a[i] = 200*rng.Float64() - 100
			b[i] = 200*rng.Float64() - 100
		}
		status, got := ComputeFloat64(a, b, size)
		require.Equal(t, Success, status)
		want := floats.Dot(a, b)
		assert.True(t, scalar.EqualWithinAbsOrRel(want, got, 1e-9, 1e-12),
			"size=%d: got %g, gonum computed %g", size, got, want)
	}
}

func testPermutationInvarianceImpl[T Element](t *testing.T, rng *rand.Rand, size int, draw func() T) {
	a, b := make([]T, size), make([]T, size)
	for i := range a {
		a[i], b[i] = draw(), draw()
	}
	_, want := Compute(a, b, size)
	for range 5 {
		perm := rng.Perm(size)
		pa, pb := make([]T, size), make([]T, size)
		for i, j := range perm {
			pa[i], pb[i] = a[j], b[j]
		}
		_, got := Compute(pa, pb, size)
		require.Equal(t, want, got, "permutation %v", perm)
	}
}

func TestComputePermutationInvariance(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	// Integer arithmetic modulo 2^N is associative and commutative, overflow included.
	testPermutationInvarianceImpl(t, rng, 50, func() int8 { return int8(rng.IntN(256) - 128) })
	testPermutationInvarianceImpl(t, rng, 50, func() int16 { return int16(rng.IntN(1<<16) - 1<<15) })
	testPermutationInvarianceImpl(t, rng, 50, func() int32 { return int32(rng.Uint32()) })
	testPermutationInvarianceImpl(t, rng, 50, func() int64 { return int64(rng.Uint64()) })
	// Small integers are exact in floating point, so any order gives the same sum.
	testPermutationInvarianceImpl(t, rng, 50, func() float64 { return float64(rng.IntN(201) - 100) })
	testPermutationInvarianceImpl(t, rng, 50, func() float32 { return float32(rng.IntN(201) - 100) })
}
