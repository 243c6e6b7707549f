// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dotproduct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	testCases := []struct {
		kind Kind
		a, b any
		size int
		want any
	}{
		{Int32, []int32{1, 2, 3}, []int32{4, 5, 6}, 3, int32(32)},
		{Int64, []int64{1000000000000}, []int64{3}, 1, int64(3000000000000)},
		{Int16, []int16{300}, []int16{300}, 1, int16(24464)},
		{Int8, []int8{127}, []int8{2}, 1, int8(-2)},
		{Float32, []float32{1.5, 2.5}, []float32{2, 2}, 2, float32(8)},
		{Float64, []float64{1.5, 2.5}, []float64{2, 2}, 2, 8.0},
	}
	require.Len(t, testCases, len(Kinds))
	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			status, got := Dispatch(tc.kind, tc.a, tc.b, tc.size)
			require.Equal(t, Success, status)
			assert.Equal(t, tc.want, got)

			status, got = Dispatch(tc.kind, tc.a, tc.b, 0)
			assert.Equal(t, InvalidSize, status)
			assert.Zero(t, got)

			status, _ = Dispatch(tc.kind, nil, tc.b, 1)
			assert.Equal(t, NullInput, status)
		})
	}
}

func TestDispatchNullInput(t *testing.T) {
	// Typed nil slices count as absent too.
	status, got := Dispatch(Int16, []int16(nil), []int16{1}, 1)
	assert.Equal(t, NullInput, status)
	assert.Equal(t, int16(0), got)

	status, _ = Dispatch(Float64, []float64{1}, nil, -1)
	assert.Equal(t, NullInput, status)
}

func TestDispatchPanics(t *testing.T) {
	require.Panics(t, func() { Dispatch(InvalidKind, []int32{1}, []int32{1}, 1) })
	require.Panics(t, func() { Dispatch(Kind(100), []int32{1}, []int32{1}, 1) })
	// Type mismatch between kind and vectors.
	require.Panics(t, func() { Dispatch(Int32, []int64{1}, []int64{1}, 1) })
	require.Panics(t, func() { Dispatch(Float32, []float32{1}, []float64{1}, 1) })

	d := newKindDispatcher("Empty")
	require.Panics(t, func() { d.dispatch(Int8, []int8{1}, []int8{1}, 1) })
	require.Panics(t, func() { d.register(InvalidKind, nil) })
}
