// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package vectext

import (
	"bufio"
	"io"
	"strconv"

	"github.com/gomlx/dotbench/pkg/dotproduct"
	"github.com/pkg/errors"
)

// Writer writes test cases in the benchmark text format. Errors are sticky: after
// the first failure every method returns the same error.
//
// Call Flush when done.
type Writer struct {
	w   *bufio.Writer
	buf []byte
	err error
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) write(data []byte) error {
	if w.err != nil {
		return w.err
	}
	_, w.err = w.w.Write(data)
	return w.err
}

// WriteCount writes the number of test cases, on its own line.
func (w *Writer) WriteCount(n int) error {
	w.buf = strconv.AppendInt(w.buf[:0], int64(n), 10)
	w.buf = append(w.buf, '\n')
	return w.write(w.buf)
}

// WriteHeader writes the tag of kind and the size of the vectors, on their own line.
func (w *Writer) WriteHeader(kind dotproduct.Kind, size int) error {
	if !kind.IsValid() {
		return errors.Wrapf(dotproduct.ErrUnsupportedKind, "can't write header for kind %s", kind)
	}
	w.buf = append(w.buf[:0], kind.Tag()...)
	w.buf = append(w.buf, ' ')
	w.buf = strconv.AppendInt(w.buf, int64(size), 10)
	w.buf = append(w.buf, '\n')
	return w.write(w.buf)
}

// WriteVectors writes the two vectors of a test case, on one line. The vectors
// must be slices of one of the supported Go types.
func (w *Writer) WriteVectors(vecA, vecB any) error {
	var err error
	w.buf, err = AppendVector(w.buf[:0], vecA)
	if err != nil {
		return err
	}
	w.buf = append(w.buf, ' ')
	w.buf, err = AppendVector(w.buf, vecB)
	if err != nil {
		return err
	}
	w.buf = append(w.buf, '\n')
	return w.write(w.buf)
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

// AppendVector appends the vector literal of vec to buf.
//
// Integers are written in decimal, and floats with 6 decimal places (like C's "%f").
func AppendVector(buf []byte, vec any) ([]byte, error) {
	switch v := vec.(type) {
	case []int32:
		return appendVector(buf, v), nil
	case []int64:
		return appendVector(buf, v), nil
	case []int16:
		return appendVector(buf, v), nil
	case []int8:
		return appendVector(buf, v), nil
	case []float32:
		return appendVector(buf, v), nil
	case []float64:
		return appendVector(buf, v), nil
	}
	return buf, errors.Errorf("can't write vector of type %T", vec)
}

func appendVector[T dotproduct.Element](buf []byte, vec []T) []byte {
	kind := dotproduct.KindOf[T]()
	buf = append(buf, '[')
	for i, v := range vec {
		if i > 0 {
			buf = append(buf, ',')
		}
		switch kind {
		case dotproduct.Float32:
			buf = strconv.AppendFloat(buf, float64(v), 'f', 6, 32)
		case dotproduct.Float64:
			buf = strconv.AppendFloat(buf, float64(v), 'f', 6, 64)
		default:
			buf = strconv.AppendInt(buf, int64(v), 10)
		}
	}
	return append(buf, ']')
}
