// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dotproduct

import (
	"fmt"

	"github.com/pkg/errors"
)

//go:generate go tool enumer -type=Status -output=gen_status_enumer.go status.go

// Status is the outcome of a dot product computation. The numeric values are
// stable and are part of the output format of the command-line driver.
type Status int

const (
	// Success means the result is valid.
	Success Status = iota

	// NullInput means one or both of the vectors were absent (nil).
	NullInput

	// InvalidSize means the declared size was not positive.
	InvalidSize
)

var (
	// ErrNullInput is matched (with errors.Is) by the error returned by NullInput.Err().
	ErrNullInput = errors.New("null input vector")

	// ErrInvalidSize is matched (with errors.Is) by the error returned by InvalidSize.Err().
	ErrInvalidSize = errors.New("invalid vector size")
)

var statusMessages = map[Status]string{
	NullInput:   "Error: Null pointer provided",
	InvalidSize: "Error: Invalid vector size",
}

// Message returns the human-readable message for an error status.
// Unrecognized codes yield a generic "Unknown error" message carrying the code.
func (s Status) Message() string {
	if msg, found := statusMessages[s]; found {
		return msg
	}
	return fmt.Sprintf("Unknown error: %d", int(s))
}

// Err converts the status to an error: nil for Success, a *StatusError otherwise.
func (s Status) Err() error {
	if s == Success {
		return nil
	}
	return &StatusError{Status: s}
}

// StatusError is the error form of a non-successful Status.
type StatusError struct {
	Status Status
}

// Error implements error.
func (e *StatusError) Error() string {
	return e.Status.Message()
}

// Is makes errors.Is(err, ErrNullInput) and errors.Is(err, ErrInvalidSize) work.
func (e *StatusError) Is(target error) bool {
	switch e.Status {
	case NullInput:
		return target == ErrNullInput
	case InvalidSize:
		return target == ErrInvalidSize
	}
	return false
}
