// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/gomlx/dotbench/internal/vectext"
	"github.com/gomlx/dotbench/pkg/dotproduct"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// run reads all test cases from in and writes one line per test case to out.
//
// Problems with individual test cases are reported in out and don't stop the run.
// It only returns an error if the input is corrupted or can't be read, or if out
// can't be written.
func run(in io.Reader, out io.Writer, stats *summary) (err error) {
	w := bufio.NewWriter(out)
	defer func() {
		if flushErr := w.Flush(); err == nil && flushErr != nil {
			err = errors.Wrap(flushErr, "failed to write results")
		}
	}()

	r := vectext.NewReader(in)
	numCases, err := r.ReadCount()
	if err != nil {
		return err
	}
	klog.V(1).Infof("reading %d test cases", numCases)
	for caseIdx := range numCases {
		c, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return errors.Errorf("input ended after %d of %d test cases", caseIdx, numCases)
			}
			var caseErr *vectext.CaseError
			if !errors.As(err, &caseErr) {
				return err
			}
			klog.V(1).Infof("skipping %v", caseErr)
			stats.reject(c.Kind)
			if errors.Is(err, dotproduct.ErrUnsupportedKind) {
				_, _ = fmt.Fprintf(w, "Error: Unsupported data type: %s\n", caseErr.Tag)
			} else {
				_, _ = fmt.Fprintf(w, "Error: %v\n", caseErr.Err)
			}
			continue
		}

		caseStart := time.Now()
		status, result := dotproduct.Dispatch(c.Kind, c.A, c.B, c.Size)
		klog.V(1).Infof("test case #%d: %s of size %d in %s", c.Index, c.Kind, c.Size, time.Since(caseStart))
		stats.add(c.Kind, status)
		if _, err := fmt.Fprintln(w, formatOutcome(c.Kind, status, result)); err != nil {
			return errors.Wrap(err, "failed to write results")
		}
	}
	return nil
}

// formatOutcome returns the line reported for a computed test case.
func formatOutcome(kind dotproduct.Kind, status dotproduct.Status, result any) string {
	if status != dotproduct.Success {
		return status.Message()
	}
	if kind.IsFloat() {
		return fmt.Sprintf("%s dot product result: %f", kind.Label(), result)
	}
	return fmt.Sprintf("%s dot product result: %d", kind.Label(), result)
}
