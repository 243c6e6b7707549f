// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// dotproduct reads test cases from the standard input (or from --input), computes
// the dot product of each pair of vectors, and prints one result (or error) per
// test case, followed by the total execution time.
//
// Input format:
//
//	<number of test cases>
//	<data type> <size>
//	[a0,a1,...] [b0,b1,...]
//	...
//
// where <data type> is one of int, long, short, char, float or double. See
// testcase_generator for a tool that creates such inputs.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/must"
	"github.com/muesli/termenv"
	"k8s.io/klog/v2"
)

var (
	flagInput = flag.String("input", "", "File to read the test cases from. "+
		"If empty, test cases are read from the standard input.")

	flagSummary = flag.Bool("summary", false, "Display a table with the number of test cases "+
		"per data type and status at the end.")

	flagColor = flag.Bool("color", true, "Allow colors in the summary table. If false, only plain text is used.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if len(flag.Args()) > 0 {
		klog.Errorf("Unexpected arguments %q. See 'dotproduct -help'.", flag.Args())
		os.Exit(1)
	}

	var in io.Reader = os.Stdin
	if *flagInput != "" {
		f := must.M1(os.Open(*flagInput))
		defer func() { must.M(f.Close()) }()
		in = f
	}

	start := time.Now()
	stats := newSummary()
	if err := run(in, os.Stdout, stats); err != nil {
		klog.Errorf("Failed to process test cases: %+v", err)
		os.Exit(1)
	}
	fmt.Printf("Program execution time: %d microseconds\n", time.Since(start).Microseconds())

	if *flagSummary {
		if !*flagColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		fmt.Println(stats.Render())
	}
}
