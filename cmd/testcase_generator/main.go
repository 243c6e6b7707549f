// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// testcase_generator writes random test cases for the dotproduct tool.
//
// Examples:
//
//	# 10 int test cases with vectors of length 5:
//	testcase_generator -n 10 -t int -l 5
//
//	# 20 test cases of random types and random lengths, written to test.txt:
//	testcase_generator -n 20 -t random -r -o test.txt
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/dotbench/internal/testcases"
	"github.com/gomlx/dotbench/pkg/dotproduct"
	"github.com/janpfeifer/must"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

var (
	flagNumCases = flag.Int("n", testcases.DefaultNumCases, "Number of test cases to generate.")

	flagType = flag.String("t", "random", "Data type: int, long, short, char, float, double or random. "+
		"With random, a data type is picked for each test case.")

	flagLength = flag.Int("l", testcases.DefaultVectorLength,
		fmt.Sprintf("Vector length, from 1 to %d.", testcases.MaxVectorLength))

	flagRandomLength = flag.Bool("r", false, "Use a random vector length for each test case.")
	flagOutput       = flag.String("o", "", "Output file. If empty, test cases are written to the standard output.")
	flagSeed         = flag.Uint64("seed", 0, "Seed for the random number generator. If 0, it is seeded from the clock.")
)

func usage() {
	out := flag.CommandLine.Output()
	_, _ = fmt.Fprintf(out, "Test case generator for vector dot product.\n\nUsage: testcase_generator [flags]\n\nFlags:\n")
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(out, "\nExamples:\n"+
		"  testcase_generator -n 10 -t int -l 5            # 10 int test cases with vector length 5\n"+
		"  testcase_generator -n 20 -t random -r -o test.txt  # 20 random type test cases with random lengths\n")
}

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()

	config, err := configFromFlags()
	if err != nil {
		klog.Errorf("%v", err)
		flag.Usage()
		os.Exit(1)
	}
	generator, err := testcases.New(config)
	if err != nil {
		klog.Errorf("%v", err)
		os.Exit(1)
	}
	klog.V(1).Infof("generating %d test cases with seed %d", config.NumCases, config.Seed)

	if *flagOutput == "" {
		must.M(generator.Generate(os.Stdout, nil))
		return
	}
	writeToFile(generator, *flagOutput)
}

// configFromFlags builds the generator configuration from the command-line flags.
func configFromFlags() (testcases.Config, error) {
	config := testcases.DefaultConfig()
	config.NumCases = *flagNumCases
	config.Length = *flagLength
	config.RandomLength = *flagRandomLength
	if *flagSeed != 0 {
		config.Seed = *flagSeed
	}
	if *flagType != "random" {
		kind, err := dotproduct.KindFromName(*flagType)
		if err != nil {
			return config, err
		}
		config.Kind = kind
	}
	return config, config.Validate()
}

// writeToFile generates the test cases into fileName, displaying a progress bar.
func writeToFile(generator *testcases.Generator, fileName string) {
	f := must.M1(os.Create(fileName))
	bar := progressbar.NewOptions(generator.Config().NumCases,
		progressbar.OptionSetDescription("Generating test cases"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("cases"),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionOnCompletion(func() { _, _ = fmt.Fprintln(os.Stderr) }),
	)
	var numElements int64
	err := generator.Generate(f, func(_, length int) {
		numElements += 2 * int64(length)
		_ = bar.Add(1)
	})
	must.M(err)
	must.M(f.Close())

	info := must.M1(os.Stat(fileName))
	fmt.Printf("Test cases written to '%s' (%s elements, %s)\n",
		fileName, humanize.Comma(numElements), humanize.Bytes(uint64(info.Size())))
}
