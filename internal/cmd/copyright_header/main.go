// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// copyright_header enumerates Go files and adds the SPDX copyright header to those missing it.
// With -check it only lists them, and exits with an error if there are any.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagProject = flag.String("project", "GoMLX", "Project name to use in the copyright header.")

	flagCheck = flag.Bool("check", false, "Only list files missing the header, don't change them. "+
		"Exits with an error if any is found.")
)

// maxHeaderSearchLines is how far into a file an existing copyright line is searched for.
const maxHeaderSearchLines = 50

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		_, _ = fmt.Fprintf(out, "Usage: %s [flags] [path ...]\n", os.Args[0])
		_, _ = fmt.Fprintf(out, "\nEnumerates Go files and adds a copyright header if missing.\n")
		_, _ = fmt.Fprintf(out, "Default path is current directory.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	header := fmt.Sprintf("// Copyright 2023-2026 The %s Authors. SPDX-License-Identifier: Apache-2.0\n\n", *flagProject)
	roots := flag.Args()
	if len(roots) == 0 {
		roots = []string{"."}
	}

	var missing int
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				// Hidden directories, vendored code and read-only reference trees ("_" prefix,
				// also ignored by the Go tool).
				name := d.Name()
				if name != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor") {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(d.Name(), ".go") || strings.HasPrefix(d.Name(), "gen_") {
				return nil
			}
			changed, err := processFile(path, header, *flagCheck)
			if changed {
				missing++
			}
			return err
		})
		if err != nil {
			klog.Fatalf("Error walking path %q: %+v", root, err)
		}
	}
	if *flagCheck && missing > 0 {
		klog.Errorf("%d files are missing the copyright header", missing)
		os.Exit(1)
	}
}

// processFile adds the header to the file in path, if missing. It returns whether the
// header was missing.
func processFile(path, header string, checkOnly bool) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %q", path)
	}
	newContent, changed := addHeader(content, header)
	if !changed {
		return false, nil
	}
	if checkOnly {
		fmt.Println(path)
		return true, nil
	}
	klog.Infof("Adding header to %s", path)
	if err := os.WriteFile(path, newContent, 0644); err != nil {
		return true, errors.Wrapf(err, "failed to write %q", path)
	}
	return true, nil
}

// addHeader returns content with the header inserted, and true; or content unchanged
// and false, if it already has a copyright line.
//
// The header goes at the top of the file, or after the build constraints, separated
// from them by an empty line.
func addHeader(content []byte, header string) ([]byte, bool) {
	lines := bytes.Split(content, []byte("\n"))
	lastBuildTagIndex := -1
	for i, line := range lines {
		if i > maxHeaderSearchLines {
			break
		}
		trimmed := bytes.TrimSpace(line)
		if bytes.HasPrefix(trimmed, []byte("// Copyright")) {
			return content, false
		}
		if bytes.HasPrefix(trimmed, []byte("//go:build")) || bytes.HasPrefix(trimmed, []byte("// +build")) {
			lastBuildTagIndex = i
		}
	}

	if lastBuildTagIndex == -1 {
		return append([]byte(header), content...), true
	}
	var buf bytes.Buffer
	buf.Write(bytes.Join(lines[:lastBuildTagIndex+1], []byte("\n")))
	buf.WriteString("\n\n")
	buf.WriteString(header)
	rest := bytes.Join(lines[lastBuildTagIndex+1:], []byte("\n"))
	buf.Write(bytes.TrimLeft(rest, "\n"))
	return buf.Bytes(), true
}
