// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package vectext

import (
	"bufio"
	"io"
	"strconv"
	"unicode"

	"github.com/gomlx/dotbench/pkg/dotproduct"
	"github.com/pkg/errors"
)

// Case is one test case read from the input.
type Case struct {
	// Index of the test case, starting from 0.
	Index int

	// Tag as written in the input, and the corresponding Kind.
	Tag  string
	Kind dotproduct.Kind

	// Size is the declared size of the vectors.
	Size int

	// A and B are the vectors, as slices of the Go type of Kind.
	A, B any
}

// Reader reads test cases in the benchmark text format.
type Reader struct {
	r        *bufio.Reader
	numCases int
}

// NewReader returns a Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadCount reads the number of test cases, the first token of the input.
func (r *Reader) ReadCount() (int, error) {
	tok, err := r.token()
	if err != nil {
		return 0, errors.Wrap(unexpectedEOF(err), "failed to read the number of test cases")
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, errors.Errorf("invalid number of test cases %q", tok)
	}
	return n, nil
}

// Next reads the next test case.
//
// It returns io.EOF if the input ends cleanly before a new case. Problems that
// concern only this case (unsupported tag, malformed elements, wrong number of
// elements) are returned as a *CaseError along with the partially filled Case; any
// other error means the input is corrupted and reading should stop.
func (r *Reader) Next() (*Case, error) {
	idx := r.numCases
	tag, err := r.token()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrapf(err, "test case #%d: failed to read data type", idx)
	}
	r.numCases++

	sizeTok, err := r.token()
	if err != nil {
		return nil, errors.Wrapf(unexpectedEOF(err), "test case #%d: failed to read vector size", idx)
	}
	size, err := strconv.Atoi(sizeTok)
	if err != nil {
		return nil, errors.Errorf("test case #%d: invalid vector size %q", idx, sizeTok)
	}
	literalA, err := r.literal()
	if err != nil {
		return nil, errors.WithMessagef(err, "test case #%d: first vector", idx)
	}
	literalB, err := r.literal()
	if err != nil {
		return nil, errors.WithMessagef(err, "test case #%d: second vector", idx)
	}

	c := &Case{Index: idx, Tag: tag, Size: size}
	c.Kind, err = dotproduct.KindFromName(tag)
	if err != nil {
		return c, &CaseError{Index: idx, Tag: tag, Err: err}
	}
	c.A, err = ParseVector(c.Kind, literalA, size)
	if err != nil {
		return c, &CaseError{Index: idx, Tag: tag, Err: errors.WithMessage(err, "first vector")}
	}
	c.B, err = ParseVector(c.Kind, literalB, size)
	if err != nil {
		return c, &CaseError{Index: idx, Tag: tag, Err: errors.WithMessage(err, "second vector")}
	}
	return c, nil
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func (r *Reader) skipSpaces() error {
	for {
		c, _, err := r.r.ReadRune()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(c) {
			return r.r.UnreadRune()
		}
	}
}

// token reads the next whitespace separated token. A '[' also ends a token, and is
// left in the input. It returns io.EOF only if there are no more tokens.
func (r *Reader) token() (string, error) {
	if err := r.skipSpaces(); err != nil {
		return "", err
	}
	var tok []rune
	for {
		c, _, err := r.r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(c) {
			break
		}
		if c == '[' {
			if err := r.r.UnreadRune(); err != nil {
				return "", err
			}
			break
		}
		tok = append(tok, c)
	}
	if len(tok) == 0 {
		// Only happens if the token starts with '['.
		return "", errors.New("unexpected '['")
	}
	return string(tok), nil
}

// literal reads a bracketed vector literal and returns its contents without the brackets.
func (r *Reader) literal() (string, error) {
	if err := r.skipSpaces(); err != nil {
		return "", errors.Wrap(unexpectedEOF(err), "failed to read vector")
	}
	c, _, err := r.r.ReadRune()
	if err != nil {
		return "", errors.Wrap(unexpectedEOF(err), "failed to read vector")
	}
	if c != '[' {
		return "", errors.Errorf("expected '[' at the start of a vector, got %q", c)
	}
	contents, err := r.r.ReadString(']')
	if err != nil {
		return "", errors.Wrap(unexpectedEOF(err), "vector not terminated by ']'")
	}
	return contents[:len(contents)-1], nil
}
