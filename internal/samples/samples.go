// Package samples reads and writes real-valued sample streams as text.
//
// A stream is a sequence of decimal numbers separated by whitespace or
// commas. Anything after a '#' on a line is a comment.
package samples

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Reader decodes samples one at a time. Lines may be of any length.
type Reader struct {
	sc      *bufio.Scanner
	newline int
	comment bool
	line    int
}

// NewReader returns a Reader decoding text samples from r.
func NewReader(r io.Reader) *Reader {
	sr := &Reader{}
	sr.sc = bufio.NewScanner(r)
	sr.sc.Split(sr.split)
	return sr
}

// Next returns the next sample. It returns io.EOF after the last one.
func (r *Reader) Next() (float64, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return 0, fmt.Errorf("samples: line %d: %w", r.newline+1, err)
		}
		return 0, io.EOF
	}

	tok := r.sc.Text()
	x, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("samples: line %d: invalid sample %q", r.line, tok)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("samples: line %d: non-finite sample %q", r.line, tok)
	}
	return x, nil
}

// Line returns the line of the most recently read sample.
func (r *Reader) Line() int { return r.line }

// split is a bufio.SplitFunc yielding one number per token. Separators and
// comments are consumed without being buffered as a whole line.
func (r *Reader) split(data []byte, atEOF bool) (int, []byte, error) {
	i := 0
	for i < len(data) {
		c := data[i]
		switch {
		case c == '\n':
			r.newline++
			r.comment = false
			i++
		case r.comment || isSeparator(c):
			i++
		case c == '#':
			r.comment = true
			i++
		default:
			j := i
			for j < len(data) && !isDelimiter(data[j]) {
				j++
			}
			if j == len(data) && !atEOF {
				return i, nil, nil
			}
			r.line = r.newline + 1
			return j, data[i:j], nil
		}
	}
	return i, nil, nil
}

func isSeparator(c byte) bool {
	return c == ',' || c == ' ' || c == '\t' || c == '\r'
}

func isDelimiter(c byte) bool {
	return isSeparator(c) || c == '\n' || c == '#'
}

// ReadAll decodes every sample in r.
func ReadAll(r io.Reader) ([]float64, error) {
	sr := NewReader(r)

	var out []float64
	for {
		x, err := sr.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
}

// Write encodes samples to w, one per line, with the shortest
// representation that round-trips.
func Write(w io.Writer, samples []float64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, x := range samples {
		buf = strconv.AppendFloat(buf[:0], x, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("samples: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("samples: flush: %w", err)
	}
	return nil
}
