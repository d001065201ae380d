// SPDX-License-Identifier: MIT
// Package: report
//
// text.go — plain-text dump of candidates.
//
// Layout per candidate:
//
//	0 1 1 2
//	1 0 1 1
//	...
//	2 3 3 2
//	K:	3	D:	2	S:	21
//
// Distance rows first, then the degree row, then max degree, diameter and
// sum of distances separated by tabs. Infinite distances print as "inf".

package report

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/degdiam/distmat"
	"github.com/katalvlaran/degdiam/search"
)

// Text writes every candidate to an io.Writer. Write errors are sticky:
// after the first one nothing else is written and Err returns it.
type Text struct {
	w   *bufio.Writer
	err error
}

// NewText returns a Text writing to w. Call Flush when the search ends.
func NewText(w io.Writer) *Text {
	return &Text{w: bufio.NewWriter(w)}
}

// Report implements search.Reporter.
func (t *Text) Report(c search.Candidate) {
	if t.err != nil {
		return
	}
	t.err = WriteCandidate(t.w, c)
}

// Flush flushes buffered output and returns the first error seen.
func (t *Text) Flush() error {
	if t.err != nil {
		return t.err
	}
	t.err = t.w.Flush()

	return t.err
}

// Err returns the first write error, if any.
func (t *Text) Err() error { return t.err }

// WriteCandidate writes one candidate in the layout described above.
func WriteCandidate(w io.Writer, c search.Candidate) error {
	if err := WriteMatrix(w, c.Graph); err != nil {
		return err
	}
	buf := make([]byte, 0, 64)
	buf = append(buf, "K:\t"...)
	buf = strconv.AppendInt(buf, int64(c.MaxDegree), 10)
	buf = append(buf, "\tD:\t"...)
	buf = strconv.AppendInt(buf, int64(c.Diameter), 10)
	buf = append(buf, "\tS:\t"...)
	buf = strconv.AppendInt(buf, int64(c.SumOfDistances), 10)
	buf = append(buf, '\n')
	_, err := w.Write(buf)

	return err
}

// WriteMatrix writes the distance rows and the degree row of m.
func WriteMatrix(w io.Writer, m *distmat.Matrix) error {
	n := m.N()
	buf := make([]byte, 0, 4*n)
	for i := 0; i < n; i++ {
		buf = buf[:0]
		for j := 0; j < n; j++ {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = appendDistance(buf, m.At(i, j))
		}
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	buf = buf[:0]
	for v := 0; v < n; v++ {
		if v > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(m.Degree(v)), 10)
	}
	buf = append(buf, '\n')
	_, err := w.Write(buf)

	return err
}

func appendDistance(buf []byte, d int) []byte {
	if d == distmat.Infinity {
		return append(buf, "inf"...)
	}

	return strconv.AppendInt(buf, int64(d), 10)
}
