// Package tsv renders classification results as delimiter separated records.
// Column order is fixed: code, confidence, then the source text in line mode
package tsv

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"langsniff/internal/services/classify/domain"
)

// DefaultDelimiter separates fields unless the caller picks another one
const DefaultDelimiter = "\t"

// Writer buffers records; call Flush when done
type Writer struct {
	w     *bufio.Writer
	delim string
}

// NewWriter wraps w. An empty delim falls back to DefaultDelimiter
func NewWriter(w io.Writer, delim string) *Writer {
	if delim == "" {
		delim = DefaultDelimiter
	}
	return &Writer{w: bufio.NewWriter(w), delim: delim}
}

// Write emits one record terminated by a newline
func (w *Writer) Write(fields ...string) error {
	for i, f := range fields {
		if i > 0 {
			if _, err := w.w.WriteString(w.delim); err != nil {
				return err
			}
		}
		if _, err := w.w.WriteString(f); err != nil {
			return err
		}
	}
	return w.w.WriteByte('\n')
}

// Flush writes any buffered records to the underlying writer
func (w *Writer) Flush() error { return w.w.Flush() }

// Confidence renders v in [0,1] with the shortest exact decimal form and at least one fractional digit
func Confidence(v float64) string {
	switch {
	case v != v || v < 0: // NaN or negative
		v = 0
	case v > 1:
		v = 1
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Mode selects the record layout
type Mode struct {
	LineMode bool // append the unit text as third column
	All      bool // one record per ranked language
	Multi    bool // one record per mixed-language span
}

// Render writes the records of one result. Every unit yields at least one record
// except a multi-language result without spans
func Render(w *Writer, r domain.Result, m Mode) error {
	switch {
	case m.Multi:
		for _, sp := range r.Spans {
			if err := w.Write(
				strconv.Itoa(sp.Start),
				strconv.Itoa(sp.End),
				sp.Code.String(),
				flatten(sp.Text),
			); err != nil {
				return err
			}
		}
		return nil
	case m.All && len(r.Ranking) > 0:
		for _, sc := range r.Ranking {
			if err := record(w, sc.Code.String(), sc.Confidence, r.Unit.Text, m.LineMode); err != nil {
				return err
			}
		}
		return nil
	default:
		return record(w, r.Code.String(), r.Confidence, r.Unit.Text, m.LineMode)
	}
}

func record(w *Writer, code string, conf float64, text string, lineMode bool) error {
	if lineMode {
		return w.Write(code, Confidence(conf), text)
	}
	return w.Write(code, Confidence(conf))
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// flatten keeps a span on one record; line breaks inside a span become spaces
func flatten(s string) string { return lineBreaks.Replace(s) }

// RenderAll writes every result in order and flushes
func RenderAll(w *Writer, rs []domain.Result, m Mode) error {
	for _, r := range rs {
		if err := Render(w, r, m); err != nil {
			return err
		}
	}
	return w.Flush()
}
