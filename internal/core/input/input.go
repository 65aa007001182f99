// Package input acquires the text to classify, either from command line
// arguments or from a reader, and splits it into classification units
package input

import (
	"io"
	"strings"
	"unicode/utf8"

	perr "langsniff/internal/platform/errors"
)

// Source describes where text comes from
type Source struct {
	Inline   *string   // text given on the command line; Stdin is ignored when set
	Stdin    io.Reader // read to end of stream when Inline is nil
	LineMode bool      // one unit per line instead of one unit for everything
}

// Acquire returns the units of text in input order.
// Without line mode there is always exactly one unit, possibly empty
func Acquire(src Source) ([]string, error) {
	var text string
	if src.Inline != nil {
		text = *src.Inline
	} else {
		if src.Stdin == nil {
			return nil, perr.InputReadf("no input stream")
		}
		b, err := io.ReadAll(src.Stdin)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeInputRead, "read input")
		}
		text = string(b)
	}

	if !utf8.ValidString(text) {
		return nil, perr.InputReadf("input is not valid UTF-8")
	}

	if !src.LineMode {
		return []string{text}, nil
	}
	return SplitLines(text), nil
}

// SplitLines splits on "\n", strips one "\r" per line and drops trailing empty lines.
// Interior empty lines are kept so output stays aligned with input
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	return lines[:end]
}
