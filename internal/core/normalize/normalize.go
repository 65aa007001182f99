// Package normalize prepares text for the detection engine.
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFC composition so decomposed accents score like precomposed ones
// 3 Control characters become spaces
// 4 Format characters (ZWJ ZWNJ FEFF ...) are removed
// 5 Width fold fullwidth Latin to ASCII
// 6 Collapse whitespace to single spaces and trim
// Letters and their diacritics are never removed, they carry the signal
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is safe for concurrent use; transformer chains are pooled
type Normalizer struct{}

var chainPool = sync.Pool{
	New: func() any {
		// order mirrors the documented pipeline
		return transform.Chain(
			norm.NFC,
			runes.Map(controlToSpace),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the engine-facing form of s
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// the chain never fails on valid UTF-8; keep the repaired input if it does
		ns = s
	}

	return collapseSpaces(ns)
}

func controlToSpace(r rune) rune {
	if unicode.IsControl(r) {
		return ' '
	}
	return r
}

// collapseSpaces converts whitespace runs to a single ASCII space and trims the edges
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
