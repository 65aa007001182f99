// Package langcode maps ISO-639-1 codes to the languages known by the detection engine.
// The registry is built once per process and never mutated afterwards
package langcode

import (
	"slices"
	"strings"
	"sync"

	perr "langsniff/internal/platform/errors"
	str "langsniff/internal/platform/strings"

	"github.com/pemistahl/lingua-go"
	"golang.org/x/text/language"
)

// Code is a lower-case ISO-639-1 code such as "fr"
type Code string

// String implements fmt.Stringer
func (c Code) String() string { return string(c) }

// Entry is one supported language
type Entry struct {
	Code     Code
	Name     string
	Language lingua.Language
}

// Registry resolves codes to engine languages. Safe for concurrent reads
type Registry struct {
	byCode map[Code]Entry
	byLang map[lingua.Language]Code
	sorted []Entry
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry covering every engine language
func Default() *Registry {
	defaultOnce.Do(func() { defaultReg = New(lingua.AllLanguages()) })
	return defaultReg
}

// New builds a registry over the given engine languages
func New(langs []lingua.Language) *Registry {
	r := &Registry{
		byCode: make(map[Code]Entry, len(langs)),
		byLang: make(map[lingua.Language]Code, len(langs)),
		sorted: make([]Entry, 0, len(langs)),
	}
	for _, l := range langs {
		if l == lingua.Unknown {
			continue
		}
		c := Code(strings.ToLower(l.IsoCode639_1().String()))
		e := Entry{Code: c, Name: l.String(), Language: l}
		r.byCode[c] = e
		r.byLang[l] = c
		r.sorted = append(r.sorted, e)
	}
	slices.SortFunc(r.sorted, func(a, b Entry) int { return strings.Compare(a.Name, b.Name) })
	return r
}

// Entries returns every supported language ordered by English name
func (r *Registry) Entries() []Entry { return slices.Clone(r.sorted) }

// Len reports the number of supported languages
func (r *Registry) Len() int { return len(r.sorted) }

// Lookup finds a code after trimming and case folding, falling back to the
// canonical base of a BCP-47 tag (deprecated aliases like "iw", region tags like "pt-BR")
func (r *Registry) Lookup(raw string) (Entry, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return Entry{}, false
	}
	if e, ok := r.byCode[Code(s)]; ok {
		return e, true
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Entry{}, false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return Entry{}, false
	}
	e, ok := r.byCode[Code(base.String())]
	return e, ok
}

// Language returns the engine language for an already resolved code
func (r *Registry) Language(c Code) (lingua.Language, bool) {
	e, ok := r.byCode[c]
	return e.Language, ok
}

// CodeOf returns the code of an engine language, "" for lingua.Unknown or unsupported languages
func (r *Registry) CodeOf(l lingua.Language) Code { return r.byLang[l] }

// Resolve turns caller supplied codes into registry codes, in order and without duplicates.
// Empty input means no restriction and yields nil. The first unknown code fails the whole call
func (r *Registry) Resolve(codes []string) ([]Code, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	out := make([]Code, 0, len(codes))
	for _, raw := range codes {
		if strings.TrimSpace(raw) == "" {
			return nil, perr.WithField(perr.InvalidArgf("empty language code in list"), "languages")
		}
		e, ok := r.Lookup(raw)
		if !ok {
			return nil, perr.UnknownLanguagef(raw, "unknown language code %q", strings.TrimSpace(raw))
		}
		out = append(out, e.Code)
	}
	return str.Dedupe(out), nil
}

// Languages maps resolved codes to engine languages; unknown codes are skipped
func (r *Registry) Languages(codes []Code) []lingua.Language {
	out := make([]lingua.Language, 0, len(codes))
	for _, c := range codes {
		if l, ok := r.Language(c); ok {
			out = append(out, l)
		}
	}
	return out
}
