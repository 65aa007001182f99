// Package domain defines the core types and interfaces for the classify service
package domain

import "langsniff/internal/core/langcode"

// Config is built once from the command line and never mutated
type Config struct {
	Candidates []langcode.Code // empty means every language the engine knows
	LineMode   bool
	InlineText *string // when set, stdin is never read
}

// HasInline reports whether text was supplied on the command line
func (c Config) HasInline() bool { return c.InlineText != nil }

// Unit is one piece of text to classify; Index is its position in the input
type Unit struct {
	Index int
	Text  string
}

// Score is one (language, confidence) pair
type Score struct {
	Code       langcode.Code
	Confidence float64
}

// Span is a byte range [Start,End) of a unit attributed to one language
type Span struct {
	Start int
	End   int
	Code  langcode.Code
	Text  string // the unit text between Start and End
}

// Result is the classification of one unit.
// Code is empty and Confidence zero when no language cleared the floor
type Result struct {
	Unit       Unit
	Code       langcode.Code
	Confidence float64
	Ranking    []Score // full distribution, only when requested
	Spans      []Span  // mixed-language spans, only when requested
}

// Undetermined reports whether no language was selected
func (r Result) Undetermined() bool { return r.Code == "" }

// NewUnits tags texts with their input position
func NewUnits(texts []string) []Unit {
	out := make([]Unit, len(texts))
	for i, t := range texts {
		out[i] = Unit{Index: i, Text: t}
	}
	return out
}
