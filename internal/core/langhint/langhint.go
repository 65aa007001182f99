// Package langhint provides cheap script statistics used before the engine runs
package langhint

import (
	"unicode"
)

// Profile summarizes the letters of a text
type Profile struct {
	Script  string // predominant script, "" when the text has no letters
	Letters int    // number of letter runes
}

// scripts are checked in order; specific scripts win ties against Latin
var scripts = []struct {
	name  string
	table *unicode.RangeTable
}{
	{"Hiragana", unicode.Hiragana},
	{"Katakana", unicode.Katakana},
	{"Hangul", unicode.Hangul},
	{"Han", unicode.Han},
	{"Arabic", unicode.Arabic},
	{"Hebrew", unicode.Hebrew},
	{"Thai", unicode.Thai},
	{"Greek", unicode.Greek},
	{"Cyrillic", unicode.Cyrillic},
	{"Georgian", unicode.Georgian},
	{"Armenian", unicode.Armenian},
	{"Devanagari", unicode.Devanagari},
	{"Bengali", unicode.Bengali},
	{"Gujarati", unicode.Gujarati},
	{"Gurmukhi", unicode.Gurmukhi},
	{"Tamil", unicode.Tamil},
	{"Telugu", unicode.Telugu},
	{"Latin", unicode.Latin},
}

// Analyze counts letters per script and returns the predominant one
func Analyze(s string) Profile {
	counts := make([]int, len(scripts))
	var p Profile

	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		p.Letters++
		for i, sc := range scripts {
			if unicode.Is(sc.table, r) {
				counts[i]++
				break
			}
		}
	}

	best := -1
	for i, n := range counts {
		if n > 0 && (best < 0 || n > counts[best]) {
			best = i
		}
	}
	if best >= 0 {
		p.Script = scripts[best].name
	}
	return p
}

// LetterCount returns the number of letter runes in s, ignoring whitespace, punctuation and numerals
func LetterCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

// LongEnough reports whether s has at least minLetters letters; minLetters <= 0 always passes
func LongEnough(s string, minLetters int) bool {
	if minLetters <= 0 {
		return true
	}
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
			if n >= minLetters {
				return true
			}
		}
	}
	return false
}
