// Package strings provides small string and slice helpers
package strings

import std "strings"

// SplitTrim splits s on sep and trims whitespace around every item
// Blank items are kept so callers can reject them; a blank s yields nil
func SplitTrim(s, sep string) []string {
	if std.TrimSpace(s) == "" {
		return nil
	}
	parts := std.Split(s, sep)
	for i, p := range parts {
		parts[i] = std.TrimSpace(p)
	}
	return parts
}

// Dedupe returns xs without repeated items, keeping the first occurrence order
func Dedupe[T comparable](xs []T) []T {
	if len(xs) < 2 {
		return xs
	}
	seen := make(map[T]struct{}, len(xs))
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}
