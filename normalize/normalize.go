// Package normalize folds raw name strings before they reach the kernel:
// trimmed, lowercased, accent-stripped, and whitespace-collapsed.
//
// Adapted from the accent-stripping pipeline in foundry/similarity's
// normalize.go: trim, case-fold, NFD-decompose, drop combining marks,
// recompose to NFC. Fold does not itself enforce the kernel's restricted
// alphabet (lowercase a-z and interior spaces) — punctuation, digits, and
// other bytes pass through unchanged. kernel.BuildIndex and
// kernel.BuildQueryMasks are the sole alphabet gate, rejecting any
// remaining out-of-alphabet byte as a domain error (spec.md §7).
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Fold trims, lowercases, strips diacritics, and collapses internal
// whitespace to single spaces. It does not filter bytes outside the kernel
// alphabet; BuildIndex and BuildQueryMasks are the authority on what counts
// as a domain error.
func Fold(value string) string {
	folded := strings.ToLower(strings.TrimSpace(value))
	folded = stripAccents(folded)
	return collapseWhitespace(folded)
}

func stripAccents(value string) string {
	decomposed := norm.NFD.String(value)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if !unicode.Is(unicode.Mn, r) {
			b.WriteRune(r)
		}
	}
	return norm.NFC.String(b.String())
}

func collapseWhitespace(value string) string {
	fields := strings.Fields(value)
	return strings.Join(fields, " ")
}
