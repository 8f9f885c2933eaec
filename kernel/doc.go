/*
Package kernel implements the bit-parallel Jaro-Winkler similarity kernel:
a length-parameterised bitmask representation of each string, an inverted
letter-to-candidates index, and a per-query scoring loop that updates a
compact per-candidate scorecard using only bitwise operations.

The kernel trades exactness for speed: it substitutes greedy
earliest-admissible position selection for full bipartite matching, and a
running "positions ever matched" mask for a strict previous-position index
when detecting transpositions. Both substitutions are bounded — see the
property tests in property_test.go and the reference comparison in
reference_test.go.

# Alphabet

Strings are restricted to a 27-symbol alphabet: space and lowercase a-z.
Any other byte is a domain error. Strings must be 1 to 16 bytes long; the
16-bit position masks have no room for anything wider.

# Usage

	idx, err := kernel.BuildIndex(candidates)
	tmpl := kernel.NewTemplate(idx)
	matches, err := kernel.ScoreQuery(idx, tmpl, query, minScore)

BuildIndex and NewTemplate are run once per candidate set; ScoreQuery is run
once per query string and is safe to call concurrently from multiple
goroutines sharing the same idx and tmpl.
*/
package kernel
