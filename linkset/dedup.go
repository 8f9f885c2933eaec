// Package linkset implements the deduplication and fan-out layer that sits
// around the similarity kernel: many input rows can share the same name, so
// scoring runs once per unique name and results are expanded back out to
// every original row identifier that shared it.
package linkset

import "sort"

// UniqueSet collapses a list of names, preserving each name's original
// positions so a score computed once against the dense-ranked unique name
// can be fanned back out to every row that contributed it (C7).
type UniqueSet struct {
	names     []string // dense-ranked unique names, in ascending lexicographic order
	positions [][]int  // positions[i] = original indices that had names[i]
}

// NewUniqueSet builds the unique name list and position index for names. The
// unique list is lexicographically sorted so its dense rank matches the
// candidate order the kernel's index is built from, and each position list
// is in ascending original-index order.
func NewUniqueSet(names []string) *UniqueSet {
	byName := make(map[string][]int, len(names))
	for i, name := range names {
		byName[name] = append(byName[name], i)
	}

	unique := make([]string, 0, len(byName))
	for name := range byName {
		unique = append(unique, name)
	}
	sort.Strings(unique)

	positions := make([][]int, len(unique))
	for i, name := range unique {
		positions[i] = byName[name]
	}

	return &UniqueSet{names: unique, positions: positions}
}

// Names returns the dense-ranked unique names in ascending lexicographic
// order. The returned slice's index is the unique rank the kernel operates
// over.
func (u *UniqueSet) Names() []string {
	return u.names
}

// Len returns the number of unique names.
func (u *UniqueSet) Len() int {
	return len(u.names)
}

// Positions returns the original indices that shared the name at the given
// unique rank, in ascending order.
func (u *UniqueSet) Positions(uniqueIndex int) []int {
	return u.positions[uniqueIndex]
}

// NameBytes renders the unique names as the []byte slices the kernel's
// BuildIndex and ScoreQuery expect.
func (u *UniqueSet) NameBytes() [][]byte {
	out := make([][]byte, len(u.names))
	for i, name := range u.names {
		out[i] = []byte(name)
	}
	return out
}
