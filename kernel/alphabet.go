package kernel

// AlphabetSize is the number of symbols the kernel understands: space plus
// a..z, folded onto a dense 0..26 index.
const AlphabetSize = 27

// MaxLength is the widest string the 16-bit position masks can represent.
const MaxLength = 16

// baseOffset is the byte one below 'a' — the position space folds to, per
// the reference implementation's convention.
const baseOffset = 'a' - 1

var symbolLUT [256]int8

func init() {
	for i := range symbolLUT {
		symbolLUT[i] = -1
	}
	symbolLUT[' '] = 0
	for c := byte('a'); c <= 'z'; c++ {
		symbolLUT[c] = int8(c - baseOffset)
	}
}

// SymbolIndex folds an ASCII byte onto the alphabet index 0..26 (0 = space,
// 1..26 = a..z). It returns -1 for any byte outside that set; callers must
// treat that as a domain error (kernel.ErrDomain), not recover silently.
func SymbolIndex(b byte) int {
	return int(symbolLUT[b])
}
