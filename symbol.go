package statichuffman

// Symbol represents a symbol in the code's alphabet.  Negative symbols are
// not valid.
type Symbol int32

// ASCIIAlphabetSize is the number of symbols in the 7-bit ASCII alphabet.
const ASCIIAlphabetSize = 128

// MinAlphabetSize and MaxAlphabetSize bound the alphabet of a Tree.  Every
// symbol needs a non-empty code, which takes at least two symbols, and every
// decoded symbol must fit in a byte.
const (
	MinAlphabetSize = 2
	MaxAlphabetSize = 256
)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)
