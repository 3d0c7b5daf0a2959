package statichuffman

import (
	"fmt"
	"strconv"
)

// Code represents a sequence of bits, written as the characters '0' and '1'
// with the first bit first.  '0' selects the left child of a tree node and
// '1' the right child.
//
// Codes are kept as text because the Encoder writes them out verbatim, and
// because a skewed tree over 128 symbols can produce codes of up to 127 bits.
type Code string

// Size returns the number of bits in the code.
func (hc Code) Size() int {
	return len(hc)
}

// Bit returns the value of the i'th bit, counting from the first.
func (hc Code) Bit(i int) bool {
	return hc[i] == '1'
}

// HasPrefix returns true iff prefix is a prefix of this code.
func (hc Code) HasPrefix(prefix Code) bool {
	return len(prefix) <= len(hc) && hc[:len(prefix)] == prefix
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")
