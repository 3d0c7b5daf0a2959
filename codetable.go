package statichuffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol, used as an index, to its Code.
type CodeTable []Code

// DeriveCodeTable walks the tree from the root, appending '0' for each left
// branch and '1' for each right branch, and records the accumulated path at
// every leaf as the Code for that leaf's Symbol.
//
// Every symbol of a tree with more than one leaf receives a non-empty Code,
// whatever its probability was.
//
func DeriveCodeTable(t *Tree) CodeTable {
	table := make(CodeTable, t.numSymbols)
	seen := make([]bool, t.numSymbols)
	walk(t.root, func(n *Node, path []byte) {
		if !n.IsLeaf() {
			return
		}
		symbol := n.symbol
		assert.Assertf(symbol >= 0 && int(symbol) < len(table), "leaf symbol %d outside [0, %d)", symbol, len(table))
		assert.Assertf(!seen[symbol], "symbol %d appears on two leaves", symbol)
		seen[symbol] = true
		table[symbol] = Code(path)
	})
	return table
}

// Encode returns the Code for a Symbol.
func (table CodeTable) Encode(symbol Symbol) Code {
	return table[symbol]
}

// MinSize is the bit length of the shortest code.
func (table CodeTable) MinSize() int {
	var minSize int
	for index, hc := range table {
		if index == 0 || hc.Size() < minSize {
			minSize = hc.Size()
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest code.
func (table CodeTable) MaxSize() int {
	var maxSize int
	for _, hc := range table {
		if hc.Size() > maxSize {
			maxSize = hc.Size()
		}
	}
	return maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet.
func (table CodeTable) SizeBySymbol() []int {
	out := make([]int, len(table))
	for symbol, hc := range table {
		out[symbol] = hc.Size()
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (table CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", table.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", table.MaxSize())
	for symbol, hc := range table {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DumpPrintable writes the codes of the printable ASCII characters (32 to
// 126) present in the table, one "  c : code" line each.
func (table CodeTable) DumpPrintable(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for symbol := ' '; symbol <= '~' && int(symbol) < len(table); symbol++ {
		fmt.Fprintf(&buf, "  %c : %s\n", symbol, string(table[symbol]))
	}
	return buf.WriteTo(w)
}

// WriteTo writes one code per line in Symbol order, with no newline after
// the last code.
func (table CodeTable) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for symbol, hc := range table {
		if symbol != 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(string(hc))
	}
	return buf.WriteTo(w)
}
