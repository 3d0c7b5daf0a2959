package statichuffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman Tree.  A Node is a leaf iff it has no
// children.  Internal nodes always have exactly two children, which they own
// exclusively.
type Node struct {
	weight float64
	symbol Symbol
	left   *Node
	right  *Node
}

// Weight returns the total probability mass of the subtree rooted here.
func (n *Node) Weight() float64 {
	return n.weight
}

// Symbol returns the leaf's Symbol, or InvalidSymbol for internal nodes.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Left returns the child reached by a '0' bit, or nil for leaves.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the child reached by a '1' bit, or nil for leaves.
func (n *Node) Right() *Node {
	return n.right
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Tree is a Huffman code tree over an alphabet of NumSymbols() symbols.
// A Tree is never modified after BuildTree returns it, so it may be shared
// freely between goroutines.
type Tree struct {
	root       *Node
	numSymbols int
}

// BuildTree builds the Huffman tree for the given probability table, which
// must have exactly numSymbols entries.  numSymbols must lie in
// [MinAlphabetSize, MaxAlphabetSize].
//
// Each symbol starts out as its own single-leaf tree, held in a slot indexed
// by Symbol.  While more than one tree remains, the two lightest trees are
// merged: the lighter one becomes the left child of a new internal node,
// which takes over its slot, and the other becomes the right child, its slot
// being vacated.  Ties are broken by slot order; see selectTwoLightest.
//
// The tie-break is part of the contract: an encoder and a decoder must build
// bit-for-bit identical trees from the same table.
//
func BuildTree(probs ProbabilityTable, numSymbols int) (*Tree, error) {
	assert.Assertf(numSymbols >= MinAlphabetSize, "numSymbols %d < MinAlphabetSize %d", numSymbols, MinAlphabetSize)
	assert.Assertf(numSymbols <= MaxAlphabetSize, "numSymbols %d > MaxAlphabetSize %d", numSymbols, MaxAlphabetSize)

	if len(probs) != numSymbols {
		return nil, &TableSizeError{Got: len(probs), Want: numSymbols}
	}

	slots := make([]*Node, numSymbols)
	for symbol := Symbol(0); symbol < Symbol(numSymbols); symbol++ {
		slots[symbol] = &Node{weight: probs[symbol], symbol: symbol}
	}

	var last int
	for remaining := numSymbols; remaining > 1; remaining-- {
		lowest, second := selectTwoLightest(slots)
		assert.Assertf(lowest >= 0 && second >= 0, "only %d live slots, expected %d", countLive(slots), remaining)

		first, next := slots[lowest], slots[second]
		slots[lowest] = &Node{
			weight: first.weight + next.weight,
			symbol: InvalidSymbol,
			left:   first,
			right:  next,
		}
		slots[second] = nil
		last = lowest
	}

	return &Tree{root: slots[last], numSymbols: numSymbols}, nil
}

// selectTwoLightest returns the slot indices of the lightest and second
// lightest live trees.
//
// This is a single scan in slot order, comparing with strict less-than only.
// The first live slot seeds lowest.  A later slot displaces lowest only if it
// is strictly lighter, and displaces second only if it is strictly lighter
// than second; equal weights therefore keep the earlier slot.
//
func selectTwoLightest(slots []*Node) (lowest int, second int) {
	lowest, second = -1, -1
	for index, n := range slots {
		if n == nil {
			continue
		}
		switch {
		case lowest < 0:
			lowest = index
		case n.weight < slots[lowest].weight:
			second = lowest
			lowest = index
		case second < 0 || n.weight < slots[second].weight:
			second = index
		}
	}
	return lowest, second
}

func countLive(slots []*Node) int {
	var count int
	for _, n := range slots {
		if n != nil {
			count++
		}
	}
	return count
}

// Root returns the root of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

// NumSymbols returns the size of the tree's alphabet.
func (t *Tree) NumSymbols() int {
	return t.numSymbols
}

// Depth returns the length in bits of the longest code in the tree.
func (t *Tree) Depth() int {
	var depth int
	walk(t.root, func(n *Node, path []byte) {
		if len(path) > depth {
			depth = len(path)
		}
	})
	return depth
}

// String returns a brief description of this Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols, max code length %d bits)", t.numSymbols, t.Depth())
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line in depth-first order, indented by depth.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	walk(t.root, func(n *Node, path []byte) {
		buf.WriteByte('\t')
		for range path {
			buf.WriteString("  ")
		}
		weight := strconv.FormatFloat(n.weight, 'g', -1, 64)
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "%q leaf %d weight %s\n", path, n.symbol, weight)
		} else {
			fmt.Fprintf(&buf, "%q node weight %s\n", path, weight)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*Tree)(nil)

// walk visits every node of the tree rooted at root in depth-first order,
// left before right, passing the path from root to the node as a sequence
// of '0' and '1' characters.  The path slice is reused between calls.
//
// The walk keeps an explicit stack of internal nodes.  stackItem.x records
// progress through each node:
//   x=0 → left child not yet visited
//   x=1 → left child done, right child not yet visited
//   x=2 → both children done
//
func walk(root *Node, visit func(n *Node, path []byte)) {
	type stackItem struct {
		node *Node
		x    byte
	}

	path := make([]byte, 0, 32)
	visit(root, path)
	if root.IsLeaf() {
		return
	}

	stack := make([]stackItem, 0, 32)
	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++

		var child *Node
		switch x {
		case 0:
			child = top.node.left
			path = append(path, '0')
		case 1:
			child = top.node.right
			path = append(path, '1')
		default:
			stack = stack[:len(stack)-1]
			if len(stack) != 0 {
				path = path[:len(path)-1]
			}
			continue
		}

		visit(child, path)
		if child.IsLeaf() {
			path = path[:len(path)-1]
		} else {
			stack = append(stack, stackItem{node: child})
		}
	}
}
