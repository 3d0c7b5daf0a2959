package statichuffman

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func halfHalfTable() ProbabilityTable {
	probs := make(ProbabilityTable, ASCIIAlphabetSize)
	probs[0] = 0.5
	probs[1] = 0.5
	return probs
}

func uniformTable(numSymbols int) ProbabilityTable {
	probs := make(ProbabilityTable, numSymbols)
	for i := range probs {
		probs[i] = 1.0 / float64(numSymbols)
	}
	return probs
}

func mustBuild(t *testing.T, probs ProbabilityTable, numSymbols int) *Tree {
	t.Helper()
	tree, err := BuildTree(probs, numSymbols)
	require.NoError(t, err)
	return tree
}

func TestBuildTree_TableSize(t *testing.T) {
	for _, n := range []int{0, 127, 129} {
		_, err := BuildTree(make(ProbabilityTable, n), ASCIIAlphabetSize)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInputShape), "error %v should match ErrInputShape", err)

		var sizeErr *TableSizeError
		require.True(t, errors.As(err, &sizeErr))
		assert.Equal(t, n, sizeErr.Got)
		assert.Equal(t, ASCIIAlphabetSize, sizeErr.Want)
	}
}

func TestBuildTree_BadAlphabetPanics(t *testing.T) {
	for _, n := range []int{0, 1, MaxAlphabetSize + 1} {
		probs := make(ProbabilityTable, n)
		assert.Panics(t, func() { _, _ = BuildTree(probs, n) }, "numSymbols %d", n)
	}
	assert.NotPanics(t, func() { _, _ = BuildTree(make(ProbabilityTable, MaxAlphabetSize), MaxAlphabetSize) })
}

func TestBuildTree_AllZeroChain(t *testing.T) {
	tree := mustBuild(t, make(ProbabilityTable, ASCIIAlphabetSize), ASCIIAlphabetSize)
	table := DeriveCodeTable(tree)

	assert.Equal(t, Code(strings.Repeat("0", 127)), table[0])
	for symbol := 1; symbol < ASCIIAlphabetSize; symbol++ {
		expect := Code(strings.Repeat("0", 127-symbol) + "1")
		assert.Equal(t, expect, table[symbol], "symbol %d", symbol)
	}
	assert.Equal(t, 127, tree.Depth())
}

func TestBuildTree_Uniform(t *testing.T) {
	a := mustBuild(t, uniformTable(ASCIIAlphabetSize), ASCIIAlphabetSize)
	b := mustBuild(t, uniformTable(ASCIIAlphabetSize), ASCIIAlphabetSize)

	var dumpA, dumpB strings.Builder
	_, _ = a.Dump(&dumpA)
	_, _ = b.Dump(&dumpB)
	assert.Equal(t, dumpA.String(), dumpB.String())

	tableA, tableB := DeriveCodeTable(a), DeriveCodeTable(b)
	assert.Equal(t, tableA, tableB)
	for symbol, hc := range tableA {
		assert.Equal(t, 7, hc.Size(), "symbol %d", symbol)
	}
}

func TestBuildTree_HalfHalf(t *testing.T) {
	tree := mustBuild(t, halfHalfTable(), ASCIIAlphabetSize)
	table := DeriveCodeTable(tree)

	assert.Equal(t, Code("0"), table[1])
	assert.Equal(t, Code("11"), table[0])
	for symbol := 2; symbol < ASCIIAlphabetSize; symbol++ {
		assert.True(t, table[symbol].HasPrefix("10"), "symbol %d has code %s", symbol, table[symbol])
	}
}

func TestBuildTree_TieBreak(t *testing.T) {
	tree := mustBuild(t, ProbabilityTable{5, 9, 12, 13, 16, 45}, 6)
	table := DeriveCodeTable(tree)
	expect := CodeTable{"1100", "1101", "100", "101", "111", "0"}
	assert.Equal(t, expect, table)
	assert.Equal(t, []int{4, 4, 3, 3, 3, 1}, table.SizeBySymbol())
}

func TestBuildTree_TieWithLowestTakesSecond(t *testing.T) {
	// Slot 2 weighs the same as slot 0, which holds lowest, and is lighter
	// than slot 1, so it replaces slot 1 as second.
	tree := mustBuild(t, ProbabilityTable{0, 0.5, 0}, 3)

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\t\"\" node weight 0.5\n",
		"\t  \"0\" node weight 0\n",
		"\t    \"00\" leaf 0 weight 0\n",
		"\t    \"01\" leaf 2 weight 0\n",
		"\t  \"1\" leaf 1 weight 0.5\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	assert.Equal(t, expectDump, buf.String())
	assert.Equal(t, CodeTable{"00", "1", "01"}, DeriveCodeTable(tree))
}

func TestBuildTree_Structure(t *testing.T) {
	tables := map[string]ProbabilityTable{
		"zero":    make(ProbabilityTable, ASCIIAlphabetSize),
		"uniform": uniformTable(ASCIIAlphabetSize),
		"half":    halfHalfTable(),
		"skewed":  skewedTable(),
	}
	for name, probs := range tables {
		t.Run(name, func(t *testing.T) {
			tree := mustBuild(t, probs, ASCIIAlphabetSize)
			assert.InDelta(t, probs.Sum(), tree.Root().Weight(), 1e-9)

			seen := make(map[Symbol]bool)
			var check func(n *Node)
			check = func(n *Node) {
				if n.IsLeaf() {
					assert.False(t, seen[n.Symbol()], "symbol %d appears twice", n.Symbol())
					seen[n.Symbol()] = true
					assert.Equal(t, probs[n.Symbol()], n.Weight())
					return
				}
				require.NotNil(t, n.Left())
				require.NotNil(t, n.Right())
				assert.Equal(t, InvalidSymbol, n.Symbol())
				assert.InDelta(t, n.Left().Weight()+n.Right().Weight(), n.Weight(), 1e-12)
				check(n.Left())
				check(n.Right())
			}
			check(tree.Root())
			assert.Len(t, seen, ASCIIAlphabetSize)
		})
	}
}

func TestTree_Dump(t *testing.T) {
	tree := mustBuild(t, ProbabilityTable{0.25, 0.25, 0.5}, 3)

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\t\"\" node weight 1\n",
		"\t  \"0\" node weight 0.5\n",
		"\t    \"00\" leaf 0 weight 0.25\n",
		"\t    \"01\" leaf 1 weight 0.25\n",
		"\t  \"1\" leaf 2 weight 0.5\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	assert.Equal(t, expectDump, buf.String())
	assert.Equal(t, "(Huffman tree with 3 symbols, max code length 2 bits)", tree.String())
}

func TestSelectTwoLightest(t *testing.T) {
	leaf := func(w float64) *Node { return &Node{weight: w} }

	type testRow struct {
		name   string
		slots  []*Node
		lowest int
		second int
	}

	testData := [...]testRow{
		{"ordered", []*Node{leaf(1), leaf(2), leaf(3)}, 0, 1},
		{"reversed", []*Node{leaf(3), leaf(2), leaf(1)}, 2, 1},
		{"ties keep earliest", []*Node{leaf(0), leaf(0), leaf(0)}, 0, 1},
		{"later tie only displaces second", []*Node{leaf(2), leaf(5), leaf(2)}, 0, 2},
		{"tie with lowest displaces heavier second", []*Node{leaf(0), leaf(0.5), leaf(0)}, 0, 2},
		{"skips vacated slots", []*Node{nil, leaf(4), nil, leaf(1), leaf(4)}, 3, 1},
		{"one live slot", []*Node{nil, leaf(1)}, 1, -1},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			lowest, second := selectTwoLightest(row.slots)
			assert.Equal(t, row.lowest, lowest)
			assert.Equal(t, row.second, second)
		})
	}
}

func skewedTable() ProbabilityTable {
	probs := make(ProbabilityTable, ASCIIAlphabetSize)
	var total float64
	for i := 'a'; i <= 'z'; i++ {
		probs[i] = float64(i - 'a' + 1)
		total += probs[i]
	}
	probs[' '] = 40
	total += 40
	for i := range probs {
		probs[i] /= total
	}
	return probs
}
