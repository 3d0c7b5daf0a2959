package statichuffman

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// ProbabilityTable holds the estimated probability of occurrence for each
// Symbol in the alphabet, indexed by Symbol.  Entries may be exactly zero for
// symbols that never occurred in the sample.
type ProbabilityTable []float64

// ParseProbabilityTable reads a table of exactly numSymbols decimal values,
// separated by whitespace (normally one per line), in Symbol order.
func ParseProbabilityTable(r io.Reader, numSymbols int) (ProbabilityTable, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	probs := make(ProbabilityTable, 0, numSymbols)
	var count int
	for sc.Scan() {
		count++
		if count > numSymbols {
			continue
		}
		p, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: probability table entry %d: %v", ErrInputShape, count-1, err)
		}
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return nil, fmt.Errorf("%w: probability table entry %d: %q is not a probability", ErrInputShape, count-1, sc.Text())
		}
		probs = append(probs, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("statichuffman: reading probability table: %w", err)
	}
	if count != numSymbols {
		return nil, &TableSizeError{Got: count, Want: numSymbols}
	}
	return probs, nil
}

// WriteTo writes the table in the format read by ParseProbabilityTable: one
// value per line with 10 fractional digits, and no newline after the last
// value.
func (probs ProbabilityTable) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for i, p := range probs {
		if i != 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(strconv.FormatFloat(p, 'f', 10, 64))
	}
	return buf.WriteTo(w)
}

// Sum returns the total probability mass of the table.
func (probs ProbabilityTable) Sum() float64 {
	var sum float64
	for _, p := range probs {
		sum += p
	}
	return sum
}

// Estimate counts the occurrences of each byte in a sample and returns the
// relative frequency of each Symbol.  Every byte of the sample must lie in
// [0, numSymbols).  An empty sample yields a table of zeros.
func Estimate(r io.Reader, numSymbols int) (ProbabilityTable, error) {
	counts := make([]uint64, numSymbols)
	var total uint64

	br := bufio.NewReader(r)
	var offset int64
	for {
		ch, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("statichuffman: reading sample at offset %d: %w", offset, err)
		}
		if int(ch) >= numSymbols {
			return nil, &SymbolRangeError{Value: ch, Offset: offset, NumSymbols: numSymbols}
		}
		counts[ch]++
		total++
		offset++
	}

	probs := make(ProbabilityTable, numSymbols)
	if total == 0 {
		return probs, nil
	}
	for symbol, n := range counts {
		probs[symbol] = float64(n) / float64(total)
	}
	return probs, nil
}
