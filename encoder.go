package statichuffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

const chunkSize = 32 << 10

// Encoder translates raw bytes into the text form of their Huffman codes.
// Each input byte is replaced by its Code, written as '0' and '1'
// characters, with nothing between consecutive codes.
//
// An Encoder is not safe for concurrent use, but any number of Encoders may
// share one CodeTable.
type Encoder struct {
	w      io.Writer
	table  CodeTable
	offset int64
	buf    []byte
}

// NewEncoder returns an Encoder that writes the encoding of everything
// written to it to w.
func NewEncoder(w io.Writer, table CodeTable) *Encoder {
	return &Encoder{w: w, table: table}
}

// Write encodes p.  If p holds a byte outside the table's alphabet, the
// bytes before it are encoded and a *SymbolRangeError is returned along with
// the number of bytes consumed.  A byte whose code is empty, which only a
// hand-built table can contain, is rejected the same way with an
// *EmptyCodeError.
func (e *Encoder) Write(p []byte) (int, error) {
	e.buf = e.buf[:0]
	for index, ch := range p {
		offset := e.offset + int64(index)
		if int(ch) >= len(e.table) {
			return e.fail(index, &SymbolRangeError{Value: ch, Offset: offset, NumSymbols: len(e.table)})
		}
		hc := e.table[ch]
		if hc.Size() == 0 {
			return e.fail(index, &EmptyCodeError{Symbol: Symbol(ch), Offset: offset})
		}
		e.buf = append(e.buf, hc...)
	}
	if err := e.flush(); err != nil {
		return 0, err
	}
	e.offset += int64(len(p))
	return len(p), nil
}

// ReadFrom encodes everything read from r until EOF.
func (e *Encoder) ReadFrom(r io.Reader) (int64, error) {
	chunk := make([]byte, chunkSize)
	var total int64
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			written, werr := e.Write(chunk[:n])
			total += int64(written)
			if werr != nil {
				return total, werr
			}
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, fmt.Errorf("statichuffman: reading input at offset %d: %w", e.offset, err)
		}
	}
}

// Offset returns the number of input bytes encoded so far.
func (e *Encoder) Offset() int64 {
	return e.offset
}

func (e *Encoder) fail(consumed int, cause error) (int, error) {
	if err := e.flush(); err != nil {
		return 0, err
	}
	e.offset += int64(consumed)
	return consumed, cause
}

func (e *Encoder) flush() error {
	if len(e.buf) == 0 {
		return nil
	}
	if _, err := e.w.Write(e.buf); err != nil {
		return fmt.Errorf("statichuffman: writing encoded output: %w", err)
	}
	return nil
}

var (
	_ io.Writer     = (*Encoder)(nil)
	_ io.ReaderFrom = (*Encoder)(nil)
)

// Encode returns the text encoding of src.
func Encode(table CodeTable, src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := NewEncoder(&buf, table).Write(src); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
