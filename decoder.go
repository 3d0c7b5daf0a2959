package statichuffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Decoder translates the text form of a Huffman-coded stream back into raw
// bytes by walking a Tree.
//
// A cursor starts at the root.  Each '0' moves it to the left child and each
// '1' to the right child.  Reaching a leaf emits the leaf's Symbol and puts
// the cursor back on the root in the same step, so the cursor never rests on
// a leaf.
//
// A Decoder is not safe for concurrent use, but any number of Decoders may
// share one Tree.
type Decoder struct {
	w      io.Writer
	tree   *Tree
	cursor *Node
	depth  int
	offset int64
	buf    []byte
}

// NewDecoder returns a Decoder that writes the decoding of everything
// written to it to w.
func NewDecoder(w io.Writer, tree *Tree) *Decoder {
	return &Decoder{w: w, tree: tree, cursor: tree.root}
}

// Write decodes p.  Any character other than '0' or '1' stops decoding with
// an *InvalidBitError; the symbols completed before it are still written.
func (d *Decoder) Write(p []byte) (int, error) {
	d.buf = d.buf[:0]
	root := d.tree.root
	for index, ch := range p {
		var next *Node
		switch ch {
		case '0':
			next = d.cursor.left
		case '1':
			next = d.cursor.right
		}
		if next == nil {
			bitErr := &InvalidBitError{Value: ch, Offset: d.offset + int64(index)}
			if err := d.flush(); err != nil {
				return 0, err
			}
			d.offset += int64(index)
			return index, bitErr
		}

		if next.IsLeaf() {
			d.buf = append(d.buf, byte(next.symbol))
			d.cursor = root
			d.depth = 0
		} else {
			d.cursor = next
			d.depth++
		}
	}
	if err := d.flush(); err != nil {
		return 0, err
	}
	d.offset += int64(len(p))
	return len(p), nil
}

// Close reports a *TruncatedError if the input so far ends in the middle of
// a code.  It does not close the underlying writer.
func (d *Decoder) Close() error {
	if d.cursor != d.tree.root {
		return &TruncatedError{Offset: d.offset, Depth: d.depth}
	}
	return nil
}

// ReadFrom decodes everything read from r until EOF, then checks that the
// input ended on a symbol boundary as Close does.
func (d *Decoder) ReadFrom(r io.Reader) (int64, error) {
	chunk := make([]byte, chunkSize)
	var total int64
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			written, werr := d.Write(chunk[:n])
			total += int64(written)
			if werr != nil {
				return total, werr
			}
		}
		if errors.Is(err, io.EOF) {
			return total, d.Close()
		}
		if err != nil {
			return total, fmt.Errorf("statichuffman: reading encoded input at offset %d: %w", d.offset, err)
		}
	}
}

// Offset returns the number of bit characters consumed so far.
func (d *Decoder) Offset() int64 {
	return d.offset
}

func (d *Decoder) flush() error {
	if len(d.buf) == 0 {
		return nil
	}
	if _, err := d.w.Write(d.buf); err != nil {
		return fmt.Errorf("statichuffman: writing decoded output: %w", err)
	}
	return nil
}

var (
	_ io.WriteCloser = (*Decoder)(nil)
	_ io.ReaderFrom  = (*Decoder)(nil)
)

// Decode returns the bytes encoded by bits.  bits must end on a symbol
// boundary.
func Decode(tree *Tree, bits []byte) ([]byte, error) {
	var buf bytes.Buffer
	d := NewDecoder(&buf, tree)
	if _, err := d.Write(bits); err != nil {
		return nil, err
	}
	if err := d.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
