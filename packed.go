package statichuffman

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Pack converts a text bit stream, as produced by Encoder, into packed
// binary: each '0' or '1' becomes one bit, most significant bit first, and
// the final byte is padded with zero bits.  One trailer byte follows,
// holding the number of padding bits (0 to 7).
//
// Pack returns the number of bytes written to dst.
func Pack(dst io.Writer, src io.Reader) (int64, error) {
	br := bufio.NewReader(src)
	bw := bitio.NewWriter(dst)

	var numBits int64
	for {
		ch, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("statichuffman: reading bit text at offset %d: %w", numBits, err)
		}

		var bit bool
		switch ch {
		case '0':
		case '1':
			bit = true
		default:
			return 0, &InvalidBitError{Value: ch, Offset: numBits}
		}
		if err := bw.WriteBool(bit); err != nil {
			return 0, fmt.Errorf("statichuffman: writing packed output: %w", err)
		}
		numBits++
	}

	pad, err := bw.Align()
	if err != nil {
		return 0, fmt.Errorf("statichuffman: writing packed output: %w", err)
	}
	if err := bw.Close(); err != nil {
		return 0, fmt.Errorf("statichuffman: writing packed output: %w", err)
	}
	if _, err := dst.Write([]byte{pad}); err != nil {
		return 0, fmt.Errorf("statichuffman: writing packed trailer: %w", err)
	}
	return (numBits+7)/8 + 1, nil
}

// Unpack reverses Pack, writing one '0' or '1' character to dst for each
// packed bit.  It returns the number of characters written.
func Unpack(dst io.Writer, src io.Reader) (int64, error) {
	raw, err := io.ReadAll(src)
	if err != nil {
		return 0, fmt.Errorf("statichuffman: reading packed input: %w", err)
	}
	if len(raw) == 0 {
		return 0, &PackedTrailerError{Pad: -1}
	}

	body, pad := raw[:len(raw)-1], int(raw[len(raw)-1])
	if pad > 7 || (len(body) == 0 && pad != 0) {
		return 0, &PackedTrailerError{Pad: pad}
	}

	numBits := int64(len(body))*8 - int64(pad)
	br := bitio.NewReader(bytes.NewReader(body))
	bw := bufio.NewWriter(dst)
	for i := int64(0); i < numBits; i++ {
		bit, err := br.ReadBool()
		if err != nil {
			return 0, fmt.Errorf("statichuffman: reading packed bit %d: %w", i, err)
		}
		ch := byte('0')
		if bit {
			ch = '1'
		}
		if err := bw.WriteByte(ch); err != nil {
			return 0, fmt.Errorf("statichuffman: writing bit text: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("statichuffman: writing bit text: %w", err)
	}
	return numBits, nil
}
