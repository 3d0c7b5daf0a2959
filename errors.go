package statichuffman

import (
	"errors"
	"fmt"
)

var (
	// ErrInputShape indicates input that does not fit the code's alphabet:
	// a probability table of the wrong length, or a byte outside the
	// alphabet.
	ErrInputShape = errors.New("statichuffman: input does not fit the alphabet")

	// ErrCorrupt indicates an encoded stream that cannot be decoded.
	ErrCorrupt = errors.New("statichuffman: corrupt encoded stream")
)

// TableSizeError is returned when a probability table has the wrong number
// of entries.
type TableSizeError struct {
	Got  int
	Want int
}

func (err *TableSizeError) Error() string {
	return fmt.Sprintf("statichuffman: probability table has %d entries, want %d", err.Got, err.Want)
}

// Is reports whether target is ErrInputShape.
func (err *TableSizeError) Is(target error) bool {
	return target == ErrInputShape
}

// SymbolRangeError is returned when an input byte lies outside the alphabet.
type SymbolRangeError struct {
	// Value is the offending byte.
	Value byte

	// Offset is the position of Value in the input stream.
	Offset int64

	// NumSymbols is the size of the alphabet.
	NumSymbols int
}

func (err *SymbolRangeError) Error() string {
	return fmt.Sprintf("statichuffman: byte %d at offset %d is outside the alphabet [0, %d)", err.Value, err.Offset, err.NumSymbols)
}

// Is reports whether target is ErrInputShape.
func (err *SymbolRangeError) Is(target error) bool {
	return target == ErrInputShape
}

// EmptyCodeError is returned when an input byte's Symbol has an empty Code,
// which would encode to nothing.
type EmptyCodeError struct {
	Symbol Symbol
	Offset int64
}

func (err *EmptyCodeError) Error() string {
	return fmt.Sprintf("statichuffman: symbol %d at offset %d has an empty code", err.Symbol, err.Offset)
}

// Is reports whether target is ErrInputShape.
func (err *EmptyCodeError) Is(target error) bool {
	return target == ErrInputShape
}

// InvalidBitError is returned when an encoded stream holds a character
// other than '0' or '1'.
type InvalidBitError struct {
	Value  byte
	Offset int64
}

func (err *InvalidBitError) Error() string {
	return fmt.Sprintf("statichuffman: invalid bit character %q at offset %d", err.Value, err.Offset)
}

// Is reports whether target is ErrCorrupt.
func (err *InvalidBitError) Is(target error) bool {
	return target == ErrCorrupt
}

// TruncatedError is returned when an encoded stream ends in the middle of
// a code.
type TruncatedError struct {
	// Offset is the length of the stream.
	Offset int64

	// Depth is the number of bits of the unfinished code.
	Depth int
}

func (err *TruncatedError) Error() string {
	return fmt.Sprintf("statichuffman: stream ends at offset %d inside a code (%d bits consumed)", err.Offset, err.Depth)
}

// Is reports whether target is ErrCorrupt.
func (err *TruncatedError) Is(target error) bool {
	return target == ErrCorrupt
}

// PackedTrailerError is returned by Unpack when the pad-count trailer is
// missing or out of range.
type PackedTrailerError struct {
	// Pad is the trailer value, or -1 if the stream was empty.
	Pad int
}

func (err *PackedTrailerError) Error() string {
	if err.Pad < 0 {
		return "statichuffman: packed stream is missing its trailer byte"
	}
	return fmt.Sprintf("statichuffman: packed stream trailer claims %d padding bits", err.Pad)
}

// Is reports whether target is ErrCorrupt.
func (err *PackedTrailerError) Is(target error) bool {
	return target == ErrCorrupt
}
