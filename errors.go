package chunktype

import (
	"errors"
	"fmt"
)

var (
	ErrSizeMismatch       = errors.New("chunk type must be exactly 4 bytes")
	ErrInvalidByteRange   = errors.New("chunk type bytes must be ASCII letters")
	ErrReservedBitInvalid = errors.New("chunk type reserved bit is set")
)

// SizeMismatchError is returned when the input is not exactly 4 bytes.
type SizeMismatchError struct {
	Got int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("chunk type must be exactly %d bytes, got %d", TagSize, e.Got)
}

func (e *SizeMismatchError) Is(target error) bool {
	return target == ErrSizeMismatch
}

// InvalidByteRangeError is returned when one or more bytes are not ASCII
// letters. Mask[i] is true when byte i is in range.
type InvalidByteRangeError struct {
	Mask [4]bool
}

func (e *InvalidByteRangeError) Error() string {
	return fmt.Sprintf("chunk type bytes out of range at positions %v (mask %v)", e.Invalid(), e.Mask)
}

func (e *InvalidByteRangeError) Is(target error) bool {
	return target == ErrInvalidByteRange
}

// Invalid returns the positions whose byte is out of range.
func (e *InvalidByteRangeError) Invalid() []int {
	var out []int
	for i, ok := range e.Mask {
		if !ok {
			out = append(out, i)
		}
	}
	return out
}
