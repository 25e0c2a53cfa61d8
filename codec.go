package chunktype

import (
	"fmt"
	"io"
)

// TagAt reads the chunk type stored at off in b.
func TagAt(b []byte, off int) (Tag, error) {
	if off < 0 || off > len(b)-TagSize {
		return Tag{}, fmt.Errorf("chunk type offset out of range: %d", off)
	}
	return FromBytes([4]byte(b[off : off+TagSize]))
}

// ReadTag reads exactly four bytes from r and validates them.
func ReadTag(r io.Reader) (Tag, error) {
	var buf [TagSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF {
			return Tag{}, err
		}
		return Tag{}, fmt.Errorf("read chunk type: %w", err)
	}
	return FromBytes(buf)
}

// AppendTag appends the raw bytes of t to dst and returns the extended slice.
func AppendTag(dst []byte, t Tag) []byte {
	return append(dst, t[:]...)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tag) MarshalText() ([]byte, error) {
	if !t.IsByteRangeValid() {
		return nil, &InvalidByteRangeError{Mask: t.ValidBytes()}
	}
	return AppendTag(nil, t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tag) UnmarshalText(text []byte) error {
	parsed, err := FromSlice(text)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (t Tag) MarshalBinary() ([]byte, error) {
	return t.MarshalText()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (t *Tag) UnmarshalBinary(data []byte) error {
	return t.UnmarshalText(data)
}
