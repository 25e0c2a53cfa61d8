package chunktype

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// MarshalCBOR encodes the tag as a 4-byte CBOR byte string.
func (t Tag) MarshalCBOR() ([]byte, error) {
	if !t.IsByteRangeValid() {
		return nil, &InvalidByteRangeError{Mask: t.ValidBytes()}
	}
	return cbor.Marshal(t[:])
}

// UnmarshalCBOR decodes a CBOR byte string holding exactly four letters.
func (t *Tag) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode chunk type: %w", err)
	}
	parsed, err := FromSlice(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
