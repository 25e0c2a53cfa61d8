package chunktype

// Tag is a 4-byte chunk type. Each byte is expected to be an ASCII letter;
// bit 5 (the case bit) of each position carries one property flag.
type Tag [4]byte

// TagSize is the encoded size of a chunk type.
const TagSize = 4

const caseBit byte = 0x20 // 00100000

const (
	posCritical = iota
	posPublic
	posReserved
	posSafeToCopy
)

// FromBytes builds a tag after checking that every byte is an ASCII letter.
// A set reserved bit is accepted; use IsValid or FromBytesStrict for that.
func FromBytes(b [4]byte) (Tag, error) {
	t := Tag(b)
	if mask := t.ValidBytes(); mask != [4]bool{true, true, true, true} {
		return Tag{}, &InvalidByteRangeError{Mask: mask}
	}
	return t, nil
}

// FromBytesStrict is FromBytes plus the reserved bit rule.
func FromBytesStrict(b [4]byte) (Tag, error) {
	t, err := FromBytes(b)
	if err != nil {
		return Tag{}, err
	}
	if !t.IsReservedBitValid() {
		return Tag{}, ErrReservedBitInvalid
	}
	return t, nil
}

// Parse builds a tag from exactly four bytes of text.
func Parse(s string) (Tag, error) {
	if len(s) != TagSize {
		return Tag{}, &SizeMismatchError{Got: len(s)}
	}
	return FromBytes([4]byte{s[0], s[1], s[2], s[3]})
}

// ParseStrict is Parse plus the reserved bit rule.
func ParseStrict(s string) (Tag, error) {
	if len(s) != TagSize {
		return Tag{}, &SizeMismatchError{Got: len(s)}
	}
	return FromBytesStrict([4]byte{s[0], s[1], s[2], s[3]})
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Tag {
	t, err := Parse(s)
	if err != nil {
		panic("chunktype: Parse(" + s + "): " + err.Error())
	}
	return t
}

// FromSlice builds a tag from a slice that must be exactly four bytes long.
func FromSlice(b []byte) (Tag, error) {
	if len(b) != TagSize {
		return Tag{}, &SizeMismatchError{Got: len(b)}
	}
	return FromBytes([4]byte(b))
}

// FromUint32 builds a tag from its big-endian numeric form.
func FromUint32(u uint32) (Tag, error) {
	return FromBytes([4]byte{byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)})
}

// Bytes returns the raw bytes.
func (t Tag) Bytes() [4]byte {
	return t
}

// Uint32 returns the tag as a big-endian integer, the order used on the wire.
func (t Tag) Uint32() uint32 {
	return uint32(t[0])<<24 | uint32(t[1])<<16 | uint32(t[2])<<8 | uint32(t[3])
}

// String renders each byte as its ASCII character.
func (t Tag) String() string {
	return string(t[:])
}

// Equal reports whether both tags hold the same bytes. Case is significant.
func (t Tag) Equal(other Tag) bool {
	return t == other
}

// ValidBytes reports, per position, whether the byte is an ASCII letter.
func (t Tag) ValidBytes() [4]bool {
	var mask [4]bool
	for i, b := range t {
		mask[i] = isLetter(b)
	}
	return mask
}

// IsByteRangeValid reports whether all four bytes are ASCII letters.
func (t Tag) IsByteRangeValid() bool {
	return isLetter(t[0]) && isLetter(t[1]) && isLetter(t[2]) && isLetter(t[3])
}

// IsValid reports whether the tag is byte-range valid and its reserved bit
// is clear.
func (t Tag) IsValid() bool {
	return t.IsByteRangeValid() && t.IsReservedBitValid()
}

// IsCritical reports whether the first letter is uppercase.
func (t Tag) IsCritical() bool {
	return t[posCritical]&caseBit == 0
}

// IsPublic reports whether the second letter is uppercase.
func (t Tag) IsPublic() bool {
	return t[posPublic]&caseBit == 0
}

// IsReservedBitValid reports whether the third letter is uppercase.
func (t Tag) IsReservedBitValid() bool {
	return t[posReserved]&caseBit == 0
}

// IsSafeToCopy reports whether the fourth letter is lowercase.
func (t Tag) IsSafeToCopy() bool {
	return t[posSafeToCopy]&caseBit != 0
}

func isLetter(b byte) bool {
	return ('A' <= b && b <= 'Z') || ('a' <= b && b <= 'z')
}
