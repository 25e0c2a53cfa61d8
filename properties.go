package chunktype

import (
	"encoding/hex"

	"github.com/delaneyj/toolbelt/bytebufferpool"
)

// Properties holds the four case-bit flags of a tag. A set flag means the
// letter at that position is lowercase.
type Properties uint8

const (
	Ancillary Properties = 1 << iota
	Private
	ReservedSet
	SafeToCopy
)

// Properties returns the case-bit flags of t.
func (t Tag) Properties() Properties {
	var p Properties
	for i, b := range t {
		if b&caseBit != 0 {
			p |= 1 << i
		}
	}
	return p
}

// Has reports whether all flags in q are set in p.
func (p Properties) Has(q Properties) bool {
	return p&q == q
}

func (p Properties) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	writeProperties(buf, p)
	return buf.String()
}

// Describe returns a one-line summary such as
// "RuSt: critical, private, reserved ok, safe to copy".
func (t Tag) Describe() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if !t.IsByteRangeValid() {
		buf.WriteString(hex.EncodeToString(t[:]))
		buf.WriteString(": invalid byte range")
		return buf.String()
	}
	buf.Write(t[:])
	buf.WriteString(": ")
	writeProperties(buf, t.Properties())
	return buf.String()
}

func writeProperties(buf *bytebufferpool.ByteBuffer, p Properties) {
	if p.Has(Ancillary) {
		buf.WriteString("ancillary")
	} else {
		buf.WriteString("critical")
	}
	if p.Has(Private) {
		buf.WriteString(", private")
	} else {
		buf.WriteString(", public")
	}
	if p.Has(ReservedSet) {
		buf.WriteString(", reserved set")
	} else {
		buf.WriteString(", reserved ok")
	}
	if p.Has(SafeToCopy) {
		buf.WriteString(", safe to copy")
	} else {
		buf.WriteString(", unsafe to copy")
	}
}
