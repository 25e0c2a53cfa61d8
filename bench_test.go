package chunktype

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
)

var (
	sinkTag   Tag
	sinkBool  bool
	sinkBytes []byte
)

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tag, err := Parse("RuSt")
		if err != nil {
			b.Fatal(err)
		}
		sinkTag = tag
	}
}

func BenchmarkFromBytes(b *testing.B) {
	raw := [4]byte{'I', 'D', 'A', 'T'}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tag, err := FromBytes(raw)
		if err != nil {
			b.Fatal(err)
		}
		sinkTag = tag
	}
}

func BenchmarkIsValid(b *testing.B) {
	tag := MustParse("tEXt")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBool = tag.IsValid()
	}
}

func BenchmarkDescribe(b *testing.B) {
	tag := MustParse("tEXt")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBytes = []byte(tag.Describe())
	}
}

func BenchmarkEncodeBinary(b *testing.B) {
	tag := MustParse("tEXt")
	buf := make([]byte, 0, 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = AppendTag(buf[:0], tag)
	}
	sinkBytes = buf
}

func BenchmarkEncodeCBOR(b *testing.B) {
	tag := MustParse("tEXt")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		out, err := cbor.Marshal(tag)
		if err != nil {
			b.Fatal(err)
		}
		sinkBytes = out
	}
}

func BenchmarkDecodeCBOR(b *testing.B) {
	data, err := cbor.Marshal(MustParse("tEXt"))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var tag Tag
		if err := cbor.Unmarshal(data, &tag); err != nil {
			b.Fatal(err)
		}
		sinkTag = tag
	}
}
