package chunktype

//go:generate go run ./cmd/chunkgen --in known_chunks.txt --out known_gen.go

// Known describes a registered chunk type.
type Known struct {
	Tag         Tag
	Name        string
	Description string
}

var knownIndex = func() map[Tag]int {
	m := make(map[Tag]int, len(knownTable))
	for i, k := range knownTable {
		m[k.Tag] = i
	}
	return m
}()

// Lookup returns the registry entry for t. Matching is case-sensitive.
func Lookup(t Tag) (Known, bool) {
	i, ok := knownIndex[t]
	if !ok {
		return Known{}, false
	}
	return knownTable[i], true
}

// KnownTags returns the registered chunk types in registry order.
func KnownTags() []Known {
	out := make([]Known, len(knownTable))
	copy(out, knownTable)
	return out
}

// IsKnown reports whether t is a registered chunk type.
func (t Tag) IsKnown() bool {
	_, ok := knownIndex[t]
	return ok
}
