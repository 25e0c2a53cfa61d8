package chunktype

import "testing"

func TestKnownTagsAreValid(t *testing.T) {
	known := KnownTags()
	if len(known) == 0 {
		t.Fatalf("empty registry")
	}
	seen := make(map[Tag]bool)
	for _, k := range known {
		if !k.Tag.IsValid() {
			t.Fatalf("%s: registered tag is not valid", k.Tag)
		}
		if !k.Tag.IsPublic() {
			t.Fatalf("%s: registered tag is not public", k.Tag)
		}
		if seen[k.Tag] {
			t.Fatalf("%s: duplicate registry entry", k.Tag)
		}
		seen[k.Tag] = true
		got, ok := Lookup(k.Tag)
		if !ok || got != k {
			t.Fatalf("Lookup(%s) = %+v, %v", k.Tag, got, ok)
		}
	}
}

func TestLookup(t *testing.T) {
	k, ok := Lookup(MustParse("IHDR"))
	if !ok || k.Tag != TagHeader || k.Name != "Header" {
		t.Fatalf("Lookup(IHDR) = %+v, %v", k, ok)
	}
	if _, ok := Lookup(MustParse("ihdr")); ok {
		t.Fatalf("lookup must be case-sensitive")
	}
	if MustParse("RuSt").IsKnown() {
		t.Fatalf("RuSt is not registered")
	}
	if !TagText.IsKnown() || TagText.IsCritical() || !TagText.IsSafeToCopy() {
		t.Fatalf("tEXt classification wrong")
	}
}

func TestKnownTagsReturnsCopy(t *testing.T) {
	a := KnownTags()
	a[0].Name = "changed"
	if KnownTags()[0].Name == "changed" {
		t.Fatalf("KnownTags exposed internal table")
	}
}
