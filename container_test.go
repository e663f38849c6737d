package jsonlogic

import "testing"

func TestStringConstructionLandsOnSameRepresentation(t *testing.T) {
	fromUTF8 := StringFromUTF8("ab")
	fromUTF16 := StringFromUTF16([]uint16{'a', 'b'})
	fromLatin1 := StringFromLatin1([]byte{'a', 'b'})

	if !StrictEqual(fromUTF8, fromUTF16) || !StrictEqual(fromUTF8, fromLatin1) {
		t.Error("equivalent strings from different constructors are not strictly equal")
	}
}

func TestStringAstralSurrogatePair(t *testing.T) {
	b := NewStringBuilder()
	b.AppendRune(0x1F600) // outside the BMP
	s := b.Take()
	if got := s.Len(); got != 2 {
		t.Fatalf("astral code point should encode as a surrogate pair, got %d units", got)
	}
}

func TestArrayBuilderTakeAndIndex(t *testing.T) {
	b := NewArrayBuilder()
	b.Append(Number(1))
	b.Append(Number(2))
	b.Append(Number(3))
	arr := b.Take()

	if got := arr.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	if got := arr.Index(1).NumberValue(); got != 2 {
		t.Errorf("Index(1) = %v, want 2", got)
	}
	if got := arr.Index(99); !got.IsNull() {
		t.Errorf("out-of-range Index should be Null, got %v", got.Kind())
	}
}

func TestObjectBuilderInsertionOrderSurvivesRehash(t *testing.T) {
	b := NewObjectBuilder()
	keys := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
	for i, k := range keys {
		b.Set(k, Number(float64(i)))
	}
	obj := b.Take()

	got := obj.Keys()
	if len(got) != len(keys) {
		t.Fatalf("Keys() length = %d, want %d", len(got), len(keys))
	}
	for i, k := range keys {
		if got[i] != k {
			t.Errorf("Keys()[%d] = %q, want %q (insertion order not preserved through rehash)", i, got[i], k)
		}
	}
}

func TestObjectGetAndLengthProperty(t *testing.T) {
	b := NewObjectBuilder()
	b.Set("x", Number(42))
	obj := b.Take()

	if got := obj.Get("x").NumberValue(); got != 42 {
		t.Errorf("Get(x) = %v, want 42", got)
	}
	if got := obj.Get("missing"); !got.IsNull() {
		t.Errorf("Get(missing) = %v, want Null", got.Kind())
	}

	s := StringFromUTF8("hello")
	if got := s.Get("length").NumberValue(); got != 5 {
		t.Errorf("string length property = %v, want 5", got)
	}
	if got := s.Get("1").ToUTF8(); got != "e" {
		t.Errorf("string numeric index 1 = %q, want \"e\"", got)
	}

	arr := ArrayFrom(Number(10), Number(20))
	if got := arr.Get("length").NumberValue(); got != 2 {
		t.Errorf("array length property = %v, want 2", got)
	}
	if got := arr.Get("0").NumberValue(); got != 10 {
		t.Errorf("array numeric index 0 = %v, want 10", got)
	}
}

func TestObjectSetReplacesExistingKey(t *testing.T) {
	b := NewObjectBuilder()
	b.Set("k", Number(1))
	b.Set("k", Number(2))
	obj := b.Take()

	if got := obj.Used(); got != 1 {
		t.Fatalf("Used() = %d, want 1 (replace should not grow entry count)", got)
	}
	if got := obj.Get("k").NumberValue(); got != 2 {
		t.Errorf("Get(k) = %v, want 2", got)
	}
}

func TestFreeArrayReleasesOwnedElements(t *testing.T) {
	s := StringFromUTF8("owned")
	arr := ArrayFrom(s)
	if got := GetRefcount(s); got != 2 {
		t.Fatalf("ArrayFrom should Incref its elements, refcount = %d, want 2", got)
	}
	Decref(arr)
	if got := GetRefcount(s); got != 1 {
		t.Errorf("freeing the array should Decref its elements, refcount = %d, want 1", got)
	}
}
