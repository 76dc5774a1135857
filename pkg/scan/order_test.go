package scan

import (
	"sort"
	"testing"
)

func TestNumericKeyOrdering(t *testing.T) {
	cases := []struct {
		a, b string
	}{
		{"ch2.jpg", "ch10.jpg"},
		{"ch10.jpg", "ch10a.jpg"},
		{"2.jpg", "10.webp"},
		{"vol1/03.png", "vol1/20.png"},
		{"page 9", "page 11"},
	}

	for _, c := range cases {
		if CompareNames(c.a, c.b) >= 0 {
			t.Errorf("Expected %q < %q", c.a, c.b)
		}
		if CompareNames(c.b, c.a) <= 0 {
			t.Errorf("Expected %q > %q", c.b, c.a)
		}
	}
}

func TestNumericKeyDigitlessSortsLast(t *testing.T) {
	// Names without digits carry a sentinel and sort after all numbered names
	if CompareNames("999.jpg", "cover.jpg") >= 0 {
		t.Error("Expected numbered name to sort before digitless name")
	}
	// Among digitless names the fallback is pure lexical order
	if CompareNames("a.jpg", "b.png") >= 0 {
		t.Error("Expected 'a.jpg' < 'b.png' lexically")
	}
}

func TestNumericKeyStable(t *testing.T) {
	names := []string{"ch10a.jpg", "ch2.jpg", "", "10", "a", "第3卷"}
	for _, n := range names {
		k1 := NumericKeyOf(n)
		k2 := NumericKeyOf(n)
		if k1.Compare(k2) != 0 {
			t.Errorf("Expected key of %q to be stable under recomputation", n)
		}
	}
}

func TestNumericKeyTotalOrder(t *testing.T) {
	names := []string{"ch2", "ch10", "ch10a", "cover", "1-2", "1-10", "intro", "ch2"}

	// Antisymmetry
	for _, a := range names {
		for _, b := range names {
			ab := CompareNames(a, b)
			ba := CompareNames(b, a)
			if ab != -ba {
				t.Errorf("Compare(%q,%q)=%d but Compare(%q,%q)=%d", a, b, ab, b, a, ba)
			}
		}
	}

	// Transitivity via sort: sorting twice yields the same order
	first := append([]string(nil), names...)
	sort.SliceStable(first, func(i, j int) bool { return CompareNames(first[i], first[j]) < 0 })
	second := append([]string(nil), first...)
	sort.SliceStable(second, func(i, j int) bool { return CompareNames(second[i], second[j]) < 0 })
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Order not stable: %v vs %v", first, second)
		}
	}
}

func TestNumericKeyPrefixRunsSortFirst(t *testing.T) {
	// "1" has runs [1], "1-2" has runs [1 2]; the shorter prefix sorts first
	if CompareNames("1.jpg", "1-2.jpg") >= 0 {
		t.Error("Expected shorter digit-run sequence to sort first")
	}
}
