package format

import "testing"

func TestIndexRank(t *testing.T) {
	ix := NewIndex([]string{"name", "version", "name"})
	if r, ok := ix.Rank("name"); !ok || r != 0 {
		t.Errorf("Rank(name) = %d, %v; first occurrence wins", r, ok)
	}
	if r, ok := ix.Rank("version"); !ok || r != 1 {
		t.Errorf("Rank(version) = %d, %v", r, ok)
	}
	if _, ok := ix.Rank("missing"); ok {
		t.Error("Rank(missing) should not be ok")
	}
}

func TestNilIndex(t *testing.T) {
	var ix *Index
	if _, ok := ix.Rank("a"); ok {
		t.Error("nil index ranked a key")
	}
	if !ix.Less("a", "b") || ix.Less("b", "a") {
		t.Error("nil index should fall back to lexicographic order")
	}
}

func TestIndexLess(t *testing.T) {
	ix := NewIndex([]string{"b", "a"})
	tests := []struct {
		x, y string
		want bool
	}{
		{"b", "a", true},  // configured rank order
		{"a", "b", false},
		{"b", "z", true},  // priority before non-priority
		{"z", "b", false},
		{"y", "z", true},  // lexicographic fallback
		{"z", "y", false},
		{"z", "z", false},
	}
	for _, tt := range tests {
		if got := ix.Less(tt.x, tt.y); got != tt.want {
			t.Errorf("Less(%q, %q) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
