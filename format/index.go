package format

// Index ranks configured priority keys. Ranked keys sort before unranked
// ones, in configured order; unranked keys compare lexicographically. A
// name listed more than once keeps its first rank.
type Index struct {
	rank map[string]int
}

func NewIndex(names []string) *Index {
	ix := &Index{rank: make(map[string]int, len(names))}
	for i, name := range names {
		if _, ok := ix.rank[name]; ok {
			continue
		}
		ix.rank[name] = i
	}
	return ix
}

// Rank returns the configured rank of key, if any. A nil Index ranks
// nothing.
func (ix *Index) Rank(key string) (int, bool) {
	if ix == nil {
		return 0, false
	}
	r, ok := ix.rank[key]
	return r, ok
}

// Less orders two key names under this index.
func (ix *Index) Less(a, b string) bool {
	ra, aok := ix.Rank(a)
	rb, bok := ix.Rank(b)
	switch {
	case aok && bok:
		return ra < rb
	case aok:
		return true
	case bok:
		return false
	}
	return a < b
}
