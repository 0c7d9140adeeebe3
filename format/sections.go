package format

import (
	"sort"
	"strings"

	"github.com/tomlsort/go-tomlsort/debug"
	"github.com/tomlsort/go-tomlsort/ir"
)

// entry is the ephemeral (key, value) pair used while sorting; the key
// carries its decor.
type entry struct {
	key  ir.Key
	node *ir.Node
}

// sortSections groups entries into sections, stably sorts each section
// under ix, and re-flattens in original section order.
//
// A section starts at the first entry and at every entry whose key prefix
// begins with a blank line. The section's leading trivia is detached from
// that entry and re-attached to whichever entry sorts first, so comment
// blocks introducing a section stay at its top. Inline tables are the
// degenerate single-section case: no blank line can occur there, so no
// boundary ever triggers.
func sortSections(entries []entry, ix *Index) []entry {
	res := make([]entry, 0, len(entries))
	var (
		section       []entry
		sectionPrefix string
	)
	flush := func() {
		sort.SliceStable(section, func(i, j int) bool {
			return ix.Less(section[i].key.Name, section[j].key.Name)
		})
		if debug.Sections() && len(section) > 0 {
			debug.Logf("sorted section of %d entries, first key %q\n",
				len(section), section[0].key.Name)
		}
		for i := range section {
			if i == 0 && sectionPrefix != "" {
				section[i].key.Decor.Prefix = sectionPrefix
			}
			res = append(res, section[i])
		}
		section = section[:0]
		sectionPrefix = ""
	}
	for i, ent := range entries {
		prefix := ent.key.Decor.Prefix
		if i == 0 {
			if prefix != "" {
				sectionPrefix = prefix
				ent.key.Decor.Prefix = ""
			}
		} else if strings.HasPrefix(prefix, "\n") || strings.HasPrefix(prefix, "\r\n") {
			flush()
			sectionPrefix = prefix
			ent.key.Decor.Prefix = ""
		}
		section = append(section, ent)
	}
	flush()
	return res
}
