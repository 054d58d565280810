package outline

import (
	"sort"
	"strings"
)

// cleanEntries deduplicates and orders the collected candidates.
// Candidates arrive in document order; the first occurrence of a
// normalized text key is retained regardless of page, later ones are
// dropped. The surviving set is sorted by page, then by normalized
// text length, stable on ties so the original document order decides.
func cleanEntries(candidates []Entry) []Entry {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]Entry, 0, len(candidates))
	for _, e := range candidates {
		key := normalizeKey(e.Text)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Page != out[j].Page {
			return out[i].Page < out[j].Page
		}
		li, lj := len(normalizeKey(out[i].Text)), len(normalizeKey(out[j].Text))
		if li != lj {
			return li < lj
		}
		return out[i].ord < out[j].ord
	})
	return out
}

// normalizeKey is the page-agnostic comparison key: trimmed, internal
// whitespace collapsed, case-folded.
func normalizeKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
