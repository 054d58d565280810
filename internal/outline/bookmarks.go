package outline

import (
	"bytes"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// bookmarkOrdBase shifts bookmark ords below every span order, so a
// bookmark precedes a same-keyed heuristic candidate through dedup and
// tie-breaking.
const bookmarkOrdBase = 1 << 20

// readBookmarks harvests the document's embedded bookmark tree, if
// any. Bookmarks are best-effort: any failure yields an empty set and
// the heuristics carry the document on their own.
func readBookmarks(data []byte) []Entry {
	bms, err := api.Bookmarks(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return nil
	}
	return bookmarkEntries(bms)
}

// bookmarkEntries flattens a bookmark tree into outline candidates.
// Nesting depth maps directly onto heading levels and saturates at H3;
// items without a title or a resolved page are skipped, their children
// still descend one level.
func bookmarkEntries(bms []pdfcpu.Bookmark) []Entry {
	var out []Entry
	var walk func(bms []pdfcpu.Bookmark, depth int)
	walk = func(bms []pdfcpu.Bookmark, depth int) {
		for _, b := range bms {
			if text := headingText(strings.TrimSpace(b.Title)); text != "" && b.PageFrom >= 1 {
				out = append(out, Entry{
					Level: depthLevel(depth),
					Text:  text,
					Page:  b.PageFrom,
					ord:   len(out) - bookmarkOrdBase,
				})
			}
			walk(b.Kids, depth+1)
		}
	}
	walk(bms, 1)
	return out
}

func depthLevel(depth int) Level {
	switch {
	case depth <= 1:
		return H1
	case depth == 2:
		return H2
	default:
		return H3
	}
}
