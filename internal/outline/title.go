package outline

import "strings"

const (
	titleMinLen = 5
	titleMaxLen = 200
)

// placeholderTitles are metadata title values that carry no
// information and must not shadow first-page detection.
var placeholderTitles = map[string]struct{}{
	"untitled":          {},
	"untitled document": {},
	"unknown":           {},
}

// usableMetaTitle reports whether a metadata title field is worth
// returning as the document title.
func usableMetaTitle(meta string) bool {
	meta = strings.TrimSpace(meta)
	if meta == "" {
		return false
	}
	if _, ok := placeholderTitles[strings.ToLower(meta)]; ok {
		return false
	}
	// Office exporters stamp the source filename here.
	return !strings.HasPrefix(strings.ToLower(meta), "microsoft word -")
}

// titleFromSpans resolves the document title in span mode: the
// metadata title when usable, otherwise the largest-font plausible
// span among the first TitleScanLimit first-page spans. Returns nil
// when no plausible candidate exists; callers treat that as "no
// title", never as an error.
func titleFromSpans(meta string, spans []Span, cfg *Config) *string {
	if usableMetaTitle(meta) {
		t := strings.TrimSpace(meta)
		return &t
	}

	var best *Span
	for i := range spans {
		if i >= cfg.TitleScanLimit {
			break
		}
		s := &spans[i]
		if s.Page != 1 {
			break
		}
		if !plausibleTitle(s.Text) {
			continue
		}
		if best == nil || s.FontSize > best.FontSize {
			best = s
		}
	}
	if best == nil {
		return nil
	}
	t := strings.TrimSpace(best.Text)
	return &t
}

// titleFromLines resolves the title in fallback mode: the first
// plausible line among the first TitleScanLimit first-page lines.
func titleFromLines(lines []Line, cfg *Config) *string {
	for i, l := range lines {
		if i >= cfg.TitleScanLimit {
			break
		}
		if l.Page != 1 {
			break
		}
		if plausibleTitle(l.Text) {
			t := strings.TrimSpace(l.Text)
			return &t
		}
	}
	return nil
}

// titleExcludePrefixes start front-matter sections that read like
// prose but never are the title.
var titleExcludePrefixes = []string{"abstract", "keywords"}

func plausibleTitle(text string) bool {
	text = strings.TrimSpace(text)
	n := len([]rune(text))
	if n <= titleMinLen || n >= titleMaxLen {
		return false
	}
	low := strings.ToLower(text)
	for _, p := range titleExcludePrefixes {
		if strings.HasPrefix(low, p) {
			return false
		}
	}
	return true
}
