package outline

import (
	"regexp"
	"strings"
	"unicode"
)

// Compiled once at init; the pattern set is document-independent and
// shared read-only across extractions.
var (
	// numberedRe matches numbered headings such as "1. Introduction",
	// "2.3 Results" or "1.1.1 Detail". The trailing dot after a bare
	// section number is optional.
	numberedRe = regexp.MustCompile(`^\d+(\.\d+)*\.?\s+\S`)

	// keywordRe matches keyword headings such as "Chapter 3" or
	// "Appendix B".
	keywordRe = regexp.MustCompile(`(?i)^(chapter|section|appendix)\s+\w+`)

	// leadingNumberRe captures the numbering token of a numbered
	// heading, used for level assignment and prefix stripping.
	leadingNumberRe = regexp.MustCompile(`^(\d+(?:\.\d+)*)\.?\s+`)

	pageFooterRe = regexp.MustCompile(`(?i)^page\s+\d+$`)
	pageOfRe     = regexp.MustCompile(`(?i)^\d+\s+of\s+\d+$`)
	numericRe    = regexp.MustCompile(`^[\d\s.,\-]+$`)
)

// academicTitles is the fixed vocabulary of common section titles
// matched case-insensitively as a whole line.
var academicTitles = map[string]struct{}{
	"introduction": {},
	"abstract":     {},
	"conclusion":   {},
	"references":   {},
	"methodology":  {},
	"results":      {},
	"discussion":   {},
}

const allCapsMaxLen = 80

// classifier decides whether a candidate span or line is a heading.
// Each signal is an independent boolean predicate; any one of them
// qualifies a candidate that survives the pre-filter.
type classifier struct {
	cfg     *Config
	profile FontProfile
}

// admissible is the pre-filter: it rejects candidates outside the
// length bounds, purely numeric text, and footer/page-number noise.
func (c *classifier) admissible(text string) bool {
	n := len([]rune(text))
	if n < c.cfg.MinHeadingLen || n > c.cfg.MaxHeadingLen {
		return false
	}
	if numericRe.MatchString(text) {
		return false
	}
	if pageFooterRe.MatchString(text) || pageOfRe.MatchString(text) {
		return false
	}
	return true
}

// isHeadingSpan classifies a font-aware candidate: font signal OR
// pattern signal.
func (c *classifier) isHeadingSpan(s Span) bool {
	if !c.admissible(s.Text) {
		return false
	}
	return c.fontSignal(s) || patternSignal(s.Text)
}

// isHeadingLine classifies a fallback candidate. Only the pattern
// signal is available without font metadata; lower recall here is
// accepted degradation, not a defect.
func (c *classifier) isHeadingLine(text string) bool {
	return c.admissible(text) && patternSignal(text)
}

func (c *classifier) fontSignal(s Span) bool {
	if s.FontSize >= c.profile.BodySize*c.cfg.FontRatio {
		return true
	}
	return s.Bold && s.FontSize >= c.profile.BodySize
}

func patternSignal(text string) bool {
	return numberedRe.MatchString(text) ||
		keywordRe.MatchString(text) ||
		isAllCapsHeading(text) ||
		isAcademicTitle(text)
}

// isAllCapsHeading reports whether text is a short line in which at
// least 60% of the letters are uppercase.
func isAllCapsHeading(text string) bool {
	if len([]rune(text)) > allCapsMaxLen {
		return false
	}
	letters, upper := 0, 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return letters > 0 && float64(upper) >= 0.6*float64(letters)
}

func isAcademicTitle(text string) bool {
	_, ok := academicTitles[strings.ToLower(strings.TrimSpace(text))]
	return ok
}
