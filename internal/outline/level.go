package outline

import (
	"regexp"
	"strings"
)

var (
	chapterRe    = regexp.MustCompile(`(?i)^chapter\b`)
	topSectionRe = regexp.MustCompile(`(?i)^section\s+\d+($|[^.\d])`)
)

// assignLevel maps an accepted heading candidate to H1–H3. The
// numbering structure is the most reliable signal, so a pattern-derived
// level always wins over a font-derived one; font banding applies only
// to span input, and a candidate with no usable signal defaults to H2.
func assignLevel(text string, span *Span, profile FontProfile, cfg *Config) Level {
	if m := leadingNumberRe.FindStringSubmatch(text); m != nil {
		depth := strings.Count(m[1], ".") + 1
		if depth > 3 {
			depth = 3
		}
		switch depth {
		case 1:
			return H1
		case 2:
			return H2
		default:
			return H3
		}
	}
	if chapterRe.MatchString(text) || topSectionRe.MatchString(text) {
		return H1
	}
	if span != nil {
		if profile.MaxSize > 0 && span.FontSize >= cfg.H1Band*profile.MaxSize {
			return H1
		}
		if span.FontSize >= cfg.H2Ratio*profile.BodySize {
			return H2
		}
		return H3
	}
	return H2
}

// headingText strips the numbering token from a numbered heading, so
// "1. Introduction" is stored as "Introduction". Other headings keep
// their text as-is.
func headingText(text string) string {
	if loc := leadingNumberRe.FindStringIndex(text); loc != nil {
		if rest := strings.TrimSpace(text[loc[1]:]); rest != "" {
			return rest
		}
	}
	return text
}
