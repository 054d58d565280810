package outline

import "math"

// profileFonts computes the document-wide font baseline from the span
// stream. Body size is the size with the highest character-weighted
// frequency among spans at or below the plausible-heading cap; ties
// resolve toward the smaller size so the result does not depend on
// map iteration order. An empty stream yields the conservative default
// body size so downstream ratios stay well-defined.
func profileFonts(spans []Span, cfg *Config) FontProfile {
	if len(spans) == 0 {
		return FontProfile{BodySize: cfg.DefaultBodySize}
	}

	weights := make(map[float64]int)
	var maxSize float64
	for _, s := range spans {
		if s.FontSize > maxSize {
			maxSize = s.FontSize
		}
		if s.FontSize > cfg.BodySizeCap {
			continue
		}
		weights[roundHalf(s.FontSize)] += len([]rune(s.Text))
	}

	body := cfg.DefaultBodySize
	best := 0
	for size, w := range weights {
		if w > best || (w == best && size < body) {
			best = w
			body = size
		}
	}
	return FontProfile{BodySize: body, MaxSize: maxSize}
}

// roundHalf snaps a font size to the nearest half point, so nearly
// identical rendered sizes pool their weight.
func roundHalf(v float64) float64 {
	return math.Round(v*2) / 2
}
