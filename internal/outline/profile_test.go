package outline

import "testing"

func TestProfileBodyIsCharWeighted(t *testing.T) {
	cfg := Config{}
	cfg.defaults()

	// Two headings at 14pt but the bulk of characters sit at 10pt.
	spans := []Span{
		{Text: "Short Heading", FontSize: 14},
		{Text: "Another Heading", FontSize: 14},
		{Text: "A long paragraph of regular body text that dominates the character count by a wide margin.", FontSize: 10},
		{Text: "And a second paragraph of comparable length keeps the balance firmly at ten points.", FontSize: 10},
	}
	p := profileFonts(spans, &cfg)
	if p.BodySize != 10 {
		t.Errorf("body size = %v, want 10", p.BodySize)
	}
	if p.MaxSize != 14 {
		t.Errorf("max size = %v, want 14", p.MaxSize)
	}
}

func TestProfileIgnoresOversizedSpans(t *testing.T) {
	cfg := Config{}
	cfg.defaults()

	// A poster-sized title above the cap must not become the baseline,
	// however many characters it carries.
	spans := []Span{
		{Text: "AN EXTREMELY LONG DISPLAY TITLE SET IN VERY LARGE TYPE ACROSS THE WHOLE COVER PAGE", FontSize: 36},
		{Text: "body text", FontSize: 11},
	}
	p := profileFonts(spans, &cfg)
	if p.BodySize != 11 {
		t.Errorf("body size = %v, want 11", p.BodySize)
	}
	if p.MaxSize != 36 {
		t.Errorf("max size = %v, want 36", p.MaxSize)
	}
}

func TestProfileEmptyStream(t *testing.T) {
	cfg := Config{}
	cfg.defaults()

	p := profileFonts(nil, &cfg)
	if p.BodySize != cfg.DefaultBodySize {
		t.Errorf("empty stream body size = %v, want default %v", p.BodySize, cfg.DefaultBodySize)
	}
	if p.MaxSize != 0 {
		t.Errorf("empty stream max size = %v, want 0", p.MaxSize)
	}
}

func TestProfileTieBreaksDeterministically(t *testing.T) {
	cfg := Config{}
	cfg.defaults()

	spans := []Span{
		{Text: "aaaa", FontSize: 12},
		{Text: "bbbb", FontSize: 10},
	}
	for i := 0; i < 20; i++ {
		if p := profileFonts(spans, &cfg); p.BodySize != 10 {
			t.Fatalf("tie broke to %v, want the smaller size 10", p.BodySize)
		}
	}
}
