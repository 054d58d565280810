// Package outline extracts a structured outline — document title plus
// H1/H2/H3 headings with page numbers — from PDF documents that carry
// no reliable embedded table of contents.
//
// Extraction runs a font-aware primary pass (statistical font
// profiling plus pattern heuristics) and falls back to a pattern-only
// pass over plain text lines when the primary backend cannot open the
// document or finds no structure. The two tiers are a strict
// primary/fallback choice; their candidates are never merged.
//
// Usage:
//
//	ext := outline.New(outline.Config{})
//	o, err := ext.Extract(pdfBytes)
//	fmt.Println(*o.Title, len(o.Entries), "headings")
package outline

import (
	"errors"
	"log/slog"
)

// Extractor runs the outline pipeline. It holds only immutable
// configuration, so one Extractor is safe for concurrent use across
// documents; every per-document state lives on the stack of a single
// Extract call.
type Extractor struct {
	cfg    Config
	logger *slog.Logger
}

// New creates an Extractor with the given configuration. Unset fields
// take the documented defaults.
func New(cfg Config) *Extractor {
	cfg.defaults()
	return &Extractor{cfg: cfg, logger: cfg.Logger}
}

// Extract is a pure function of the input bytes: it returns the
// document outline, or an error when neither backend can read the
// document. A document with no extractable text is a valid result
// with a nil title and no entries, not an error.
func (e *Extractor) Extract(data []byte) (*Outline, error) {
	out, err := e.primary(data)
	if err == nil && out != nil {
		return out, nil
	}
	if err != nil {
		if !errors.Is(err, ErrOpenDocument) {
			return nil, err
		}
		e.logger.Debug("primary backend failed, switching to fallback", "error", err)
	} else {
		e.logger.Debug("primary pass found no headings, switching to fallback")
	}
	return e.fallback(data)
}

// primary runs the font-aware pass. It returns (nil, nil) when the
// document opened and has text but no heading was found — the signal
// that the fallback pass should run instead.
func (e *Extractor) primary(data []byte) (*Outline, error) {
	spans, metaTitle, err := readSpans(data)
	if err != nil {
		return nil, err
	}
	return e.buildFromSpans(spans, metaTitle, readBookmarks(data)), nil
}

// buildFromSpans assembles an outline from the span stream plus any
// embedded bookmarks. Bookmarks lead the candidate list, so dedup
// keeps the bookmark wording over a same-keyed heuristic hit. A nil
// result means the document has text but neither bookmarks nor the
// font-aware heuristics found structure in it.
func (e *Extractor) buildFromSpans(spans []Span, metaTitle string, bookmarks []Entry) *Outline {
	if len(spans) == 0 && len(bookmarks) == 0 {
		// Genuinely no extractable text: a valid empty outline.
		return &Outline{Entries: []Entry{}}
	}

	candidates := append([]Entry(nil), bookmarks...)
	if len(spans) > 0 {
		profile := profileFonts(spans, &e.cfg)
		e.logger.Debug("font profile computed",
			"body_size", profile.BodySize, "max_size", profile.MaxSize, "spans", len(spans))

		cls := classifier{cfg: &e.cfg, profile: profile}
		for i := range spans {
			s := spans[i]
			if !cls.isHeadingSpan(s) {
				continue
			}
			candidates = append(candidates, Entry{
				Level: assignLevel(s.Text, &s, profile, &e.cfg),
				Text:  headingText(s.Text),
				Page:  s.Page,
				ord:   s.Order,
			})
		}
	}

	title := titleFromSpans(metaTitle, spans, &e.cfg)
	entries := dropTitleEntry(cleanEntries(candidates), title)
	if len(entries) == 0 {
		// Non-trivial text but no detected structure: retry in
		// pattern-only mode.
		return nil
	}
	return &Outline{Title: title, Entries: entries}
}

// fallback runs the pattern-only pass over plain text lines. Its
// result is accepted even when empty; only an unreadable document is
// an error here.
func (e *Extractor) fallback(data []byte) (*Outline, error) {
	lines, err := readLines(data)
	if err != nil {
		return nil, err
	}
	return e.buildFromLines(lines), nil
}

// buildFromLines assembles an outline from the fallback line stream.
func (e *Extractor) buildFromLines(lines []Line) *Outline {
	if len(lines) == 0 {
		return &Outline{Entries: []Entry{}}
	}

	cls := classifier{cfg: &e.cfg}
	var candidates []Entry
	for _, l := range lines {
		if !cls.isHeadingLine(l.Text) {
			continue
		}
		candidates = append(candidates, Entry{
			Level: assignLevel(l.Text, nil, FontProfile{}, &e.cfg),
			Text:  headingText(l.Text),
			Page:  l.Page,
			ord:   l.Order,
		})
	}

	title := titleFromLines(lines, &e.cfg)
	return &Outline{Title: title, Entries: dropTitleEntry(cleanEntries(candidates), title)}
}

// Text returns the document's full plain text under the same
// primary/fallback policy as Extract, for callers that need more than
// headings.
func (e *Extractor) Text(data []byte) (string, error) {
	text, err := readPlainText(data)
	if err == nil {
		// An empty string from a readable document is a valid result,
		// not a reason to retry.
		return text, nil
	}
	if !errors.Is(err, ErrOpenDocument) {
		return "", err
	}
	lines, ferr := readLines(data)
	if ferr != nil {
		return "", ferr
	}
	var sb []byte
	for i, l := range lines {
		if i > 0 {
			sb = append(sb, '\n')
		}
		sb = append(sb, l.Text...)
	}
	return string(sb), nil
}

// dropTitleEntry removes first-page entries that repeat the detected
// title, so the title is not emitted twice.
func dropTitleEntry(entries []Entry, title *string) []Entry {
	if title == nil || len(entries) == 0 {
		return entries
	}
	key := normalizeKey(*title)
	out := entries[:0]
	for _, e := range entries {
		if e.Page == 1 && normalizeKey(e.Text) == key {
			continue
		}
		out = append(out, e)
	}
	return out
}
