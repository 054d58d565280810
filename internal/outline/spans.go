package outline

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// rowTolerance is the Y distance in points within which glyphs
	// belong to the same visual row.
	rowTolerance = 2.0
	// wordGapRatio is the fraction of the font size an X gap must
	// exceed to count as a word boundary.
	wordGapRatio = 0.3
)

// readSpans walks the document with the font-aware backend and returns
// the ordered span stream plus the metadata title, if any. The backend
// panics on some malformed files; that surfaces as ErrOpenDocument,
// never as a crash.
func readSpans(data []byte) (spans []Span, metaTitle string, err error) {
	defer func() {
		if r := recover(); r != nil {
			spans, metaTitle = nil, ""
			err = fmt.Errorf("%w: parser panic: %v", ErrOpenDocument, r)
		}
	}()

	r, rerr := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if rerr != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrOpenDocument, rerr)
	}
	metaTitle = strings.TrimSpace(r.Trailer().Key("Info").Key("Title").Text())

	order := 0
	for n := 1; n <= r.NumPage(); n++ {
		p := r.Page(n)
		if p.V.IsNull() {
			continue
		}
		for _, row := range groupRows(p.Content().Text) {
			for _, s := range mergeRuns(row) {
				text := strings.TrimSpace(s.Text)
				if text == "" {
					continue
				}
				s.Text = text
				s.Page = n
				s.Order = order
				order++
				spans = append(spans, s)
			}
		}
	}
	return spans, metaTitle, nil
}

// groupRows buckets glyph runs into visual rows. PDF Y coordinates
// grow upward, so rows are ordered top of page first.
func groupRows(texts []pdf.Text) [][]pdf.Text {
	kept := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) != "" {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Y > kept[j].Y })

	var rows [][]pdf.Text
	rowY := kept[0].Y
	cur := []pdf.Text{kept[0]}
	for _, t := range kept[1:] {
		if rowY-t.Y > rowTolerance {
			rows = append(rows, cur)
			cur = nil
			rowY = t.Y
		}
		cur = append(cur, t)
	}
	rows = append(rows, cur)

	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
	}
	return rows
}

// mergeRuns joins consecutive glyph runs of one row into spans. A new
// span starts whenever the font size or weight changes; an X gap wider
// than wordGapRatio of the font size inserts a space.
func mergeRuns(row []pdf.Text) []Span {
	var spans []Span
	var b strings.Builder
	var cur Span
	var endX float64

	flush := func() {
		if b.Len() > 0 {
			cur.Text = b.String()
			spans = append(spans, cur)
			b.Reset()
		}
	}

	for _, t := range row {
		bold := isBoldFont(t.Font)
		if b.Len() > 0 && (!sameSize(cur.FontSize, t.FontSize) || cur.Bold != bold) {
			flush()
		}
		if b.Len() == 0 {
			cur = Span{FontSize: t.FontSize, Bold: bold}
		} else if t.X-endX > wordGapRatio*t.FontSize {
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
		endX = t.X + t.W
	}
	flush()
	return spans
}

func sameSize(a, b float64) bool {
	d := a - b
	return d < 0.1 && d > -0.1
}

func isBoldFont(name string) bool {
	return strings.Contains(strings.ToLower(name), "bold")
}

// readPlainText extracts the document's full text with the font-aware
// backend, one page per line block. Pages that fail to decode are
// skipped rather than aborting the document.
func readPlainText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: parser panic: %v", ErrOpenDocument, r)
		}
	}()

	r, rerr := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if rerr != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenDocument, rerr)
	}

	var sb strings.Builder
	for n := 1; n <= r.NumPage(); n++ {
		p := r.Page(n)
		if p.V.IsNull() {
			continue
		}
		pageText, perr := p.GetPlainText(nil)
		if perr != nil {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteByte('\n')
	}
	return strings.TrimSpace(sb.String()), nil
}
