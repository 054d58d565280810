package outline

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// annualReportSpans is the canonical three-heading document: a 24pt
// title and a 16pt bold numbered heading on page 1, a 13pt subsection
// on page 2, a 16pt bold heading on page 5, with 11pt body text
// in between.
func annualReportSpans() []Span {
	return []Span{
		{Text: "Annual Report", FontSize: 24, Page: 1, Order: 0},
		{Text: "1. Introduction", FontSize: 16, Bold: true, Page: 1, Order: 1},
		{Text: "This report covers the fiscal year in considerable detail for all divisions.", FontSize: 11, Page: 1, Order: 2},
		{Text: "1.1 Background", FontSize: 13, Page: 2, Order: 3},
		{Text: "The background section recounts the events leading to this year's figures.", FontSize: 11, Page: 2, Order: 4},
		{Text: "2. Conclusion", FontSize: 16, Bold: true, Page: 5, Order: 5},
		{Text: "We conclude that the year went roughly as the previous one did.", FontSize: 11, Page: 5, Order: 6},
	}
}

func TestOutlineEndToEnd(t *testing.T) {
	ext := New(Config{})
	out := ext.buildFromSpans(annualReportSpans(), "", nil)
	if out == nil {
		t.Fatal("span pass found no structure")
	}

	if out.Title == nil || *out.Title != "Annual Report" {
		t.Fatalf("title = %v, want Annual Report", out.Title)
	}
	want := []Entry{
		{Level: H1, Text: "Introduction", Page: 1},
		{Level: H2, Text: "Background", Page: 2},
		{Level: H1, Text: "Conclusion", Page: 5},
	}
	if len(out.Entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(out.Entries), len(want), out.Entries)
	}
	for i, w := range want {
		got := out.Entries[i]
		if got.Level != w.Level || got.Text != w.Text || got.Page != w.Page {
			t.Errorf("entry %d = {%s %q p%d}, want {%s %q p%d}",
				i, got.Level, got.Text, got.Page, w.Level, w.Text, w.Page)
		}
	}
}

func TestTitleNotRepeatedAsEntry(t *testing.T) {
	ext := New(Config{})
	out := ext.buildFromSpans(annualReportSpans(), "", nil)
	if out == nil {
		t.Fatal("span pass found no structure")
	}
	for _, e := range out.Entries {
		if normalizeKey(e.Text) == "annual report" {
			t.Fatalf("title leaked into the outline: %+v", e)
		}
	}
}

func TestNoTextIsValidEmptyResult(t *testing.T) {
	ext := New(Config{})
	out := ext.buildFromSpans(nil, "", nil)
	if out == nil {
		t.Fatal("empty document must be a success, not a retry signal")
	}
	if out.Title != nil {
		t.Errorf("title = %q, want nil", *out.Title)
	}
	b, err := json.Marshal(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"title":null,"outline":[]}` {
		t.Errorf("empty result serialized as %s", b)
	}
}

func TestTextWithoutStructureSignalsFallback(t *testing.T) {
	ext := New(Config{})

	// Uniform 11pt prose: text exists, no heading found.
	spans := []Span{
		{Text: "a wall of undifferentiated prose", FontSize: 11, Page: 1, Order: 0},
		{Text: "followed by more of the same prose", FontSize: 11, Page: 1, Order: 1},
	}
	if out := ext.buildFromSpans(spans, "", nil); out != nil {
		t.Fatalf("expected retry signal, got %+v", out)
	}
}

func TestFallbackOutlineFromLines(t *testing.T) {
	ext := New(Config{})
	lines := []Line{
		{Text: "Field Notes on Migration Patterns", Page: 1, Order: 0},
		{Text: "1. Introduction", Page: 1, Order: 1},
		{Text: "Some body text that is not a heading at all.", Page: 1, Order: 2},
		{Text: "1.1 Prior Work", Page: 2, Order: 3},
		{Text: "CONCLUSIONS", Page: 3, Order: 4},
	}
	out := ext.buildFromLines(lines)
	if out.Title == nil || *out.Title != "Field Notes on Migration Patterns" {
		t.Fatalf("title = %v", out.Title)
	}
	want := []Entry{
		{Level: H1, Text: "Introduction", Page: 1},
		{Level: H2, Text: "Prior Work", Page: 2},
		{Level: H2, Text: "CONCLUSIONS", Page: 3}, // all-caps, neutral default level
	}
	if len(out.Entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(out.Entries), len(want), out.Entries)
	}
	for i, w := range want {
		got := out.Entries[i]
		if got.Level != w.Level || got.Text != w.Text || got.Page != w.Page {
			t.Errorf("entry %d = {%s %q p%d}, want {%s %q p%d}",
				i, got.Level, got.Text, got.Page, w.Level, w.Text, w.Page)
		}
	}
}

func TestExtractionIsIdempotent(t *testing.T) {
	ext := New(Config{})
	first, err := json.Marshal(ext.buildFromSpans(annualReportSpans(), "", nil))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := json.Marshal(ext.buildFromSpans(annualReportSpans(), "", nil))
		if err != nil {
			t.Fatal(err)
		}
		if string(first) != string(again) {
			t.Fatalf("run %d differs:\n%s\n%s", i, first, again)
		}
	}
}

// emptyPagePDF renders a real one-page document containing no text.
func emptyPagePDF(t *testing.T) []byte {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestTextOfTextlessDocumentIsEmpty(t *testing.T) {
	ext := New(Config{})
	text, err := ext.Text(emptyPagePDF(t))
	if err != nil {
		t.Fatalf("a readable but empty document must not error: %v", err)
	}
	if text != "" {
		t.Errorf("text = %q, want empty", text)
	}
}

func TestExtractTextlessDocument(t *testing.T) {
	ext := New(Config{})
	out, err := ext.Extract(emptyPagePDF(t))
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if out.Title != nil || len(out.Entries) != 0 {
		t.Errorf("outline = %+v, want empty", out)
	}
}

func TestExtractRejectsGarbageBytes(t *testing.T) {
	ext := New(Config{})
	_, err := ext.Extract([]byte("this is not a portable document"))
	if err == nil {
		t.Fatal("expected an error when neither backend can read the bytes")
	}
	if !errors.Is(err, ErrFallbackOpen) {
		t.Errorf("error = %v, want the fallback open failure", err)
	}
}

func TestProcessingErrorCarriesName(t *testing.T) {
	inner := errors.New("boom")
	err := &ProcessingError{Name: "report.pdf", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("ProcessingError must unwrap to its cause")
	}
	if err.Error() != "process report.pdf: boom" {
		t.Errorf("message = %q", err.Error())
	}
}
