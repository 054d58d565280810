package outline

// Level is the hierarchical depth of a detected heading. Depth never
// exceeds three tiers; deeper numbering saturates to H3.
type Level string

const (
	H1 Level = "H1"
	H2 Level = "H2"
	H3 Level = "H3"
)

// Span is a contiguous run of text on a page carrying font metadata.
// Spans are produced per page by the primary source and consumed
// immediately by the classifier.
type Span struct {
	Text     string
	FontSize float64
	Bold     bool
	Page     int
	Order    int
}

// Line is the metadata-poor fallback counterpart of Span.
type Line struct {
	Text  string
	Page  int
	Order int
}

// FontProfile holds document-wide font statistics, computed once per
// document and read-only afterwards.
type FontProfile struct {
	// BodySize is the font size used by the bulk of regular paragraph
	// text, the classification baseline.
	BodySize float64
	// MaxSize is the largest font size observed in the document.
	MaxSize float64
}

// Entry is one detected heading in the final outline.
type Entry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`

	ord int // original document order, breaks sorting ties
}

// Outline is the sole externally visible extraction artifact. Title is
// nil when no plausible title exists; Entries is never nil so it
// serializes as an empty JSON array.
type Outline struct {
	Title   *string `json:"title"`
	Entries []Entry `json:"outline"`
}
