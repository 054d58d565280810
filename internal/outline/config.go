package outline

import "log/slog"

// Config holds the heuristic constants of the extraction pipeline.
// The zero value is usable; defaults() fills in every unset field so
// tests can override a single knob without restating the rest.
type Config struct {
	// MinHeadingLen and MaxHeadingLen bound the trimmed length of a
	// heading candidate (default: 2 and 100).
	MinHeadingLen int
	MaxHeadingLen int

	// FontRatio is the multiple of the body font size at which a span
	// qualifies as a heading on size alone (default: 1.15).
	FontRatio float64

	// H1Band is the fraction of the document's max font size at or
	// above which a heading is banded H1 (default: 0.9).
	H1Band float64

	// H2Ratio is the multiple of the body font size at or above which
	// a heading is banded H2 (default: 1.3).
	H2Ratio float64

	// BodySizeCap excludes sizes above it from the body-size
	// statistics, so obvious headings do not skew the baseline
	// (default: 16.0).
	BodySizeCap float64

	// DefaultBodySize is the conservative baseline used when a
	// document yields no usable font statistics (default: 11.0).
	DefaultBodySize float64

	// TitleScanLimit is the number of leading first-page candidates
	// inspected when detecting a title (default: 10).
	TitleScanLimit int

	// Logger for debug messages.
	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.MinHeadingLen <= 0 {
		c.MinHeadingLen = 2
	}
	if c.MaxHeadingLen <= 0 {
		c.MaxHeadingLen = 100
	}
	if c.FontRatio <= 0 {
		c.FontRatio = 1.15
	}
	if c.H1Band <= 0 {
		c.H1Band = 0.9
	}
	if c.H2Ratio <= 0 {
		c.H2Ratio = 1.3
	}
	if c.BodySizeCap <= 0 {
		c.BodySizeCap = 16.0
	}
	if c.DefaultBodySize <= 0 {
		c.DefaultBodySize = 11.0
	}
	if c.TitleScanLimit <= 0 {
		c.TitleScanLimit = 10
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
