package outline

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// readLines extracts per-page plain-text lines with the layout-only
// backend. No font metadata is recovered; the classifier runs in
// pattern-only mode on this stream.
func readLines(data []byte) ([]Line, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFallbackOpen, err)
	}

	var lines []Line
	order := 0
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
		if err != nil {
			continue
		}
		raw, err := io.ReadAll(r)
		if err != nil || len(raw) == 0 {
			continue
		}
		for _, text := range contentLines(raw) {
			lines = append(lines, Line{Text: text, Page: pageNr, Order: order})
			order++
		}
	}
	return lines, nil
}

// literalRe matches PDF string literals in parentheses.
var literalRe = regexp.MustCompile(`\(([^)]*)\)`)

// contentLines walks the text-showing operators of a content stream
// and reassembles logical lines. Tj/TJ append to the current line;
// Td, TD, T* and ' start a new one.
func contentLines(stream []byte) []string {
	var sb strings.Builder

	for _, op := range bytes.Split(stream, []byte{'\n'}) {
		op = bytes.TrimSpace(op)
		if len(op) == 0 {
			continue
		}
		switch {
		case bytes.HasSuffix(op, []byte("Tj")), bytes.HasSuffix(op, []byte("TJ")):
			for _, m := range literalRe.FindAllSubmatch(op, -1) {
				sb.WriteString(decodeLiteral(m[1]))
			}
		case bytes.HasSuffix(op, []byte("'")) && bytes.Contains(op, []byte("(")):
			sb.WriteByte('\n')
			for _, m := range literalRe.FindAllSubmatch(op, -1) {
				sb.WriteString(decodeLiteral(m[1]))
			}
		case bytes.HasSuffix(op, []byte("Td")), bytes.HasSuffix(op, []byte("TD")),
			bytes.Equal(op, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	var out []string
	for _, raw := range strings.Split(sb.String(), "\n") {
		if text := normalizeSpace(raw); text != "" {
			out = append(out, text)
		}
	}
	return out
}

// decodeLiteral resolves the escape sequences of a PDF string literal,
// including octal byte escapes.
func decodeLiteral(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] < '0' || raw[i] > '7' {
				sb.WriteByte(raw[i])
				break
			}
			val := int(raw[i] - '0')
			for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
				i++
				val = val*8 + int(raw[i]-'0')
			}
			sb.WriteByte(byte(val))
		}
	}
	return sb.String()
}

// normalizeSpace collapses runs of whitespace and drops non-printable
// runes.
func normalizeSpace(s string) string {
	var sb strings.Builder
	space := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			space = sb.Len() > 0
		case unicode.IsPrint(r):
			if space {
				sb.WriteByte(' ')
				space = false
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
