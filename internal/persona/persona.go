// Package persona defines reader personas and builds the prompts used
// for persona-driven document analysis.
package persona

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultName is used when a caller asks for an unknown persona.
const DefaultName = "general"

// DefaultMaxChars bounds how much document text is embedded in a
// prompt, to stay clear of model context limits.
const DefaultMaxChars = 4000

// Persona describes a reader perspective for document analysis.
type Persona struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Focus       string `json:"focus" yaml:"focus"`
	Style       string `json:"style" yaml:"style"`
}

// Defaults returns the built-in persona set, keyed by name.
func Defaults() map[string]Persona {
	return map[string]Persona{
		"student": {
			Name:        "student",
			Description: "A student looking for key concepts, definitions, and study materials",
			Focus:       "educational content, key terms, summaries, examples",
			Style:       "clear, educational, with examples",
		},
		"researcher": {
			Name:        "researcher",
			Description: "A researcher seeking detailed analysis, methodology, and findings",
			Focus:       "research methodology, data analysis, conclusions, citations",
			Style:       "analytical, detailed, evidence-based",
		},
		"business_analyst": {
			Name:        "business_analyst",
			Description: "A business analyst looking for insights, trends, and actionable information",
			Focus:       "business implications, trends, recommendations, metrics",
			Style:       "strategic, actionable, business-focused",
		},
		DefaultName: {
			Name:        DefaultName,
			Description: "A general reader seeking overall understanding and key points",
			Focus:       "main ideas, key points, general understanding",
			Style:       "accessible, comprehensive, well-structured",
		},
	}
}

// Load reads persona definitions from a YAML file and overlays them on
// the defaults. Entries in the file replace same-named built-ins.
func Load(path string) (map[string]Persona, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read personas %s: %w", path, err)
	}
	var extra map[string]Persona
	if err := yaml.Unmarshal(raw, &extra); err != nil {
		return nil, fmt.Errorf("parse personas %s: %w", path, err)
	}

	out := Defaults()
	for name, p := range extra {
		p.Name = name
		if p.Description == "" {
			return nil, fmt.Errorf("persona %q: description is required", name)
		}
		out[name] = p
	}
	return out, nil
}

// Resolve returns the named persona, falling back to the general one
// for unknown names.
func Resolve(set map[string]Persona, name string) Persona {
	if p, ok := set[name]; ok {
		return p
	}
	return set[DefaultName]
}

// Names returns the persona names in sorted order.
func Names(set map[string]Persona) []string {
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// System returns the system instruction for a persona.
func System(p Persona) string {
	return fmt.Sprintf("You are a helpful assistant specializing in document analysis for %s.", p.Description)
}

// BuildPrompt assembles the analysis prompt for a document. When query
// is non-empty the prompt asks for an answer to it; otherwise it asks
// for a structured analysis. Document text is truncated to maxChars
// (DefaultMaxChars when maxChars <= 0).
func BuildPrompt(p Persona, text, query string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	text = truncate(text, maxChars)

	var b strings.Builder
	fmt.Fprintf(&b, "You are analyzing a document from the perspective of a %s.\n\n", p.Description)
	fmt.Fprintf(&b, "Focus on: %s\n", p.Focus)
	fmt.Fprintf(&b, "Response style: %s\n\n", p.Style)
	fmt.Fprintf(&b, "Document text:\n%s\n\n", text)

	if query != "" {
		fmt.Fprintf(&b, "User question: %s\n\n", query)
		fmt.Fprintf(&b, "Please provide a comprehensive answer to the user's question based on the document content, tailored to the %s persona. Include relevant quotes and page references where applicable.\n", p.Name)
		return b.String()
	}

	fmt.Fprintf(&b, "Please provide a comprehensive analysis of this document tailored to the %s persona. Include:\n", p.Name)
	b.WriteString("1. Key insights relevant to this persona\n")
	b.WriteString("2. Important findings or concepts\n")
	b.WriteString("3. Actionable information or recommendations\n")
	b.WriteString("4. Summary of main points\n\n")
	b.WriteString("Format your response in a clear, structured manner.\n")
	return b.String()
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
