package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docpeek/docpeek/internal/outline"
)

func extractCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "extract <pdf>...",
		Short: "Extract the outline of one or more PDFs into JSON files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = "."
			}
			if err := os.MkdirAll(out, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			ext := outline.New(outline.Config{Logger: slog.Default()})
			failed := 0
			for _, path := range args {
				if err := extractOne(ext, path, out); err != nil {
					slog.Error("extraction failed", "document", path, "error", err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory for the JSON files (default: current directory)")
	return cmd
}

// extractOne processes a single document; a failure here never stops
// the rest of the batch.
func extractOne(ext *outline.Extractor, path, outDir string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &outline.ProcessingError{Name: path, Err: err}
	}

	o, err := ext.Extract(data)
	if err != nil {
		return &outline.ProcessingError{Name: path, Err: err}
	}

	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return &outline.ProcessingError{Name: path, Err: err}
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	dest := filepath.Join(outDir, stem+".json")
	if err := os.WriteFile(dest, append(b, '\n'), 0o644); err != nil {
		return &outline.ProcessingError{Name: path, Err: err}
	}

	slog.Info("outline written", "document", path, "output", dest, "headings", len(o.Entries))
	return nil
}
