package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/docpeek/docpeek/internal/outline"
	"github.com/docpeek/docpeek/internal/persona"
)

type errorResponse struct {
	Error string `json:"error"`
}

type analyzeResponse struct {
	Persona            string           `json:"persona"`
	PersonaDescription string           `json:"persona_description"`
	Analysis           string           `json:"analysis"`
	Query              string           `json:"query,omitempty"`
	Outline            *outline.Outline `json:"outline"`
	Status             string           `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePersonas(w http.ResponseWriter, r *http.Request) {
	names := persona.Names(s.cfg.Personas)
	list := make([]persona.Persona, 0, len(names))
	for _, n := range names {
		list = append(list, s.cfg.Personas[n])
	}
	writeJSON(w, http.StatusOK, map[string][]persona.Persona{"personas": list})
}

// handleOutline extracts the outline of one uploaded PDF.
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	data, name, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	o, err := s.extractor.Extract(data)
	if err != nil {
		s.logger.Warn("outline extraction failed", "document", name, "error", err)
		writeError(w, http.StatusUnprocessableEntity,
			(&outline.ProcessingError{Name: name, Err: err}).Error())
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// handleAnalyze extracts text and outline from one uploaded PDF and
// runs the persona analysis over it.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	data, name, ok := s.readUpload(w, r)
	if !ok {
		return
	}
	p := persona.Resolve(s.cfg.Personas, r.FormValue("persona"))
	query := strings.TrimSpace(r.FormValue("query"))

	text, err := s.extractor.Text(data)
	if err != nil {
		s.logger.Warn("text extraction failed", "document", name, "error", err)
		writeError(w, http.StatusUnprocessableEntity,
			(&outline.ProcessingError{Name: name, Err: err}).Error())
		return
	}

	// The outline rides along; a document readable enough to yield
	// text never fails here.
	o, err := s.extractor.Extract(data)
	if err != nil {
		o = &outline.Outline{Entries: []outline.Entry{}}
	}

	prompt := persona.BuildPrompt(p, text, query, persona.DefaultMaxChars)
	analysis, err := s.cfg.Analyzer.Analyze(r.Context(), persona.System(p), prompt)
	if err != nil {
		s.logger.Error("analysis failed", "document", name, "persona", p.Name, "error", err)
		writeError(w, http.StatusBadGateway, fmt.Sprintf("analysis failed: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Persona:            p.Name,
		PersonaDescription: p.Description,
		Analysis:           analysis,
		Query:              query,
		Outline:            o,
		Status:             "success",
	})
}

// readUpload reads the single "file" part of a multipart upload. On
// failure it writes the error response itself and returns ok=false.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (data []byte, name string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("parse form: %v", err))
		return nil, "", false
	}
	defer r.MultipartForm.RemoveAll()

	f, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file upload")
		return nil, "", false
	}
	defer f.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("file %s is not a PDF", header.Filename))
		return nil, "", false
	}

	data, err = io.ReadAll(f)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
		} else {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("read upload: %v", err))
		}
		return nil, "", false
	}
	return data, header.Filename, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
