package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/mindtrackhq/mindtrack/internal/environment"
)

// handleSentiment analyzes a single text.
func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, s.analyzer.Analyze(req.Text))
}

// handleSentimentBatch analyzes several texts and returns the aggregate.
func (s *Server) handleSentimentBatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Texts []string `json:"texts"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, s.analyzer.AnalyzeAll(req.Texts))
}

// handleEnvironment classifies a workplace photo uploaded as multipart
// form data, with an optional "description" field.
func (s *Server) handleEnvironment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(environment.MaxImageSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, environment.MaxImageSize+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image")
		return
	}

	description := strings.TrimSpace(r.FormValue("description"))

	result, err := s.classifier.Classify(data, description)
	if err != nil {
		if errors.Is(err, environment.ErrInvalidImage) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "classification failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
