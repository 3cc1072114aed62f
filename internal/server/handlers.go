package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, types.HealthResponse{Status: "ok", Version: Version})
}

// handleParseUpload parses an uploaded resume document. The document
// arrives as the multipart field "file"; optional form values "score"
// and "include_raw_text" enrich the response.
func (s *Server) handleParseUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxFileSize)
	if err := r.ParseMultipartForm(s.maxFileSize); err != nil {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "Upload too large or malformed multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing file field 'file'")
		return
	}
	defer file.Close()

	if !extraction.Supported(header.Filename) {
		ext := strings.ToLower(filepath.Ext(header.Filename))
		s.errorResponse(w, http.StatusUnsupportedMediaType, (&extraction.UnsupportedTypeError{Ext: ext}).Error())
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	text, err := extraction.ExtractText(data, header.Filename)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.parseAndRespond(w, r, text, header.Filename,
		boolFormValue(r, "score"), boolFormValue(r, "include_raw_text"))
}

// handleParseText parses resume content supplied as plain text in a JSON body
func (s *Server) handleParseText(w http.ResponseWriter, r *http.Request) {
	var req types.ParseTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), "text is required")
		return
	}

	s.parseAndRespond(w, r, req.Text, "", req.Score, req.IncludeRawText)
}

// parseAndRespond runs the parse pipeline shared by the upload and text
// endpoints, persists the result when a database is configured, and
// writes the response envelope.
func (s *Server) parseAndRespond(w http.ResponseWriter, r *http.Request, text, filename string, score, includeRawText bool) {
	resume, err := s.parser.Parse(r.Context(), text)
	if err != nil {
		s.jsonResponse(w, HTTPStatus(err), types.ParseResponse{Error: err.Error()})
		return
	}

	resp := types.ParseResponse{Success: true, Data: resume}
	if score {
		resp.Score = scoring.Score(resume)
	}
	if includeRawText {
		resume.RawText = text
	}

	if s.db != nil {
		id, err := s.db.SaveParseResult(r.Context(), filename, resume, resp.Score)
		if err != nil {
			// Persistence is best-effort; the parse result still goes out.
			log.Printf("Error saving parse result: %v", err)
		} else {
			resp.ID = id.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleScore scores an already-structured resume supplied as JSON
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var resume types.StructuredResume
	if err := json.NewDecoder(r.Body).Decode(&resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, scoring.Score(&resume))
}

// handleListResumes lists stored parse results, newest first
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Persistence disabled: no database configured")
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	summaries, err := s.db.ListParseResults(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list resumes: "+err.Error())
		return
	}
	if summaries == nil {
		summaries = []db.ParseResultSummary{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resumes": summaries,
		"count":   len(summaries),
	})
}

// handleGetResume retrieves one stored parse result by ID
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Persistence disabled: no database configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	result, err := s.db.GetParseResult(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get resume: "+err.Error())
		return
	}
	if result == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// boolFormValue reads a boolean form or query value, defaulting to false
func boolFormValue(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.FormValue(name))
	return err == nil && v
}
