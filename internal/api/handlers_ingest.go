package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dgallion1/pageflow/internal/parser"
	"github.com/dgallion1/pageflow/internal/pipeline"
	"github.com/go-chi/chi/v5"
)

// handleIngest queues a job for an uploaded file or, when the form carries
// a url field instead, for a page to crawl.
func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	title := strings.TrimSpace(r.FormValue("title"))

	var job *pipeline.Job
	if rawURL := strings.TrimSpace(r.FormValue("url")); rawURL != "" {
		u, err := url.Parse(rawURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			jsonError(w, "url must be an absolute http(s) URL", http.StatusBadRequest)
			return
		}
		job = pipeline.NewURLJob(u.String(), title)
	} else {
		file, header, err := r.FormFile("file")
		if err != nil {
			jsonError(w, "file or url is required: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		filename := sanitizeFilename(header.Filename)
		if !parser.IsSupportedExtension(filename) {
			jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
			return
		}

		data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
		if err != nil {
			jsonError(w, "failed to read file", http.StatusInternalServerError)
			return
		}
		if int64(len(data)) > s.cfg.MaxUploadBytes {
			jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return
		}
		job = pipeline.NewFileJob(filename, title, data)
	}

	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{
		"job_id":    job.ID,
		"status":    pipeline.StatusQueued,
		"poll_url":  fmt.Sprintf("/api/ingest/%s/status", job.ID),
		"graph_url": fmt.Sprintf("/api/ingest/%s/graph", job.ID),
	})
}

func (s *Server) handleIngestStatus(w http.ResponseWriter, r *http.Request) {
	job := s.orchestrator.GetJob(chi.URLParam(r, "jobID"))
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, job.Snapshot())
}

func (s *Server) handleIngestGraph(w http.ResponseWriter, r *http.Request) {
	job := s.orchestrator.GetJob(chi.URLParam(r, "jobID"))
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	if g, ok := job.Graph(); ok {
		writeJSON(w, http.StatusOK, g)
		return
	}

	snap := job.Snapshot()
	if snap.Status == pipeline.StatusFailed {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "job failed",
			"errors": snap.Progress.Errors,
		})
		return
	}
	writeJSON(w, http.StatusConflict, map[string]any{
		"error":  "job not finished",
		"status": snap.Status,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
