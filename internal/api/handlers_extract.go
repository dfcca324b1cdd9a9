package api

import (
	"net/http"

	"github.com/dgallion1/pageflow/internal/content"
	"github.com/dgallion1/pageflow/internal/flow"
	"github.com/dgallion1/pageflow/internal/pipeline"
)

type extractRequest struct {
	Content string `json:"content" validate:"required"`
	Title   string `json:"title" validate:"max=1000"`
}

type extractAdvancedRequest struct {
	Content           string         `json:"content"`
	Title             string         `json:"title" validate:"max=1000"`
	OriginalURL       string         `json:"originalUrl" validate:"omitempty,url"`
	StructuredContent []content.Wire `json:"structuredContent" validate:"max=2000,dive"`
}

type checkEdgeRequest struct {
	Edges  []flow.Edge `json:"edges" validate:"max=10000"`
	Source string      `json:"source" validate:"required"`
	Target string      `json:"target" validate:"required"`
}

// handleExtract builds the plain sequential chart from text.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := decodeJSON(w, r, s.cfg.MaxUploadBytes, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.log.Info("extract", "title", orUntitled(req.Title), "content_length", len(req.Content))
	writeJSON(w, http.StatusOK, flow.Sequential(req.Content))
}

// handleExtractAdvanced structures text or DOM items into a hierarchical
// chart.
func (s *Server) handleExtractAdvanced(w http.ResponseWriter, r *http.Request) {
	var req extractAdvancedRequest
	if err := decodeJSON(w, r, s.cfg.MaxUploadBytes, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Content == "" && len(req.StructuredContent) == 0 {
		jsonError(w, "content or structuredContent is required", http.StatusBadRequest)
		return
	}

	doc := content.Document{
		Title: req.Title,
		Text:  req.Content,
		Items: content.FromWire(req.StructuredContent),
	}
	g, items := pipeline.Build(doc)
	s.log.Info("extract advanced",
		"title", orUntitled(req.Title),
		"dom_items", len(doc.Items),
		"items", items,
		"nodes", len(g.Nodes),
		"edges", len(g.Edges),
	)
	writeJSON(w, http.StatusOK, g)
}

// handleCheckEdge reports whether a user-drawn edge would close a cycle.
func (s *Server) handleCheckEdge(w http.ResponseWriter, r *http.Request) {
	var req checkEdgeRequest
	if err := decodeJSON(w, r, s.cfg.MaxUploadBytes, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"cyclic": flow.WouldCreateCycle(req.Edges, req.Source, req.Target),
	})
}

func orUntitled(title string) string {
	if title == "" {
		return "Untitled"
	}
	return title
}
