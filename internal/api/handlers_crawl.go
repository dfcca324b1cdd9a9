package api

import (
	"errors"
	"net/http"

	"github.com/dgallion1/pageflow/internal/crawl"
)

type crawlRequest struct {
	URL string `json:"url" validate:"required,http_url"`
}

func (s *Server) handleCrawl(w http.ResponseWriter, r *http.Request) {
	var req crawlRequest
	if err := decodeJSON(w, r, 64<<10, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	log := s.log.With("url", req.URL)
	log.Info("crawl start")
	res, err := s.fetcher.Crawl(r.Context(), req.URL)
	if err != nil {
		typ := crawl.Classify(err)
		details := map[string]any{"type": typ}
		var ce *crawl.Error
		if errors.As(err, &ce) {
			details["context"] = ce.Context
		}
		log.Error("crawl failed", "type", typ, "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":   "error during page processing",
			"message": err.Error(),
			"details": details,
		})
		return
	}

	log.Info("crawl done",
		"title", res.Title,
		"text_length", res.Stats.FinalTextLength,
		"structured_items", res.Stats.StructuredItems,
	)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleFetchStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"stats":       s.fetcher.Stats.Snapshot(),
		"queue_depth": s.orchestrator.QueueDepth(),
	})
}
