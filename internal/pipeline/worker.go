package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/pageflow/internal/content"
	"github.com/dgallion1/pageflow/internal/crawl"
	"github.com/dgallion1/pageflow/internal/parser"
)

// Crawler fetches a page and reduces it to its content.
type Crawler interface {
	Crawl(ctx context.Context, rawURL string) (*crawl.Result, error)
}

// Worker processes one job at a time.
type Worker struct {
	crawler    Crawler
	parserOpts parser.Options
	log        *slog.Logger

	// backoff is swapped out in tests.
	backoff func(attempt int) time.Duration
}

func NewWorker(c Crawler, opts parser.Options, log *slog.Logger) *Worker {
	return &Worker{
		crawler:    c,
		parserOpts: opts,
		log:        log,
		backoff:    Backoff,
	}
}

// Process turns the job's page or file into a flowchart.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID)

	var doc content.Document
	var err error
	if job.URL != "" {
		job.SetStatus(StatusFetching, "fetching")
		doc, err = w.fetch(ctx, job, log)
	} else {
		job.SetStatus(StatusParsing, "parsing")
		doc, err = w.parse(job)
	}
	if err != nil {
		log.Error("ingest failed", "phase", job.Snapshot().Phase, "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, job.Snapshot().Phase)
		return
	}
	if job.Title != "" {
		doc.Title = job.Title
	}

	job.SetStatus(StatusStructuring, "structuring")
	g, items := Build(doc)
	job.Complete(items, g)
	log.Info("flowchart built", "items", items, "nodes", len(g.Nodes), "edges", len(g.Edges))
}

func (w *Worker) fetch(ctx context.Context, job *Job, log *slog.Logger) (content.Document, error) {
	var lastErr error
	for attempt := range MaxAttempts {
		job.IncrAttempts()
		res, err := w.crawler.Crawl(ctx, job.URL)
		if err == nil {
			return res.Document(), nil
		}
		lastErr = err
		if ctx.Err() != nil || !crawl.IsRetryable(err) || attempt == MaxAttempts-1 {
			break
		}
		log.Warn("retryable fetch error", "attempt", attempt, "error", err)
		select {
		case <-time.After(w.backoff(attempt)):
		case <-ctx.Done():
			return content.Document{}, ctx.Err()
		}
	}
	return content.Document{}, fmt.Errorf("crawl %s: %w", job.URL, lastErr)
}

func (w *Worker) parse(job *Job) (content.Document, error) {
	defer job.releaseFile()
	p, err := parser.ForFile(job.Filename, w.parserOpts)
	if err != nil {
		return content.Document{}, err
	}
	doc, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		return content.Document{}, fmt.Errorf("parse: %w", err)
	}
	return *doc, nil
}
