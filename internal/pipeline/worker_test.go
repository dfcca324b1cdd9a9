package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dgallion1/pageflow/internal/crawl"
	"github.com/dgallion1/pageflow/internal/parser"
)

type fakeCrawler struct {
	errs  []error
	calls int
	page  crawl.Result
}

func (f *fakeCrawler) Crawl(ctx context.Context, rawURL string) (*crawl.Result, error) {
	f.calls++
	if f.calls <= len(f.errs) && f.errs[f.calls-1] != nil {
		return nil, f.errs[f.calls-1]
	}
	page := f.page
	page.URL = rawURL
	return &page, nil
}

func testWorker(c Crawler) *Worker {
	w := NewWorker(c, parser.Options{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	w.backoff = func(int) time.Duration { return 0 }
	return w
}

var samplePage = crawl.Result{
	Title:   "Sample",
	Content: "1. Overview\nThe overview paragraph is long enough to keep.",
}

func TestWorker_CrawlSuccess(t *testing.T) {
	c := &fakeCrawler{page: samplePage}
	job := NewURLJob("https://example.com", "")
	testWorker(c).Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("expected completed, got %q (errors %v)", snap.Status, snap.Progress.Errors)
	}
	g, ok := job.Graph()
	if !ok {
		t.Fatal("expected graph")
	}
	// Title, header, paragraph.
	if len(g.Nodes) != 3 {
		t.Errorf("expected 3 nodes, got %d", len(g.Nodes))
	}
	if g.Nodes[0].Data.Label != "Sample" {
		t.Errorf("expected page title first, got %q", g.Nodes[0].Data.Label)
	}
	if snap.Progress.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", snap.Progress.Attempts)
	}
}

func TestWorker_TitleOverride(t *testing.T) {
	c := &fakeCrawler{page: samplePage}
	job := NewURLJob("https://example.com", "Custom")
	testWorker(c).Process(context.Background(), job)

	g, ok := job.Graph()
	if !ok {
		t.Fatal("expected graph")
	}
	if g.Nodes[0].Data.Label != "Custom" {
		t.Errorf("expected job title to override page title, got %q", g.Nodes[0].Data.Label)
	}
}

func TestWorker_RetriesTransientErrors(t *testing.T) {
	transient := &crawl.RetryableError{StatusCode: 503, Message: "unavailable"}
	c := &fakeCrawler{errs: []error{transient, transient}, page: samplePage}
	job := NewURLJob("https://example.com", "")
	testWorker(c).Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("expected completed after retries, got %q", snap.Status)
	}
	if snap.Progress.Attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", snap.Progress.Attempts)
	}
}

func TestWorker_GivesUpAfterMaxAttempts(t *testing.T) {
	transient := &crawl.RetryableError{StatusCode: 500, Message: "boom"}
	c := &fakeCrawler{errs: []error{transient, transient, transient, transient}}
	job := NewURLJob("https://example.com", "")
	testWorker(c).Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Fatalf("expected failed, got %q", snap.Status)
	}
	if c.calls != MaxAttempts {
		t.Errorf("expected %d calls, got %d", MaxAttempts, c.calls)
	}
	if len(snap.Progress.Errors) != 1 {
		t.Errorf("expected one recorded error, got %v", snap.Progress.Errors)
	}
	if _, ok := job.Graph(); ok {
		t.Error("expected no graph for failed job")
	}
}

func TestWorker_NoRetryOnPermanentError(t *testing.T) {
	c := &fakeCrawler{errs: []error{errors.New("status 404")}}
	job := NewURLJob("https://example.com", "")
	testWorker(c).Process(context.Background(), job)

	if job.Snapshot().Status != StatusFailed {
		t.Fatalf("expected failed, got %q", job.Snapshot().Status)
	}
	if c.calls != 1 {
		t.Errorf("expected a single call, got %d", c.calls)
	}
}

func TestWorker_ParsesFile(t *testing.T) {
	data := []byte("# Recipe\n\n## Steps\n\n- mix\n- bake\n")
	job := NewFileJob("recipe.md", "", data)
	testWorker(&fakeCrawler{}).Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("expected completed, got %q (errors %v)", snap.Status, snap.Progress.Errors)
	}
	if snap.Progress.Nodes != 3 || snap.Progress.Edges != 2 {
		t.Errorf("expected 3 nodes and 2 edges, got %+v", snap.Progress)
	}
	if job.FileData() != nil {
		t.Error("expected file data released after parsing")
	}
}

func TestWorker_UnsupportedFile(t *testing.T) {
	job := NewFileJob("data.xls", "", []byte("x"))
	testWorker(&fakeCrawler{}).Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Fatalf("expected failed, got %q", snap.Status)
	}
	if snap.Phase != "parsing" {
		t.Errorf("expected failure in parsing phase, got %q", snap.Phase)
	}
}

func TestWorker_NoRetryAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	transient := &crawl.RetryableError{Message: "connection reset"}
	c := &fakeCrawler{errs: []error{transient, transient, transient}}
	job := NewURLJob("https://example.com", "")
	testWorker(c).Process(ctx, job)

	if job.Snapshot().Status != StatusFailed {
		t.Fatalf("expected failed, got %q", job.Snapshot().Status)
	}
	if c.calls != 1 {
		t.Errorf("expected no retries once the context is cancelled, got %d calls", c.calls)
	}
}
