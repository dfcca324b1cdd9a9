package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dgallion1/pageflow/internal/config"
	"github.com/dgallion1/pageflow/internal/crawl"
)

func testOrchestrator(queueSize int) *Orchestrator {
	cfg := config.Config{
		WorkerCount:  1,
		MaxQueueSize: queueSize,
		JobTTL:       time.Hour,
	}
	fetcher := crawl.NewFetcher(time.Second, 1<<20, "")
	return NewOrchestrator(cfg, fetcher, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestOrchestrator_SubmitAfterStop(t *testing.T) {
	o := testOrchestrator(4)
	o.Start(context.Background())
	o.Stop()

	job := NewFileJob("a.txt", "", []byte("x"))
	err := o.Submit(job)
	if !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
	if job.Snapshot().Status != StatusFailed {
		t.Errorf("expected rejected job to be failed, got %q", job.Snapshot().Status)
	}
	if o.GetJob(job.ID) != nil {
		t.Error("expected rejected job not to be stored")
	}
}

func TestOrchestrator_StopTwice(t *testing.T) {
	o := testOrchestrator(4)
	o.Start(context.Background())
	o.Stop()
	// Should not panic on a second close.
	o.Stop()
}

func TestOrchestrator_ProcessesJobs(t *testing.T) {
	o := testOrchestrator(4)
	o.Start(context.Background())
	defer o.Stop()

	job := NewFileJob("notes.txt", "Notes", []byte("1. Setup\nInstall the package before anything else."))
	if err := o.Submit(job); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if s := job.Snapshot().Status; s == StatusCompleted || s == StatusFailed {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if job.Snapshot().Status != StatusCompleted {
		t.Fatalf("expected completed job, got %q", job.Snapshot().Status)
	}
	if o.GetJob(job.ID) != job {
		t.Error("expected job to be retrievable by id")
	}
}

func TestOrchestrator_QueueFull(t *testing.T) {
	o := testOrchestrator(1)

	if err := o.Submit(NewURLJob("https://example.com/a", "")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	job := NewURLJob("https://example.com/b", "")
	if err := o.Submit(job); err == nil {
		t.Fatal("expected queue full error")
	}
	if job.Snapshot().Phase != "queue_full" {
		t.Errorf("expected queue_full phase, got %q", job.Snapshot().Phase)
	}
	if o.QueueDepth() != 1 {
		t.Errorf("expected queue depth 1, got %d", o.QueueDepth())
	}
}
