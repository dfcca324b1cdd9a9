package pipeline

import (
	"sync"
	"time"

	"github.com/dgallion1/pageflow/internal/flow"
	"github.com/google/uuid"
)

// JobStatus represents the state of an ingestion job.
type JobStatus string

const (
	StatusQueued      JobStatus = "queued"
	StatusFetching    JobStatus = "fetching"
	StatusParsing     JobStatus = "parsing"
	StatusStructuring JobStatus = "structuring"
	StatusCompleted   JobStatus = "completed"
	StatusFailed      JobStatus = "failed"
)

// Job tracks one document or page being turned into a flowchart. Exactly one
// of URL and Filename is set.
type Job struct {
	mu sync.Mutex

	ID       string `json:"job_id"`
	URL      string `json:"url,omitempty"`
	Filename string `json:"filename,omitempty"`
	Title    string `json:"title"`

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData []byte
	graph    *flow.Graph
	errors   []string
}

// Progress summarises what a job has produced so far.
type Progress struct {
	Attempts int      `json:"attempts"`
	Items    int      `json:"items"`
	Nodes    int      `json:"nodes"`
	Edges    int      `json:"edges"`
	Errors   []string `json:"errors"`
}

// NewURLJob creates a queued job that crawls rawURL.
func NewURLJob(rawURL, title string) *Job {
	return newJob(func(j *Job) { j.URL = rawURL; j.Title = title })
}

// NewFileJob creates a queued job that parses an uploaded file.
func NewFileJob(filename, title string, data []byte) *Job {
	return newJob(func(j *Job) { j.Filename = filename; j.Title = title; j.fileData = data })
}

func newJob(init func(*Job)) *Job {
	now := time.Now()
	j := &Job{
		ID:        uuid.NewString(),
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: now,
		UpdatedAt: now,
	}
	init(j)
	return j
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Len returns the number of jobs held.
func (s *JobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Cleanup removes jobs not updated within the TTL.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.updatedAt()) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

func (j *Job) updatedAt() time.Time {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.UpdatedAt
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// IncrAttempts counts one fetch attempt.
func (j *Job) IncrAttempts() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.Attempts++
	j.UpdatedAt = time.Now()
}

// Complete stores the finished graph and marks the job completed.
func (j *Job) Complete(items int, g flow.Graph) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.graph = &g
	j.Progress.Items = items
	j.Progress.Nodes = len(g.Nodes)
	j.Progress.Edges = len(g.Edges)
	j.Status = StatusCompleted
	j.Phase = "done"
	j.UpdatedAt = time.Now()
}

// Graph returns the finished graph, or false while the job is pending or
// after it failed.
func (j *Job) Graph() (flow.Graph, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.graph == nil {
		return flow.Graph{}, false
	}
	return *j.graph, true
}

// FileData returns the uploaded bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// releaseFile drops the uploaded bytes once they have been parsed.
func (j *Job) releaseFile() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = nil
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID        string    `json:"job_id"`
	URL       string    `json:"url,omitempty"`
	Filename  string    `json:"filename,omitempty"`
	Title     string    `json:"title"`
	Status    JobStatus `json:"status"`
	Phase     string    `json:"phase"`
	Progress  Progress  `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := make([]string, len(j.errors))
	copy(errs, j.errors)
	p := j.Progress
	p.Errors = errs
	return JobSnapshot{
		ID:        j.ID,
		URL:       j.URL,
		Filename:  j.Filename,
		Title:     j.Title,
		Status:    j.Status,
		Phase:     j.Phase,
		Progress:  p,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}
