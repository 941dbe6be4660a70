package pipeline

import (
	"sync"
	"time"

	"github.com/dgallion1/docsumm/internal/summarize"
)

// JobStatus is the externally visible state of a summarization job.
type JobStatus string

const (
	StatusPending  JobStatus = "PENDING"
	StatusProgress JobStatus = "PROGRESS"
	StatusSuccess  JobStatus = "SUCCESS"
	StatusFailure  JobStatus = "FAILURE"
)

// Progress is the three-tier progress snapshot of a running job: document
// phase, section counters, and chunk counters within the current section.
type Progress struct {
	Current         int    `json:"current"`
	Total           int    `json:"total"`
	StatusMessage   string `json:"status"`
	SectionTotal    int    `json:"section_total"`
	SectionCurrent  int    `json:"section_current"`
	SectionProgress int    `json:"section_progress"`
	ChunkTotal      int    `json:"chunk_total"`
	ChunkCurrent    int    `json:"chunk_current"`
}

// Percent is the overall document-phase percentage.
func (p Progress) Percent() int {
	if p.Total <= 0 {
		return 0
	}
	return p.Current * 100 / p.Total
}

// StructuredSummary is the structured rendering of a job's result.
type StructuredSummary struct {
	FileName  string            `json:"file_name"`
	Summaries map[string]string `json:"summaries"`
}

// Result holds both renderings of a finished summarization, built from the
// same summaries map.
type Result struct {
	SummaryMarkdown string            `json:"summary_markdown"`
	SummariesJSON   StructuredSummary `json:"summaries_json"`
}

// ProgressReporter receives progress snapshots from a running job. Each
// report replaces the previous snapshot; no history is retained.
type ProgressReporter interface {
	Report(p Progress)
}

// Job tracks the state of a single document summarization. Its progress is
// written by the worker and read concurrently by status pollers; every
// update replaces the snapshot as a whole under the job's lock.
type Job struct {
	mu sync.Mutex

	ID       string
	Filename string

	status   JobStatus
	progress Progress
	result   *Result
	errMsg   string

	CreatedAt time.Time
	updatedAt time.Time

	fileData   []byte
	backendCfg summarize.Config
}

// NewJob builds a queued job for an uploaded document.
func NewJob(id, filename string, data []byte, backendCfg summarize.Config) *Job {
	now := time.Now()
	return &Job{
		ID:         id,
		Filename:   filename,
		status:     StatusPending,
		CreatedAt:  now,
		updatedAt:  now,
		fileData:   data,
		backendCfg: backendCfg,
	}
}

// Report replaces the job's progress snapshot (last-write-wins).
func (j *Job) Report(p Progress) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = StatusProgress
	j.progress = p
	j.updatedAt = time.Now()
}

// Succeed records the terminal result.
func (j *Job) Succeed(res *Result) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = StatusSuccess
	j.result = res
	j.updatedAt = time.Now()
}

// Fail records the terminal error.
func (j *Job) Fail(msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = StatusFailure
	j.errMsg = msg
	j.updatedAt = time.Now()
}

// FileData returns the raw uploaded bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// BackendConfig returns the job's backend selection.
func (j *Job) BackendConfig() summarize.Config {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.backendCfg
}

// Snapshot is a read-only copy of job state for status pollers.
type Snapshot struct {
	ID       string    `json:"job_id"`
	Filename string    `json:"filename"`
	Status   JobStatus `json:"status"`
	Progress Progress  `json:"progress"`
	Error    string    `json:"error,omitempty"`
}

// Snapshot returns a copy of the job state. The returned value is detached
// from the running job; readers never block the worker.
func (j *Job) Snapshot() Snapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	return Snapshot{
		ID:       j.ID,
		Filename: j.Filename,
		Status:   j.status,
		Progress: j.progress,
		Error:    j.errMsg,
	}
}

// Result returns the terminal result, or nil while the job is running or
// after a failure.
func (j *Job) Result() *Result {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result
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

// Get returns the job or nil when unknown or expired.
func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes jobs whose last update is older than the TTL.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		job.mu.Lock()
		updated := job.updatedAt
		job.mu.Unlock()
		if now.Sub(updated) > s.ttl {
			delete(s.jobs, id)
		}
	}
}
