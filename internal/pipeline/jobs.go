package pipeline

import (
	"sync"
	"time"

	"github.com/dgallion1/outliner/internal/outline"
)

// JobStatus represents the state of a batch outline job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusProcessing JobStatus = "processing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
	StatusPartial    JobStatus = "partial"
)

// BatchFile is one uploaded file awaiting extraction.
type BatchFile struct {
	Filename string
	Data     []byte
}

// FileResult records the outcome for one file in a batch.
type FileResult struct {
	Filename  string `json:"filename"`
	SessionID string `json:"session_id,omitempty"`
	Headings  int    `json:"headings"`
	Error     string `json:"error,omitempty"`
}

// Job tracks the state of one batch outline request.
type Job struct {
	mu sync.Mutex

	ID string `json:"job_id"`

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Options outline.Options `json:"-"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	files []BatchFile
}

// Progress tracks per-file outcomes.
type Progress struct {
	TotalFiles     int          `json:"total_files"`
	FilesProcessed int          `json:"files_processed"`
	FilesFailed    int          `json:"files_failed"`
	Results        []FileResult `json:"results"`
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddResult records the outcome for one file.
func (j *Job) AddResult(res FileResult) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.Results = append(j.Progress.Results, res)
	j.Progress.FilesProcessed++
	if res.Error != "" {
		j.Progress.FilesFailed++
	}
	j.UpdatedAt = time.Now()
}

// SetFiles stores the uploaded files for processing.
func (j *Job) SetFiles(files []BatchFile) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.files = files
	j.Progress.TotalFiles = len(files)
}

// Files returns the uploaded files.
func (j *Job) Files() []BatchFile {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.files
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID       string    `json:"job_id"`
	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Progress Progress  `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	results := make([]FileResult, len(j.Progress.Results))
	copy(results, j.Progress.Results)
	return JobSnapshot{
		ID:     j.ID,
		Status: j.Status,
		Phase:  j.Phase,
		Progress: Progress{
			TotalFiles:     j.Progress.TotalFiles,
			FilesProcessed: j.Progress.FilesProcessed,
			FilesFailed:    j.Progress.FilesFailed,
			Results:        results,
		},
	}
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

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		job.mu.Lock()
		idle := now.Sub(job.UpdatedAt)
		job.mu.Unlock()
		if idle > s.ttl {
			delete(s.jobs, id)
		}
	}
}
