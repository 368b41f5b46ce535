// Package jobs tracks background job status in an owned, synchronized
// record store. Each record carries its own lock so concurrent
// progress writers for different jobs never contend.
package jobs

import (
	"sync"
	"time"
)

// Job status constants
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Job is a snapshot of one background job's state
type Job struct {
	ID              string     `json:"job_id"`
	Status          string     `json:"status"`
	ProgressPercent int        `json:"progress_percent"`
	ErrorMessage    string     `json:"error_message,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

type record struct {
	mu  sync.Mutex
	job Job
}

// Store is a job-id keyed record store with explicit create, update
// and read operations
type Store struct {
	mu      sync.RWMutex
	records map[string]*record
}

// NewStore creates an empty job store
func NewStore() *Store {
	return &Store{records: make(map[string]*record)}
}

// Create registers a new pending job under the given id
func (s *Store) Create(id string) Job {
	now := time.Now()
	rec := &record{job: Job{
		ID:        id,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}}

	s.mu.Lock()
	s.records[id] = rec
	s.mu.Unlock()

	return rec.job
}

// Get returns a snapshot of the job, or false if the id is unknown
func (s *Store) Get(id string) (Job, bool) {
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return Job{}, false
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.job, true
}

// Update applies fn to the job under its record lock. Returns false if
// the id is unknown.
func (s *Store) Update(id string, fn func(*Job)) bool {
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return false
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	fn(&rec.job)
	rec.job.UpdatedAt = time.Now()
	return true
}

// MarkCompleted moves a job to the completed state at 100% progress
func (s *Store) MarkCompleted(id string) bool {
	return s.Update(id, func(j *Job) {
		now := time.Now()
		j.Status = StatusCompleted
		j.ProgressPercent = 100
		j.CompletedAt = &now
	})
}

// MarkFailed moves a job to the failed state with an error message
func (s *Store) MarkFailed(id string, message string) bool {
	return s.Update(id, func(j *Job) {
		j.Status = StatusFailed
		j.ErrorMessage = message
	})
}
