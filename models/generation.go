package models

import (
	"sync"
	"time"
)

// GenerationStatus represents the lifecycle of one render attempt
type GenerationStatus string

const (
	GenerationIdle            GenerationStatus = "idle"
	GenerationGenerating      GenerationStatus = "generating"
	GenerationUploadingAssets GenerationStatus = "uploading_assets"
	GenerationPersisting      GenerationStatus = "persisting"
	GenerationCompleted       GenerationStatus = "completed"
	GenerationFailed          GenerationStatus = "failed"
)

// Busy reports whether a job in this status is still in flight.
// The generate action must be rejected while a job is busy.
func (s GenerationStatus) Busy() bool {
	switch s {
	case GenerationGenerating, GenerationUploadingAssets, GenerationPersisting:
		return true
	}
	return false
}

// Terminal reports whether the status is final until an explicit reset
func (s GenerationStatus) Terminal() bool {
	return s == GenerationCompleted || s == GenerationFailed
}

// JobState is the observable state of one render attempt. Readers get it
// as a copy via GenerationJob.State, so it is safe to marshal or inspect
// while the pipeline keeps running.
type JobState struct {
	Status       GenerationStatus `json:"status"`
	Articles     []WardrobeItem   `json:"articles,omitempty"`
	Config       VideoConfig      `json:"config"`
	VideoID      string           `json:"videoId,omitempty"`
	VideoURL     string           `json:"videoUrl,omitempty"`
	ThumbnailURL string           `json:"thumbnailUrl,omitempty"`
	Duration     float64          `json:"duration,omitempty"`
	FileSize     int64            `json:"fileSize,omitempty"`
	Error        string           `json:"error,omitempty"`
	StartedAt    time.Time        `json:"startedAt,omitempty"`
}

// GenerationJob tracks one render attempt. It is transient: created at
// submission, reset when the user starts a new generation or leaves the
// session. The pipeline writes it while status polls read it, so all
// access goes through the job's own lock.
type GenerationJob struct {
	mu    sync.Mutex
	state JobState
}

// NewGenerationJob returns a fresh idle job
func NewGenerationJob() *GenerationJob {
	return &GenerationJob{state: JobState{Status: GenerationIdle}}
}

// State returns a copy of the current job state
func (j *GenerationJob) State() JobState {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state
}

// Status returns the current status
func (j *GenerationJob) Status() GenerationStatus {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state.Status
}

// SetStatus moves the job to the given status
func (j *GenerationJob) SetStatus(status GenerationStatus) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.state.Status = status
}

// Update applies fn to the state under the job's lock. Used by the
// pipeline to publish a status change together with its payload.
func (j *GenerationJob) Update(fn func(*JobState)) {
	j.mu.Lock()
	defer j.mu.Unlock()
	fn(&j.state)
}
