package transcode

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type (
	// ProgressFunc is handed to a running Job so that it can report how far
	// through the work it is, as a percentage.
	ProgressFunc func(percent float64)

	// Job is the unit of work executed by a Task. The context is cancelled when the
	// task is cancelled, the configured timeout expires, or the service shuts down.
	Job func(ctx context.Context, progress ProgressFunc) error

	TaskStatus int
)

const (
	WAITING TaskStatus = iota
	WORKING
	COMPLETE
	FAILED
	CANCELLED
)

// Task represents a job queued against the transcode service. The key groups
// tasks belonging to the same resource (e.g. a video); at most one task per key
// may be active at any one time.
type Task struct {
	mu sync.RWMutex

	id    uuid.UUID
	key   string
	label string
	job   Job

	status          TaskStatus
	progress        float64
	err             error
	cancelRequested bool
	createdAt       time.Time
	startedAt       *time.Time
	finishedAt      *time.Time
}

func newTask(key string, label string, job Job) *Task {
	return &Task{
		id:        uuid.New(),
		key:       key,
		label:     label,
		job:       job,
		status:    WAITING,
		createdAt: time.Now(),
	}
}

func (task *Task) ID() uuid.UUID        { return task.id }
func (task *Task) Key() string          { return task.key }
func (task *Task) Label() string        { return task.label }
func (task *Task) CreatedAt() time.Time { return task.createdAt }

func (task *Task) Status() TaskStatus {
	task.mu.RLock()
	defer task.mu.RUnlock()
	return task.status
}

// Progress is the last percentage reported by the job, between 0 and 100.
func (task *Task) Progress() float64 {
	task.mu.RLock()
	defer task.mu.RUnlock()
	return task.progress
}

// Err returns the error the task concluded with, if any.
func (task *Task) Err() error {
	task.mu.RLock()
	defer task.mu.RUnlock()
	return task.err
}

func (task *Task) StartedAt() *time.Time {
	task.mu.RLock()
	defer task.mu.RUnlock()
	return task.startedAt
}

func (task *Task) FinishedAt() *time.Time {
	task.mu.RLock()
	defer task.mu.RUnlock()
	return task.finishedAt
}

func (task *Task) String() string {
	return fmt.Sprintf("Task{ID=%s Key=%s Label=%s Status=%s}", task.id, task.key, task.label, task.Status())
}

func (task *Task) setProgress(percent float64) {
	task.mu.Lock()
	defer task.mu.Unlock()

	task.progress = min(max(percent, 0), 100)
}

func (task *Task) markWorking() {
	task.mu.Lock()
	defer task.mu.Unlock()

	now := time.Now()
	task.status = WORKING
	task.startedAt = &now
}

// markCancelRequested flags the task as cancelled by a caller, returning the
// status it held at the time. Waiting tasks are cancelled immediately as they
// have no running job to interrupt.
func (task *Task) markCancelRequested() TaskStatus {
	task.mu.Lock()
	defer task.mu.Unlock()

	previous := task.status
	task.cancelRequested = true
	if previous == WAITING {
		now := time.Now()
		task.status = CANCELLED
		task.finishedAt = &now
	}

	return previous
}

func (task *Task) conclude(status TaskStatus, err error) {
	task.mu.Lock()
	defer task.mu.Unlock()

	now := time.Now()
	task.status = status
	task.err = err
	task.finishedAt = &now
	if status == COMPLETE {
		task.progress = 100
	}
}

func (task *Task) wasCancelRequested() bool {
	task.mu.RLock()
	defer task.mu.RUnlock()
	return task.cancelRequested
}

// Name is the bare name of the status, without the numeric suffix
// included by String.
func (s TaskStatus) Name() string {
	switch s {
	case WAITING:
		return "WAITING"
	case WORKING:
		return "WORKING"
	case COMPLETE:
		return "COMPLETE"
	case FAILED:
		return "FAILED"
	case CANCELLED:
		return "CANCELLED"
	}

	return "UNKNOWN"
}

func (s TaskStatus) String() string {
	return fmt.Sprintf("%s[%d]", s.Name(), s)
}

// IsActive reports whether a task in this status is still queued or running.
func (s TaskStatus) IsActive() bool {
	return s == WAITING || s == WORKING
}
