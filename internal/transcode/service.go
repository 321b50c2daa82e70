package transcode

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/google/uuid"
	"github.com/hbomb79/Reel/internal/metrics"
	"github.com/hbomb79/Reel/pkg/logger"
	rsync "github.com/hbomb79/Reel/pkg/sync"
)

var (
	log = logger.Get("TranscodeServ")

	ErrTaskNotFound = errors.New("no task found")
	ErrTaskActive   = errors.New("an active task already exists")
	ErrTimeout      = errors.New("task exceeded its time limit")
)

// Service is Reel's background work queue for long-running transcodes. It is
// responsible for:
//   - Serialised execution per key (tasks for one video never overlap)
//   - Bounding the number of concurrently running tasks
//   - Enforcing a per-task time limit
//   - Tracking task status and progress for observability
type Service struct {
	*sync.Mutex
	taskWg  *sync.WaitGroup
	config  Config
	tasks   []*Task
	running int
	cancels rsync.TypedSyncMap[uuid.UUID, context.CancelFunc]

	queueChange chan bool
	taskChange  chan uuid.UUID
}

func New(config Config) (*Service, error) {
	if config.MaxConcurrent < 1 {
		return nil, fmt.Errorf("max concurrent transcodes must be at least 1, got %d", config.MaxConcurrent)
	}

	return &Service{
		Mutex:       &sync.Mutex{},
		taskWg:      &sync.WaitGroup{},
		config:      config,
		tasks:       make([]*Task, 0),
		queueChange: make(chan bool, 1),
		taskChange:  make(chan uuid.UUID, 128),
	}, nil
}

// Run is the main entry point for this service. This method will block
// until the provided context is cancelled.
// Note: when context is cancelled this method will not immediately return as it
// will wait for its running tasks to cancel.
func (service *Service) Run(ctx context.Context) error {
	for {
		select {
		case <-service.queueChange:
			service.startWaitingTasks(ctx)
		case taskID := <-service.taskChange:
			service.handleTaskUpdate(taskID)
		case <-ctx.Done():
			log.Emit(logger.STOP, "Shutting down (context cancelled). Waiting for transcode tasks to cancel.\n")
			service.taskWg.Wait()
			return nil
		}
	}
}

// Submit queues a new task for the key provided. Tasks sharing a key never run at
// the same time, and at most one may be waiting: if the key already has a waiting
// task, ErrTaskActive is returned and the job is discarded.
func (service *Service) Submit(key string, label string, job Job) (*Task, error) {
	service.Lock()
	defer service.Unlock()

	for _, t := range service.tasks {
		if t.key == key && t.Status() == WAITING {
			return nil, fmt.Errorf("%w for %s (%s)", ErrTaskActive, key, t)
		}
	}

	task := newTask(key, label, job)
	service.tasks = append(service.tasks, task)
	metrics.TranscodeQueueDepth.Inc()
	log.Emit(logger.NEW, "Queued %s\n", task)

	service.notifyQueueChange()
	return task, nil
}

// Task looks through all the tasks known to this service and returns the one with
// a matching ID, if it can be found. If no such task exists, nil is returned.
func (service *Service) Task(id uuid.UUID) *Task {
	service.Lock()
	defer service.Unlock()

	return service.findTask(id)
}

// TasksForKey returns all tasks (active and retained history) for the key provided.
func (service *Service) TasksForKey(key string) []*Task {
	service.Lock()
	defer service.Unlock()

	tasks := make([]*Task, 0)
	for _, t := range service.tasks {
		if t.key == key {
			tasks = append(tasks, t)
		}
	}

	return tasks
}

// CancelTask will find the task with the ID provided and cancel it, returning the
// status the task held when the cancellation was requested. Waiting tasks are
// cancelled immediately, working tasks have their context cancelled and will
// conclude once the job returns. Cancelling a concluded task has no effect.
func (service *Service) CancelTask(id uuid.UUID) (TaskStatus, error) {
	service.Lock()
	task := service.findTask(id)
	service.Unlock()
	if task == nil {
		return 0, ErrTaskNotFound
	}

	return service.cancel(task), nil
}

// CancelTasksForKey finds and cancels any active tasks for the key provided.
func (service *Service) CancelTasksForKey(key string) {
	for _, task := range service.TasksForKey(key) {
		if task.Status().IsActive() {
			service.cancel(task)
		}
	}
}

func (service *Service) cancel(task *Task) TaskStatus {
	service.Lock()
	previous := task.markCancelRequested()
	service.Unlock()

	switch previous {
	case WAITING:
		metrics.TranscodeQueueDepth.Dec()
		service.notifyTaskChange(task.id)
	case WORKING:
		if cancel, ok := service.cancels.Load(task.id); ok {
			cancel()
		}
	default:
		return previous
	}

	log.Emit(logger.STOP, "Cancelled %s\n", task)
	return previous
}

// startWaitingTasks starts as many waiting tasks as the concurrency limit allows, in
// the order they were submitted. A task whose key already has a working task is left
// waiting until that task concludes.
func (service *Service) startWaitingTasks(ctx context.Context) {
	service.Lock()
	defer service.Unlock()

	working := make(map[string]struct{})
	for _, task := range service.tasks {
		if task.Status() == WORKING {
			working[task.key] = struct{}{}
		}
	}

	for _, task := range service.tasks {
		if service.running >= service.config.MaxConcurrent {
			return
		}
		if task.Status() != WAITING {
			continue
		}
		if _, busy := working[task.key]; busy {
			continue
		}
		working[task.key] = struct{}{}

		var (
			taskCtx context.Context
			cancel  context.CancelFunc
		)
		if service.config.Timeout > 0 {
			taskCtx, cancel = context.WithTimeout(ctx, service.config.Timeout)
		} else {
			taskCtx, cancel = context.WithCancel(ctx)
		}

		service.running++
		service.cancels.Store(task.id, cancel)
		task.markWorking()
		metrics.TranscodeQueueDepth.Dec()
		metrics.TranscodesRunning.Inc()

		service.taskWg.Add(1)
		go service.runTask(taskCtx, cancel, task)
	}
}

func (service *Service) runTask(ctx context.Context, cancel context.CancelFunc, task *Task) {
	defer service.taskWg.Done()
	defer cancel()

	log.Emit(logger.DEBUG, "Starting %s\n", task)
	err := service.executeJob(ctx, task)
	service.cancels.Delete(task.id)

	switch {
	case err == nil:
		task.conclude(COMPLETE, nil)
		log.Emit(logger.SUCCESS, "%s has concluded nominally\n", task)
	case task.wasCancelRequested():
		task.conclude(CANCELLED, err)
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		task.conclude(FAILED, fmt.Errorf("%w (%s): %w", ErrTimeout, service.config.Timeout, err))
		log.Emit(logger.WARNING, "%s timed out after %s\n", task, service.config.Timeout)
	case ctx.Err() != nil:
		task.conclude(CANCELLED, err)
	default:
		task.conclude(FAILED, err)
		log.Emit(logger.WARNING, "%s has concluded with error: %v\n", task, err)
	}

	service.Lock()
	service.running--
	service.Unlock()
	metrics.TranscodesRunning.Dec()

	service.notifyTaskChange(task.id)
	service.notifyQueueChange()
}

// executeJob runs the tasks job, converting any panic in to an error so that a
// misbehaving job can not take down the service.
func (service *Service) executeJob(ctx context.Context, task *Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Emit(logger.FATAL, "%s panicked: %v\n%s\n", task, r, debug.Stack())
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()

	return task.job(ctx, task.setProgress)
}

// handleTaskUpdate prunes finished tasks once the retained history exceeds the
// configured size, oldest first.
func (service *Service) handleTaskUpdate(taskID uuid.UUID) {
	service.Lock()
	defer service.Unlock()

	if task := service.findTask(taskID); task != nil {
		log.Emit(logger.DEBUG, "Task update %s\n", task)
	}

	finished := 0
	for _, t := range service.tasks {
		if !t.Status().IsActive() {
			finished++
		}
	}

	excess := finished - service.config.HistorySize
	if excess <= 0 {
		return
	}

	kept := service.tasks[:0]
	for _, t := range service.tasks {
		if excess > 0 && !t.Status().IsActive() {
			excess--
			continue
		}
		kept = append(kept, t)
	}
	service.tasks = kept
}

func (service *Service) findTask(id uuid.UUID) *Task {
	for _, t := range service.tasks {
		if t.id == id {
			return t
		}
	}

	return nil
}

// notifyQueueChange wakes the service loop. The channel holds a single pending
// wake-up, so a send is dropped when one is already queued.
func (service *Service) notifyQueueChange() {
	select {
	case service.queueChange <- true:
	default:
	}
}

func (service *Service) notifyTaskChange(id uuid.UUID) {
	select {
	case service.taskChange <- id:
	default:
		log.Emit(logger.WARNING, "Failed to notify service of task change... this could be because the service is shutting down\n")
	}
}
