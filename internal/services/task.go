package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/imaciel7/lar-doce-api/internal/logger"
	"github.com/imaciel7/lar-doce-api/internal/models"
)

var (
	// ErrTaskNotFound is returned when a referenced task id does not exist.
	ErrTaskNotFound = errors.New("task not found")
	// ErrUserNotFound is returned when a referenced user id does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidDay is returned when a day label is not one of the seven canonical values.
	ErrInvalidDay = errors.New("invalid day label")
)

// TaskReader defines read-only operations for tasks.
type TaskReader interface {
	GetByID(ctx context.Context, id int64) (*models.TaskDB, error)
	List(ctx context.Context, day *string) ([]models.TaskDB, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	Save(ctx context.Context, task *models.TaskDB) error
	Update(ctx context.Context, task *models.TaskDB) error
	Delete(ctx context.Context, id int64) error
}

// CacheInvalidator drops cached ranking and stats payloads after task writes.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TaskUpdate carries the optional fields of a partial task update.
type TaskUpdate struct {
	Day            *string
	TaskName       *string
	AssignedUserID *int64
}

// TaskService handles the task board: CRUD and the completion state machine.
type TaskService struct {
	users       UserReader
	tasks       TaskReader
	writer      TaskWriter
	cache       CacheInvalidator
	kafkaWriter KafkaWriter
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	users UserReader,
	tasks TaskReader,
	writer TaskWriter,
	cache CacheInvalidator,
	kafkaWriter KafkaWriter,
) *TaskService {
	return &TaskService{
		users:       users,
		tasks:       tasks,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// Get returns a single task by id.
func (s *TaskService) Get(ctx context.Context, id int64) (*models.TaskDB, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get task", "task_id", id, "error", err)
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// List returns tasks, optionally filtered by exact day label.
func (s *TaskService) List(ctx context.Context, day *string) ([]models.TaskDB, error) {
	return s.tasks.List(ctx, day)
}

// Toggle flips the completion state of a task. Completing records the acting
// user and timestamp; un-completing clears both. The three completion fields
// always change together in a single update.
func (s *TaskService) Toggle(ctx context.Context, taskID, actingUserID int64) (*models.TaskDB, error) {
	user, err := s.users.GetByID(ctx, actingUserID)
	if err != nil {
		logger.Log.Errorw("failed to get acting user", "user_id", actingUserID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		logger.Log.Errorw("failed to get task", "task_id", taskID, "error", err)
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if task.IsCompleted {
		task.IsCompleted = false
		task.CompletedByUserID = nil
		task.CompletedAt = nil
	} else {
		now := time.Now().UTC()
		task.IsCompleted = true
		task.CompletedByUserID = &actingUserID
		task.CompletedAt = &now
	}

	if err := s.writer.Update(ctx, task); err != nil {
		logger.Log.Errorw("failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	s.invalidateCache(ctx)
	s.publishEvent(ctx, models.TaskEvent{
		EventID:   uuid.NewString(),
		TaskID:    task.ID,
		UserID:    actingUserID,
		Completed: task.IsCompleted,
		Points:    task.Points,
		Timestamp: time.Now().Unix(),
	})

	return task, nil
}

// Create adds a new task. Points defaults via the chore name table when the
// caller does not supply an explicit value.
func (s *TaskService) Create(ctx context.Context, day, taskName string, assignedUserID int64, points *int) (*models.TaskDB, error) {
	if !models.IsValidDay(day) {
		return nil, ErrInvalidDay
	}

	user, err := s.users.GetByID(ctx, assignedUserID)
	if err != nil {
		logger.Log.Errorw("failed to get assignee", "user_id", assignedUserID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	p := models.PointsFor(taskName)
	if points != nil {
		p = *points
	}

	task := &models.TaskDB{
		Day:            day,
		TaskName:       taskName,
		Points:         p,
		AssignedUserID: assignedUserID,
	}
	if err := s.writer.Save(ctx, task); err != nil {
		logger.Log.Errorw("failed to save task", "task_name", taskName, "error", err)
		return nil, err
	}

	s.invalidateCache(ctx)
	return task, nil
}

// Update changes only the supplied fields of an existing task.
func (s *TaskService) Update(ctx context.Context, taskID int64, upd TaskUpdate) (*models.TaskDB, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		logger.Log.Errorw("failed to get task", "task_id", taskID, "error", err)
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if upd.Day != nil {
		if !models.IsValidDay(*upd.Day) {
			return nil, ErrInvalidDay
		}
		task.Day = *upd.Day
	}
	if upd.TaskName != nil {
		task.TaskName = *upd.TaskName
	}
	if upd.AssignedUserID != nil {
		user, err := s.users.GetByID(ctx, *upd.AssignedUserID)
		if err != nil {
			logger.Log.Errorw("failed to get assignee", "user_id", *upd.AssignedUserID, "error", err)
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		task.AssignedUserID = *upd.AssignedUserID
	}

	if err := s.writer.Update(ctx, task); err != nil {
		logger.Log.Errorw("failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	s.invalidateCache(ctx)
	return task, nil
}

// Delete removes a task permanently.
func (s *TaskService) Delete(ctx context.Context, taskID int64) error {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		logger.Log.Errorw("failed to get task", "task_id", taskID, "error", err)
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}

	if err := s.writer.Delete(ctx, taskID); err != nil {
		logger.Log.Errorw("failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

// invalidateCache drops derived payloads; a cache failure never fails the write.
func (s *TaskService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate stats cache", "error", err)
	}
}

// publishEvent publishes a completion event to Kafka.
func (s *TaskService) publishEvent(ctx context.Context, event models.TaskEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal task event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish task event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Task event published to Kafka", "event_id", event.EventID, "task_id", event.TaskID, "completed", event.Completed)
	}
}
