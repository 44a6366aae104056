package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/imaciel7/lar-doce-api/internal/logger"
	"github.com/imaciel7/lar-doce-api/internal/models"
)

type TaskReadRepository struct {
	db *sqlx.DB
}

func NewTaskReadRepository(db *sqlx.DB) *TaskReadRepository {
	return &TaskReadRepository{db: db}
}

// GetByID returns the task with the given id, or nil when absent.
func (r *TaskReadRepository) GetByID(ctx context.Context, id int64) (*models.TaskDB, error) {
	const query = `
		SELECT id, day, task_name, points, assigned_user_id,
		       is_completed, completed_by_user_id, completed_at, created_at
		FROM tasks
		WHERE id = $1
	`

	var task models.TaskDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &task, query, id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// List returns tasks in insertion order, optionally filtered by exact day label.
func (r *TaskReadRepository) List(ctx context.Context, day *string) ([]models.TaskDB, error) {
	const query = `
		SELECT id, day, task_name, points, assigned_user_id,
		       is_completed, completed_by_user_id, completed_at, created_at
		FROM tasks
		WHERE ($1::VARCHAR IS NULL OR day = $1)
		ORDER BY id
	`

	var tasks []models.TaskDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &tasks, query, day)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{day},
		"count", len(tasks),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return tasks, nil
}

type TaskWriteRepository struct {
	db *sqlx.DB
}

func NewTaskWriteRepository(db *sqlx.DB) *TaskWriteRepository {
	return &TaskWriteRepository{db: db}
}

// Save inserts a new task and fills in its generated id and creation timestamp.
func (r *TaskWriteRepository) Save(ctx context.Context, task *models.TaskDB) error {
	const query = `
		INSERT INTO tasks (day, task_name, points, assigned_user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	args := []any{task.Day, task.TaskName, task.Points, task.AssignedUserID}

	err := executor(ctx, r.db).
		QueryRowxContext(ctx, query, args...).
		Scan(&task.ID, &task.CreatedAt)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Update persists every mutable field of the task in one statement,
// so the completion fields always change together.
func (r *TaskWriteRepository) Update(ctx context.Context, task *models.TaskDB) error {
	const query = `
		UPDATE tasks
		SET day = $2,
		    task_name = $3,
		    points = $4,
		    assigned_user_id = $5,
		    is_completed = $6,
		    completed_by_user_id = $7,
		    completed_at = $8
		WHERE id = $1
	`
	args := []any{
		task.ID, task.Day, task.TaskName, task.Points, task.AssignedUserID,
		task.IsCompleted, task.CompletedByUserID, task.CompletedAt,
	}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows_affected", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes the task with the given id.
func (r *TaskWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM tasks WHERE id = $1`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{id},
		"rows_affected", rowsAffected,
		"error", err,
	)

	return err
}
