package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/imaciel7/lar-doce-api/internal/models"
	"github.com/imaciel7/lar-doce-api/internal/services"
)

type taskServiceMocks struct {
	users  *services.MockUserReader
	tasks  *services.MockTaskReader
	writer *services.MockTaskWriter
	cache  *services.MockCacheInvalidator
	kafka  *services.MockKafkaWriter
}

func newTaskService(ctrl *gomock.Controller) (*services.TaskService, taskServiceMocks) {
	m := taskServiceMocks{
		users:  services.NewMockUserReader(ctrl),
		tasks:  services.NewMockTaskReader(ctrl),
		writer: services.NewMockTaskWriter(ctrl),
		cache:  services.NewMockCacheInvalidator(ctrl),
		kafka:  services.NewMockKafkaWriter(ctrl),
	}
	svc := services.NewTaskService(m.users, m.tasks, m.writer, m.cache, m.kafka)
	return svc, m
}

func TestTaskService_Toggle_CompletesAndUncompletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTaskService(ctrl)
	ctx := context.Background()

	user := &models.UserDB{ID: 2, Name: "Beatriz", Username: "beatriz"}
	task := &models.TaskDB{ID: 1, Day: models.Segunda, TaskName: "Lavar a louça", Points: 2, AssignedUserID: 1}

	m.users.EXPECT().GetByID(gomock.Any(), int64(2)).Return(user, nil).Times(2)
	m.tasks.EXPECT().GetByID(gomock.Any(), int64(1)).DoAndReturn(
		func(_ context.Context, _ int64) (*models.TaskDB, error) {
			cp := *task
			return &cp, nil
		},
	).Times(2)
	m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(2)
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	var persisted *models.TaskDB
	m.writer.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, upd *models.TaskDB) error {
			cp := *upd
			persisted = &cp
			task = &cp
			return nil
		},
	).Times(2)

	// First toggle marks the task completed by the acting user.
	got, err := svc.Toggle(ctx, 1, 2)
	assert.NoError(t, err)
	assert.True(t, got.IsCompleted)
	assert.NotNil(t, got.CompletedByUserID)
	assert.Equal(t, int64(2), *got.CompletedByUserID)
	assert.NotNil(t, got.CompletedAt)
	assert.Equal(t, got, persisted)

	// Second toggle restores the original pending tuple.
	got, err = svc.Toggle(ctx, 1, 2)
	assert.NoError(t, err)
	assert.False(t, got.IsCompleted)
	assert.Nil(t, got.CompletedByUserID)
	assert.Nil(t, got.CompletedAt)
}

func TestTaskService_Toggle_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTaskService(ctrl)
	ctx := context.Background()

	m.users.EXPECT().GetByID(gomock.Any(), int64(999)).Return(nil, nil)
	_, err := svc.Toggle(ctx, 1, 999)
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	m.users.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&models.UserDB{ID: 2}, nil)
	m.tasks.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, nil)
	_, err = svc.Toggle(ctx, 404, 2)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)
}

func TestTaskService_Toggle_UpdateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTaskService(ctrl)
	ctx := context.Background()

	m.users.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&models.UserDB{ID: 2}, nil)
	m.tasks.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.TaskDB{ID: 1}, nil)
	m.writer.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

	_, err := svc.Toggle(ctx, 1, 2)
	assert.EqualError(t, err, "db error")
}

func TestTaskService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTaskService(ctrl)
	ctx := context.Background()

	explicit := 5

	tests := []struct {
		name       string
		day        string
		taskName   string
		assignee   int64
		points     *int
		mockSetup  func()
		wantPoints int
		wantErr    error
	}{
		{
			name:     "points default by chore name",
			day:      models.Quarta,
			taskName: "Lavar o banheiro",
			assignee: 4,
			mockSetup: func() {
				m.users.EXPECT().GetByID(gomock.Any(), int64(4)).Return(&models.UserDB{ID: 4}, nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
			},
			wantPoints: 3,
		},
		{
			name:     "unknown chore name defaults to one point",
			day:      models.Domingo,
			taskName: "Regar as plantas",
			assignee: 1,
			mockSetup: func() {
				m.users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.UserDB{ID: 1}, nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
			},
			wantPoints: 1,
		},
		{
			name:     "explicit points are authoritative",
			day:      models.Sexta,
			taskName: "Lavar a louça",
			assignee: 2,
			points:   &explicit,
			mockSetup: func() {
				m.users.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&models.UserDB{ID: 2}, nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
			},
			wantPoints: 5,
		},
		{
			name:      "invalid day label",
			day:       "Monday",
			taskName:  "Lavar a louça",
			assignee:  1,
			mockSetup: func() {},
			wantErr:   services.ErrInvalidDay,
		},
		{
			name:     "unknown assignee",
			day:      models.Segunda,
			taskName: "Lavar a louça",
			assignee: 999,
			mockSetup: func() {
				m.users.EXPECT().GetByID(gomock.Any(), int64(999)).Return(nil, nil)
			},
			wantErr: services.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			task, err := svc.Create(ctx, tt.day, tt.taskName, tt.assignee, tt.points)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, task)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantPoints, task.Points)
			assert.Equal(t, tt.day, task.Day)
			assert.Equal(t, tt.assignee, task.AssignedUserID)
			assert.False(t, task.IsCompleted)
		})
	}
}

func TestTaskService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTaskService(ctrl)
	ctx := context.Background()

	day := models.Terca
	name := "Varrer a casa"
	assignee := int64(3)

	t.Run("only supplied fields change", func(t *testing.T) {
		m.tasks.EXPECT().GetByID(gomock.Any(), int64(7)).Return(
			&models.TaskDB{ID: 7, Day: models.Segunda, TaskName: "Tirar o lixo", Points: 1, AssignedUserID: 2}, nil)
		m.writer.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		task, err := svc.Update(ctx, 7, services.TaskUpdate{Day: &day})
		assert.NoError(t, err)
		assert.Equal(t, models.Terca, task.Day)
		assert.Equal(t, "Tirar o lixo", task.TaskName)
		assert.Equal(t, int64(2), task.AssignedUserID)
		assert.Equal(t, 1, task.Points)
	})

	t.Run("reassignment checks the new assignee", func(t *testing.T) {
		m.tasks.EXPECT().GetByID(gomock.Any(), int64(7)).Return(
			&models.TaskDB{ID: 7, Day: models.Segunda, TaskName: "Tirar o lixo", AssignedUserID: 2}, nil)
		m.users.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.UserDB{ID: 3}, nil)
		m.writer.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		task, err := svc.Update(ctx, 7, services.TaskUpdate{TaskName: &name, AssignedUserID: &assignee})
		assert.NoError(t, err)
		assert.Equal(t, "Varrer a casa", task.TaskName)
		assert.Equal(t, int64(3), task.AssignedUserID)
	})

	t.Run("unknown task", func(t *testing.T) {
		m.tasks.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, nil)

		_, err := svc.Update(ctx, 404, services.TaskUpdate{Day: &day})
		assert.ErrorIs(t, err, services.ErrTaskNotFound)
	})

	t.Run("unknown new assignee", func(t *testing.T) {
		unknown := int64(999)
		m.tasks.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&models.TaskDB{ID: 7}, nil)
		m.users.EXPECT().GetByID(gomock.Any(), int64(999)).Return(nil, nil)

		_, err := svc.Update(ctx, 7, services.TaskUpdate{AssignedUserID: &unknown})
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}

func TestTaskService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTaskService(ctrl)
	ctx := context.Background()

	m.tasks.EXPECT().GetByID(gomock.Any(), int64(9)).Return(&models.TaskDB{ID: 9}, nil)
	m.writer.EXPECT().Delete(gomock.Any(), int64(9)).Return(nil)
	m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
	assert.NoError(t, svc.Delete(ctx, 9))

	// Deleting again fails once the record is gone.
	m.tasks.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, nil)
	assert.ErrorIs(t, svc.Delete(ctx, 9), services.ErrTaskNotFound)
}

func TestTaskService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTaskService(ctrl)
	ctx := context.Background()

	task := &models.TaskDB{ID: 5, Day: models.Quinta, TaskName: "Limpar o chão"}
	m.tasks.EXPECT().GetByID(gomock.Any(), int64(5)).Return(task, nil)
	got, err := svc.Get(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, task, got)

	m.tasks.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, nil)
	_, err = svc.Get(ctx, 404)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)
}
