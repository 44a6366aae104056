package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/imaciel7/lar-doce-api/internal/models"
	"github.com/imaciel7/lar-doce-api/internal/services"
)

func TestCreateTaskHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTaskCreator(ctrl)

	created := &models.TaskDB{ID: 10, Day: models.Quarta, TaskName: "Regar as plantas", Points: 1, AssignedUserID: 3}
	five := 5

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success with defaulted points",
			inputBody: CreateTaskRequest{
				Day:            models.Quarta,
				TaskName:       "Regar as plantas",
				AssignedUserID: 3,
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), models.Quarta, "Regar as plantas", int64(3), gomock.Nil()).
					Return(created, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &CreateTaskResponse{
				Success: true,
				Message: "Task created successfully",
				Task:    created,
			},
		},
		{
			name: "success with explicit points",
			inputBody: CreateTaskRequest{
				Day:            models.Quarta,
				TaskName:       "Regar as plantas",
				AssignedUserID: 3,
				Points:         &five,
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), models.Quarta, "Regar as plantas", int64(3), &five).
					Return(created, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &CreateTaskResponse{
				Success: true,
				Message: "Task created successfully",
				Task:    created,
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "invalid request body"},
		},
		{
			name: "missing fields",
			inputBody: CreateTaskRequest{
				Day: models.Quarta,
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "day, task_name and assigned_user_id are required"},
		},
		{
			name: "invalid day label",
			inputBody: CreateTaskRequest{
				Day:            "Monday",
				TaskName:       "Regar as plantas",
				AssignedUserID: 3,
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), "Monday", "Regar as plantas", int64(3), gomock.Nil()).
					Return(nil, services.ErrInvalidDay)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "invalid day label"},
		},
		{
			name: "unknown assignee",
			inputBody: CreateTaskRequest{
				Day:            models.Quarta,
				TaskName:       "Regar as plantas",
				AssignedUserID: 99,
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), models.Quarta, "Regar as plantas", int64(99), gomock.Nil()).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &ErrorResponse{Error: "User not found"},
		},
		{
			name: "internal error",
			inputBody: CreateTaskRequest{
				Day:            models.Quarta,
				TaskName:       "Regar as plantas",
				AssignedUserID: 3,
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), models.Quarta, "Regar as plantas", int64(3), gomock.Nil()).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewCreateTaskHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusCreated:
				respBody = &CreateTaskResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
