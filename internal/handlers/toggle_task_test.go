package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/imaciel7/lar-doce-api/internal/models"
	"github.com/imaciel7/lar-doce-api/internal/services"
)

func TestToggleTaskHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTaskToggler(ctrl)

	completedBy := int64(2)
	completed := &models.TaskDB{ID: 1, Day: models.Segunda, TaskName: "Lavar a louça", Points: 2, AssignedUserID: 1, IsCompleted: true, CompletedByUserID: &completedBy}
	pending := &models.TaskDB{ID: 1, Day: models.Segunda, TaskName: "Lavar a louça", Points: 2, AssignedUserID: 1}

	tests := []struct {
		name         string
		target       string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "marks completed",
			target:    "/tasks/1/toggle",
			inputBody: ToggleTaskRequest{UserID: 2},
			mockSetup: func() {
				mockSvc.EXPECT().
					Toggle(gomock.Any(), int64(1), int64(2)).
					Return(completed, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &ToggleTaskResponse{
				Success: true,
				Message: "Task marked as completed",
				Task:    completed,
			},
		},
		{
			name:      "marks not completed",
			target:    "/tasks/1/toggle",
			inputBody: ToggleTaskRequest{UserID: 2},
			mockSetup: func() {
				mockSvc.EXPECT().
					Toggle(gomock.Any(), int64(1), int64(2)).
					Return(pending, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &ToggleTaskResponse{
				Success: true,
				Message: "Task marked as not completed",
				Task:    pending,
			},
		},
		{
			name:         "missing user_id",
			target:       "/tasks/1/toggle",
			inputBody:    ToggleTaskRequest{},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "user_id is required"},
		},
		{
			name:         "invalid JSON",
			target:       "/tasks/1/toggle",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "invalid request body"},
		},
		{
			name:      "unknown task",
			target:    "/tasks/99/toggle",
			inputBody: ToggleTaskRequest{UserID: 2},
			mockSetup: func() {
				mockSvc.EXPECT().
					Toggle(gomock.Any(), int64(99), int64(2)).
					Return(nil, services.ErrTaskNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &ErrorResponse{Error: "Task not found"},
		},
		{
			name:      "unknown acting user",
			target:    "/tasks/1/toggle",
			inputBody: ToggleTaskRequest{UserID: 77},
			mockSetup: func() {
				mockSvc.EXPECT().
					Toggle(gomock.Any(), int64(1), int64(77)).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &ErrorResponse{Error: "User not found"},
		},
		{
			name:         "non-numeric id",
			target:       "/tasks/abc/toggle",
			inputBody:    ToggleTaskRequest{UserID: 2},
			mockSetup:    func() {},
			expectedCode: http.StatusNotFound,
			expectedBody: &ErrorResponse{Error: "Task not found"},
		},
		{
			name:      "internal error",
			target:    "/tasks/1/toggle",
			inputBody: ToggleTaskRequest{UserID: 2},
			mockSetup: func() {
				mockSvc.EXPECT().
					Toggle(gomock.Any(), int64(1), int64(2)).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error"},
		},
	}

	router := chi.NewRouter()
	router.Post("/tasks/{id}/toggle", NewToggleTaskHandler(mockSvc))

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

			req := httptest.NewRequest(http.MethodPost, tt.target, bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &ToggleTaskResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
