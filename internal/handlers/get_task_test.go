package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/imaciel7/lar-doce-api/internal/models"
	"github.com/imaciel7/lar-doce-api/internal/services"
)

func TestGetTaskHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTaskGetter(ctrl)

	task := &models.TaskDB{ID: 7, Day: models.Sabado, TaskName: "Limpar o banheiro", Points: 3, AssignedUserID: 2}

	tests := []struct {
		name         string
		target       string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:   "success",
			target: "/tasks/7",
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), int64(7)).
					Return(task, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &TaskResponse{Task: task},
		},
		{
			name:   "unknown task",
			target: "/tasks/99",
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), int64(99)).
					Return(nil, services.ErrTaskNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &ErrorResponse{Error: "Task not found"},
		},
		{
			name:         "non-numeric id",
			target:       "/tasks/abc",
			mockSetup:    func() {},
			expectedCode: http.StatusNotFound,
			expectedBody: &ErrorResponse{Error: "Task not found"},
		},
	}

	router := chi.NewRouter()
	router.Get("/tasks/{id}", NewGetTaskHandler(mockSvc))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &TaskResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
