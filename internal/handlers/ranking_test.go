package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/imaciel7/lar-doce-api/internal/models"
)

func TestRankingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRankingComputer(ctrl)

	ranking := []models.RankingEntry{
		{UserID: 2, Name: "Beatriz", Username: "beatriz", AvatarColor: "bg-pink-500", Points: 5, TasksCompleted: 2, Position: 1},
		{UserID: 1, Name: "Igor", Username: "igor", AvatarColor: "bg-sky-500", Points: 1, TasksCompleted: 1, Position: 2},
	}

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().ComputeRanking(gomock.Any()).Return(ranking, nil)

		req := httptest.NewRequest(http.MethodGet, "/ranking", nil)
		w := httptest.NewRecorder()

		NewRankingHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp RankingResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, ranking, resp.Ranking)
		assert.Equal(t, 2, resp.TotalUsers)
	})

	t.Run("empty ranking is an empty array", func(t *testing.T) {
		mockSvc.EXPECT().ComputeRanking(gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/ranking", nil)
		w := httptest.NewRecorder()

		NewRankingHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ranking":[],"total_users":0}`, w.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().ComputeRanking(gomock.Any()).Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/ranking", nil)
		w := httptest.NewRecorder()

		NewRankingHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
