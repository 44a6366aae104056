package services

import (
	"context"
	"sort"

	"github.com/imaciel7/lar-doce-api/internal/logger"
	"github.com/imaciel7/lar-doce-api/internal/models"
)

// StatsCache caches computed ranking and stats payloads.
type StatsCache interface {
	GetRanking(ctx context.Context) ([]models.RankingEntry, error)
	SetRanking(ctx context.Context, ranking []models.RankingEntry) error
	GetStats(ctx context.Context) (*models.Stats, error)
	SetStats(ctx context.Context, stats *models.Stats) error
}

// StatsService derives the points ranking and progress statistics
// from the current task board state.
type StatsService struct {
	users UserReader
	tasks TaskReader
	cache StatsCache
}

// NewStatsService creates a new StatsService.
func NewStatsService(users UserReader, tasks TaskReader, cache StatsCache) *StatsService {
	return &StatsService{
		users: users,
		tasks: tasks,
		cache: cache,
	}
}

// ComputeRanking returns every known user ordered by accumulated points
// (descending), ties broken by username ascending. Position is 1-based.
func (s *StatsService) ComputeRanking(ctx context.Context) ([]models.RankingEntry, error) {
	if s.cache != nil {
		if ranking, err := s.cache.GetRanking(ctx); err == nil {
			return ranking, nil
		}
	}

	users, err := s.users.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}

	tasks, err := s.tasks.List(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to list tasks", "error", err)
		return nil, err
	}

	points := make(map[int64]int)
	counts := make(map[int64]int)
	for _, task := range tasks {
		if !task.IsCompleted || task.CompletedByUserID == nil {
			continue
		}
		points[*task.CompletedByUserID] += task.Points
		counts[*task.CompletedByUserID]++
	}

	ranking := make([]models.RankingEntry, 0, len(users))
	for _, user := range users {
		ranking = append(ranking, models.RankingEntry{
			UserID:         user.ID,
			Name:           user.Name,
			Username:       user.Username,
			AvatarColor:    user.AvatarColor,
			Points:         points[user.ID],
			TasksCompleted: counts[user.ID],
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Points != ranking[j].Points {
			return ranking[i].Points > ranking[j].Points
		}
		return ranking[i].Username < ranking[j].Username
	})
	for i := range ranking {
		ranking[i].Position = i + 1
	}

	if s.cache != nil {
		if err := s.cache.SetRanking(ctx, ranking); err != nil {
			logger.Log.Errorw("failed to cache ranking", "error", err)
		}
	}

	return ranking, nil
}

// ComputeStats returns overall and per-day completion progress.
// Every canonical day appears in the result, including days with no tasks.
func (s *StatsService) ComputeStats(ctx context.Context) (*models.Stats, error) {
	if s.cache != nil {
		if stats, err := s.cache.GetStats(ctx); err == nil {
			return stats, nil
		}
	}

	users, err := s.users.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}

	tasks, err := s.tasks.List(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to list tasks", "error", err)
		return nil, err
	}

	stats := &models.Stats{
		TotalTasks: len(tasks),
		TotalUsers: len(users),
		StatsByDay: make(map[string]models.DayStats, len(models.Days)),
	}

	totalByDay := make(map[string]int)
	completedByDay := make(map[string]int)
	for _, task := range tasks {
		totalByDay[task.Day]++
		if task.IsCompleted {
			stats.CompletedTasks++
			completedByDay[task.Day]++
		}
	}

	if stats.TotalTasks > 0 {
		stats.OverallProgress = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	}

	for _, day := range models.Days {
		ds := models.DayStats{
			Total:     totalByDay[day],
			Completed: completedByDay[day],
		}
		if ds.Total > 0 {
			ds.Progress = float64(ds.Completed) / float64(ds.Total) * 100
		}
		stats.StatsByDay[day] = ds
	}

	if s.cache != nil {
		if err := s.cache.SetStats(ctx, stats); err != nil {
			logger.Log.Errorw("failed to cache stats", "error", err)
		}
	}

	return stats, nil
}
