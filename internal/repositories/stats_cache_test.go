package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/imaciel7/lar-doce-api/internal/models"
)

func TestStatsCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewStatsCacheRepository(rdb, 2*time.Second)

	ranking := []models.RankingEntry{
		{UserID: 2, Name: "Beatriz", Username: "beatriz", AvatarColor: "bg-pink-500", Points: 5, TasksCompleted: 2, Position: 1},
		{UserID: 1, Name: "Igor", Username: "igor", AvatarColor: "bg-sky-500", Points: 1, TasksCompleted: 1, Position: 2},
	}
	stats := &models.Stats{
		TotalTasks:      10,
		CompletedTasks:  3,
		TotalUsers:      2,
		OverallProgress: 30,
		StatsByDay: map[string]models.DayStats{
			models.Segunda: {Total: 5, Completed: 3, Progress: 60},
		},
	}

	t.Run("Set and Get ranking", func(t *testing.T) {
		err := repo.SetRanking(ctx, ranking)
		assert.NoError(t, err)

		got, err := repo.GetRanking(ctx)
		assert.NoError(t, err)
		assert.Equal(t, ranking, got)
	})

	t.Run("Set and Get stats", func(t *testing.T) {
		err := repo.SetStats(ctx, stats)
		assert.NoError(t, err)

		got, err := repo.GetStats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("Invalidate drops both keys", func(t *testing.T) {
		assert.NoError(t, repo.SetRanking(ctx, ranking))
		assert.NoError(t, repo.SetStats(ctx, stats))

		assert.NoError(t, repo.Invalidate(ctx))

		_, err := repo.GetRanking(ctx)
		assert.Error(t, err)
		_, err = repo.GetStats(ctx)
		assert.Error(t, err)
	})

	t.Run("Entries expire after the TTL", func(t *testing.T) {
		assert.NoError(t, repo.SetRanking(ctx, ranking))

		time.Sleep(3 * time.Second)

		_, err := repo.GetRanking(ctx)
		assert.Error(t, err)
	})
}
