package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/imaciel7/lar-doce-api/internal/logger"
	"github.com/imaciel7/lar-doce-api/internal/models"
)

const (
	rankingKey = "ranking"
	statsKey   = "stats"
)

// StatsCacheRepository caches computed ranking and stats payloads in Redis.
// Entries expire after a short TTL and are invalidated on every task write.
type StatsCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewStatsCacheRepository creates a new repository instance with the given TTL.
func NewStatsCacheRepository(client *redis.Client, expiration time.Duration) *StatsCacheRepository {
	return &StatsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetRanking fetches the cached ranking, or an error on cache miss.
func (r *StatsCacheRepository) GetRanking(ctx context.Context) ([]models.RankingEntry, error) {
	val, err := r.client.Get(ctx, rankingKey).Result()
	if err != nil {
		logger.Log.Infow("cache read miss", "key", rankingKey, "error", err)
		if err == redis.Nil {
			return nil, fmt.Errorf("ranking not found in cache")
		}
		return nil, err
	}

	var ranking []models.RankingEntry
	if err := json.Unmarshal([]byte(val), &ranking); err != nil {
		logger.Log.Errorw("cache entry corrupt", "key", rankingKey, "error", err)
		return nil, err
	}

	logger.Log.Infow("cache read hit", "key", rankingKey, "entries", len(ranking))
	return ranking, nil
}

// SetRanking caches the ranking with the repository TTL.
func (r *StatsCacheRepository) SetRanking(ctx context.Context, ranking []models.RankingEntry) error {
	data, err := json.Marshal(ranking)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, rankingKey, data, r.exp).Err()
	logger.Log.Infow("cache write", "key", rankingKey, "entries", len(ranking), "error", err)
	return err
}

// GetStats fetches the cached stats, or an error on cache miss.
func (r *StatsCacheRepository) GetStats(ctx context.Context) (*models.Stats, error) {
	val, err := r.client.Get(ctx, statsKey).Result()
	if err != nil {
		logger.Log.Infow("cache read miss", "key", statsKey, "error", err)
		if err == redis.Nil {
			return nil, fmt.Errorf("stats not found in cache")
		}
		return nil, err
	}

	var stats models.Stats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		logger.Log.Errorw("cache entry corrupt", "key", statsKey, "error", err)
		return nil, err
	}

	logger.Log.Infow("cache read hit", "key", statsKey)
	return &stats, nil
}

// SetStats caches the stats with the repository TTL.
func (r *StatsCacheRepository) SetStats(ctx context.Context, stats *models.Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, statsKey, data, r.exp).Err()
	logger.Log.Infow("cache write", "key", statsKey, "error", err)
	return err
}

// Invalidate drops both cached payloads. Called after every task mutation.
func (r *StatsCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, rankingKey, statsKey).Err()
	logger.Log.Infow("cache invalidated", "keys", []string{rankingKey, statsKey}, "error", err)
	return err
}
