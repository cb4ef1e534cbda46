package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/havenlink/haven-bot/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

// RedisStore persists sessions as JSON values with a TTL refreshed on every
// save. A ttl of zero stores sessions without expiry.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisStore(addr, password string, db int, ttl time.Duration, logger *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl, logger: logger}, nil
}

func (s *RedisStore) GetOrCreate(ctx context.Context, id string) (*models.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err == redis.Nil {
		now := time.Now()
		return &models.Session{ID: id, StartedAt: now, LastActivity: now}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading session %s: %w", id, err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// A corrupt value should not wedge the conversation; start over.
		s.logger.Warn("Discarding unreadable session", zap.String("session_id", id), zap.Error(err))
		now := time.Now()
		return &models.Session{ID: id, StartedAt: now, LastActivity: now}, nil
	}

	return &session, nil
}

func (s *RedisStore) Save(ctx context.Context, session *models.Session) error {
	session.LastActivity = time.Now()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error encoding session %s: %w", session.ID, err)
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+session.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("error saving session %s: %w", session.ID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
