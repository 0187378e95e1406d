package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"interest-calculator/domain"
)

const sessionKeyPrefix = "interest:session:"

// RedisSessionRepository keeps sessions in Redis as JSON, expiring ttl after the last save.
type RedisSessionRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisSessionRepository(addr string, ttl time.Duration) *RedisSessionRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return NewRedisSessionRepositoryWithClient(rdb, ttl)
}

func NewRedisSessionRepositoryWithClient(client redis.UniversalClient, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (r *RedisSessionRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisSessionRepository) Get(ctx context.Context, id string) (domain.Session, error) {
	val, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to read session %s: %w", id, err)
	}

	var session domain.Session
	if err := json.Unmarshal(val, &session); err != nil {
		return domain.Session{}, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return session, nil
}

func (r *RedisSessionRepository) Save(ctx context.Context, session domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", session.ID, err)
	}
	return r.client.Set(ctx, sessionKey(session.ID), payload, r.ttl).Err()
}

func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *RedisSessionRepository) Close() error {
	return r.client.Close()
}
