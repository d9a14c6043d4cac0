package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"booking-assistant/internal/domain/conversation"
	"booking-assistant/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "booking:session:"

// RedisStore persists sessions as JSON with a TTL so a conversation survives
// process restarts and idle sessions age out on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, id string) (*conversation.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, errs.ErrSessionNotFound
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to load session from redis")
	}

	var session conversation.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, errs.Wrap(err, "failed to decode session")
	}
	return &session, nil
}

func (s *RedisStore) Save(ctx context.Context, session *conversation.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		return errs.Wrap(err, "failed to encode session")
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+session.ID, b, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to save session to redis")
	}
	return nil
}
