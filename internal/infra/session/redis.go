package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var _ shared.SessionStore = (*RedisStore)(nil)

const keyPrefix = "booking:session:"

// RedisStore keeps sessions as JSON documents with a sliding TTL. Save uses
// WATCH/MULTI so concurrent writers of one session cannot both win.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func sessionKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (r *RedisStore) Create(ctx context.Context, s *shared.Session) error {
	s.Version = 1
	payload, err := json.Marshal(s)
	if err != nil {
		return errs.Wrap(err, "encode session")
	}

	ok, err := r.client.SetNX(ctx, sessionKey(s.ID), payload, r.ttl).Result()
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindCacheFailure, "failed to create session", err)
	}
	if !ok {
		return errs.Wrapf(errs.ErrConcurrentModification, "session %s already exists", s.ID)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id uuid.UUID) (*shared.Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errs.ErrSessionNotFound
	}
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCacheFailure, "failed to load session", err)
	}
	return r.decode(raw)
}

func (r *RedisStore) Save(ctx context.Context, s *shared.Session) error {
	key := sessionKey(s.ID)
	expected := s.Version

	next := *s
	next.Version = expected + 1
	payload, err := json.Marshal(&next)
	if err != nil {
		return errs.Wrap(err, "encode session")
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return errs.ErrSessionNotFound
		}
		if err != nil {
			return err
		}
		current, err := r.decode(raw)
		if err != nil {
			return err
		}
		if current.Version != expected {
			return errs.ErrConcurrentModification
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, r.ttl)
			return nil
		})
		return err
	}, key)

	switch {
	case err == nil:
		s.Version = next.Version
		return nil
	case errors.Is(err, redis.TxFailedErr):
		return errs.ErrConcurrentModification
	case errors.Is(err, errs.ErrSessionNotFound), errors.Is(err, errs.ErrConcurrentModification):
		return err
	case infra.IsKind(err, infra.KindCorruptRecord):
		return err
	default:
		return infra.WrapRepoErr(r.logger, infra.KindCacheFailure, "failed to save session", err)
	}
}

func (r *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindCacheFailure, "failed to delete session", err)
	}
	return nil
}

func (r *RedisStore) decode(raw []byte) (*shared.Session, error) {
	var s shared.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorruptRecord, "failed to decode session", err)
	}
	return &s, nil
}
