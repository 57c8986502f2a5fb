package selectionstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Store holds the criteria selection set per company. The store is the sole
// source of truth for selections; they are not mirrored in Postgres.
type Store interface {
	Get(ctx context.Context, companyID uuid.UUID) ([]string, error)
	Save(ctx context.Context, companyID uuid.UUID, ids []string) error
}

func selectionKey(companyID uuid.UUID) string {
	return "selectedCriteria_" + companyID.String()
}

type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, companyID uuid.UUID) ([]string, error) {
	raw, err := s.client.Get(ctx, selectionKey(companyID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read selection set")
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, errors.Wrap(err, "failed to decode selection set")
	}
	return ids, nil
}

func (s *RedisStore) Save(ctx context.Context, companyID uuid.UUID, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return errors.Wrap(err, "failed to encode selection set")
	}
	if err := s.client.Set(ctx, selectionKey(companyID), raw, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to write selection set")
	}
	return nil
}

// MemoryStore backs tests and single-process setups without Redis.
type MemoryStore struct {
	mu   sync.RWMutex
	sets map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sets: map[string][]string{}}
}

func (s *MemoryStore) Get(ctx context.Context, companyID uuid.UUID) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.sets[selectionKey(companyID)]
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

func (s *MemoryStore) Save(ctx context.Context, companyID uuid.UUID, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]string, len(ids))
	copy(stored, ids)
	s.sets[selectionKey(companyID)] = stored
	return nil
}
