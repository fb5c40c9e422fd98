package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	// recordKeyPrefix namespaces record keys in a shared Redis instance.
	recordKeyPrefix = "edgekit:graph:"
	// indexKey is the set of stored record IDs, used by List.
	indexKey = "edgekit:graphs"
)

// RedisStore stores records in Redis, BSON-encoded. Suitable when the server
// must survive restarts or share graphs across instances.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis at addr and verifies the connection.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis %s: %w", addr, err)
	}
	return &RedisStore{client: client}, nil
}

// Get retrieves a record by ID.
func (s *RedisStore) Get(ctx context.Context, id string) (*Record, error) {
	data, err := s.client.Get(ctx, recordKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", id, err)
	}

	var rec Record
	if err := bson.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", id, err)
	}
	return &rec, nil
}

// Put stores a record and indexes its ID.
func (s *RedisStore) Put(ctx context.Context, rec *Record) error {
	data, err := bson.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", rec.ID, err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, recordKeyPrefix+rec.ID, data, 0)
	pipe.SAdd(ctx, indexKey, rec.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("put %s: %w", rec.ID, err)
	}
	return nil
}

// Delete removes a record and unindexes its ID.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	removed, err := s.client.Del(ctx, recordKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	if removed == 0 {
		return ErrNotFound
	}
	if err := s.client.SRem(ctx, indexKey, id).Err(); err != nil {
		return fmt.Errorf("unindex %s: %w", id, err)
	}
	return nil
}

// List returns all records, newest first.
func (s *RedisStore) List(ctx context.Context) ([]*Record, error) {
	ids, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}

	out := make([]*Record, 0, len(ids))
	for _, id := range ids {
		rec, err := s.Get(ctx, id)
		if errors.Is(err, ErrNotFound) {
			// Index entry outlived its record; skip it.
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	sortNewestFirst(out)
	return out, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
