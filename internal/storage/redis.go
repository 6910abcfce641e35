package storage

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"
)

// RedisStore is the alternative persistence backend for shared-terminal
// deployments where the client has no writable home directory. Keys are
// namespaced per user profile so two operators on the same Redis don't
// see each other's cart.
type RedisStore struct {
	client  *redis.Client
	profile string
}

func NewRedisStore(addr, password string, db int, profile string) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		return nil
	}

	if profile == "" {
		profile = "default"
	}
	return &RedisStore{client: client, profile: profile}
}

func (r *RedisStore) key(key string) string {
	return "shopclient:" + r.profile + ":" + key
}

func (r *RedisStore) Get(key string, dest interface{}) error {
	ctx := context.Background()
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		return ErrNotFound
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return ErrNotFound
	}
	return nil
}

func (r *RedisStore) Set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(context.Background(), r.key(key), data, 0).Err()
}

func (r *RedisStore) Delete(key string) error {
	return r.client.Del(context.Background(), r.key(key)).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
