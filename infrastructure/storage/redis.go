package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/vfg2006/mua-studio-api/internal/config"
)

const redisTimeout = 5 * time.Second

// RedisBackend guarda cada slot como uma chave string no Redis, sem TTL
type RedisBackend struct {
	client *goRedis.Client
	prefix string
}

// NewRedisClient cria o client Redis e faz um health check
func NewRedisClient(cfg config.Redis) (*goRedis.Client, error) {
	opts, err := goRedis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parsing redis url")
	}

	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := goRedis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(err, "pinging redis")
	}

	return client, nil
}

func NewRedisBackend(client *goRedis.Client, prefix string) *RedisBackend {
	return &RedisBackend{
		client: client,
		prefix: prefix,
	}
}

func (r *RedisBackend) Get(slot string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	payload, err := r.client.Get(ctx, r.key(slot)).Bytes()
	if err != nil {
		if err == goRedis.Nil {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "reading slot %s", slot)
	}

	return payload, true, nil
}

func (r *RedisBackend) Set(slot string, payload []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	err := r.client.Set(ctx, r.key(slot), payload, 0).Err()
	return errors.Wrapf(err, "writing slot %s", slot)
}

func (r *RedisBackend) Delete(slot string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	err := r.client.Del(ctx, r.key(slot)).Err()
	return errors.Wrapf(err, "deleting slot %s", slot)
}

func (r *RedisBackend) Close() error {
	return r.client.Close()
}

func (r *RedisBackend) key(slot string) string {
	return r.prefix + slot
}
