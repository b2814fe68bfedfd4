package storage

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mua-studio-api/infrastructure/database/postgres"
	"github.com/vfg2006/mua-studio-api/internal/config"
)

// New abre o backend configurado em STORAGE_DRIVER
func New(ctx context.Context, cfg *config.Config) (Backend, error) {
	logrus.WithField("driver", cfg.Storage.Driver).Info("Abrindo backend de armazenamento")

	switch cfg.Storage.Driver {
	case DriverMemory:
		logrus.Warn("Backend em memória: os dados serão perdidos ao reiniciar")
		return NewMemoryBackend(), nil

	case DriverBolt, "":
		return OpenBolt(cfg.Storage.BoltPath, cfg.Storage.Bucket)

	case DriverPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, errors.Wrap(err, "connecting to postgres")
		}

		backend := NewPostgresBackend(conn)
		if err := backend.Migrate(); err != nil {
			conn.Close()
			return nil, err
		}
		return backend, nil

	case DriverRedis:
		client, err := NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewRedisBackend(client, cfg.Redis.Prefix), nil
	}

	return nil, errors.Wrapf(ErrUnknownDriver, "driver %q", cfg.Storage.Driver)
}
