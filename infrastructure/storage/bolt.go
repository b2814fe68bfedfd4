package storage

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// BoltBackend persiste os slots em um arquivo BoltDB, um par chave-valor por coleção
type BoltBackend struct {
	db     *bolt.DB
	bucket []byte
}

// OpenBolt inicializa o arquivo BoltDB e garante que o bucket exista
func OpenBolt(path string, bucket string) (*BoltBackend, error) {
	if bucket == "" {
		bucket = "slots"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "creating bolt directory")
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "opening bolt file %s", path)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating bolt bucket")
	}

	return &BoltBackend{
		db:     db,
		bucket: []byte(bucket),
	}, nil
}

func (b *BoltBackend) Get(slot string) ([]byte, bool, error) {
	if b == nil || b.db == nil {
		return nil, false, bolt.ErrDatabaseNotOpen
	}

	var payload []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(b.bucket).Get([]byte(slot))
		if v != nil {
			// o slice do bolt só é válido durante a transação
			payload = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, errors.Wrapf(err, "reading slot %s", slot)
	}

	return payload, payload != nil, nil
}

func (b *BoltBackend) Set(slot string, payload []byte) error {
	if b == nil || b.db == nil {
		return bolt.ErrDatabaseNotOpen
	}

	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(b.bucket).Put([]byte(slot), payload)
	})
	return errors.Wrapf(err, "writing slot %s", slot)
}

func (b *BoltBackend) Delete(slot string) error {
	if b == nil || b.db == nil {
		return bolt.ErrDatabaseNotOpen
	}

	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(b.bucket).Delete([]byte(slot))
	})
	return errors.Wrapf(err, "deleting slot %s", slot)
}

// Close fecha o arquivo BoltDB
func (b *BoltBackend) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}
