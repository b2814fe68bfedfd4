package storage

import (
	"github.com/pkg/errors"
)

//go:generate mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks

const (
	DriverMemory   = "memory"
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// ErrUnknownDriver é retornado quando o driver configurado não é suportado
var ErrUnknownDriver = errors.New("unknown storage driver")

// Backend é o armazenamento chave-valor durável: cada slot guarda uma coleção serializada inteira
type Backend interface {
	// Get devolve o conteúdo do slot e se ele existe
	Get(slot string) ([]byte, bool, error)
	// Set substitui o conteúdo inteiro do slot
	Set(slot string, payload []byte) error
	Delete(slot string) error
	Close() error
}
