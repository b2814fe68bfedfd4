package store

import (
	"strconv"
	"sync"
	"time"

	"github.com/vfg2006/mua-studio-api/infrastructure/storage"
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/pkg/log"
)

// DefaultQuotaLimitBytes é o teto padrão: 4 MiB, abaixo dos ~5 MiB por origem do armazenamento do navegador
const DefaultQuotaLimitBytes int64 = 4 * 1024 * 1024

// Clock devolve o instante atual; injetável para testes
type Clock func() time.Time

// CorruptionHandler é chamado quando o conteúdo de um slot não pode ser lido
type CorruptionHandler func(kind domain.Kind, err error)

// Store é a camada de persistência de todas as coleções. Cada operação lê e regrava
// o slot inteiro da coleção no backend; um único mutex serializa as operações do processo.
type Store struct {
	mu        sync.Mutex
	backend   storage.Backend
	clock     Clock
	issuer    IDIssuer
	limit     int64
	onCorrupt CorruptionHandler
}

type Option func(*Store)

func WithClock(clock Clock) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

func WithIssuer(issuer IDIssuer) Option {
	return func(s *Store) {
		s.issuer = issuer
	}
}

func WithQuotaLimit(limitBytes int64) Option {
	return func(s *Store) {
		if limitBytes > 0 {
			s.limit = limitBytes
		}
	}
}

func WithCorruptionHandler(handler CorruptionHandler) Option {
	return func(s *Store) {
		s.onCorrupt = handler
	}
}

// New cria o store sobre o backend informado
func New(backend storage.Backend, opts ...Option) (*Store, error) {
	s := &Store{
		backend: backend,
		clock:   time.Now,
		limit:   DefaultQuotaLimitBytes,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.issuer == nil {
		issuer, err := NewIssuer(1)
		if err != nil {
			return nil, err
		}
		s.issuer = issuer
	}

	return s, nil
}

// LimitBytes devolve o teto de armazenamento configurado
func (s *Store) LimitBytes() int64 {
	return s.limit
}

func (s *Store) now() time.Time {
	return s.clock()
}

// resetCorrupt remove o slot ilegível, devolvendo a coleção ao estado de nunca gravada
func (s *Store) resetCorrupt(kind domain.Kind, err error) {
	log.L.WithFields(log.Fields{
		"kind":  kind.String(),
		"error": err.Error(),
	}).Error("Conteúdo persistido corrompido, coleção reiniciada vazia")

	if delErr := s.backend.Delete(slotKey(kind)); delErr != nil {
		log.L.WithFields(log.Fields{
			"kind":  kind.String(),
			"error": delErr.Error(),
		}).Warn("Falha ao remover slot corrompido")
	}

	if s.onCorrupt != nil {
		s.onCorrupt(kind, newStoreError(ErrCorruptPersistedState, "", kind, "", err.Error()))
	}
}

// slotKey é o nome do slot de uma coleção no backend
func slotKey(kind domain.Kind) string {
	return kind.String()
}

func slotSize(key string, payload []byte) int64 {
	return int64(len(key) + len(payload))
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
