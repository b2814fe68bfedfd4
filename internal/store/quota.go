package store

import (
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/pkg/log"
)

// Usage estima o uso do armazenamento somando o tamanho serializado de todas as coleções
func (s *Store) Usage() (domain.StorageUsage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	used, byKind, err := s.usedBytes()
	if err != nil {
		return domain.StorageUsage{}, backendFailed("", err)
	}

	usage := domain.NewStorageUsage(used, s.limit)
	usage.ByKind = byKind
	return usage, nil
}

// usedBytes deve ser chamado com o mutex do store travado
func (s *Store) usedBytes() (int64, map[domain.Kind]int64, error) {
	byKind := make(map[domain.Kind]int64, len(domain.Kinds))

	var used int64
	for _, kind := range domain.Kinds {
		key := slotKey(kind)
		payload, exists, err := s.backend.Get(key)
		if err != nil {
			return 0, nil, err
		}
		if !exists {
			continue
		}

		size := slotSize(key, payload)
		byKind[kind] = size
		used += size
	}

	return used, byKind, nil
}

// write grava o slot aplicando o teto de armazenamento. Gravações que reduzem o slot
// são sempre aceitas, para que o usuário consiga liberar espaço mesmo acima do teto.
func (s *Store) write(kind domain.Kind, payload []byte) error {
	used, byKind, err := s.usedBytes()
	if err != nil {
		return backendFailed(kind, err)
	}

	key := slotKey(kind)
	current := byKind[kind]
	next := slotSize(key, payload)
	projected := used - current + next

	if next > current && projected > s.limit {
		available := s.limit - used
		if available < 0 {
			available = 0
		}

		log.L.WithFields(log.Fields{
			"kind":              kind.String(),
			"storage_required":  next - current,
			"storage_available": available,
			"storage_limit":     s.limit,
		}).Warn("Gravação recusada: teto de armazenamento excedido")

		return &QuotaError{
			Kind:           kind,
			RequiredBytes:  next - current,
			AvailableBytes: available,
			LimitBytes:     s.limit,
		}
	}

	if err := s.backend.Set(key, payload); err != nil {
		return backendFailed(kind, err)
	}

	return nil
}
