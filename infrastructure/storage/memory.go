package storage

import (
	"sync"
)

// MemoryBackend guarda os slots em memória. Usado em testes e no modo de demonstração.
type MemoryBackend struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		slots: make(map[string][]byte),
	}
}

func (m *MemoryBackend) Get(slot string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	payload, ok := m.slots[slot]
	if !ok {
		return nil, false, nil
	}

	return append([]byte(nil), payload...), true, nil
}

func (m *MemoryBackend) Set(slot string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[slot] = append([]byte(nil), payload...)
	return nil
}

func (m *MemoryBackend) Delete(slot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.slots, slot)
	return nil
}

func (m *MemoryBackend) Close() error {
	return nil
}
