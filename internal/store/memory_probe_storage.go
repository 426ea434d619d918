package store

import (
	"sync"

	"github.com/MKhiriev/probe-doctor/models"
)

// memoryProbeStorage is a fixed-size ring of received payloads.
type memoryProbeStorage struct {
	mu    sync.RWMutex
	items []models.ReceivedProbe
	next  int
	full  bool
}

// NewMemoryProbeStorage returns a ProbeStorage that keeps the last capacity
// payloads.
func NewMemoryProbeStorage(capacity int) ProbeStorage {
	if capacity <= 0 {
		capacity = DefaultProbeCapacity
	}
	return &memoryProbeStorage{items: make([]models.ReceivedProbe, capacity)}
}

func (s *memoryProbeStorage) Add(probe models.ReceivedProbe) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[s.next] = probe
	s.next = (s.next + 1) % len(s.items)
	if s.next == 0 {
		s.full = true
	}
}

func (s *memoryProbeStorage) List() []models.ReceivedProbe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.full {
		out := make([]models.ReceivedProbe, 0, s.next)
		return append(out, s.items[:s.next]...)
	}

	out := make([]models.ReceivedProbe, 0, len(s.items))
	out = append(out, s.items[s.next:]...)
	return append(out, s.items[:s.next]...)
}

func (s *memoryProbeStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.full {
		return len(s.items)
	}
	return s.next
}
