package infra

import (
	"context"
	"sync"

	"petshop-bay/bay/flow/domain"
)

// MemoryEventStore é uma implementação simples em memória.
// Útil para testes e desenvolvimento.
//
// Guarda todos os eventos em ordem; não há expiração.
type MemoryEventStore struct {
	mu      sync.Mutex
	events  []domain.Event
	byKind  map[domain.EventKind]int64
	byOwner map[string]map[domain.EventKind]int64

	trackOwners bool
}

type MemoryEventOption func(*MemoryEventStore)

func WithTrackOwners(track bool) MemoryEventOption {
	return func(s *MemoryEventStore) { s.trackOwners = track }
}

func NewMemoryEventStore(opts ...MemoryEventOption) *MemoryEventStore {
	s := &MemoryEventStore{
		byKind:  make(map[domain.EventKind]int64),
		byOwner: make(map[string]map[domain.EventKind]int64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryEventStore) Record(_ context.Context, ev domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, ev)
	s.byKind[ev.Kind]++
	if s.trackOwners {
		c := s.byOwner[ev.Entity.Owner]
		if c == nil {
			c = make(map[domain.EventKind]int64)
			s.byOwner[ev.Entity.Owner] = c
		}
		c[ev.Kind]++
	}
	return nil
}

func (s *MemoryEventStore) Events() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *MemoryEventStore) Count(kind domain.EventKind) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byKind[kind]
}

func (s *MemoryEventStore) ByOwner() map[string]map[domain.EventKind]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]map[domain.EventKind]int64, len(s.byOwner))
	for owner, counts := range s.byOwner {
		c := make(map[domain.EventKind]int64, len(counts))
		for k, v := range counts {
			c[k] = v
		}
		out[owner] = c
	}
	return out
}
