package infra

import "petshop-bay/bay/flow/domain"

// ReleaseStack é a pilha de liberação (LIFO, sem limite) baseada em slice.
type ReleaseStack struct {
	items []*domain.Entity
}

var _ domain.ReleaseStack = (*ReleaseStack)(nil)

func NewReleaseStack() *ReleaseStack {
	return &ReleaseStack{}
}

func (s *ReleaseStack) Push(e *domain.Entity) {
	s.items = append(s.items, e)
}

func (s *ReleaseStack) Pop() (*domain.Entity, error) {
	n := len(s.items)
	if n == 0 {
		return nil, &domain.EmptyContainerError{Container: "release stack"}
	}
	e := s.items[n-1]
	s.items[n-1] = nil
	s.items = s.items[:n-1]
	return e, nil
}

func (s *ReleaseStack) Len() int { return len(s.items) }

func (s *ReleaseStack) Snapshot() []domain.Snapshot {
	out := make([]domain.Snapshot, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		out = append(out, s.items[i].Snapshot())
	}
	return out
}
