package infra

import "petshop-bay/bay/flow/domain"

// ArrivalQueue é a fila de chegada (FIFO, sem limite) baseada em buffer circular.
//
// Não é segura para uso concorrente: quem serializa o acesso é o controlador.
type ArrivalQueue struct {
	items ring[*domain.Entity]
}

var _ domain.ArrivalQueue = (*ArrivalQueue)(nil)

func NewArrivalQueue() *ArrivalQueue {
	return &ArrivalQueue{}
}

func (q *ArrivalQueue) Enqueue(e *domain.Entity) {
	q.items.PushBack(e)
}

func (q *ArrivalQueue) Dequeue() (*domain.Entity, error) {
	e, ok := q.items.PopFront()
	if !ok {
		return nil, &domain.EmptyContainerError{Container: "arrival queue"}
	}
	return e, nil
}

func (q *ArrivalQueue) Peek() (*domain.Entity, error) {
	e, ok := q.items.Front()
	if !ok {
		return nil, &domain.EmptyContainerError{Container: "arrival queue"}
	}
	return e, nil
}

func (q *ArrivalQueue) Len() int { return q.items.Len() }

func (q *ArrivalQueue) Snapshot() []domain.Snapshot {
	out := make([]domain.Snapshot, 0, q.items.Len())
	q.items.Each(func(e *domain.Entity) { out = append(out, e.Snapshot()) })
	return out
}
