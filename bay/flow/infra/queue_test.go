package infra

import (
	"testing"

	"petshop-bay/bay/flow/domain"

	"github.com/stretchr/testify/require"
)

func newEntity(t *testing.T, id domain.ID, name string) *domain.Entity {
	t.Helper()
	e, err := domain.NewEntity(id, name, "owner-"+name, domain.ServiceBath)
	require.NoError(t, err)
	return e
}

func TestArrivalQueue_DequeueOrderEqualsEnqueueOrder(t *testing.T) {
	q := NewArrivalQueue()

	for i := 1; i <= 3; i++ {
		q.Enqueue(newEntity(t, domain.ID(i), "p"))
	}
	first, err := q.Dequeue()
	require.NoError(t, err)
	require.Equal(t, domain.ID(1), first.ID())

	// com a cabeça deslocada, passa do tamanho inicial do buffer (4):
	// exercita o wrap e o crescimento.
	for i := 4; i <= 20; i++ {
		q.Enqueue(newEntity(t, domain.ID(i), "p"))
	}
	require.Equal(t, 19, q.Len())

	for want := 2; want <= 20; want++ {
		head, err := q.Peek()
		require.NoError(t, err)
		require.Equal(t, domain.ID(want), head.ID())

		got, err := q.Dequeue()
		require.NoError(t, err)
		require.Equal(t, domain.ID(want), got.ID())
	}
	require.Equal(t, 0, q.Len())
}

func TestArrivalQueue_EmptyFails(t *testing.T) {
	q := NewArrivalQueue()

	e, err := q.Dequeue()
	require.Nil(t, e)
	require.ErrorIs(t, err, domain.ErrEmptyContainer)

	e, err = q.Peek()
	require.Nil(t, e)
	require.ErrorIs(t, err, domain.ErrEmptyContainer)
}

func TestArrivalQueue_SnapshotInArrivalOrder(t *testing.T) {
	q := NewArrivalQueue()
	q.Enqueue(newEntity(t, 1, "Rex"))
	q.Enqueue(newEntity(t, 2, "Luna"))
	q.Enqueue(newEntity(t, 3, "Bobby"))

	snap := q.Snapshot()
	require.Len(t, snap, 3)
	require.Equal(t, []string{"Rex", "Luna", "Bobby"}, []string{snap[0].Name, snap[1].Name, snap[2].Name})
	require.Equal(t, 3, q.Len())
}
