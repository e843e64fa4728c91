package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEntity_StartsWaiting(t *testing.T) {
	e, err := NewEntity(1, " Rex ", "João", ServiceBath)
	require.NoError(t, err)
	require.Equal(t, ID(1), e.ID())
	require.Equal(t, "Rex", e.Name())
	require.Equal(t, "João", e.Owner())
	require.Equal(t, ServiceBath, e.Kind())
	require.Equal(t, StatusWaiting, e.Status())
}

func TestNewEntity_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		pet   string
		owner string
		kind  ServiceKind
		field string
	}{
		{"empty name", "", "João", ServiceBath, "name"},
		{"blank name", "   ", "João", ServiceBath, "name"},
		{"empty owner", "Rex", "", ServiceGrooming, "owner"},
		{"kind zero", "Rex", "João", 0, "kind"},
		{"kind out of set", "Rex", "João", 3, "kind"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := NewEntity(1, tc.pet, tc.owner, tc.kind)
			require.Nil(t, e)
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestEntity_LifecycleMovesForwardOnly(t *testing.T) {
	e, err := NewEntity(7, "Luna", "Maria", ServiceGrooming)
	require.NoError(t, err)

	// não pode pular InService
	err = e.FinishService()
	require.ErrorIs(t, err, ErrInvalidTransition)
	require.Equal(t, StatusWaiting, e.Status())

	require.NoError(t, e.StartService())
	require.Equal(t, StatusInService, e.Status())

	// não pode reiniciar
	require.ErrorIs(t, e.StartService(), ErrInvalidTransition)

	require.NoError(t, e.FinishService())
	require.Equal(t, StatusCompleted, e.Status())

	require.NoError(t, e.MarkReleased())
	require.Equal(t, StatusReleased, e.Status())

	// terminal: nenhuma transição possível
	require.ErrorIs(t, e.StartService(), ErrInvalidTransition)
	require.ErrorIs(t, e.FinishService(), ErrInvalidTransition)
	require.ErrorIs(t, e.MarkReleased(), ErrInvalidTransition)
	require.Equal(t, StatusReleased, e.Status())
}

func TestEntity_InvalidTransitionCarriesDetails(t *testing.T) {
	e, err := NewEntity(3, "Bobby", "Carlos", ServiceBath)
	require.NoError(t, err)

	err = e.MarkReleased()
	var terr *InvalidTransitionError
	require.True(t, errors.As(err, &terr))
	require.Equal(t, ID(3), terr.ID)
	require.Equal(t, StatusWaiting, terr.From)
	require.Equal(t, StatusReleased, terr.To)
}

func TestEntity_SnapshotIsACopy(t *testing.T) {
	e, err := NewEntity(1, "Rex", "João", ServiceBath)
	require.NoError(t, err)

	snap := e.Snapshot()
	require.NoError(t, e.StartService())

	require.Equal(t, StatusWaiting, snap.Status)
	require.Equal(t, StatusInService, e.Snapshot().Status)
}
