package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus_Next(t *testing.T) {
	order := []Status{StatusWaiting, StatusInService, StatusCompleted, StatusReleased}
	for i := 0; i < len(order)-1; i++ {
		next, ok := order[i].Next()
		require.True(t, ok)
		require.Equal(t, order[i+1], next)
	}

	_, ok := StatusReleased.Next()
	require.False(t, ok)
	require.True(t, StatusReleased.Terminal())
	require.False(t, StatusCompleted.Terminal())
}

func TestStatus_CanAdvanceToRejectsSkipsAndReversals(t *testing.T) {
	require.False(t, StatusWaiting.CanAdvanceTo(StatusCompleted))
	require.False(t, StatusWaiting.CanAdvanceTo(StatusReleased))
	require.False(t, StatusInService.CanAdvanceTo(StatusWaiting))
	require.False(t, StatusCompleted.CanAdvanceTo(StatusInService))
	require.False(t, Status("bogus").CanAdvanceTo(StatusWaiting))
}

func TestEvent_Message(t *testing.T) {
	snap := Snapshot{ID: 1, Name: "Rex", Owner: "João"}
	require.Equal(t, "Rex called for service", Event{Kind: EventServiceStarted, Entity: snap}.Message())
	require.Equal(t, "Rex released for delivery", Event{Kind: EventReleased, Entity: snap}.Message())
	require.Equal(t, "Rex handed off to João", Event{Kind: EventHandedOff, Entity: snap}.Message())
}
