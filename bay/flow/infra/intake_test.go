package infra

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

func TestOwnerIntake_DeniesWithActualWait(t *testing.T) {
	o := NewOwnerIntake(0.5, 1) // um token a cada 2s

	wait, ok := o.Admit("João", t0)
	require.True(t, ok)
	require.Zero(t, wait)

	wait, ok = o.Admit("João", t0)
	require.False(t, ok)
	require.Equal(t, 2*time.Second, wait)

	wait, ok = o.Admit("João", t0.Add(1500*time.Millisecond))
	require.False(t, ok)
	require.Equal(t, 500*time.Millisecond, wait)

	_, ok = o.Admit("João", t0.Add(2*time.Second))
	require.True(t, ok)
}

func TestOwnerIntake_DeniedAttemptsDoNotConsume(t *testing.T) {
	o := NewOwnerIntake(1, 1)

	_, ok := o.Admit("João", t0)
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		_, ok = o.Admit("João", t0.Add(100*time.Millisecond))
		require.False(t, ok)
	}

	// sem o cancelamento, as 5 negativas teriam empurrado a vaga para ~+6s.
	_, ok = o.Admit("João", t0.Add(1500*time.Millisecond))
	require.True(t, ok)
}

func TestOwnerIntake_OwnersAreIndependent(t *testing.T) {
	o := NewOwnerIntake(0.01, 2)

	for i := 0; i < 2; i++ {
		_, ok := o.Admit("João", t0)
		require.True(t, ok)
	}
	_, ok := o.Admit("João", t0)
	require.False(t, ok)

	_, ok = o.Admit("Maria", t0)
	require.True(t, ok)
	require.Equal(t, 2, o.Tracked())
	require.Equal(t, 0.01, o.PerSecond())
	require.Equal(t, 2, o.Burst())
}

func TestOwnerIntake_ZeroRateNeverRefills(t *testing.T) {
	o := NewOwnerIntake(0, 1)

	_, ok := o.Admit("João", t0)
	require.True(t, ok)
	wait, ok := o.Admit("João", t0.Add(time.Hour))
	require.False(t, ok)
	require.Greater(t, wait, time.Hour)
}

func TestOwnerIntake_SweepForgetsOnlyFullBuckets(t *testing.T) {
	o := NewOwnerIntake(1, 1, WithSweepEvery(0))

	_, _ = o.Admit("João", t0)
	_, _ = o.Admit("Maria", t0.Add(900*time.Millisecond))

	o.Sweep(t0.Add(time.Second))
	require.Equal(t, 1, o.Tracked(), "Maria ainda não recuperou o token")

	o.Sweep(t0.Add(2 * time.Second))
	require.Zero(t, o.Tracked())
}

func TestOwnerIntake_SweeperRunsInBackground(t *testing.T) {
	o := NewOwnerIntake(1000, 1, WithSweepEvery(5*time.Millisecond))
	_, ok := o.Admit("João", time.Now())
	require.True(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	o.StartSweeper(ctx)

	require.Eventually(t, func() bool { return o.Tracked() == 0 }, time.Second, 5*time.Millisecond)
}
