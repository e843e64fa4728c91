package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrors_UnwrapToSentinels(t *testing.T) {
	require.ErrorIs(t, &EmptyContainerError{Container: "release stack"}, ErrEmptyContainer)
	require.ErrorIs(t, &CapacityExceededError{Max: 3}, ErrCapacityExceeded)
	require.ErrorIs(t, &ThrottledError{Owner: "João"}, ErrThrottled)
	require.EqualError(t, &CapacityExceededError{Max: 3}, "service stage at capacity (max 3)")
}

func TestHandOffError_WrapsCause(t *testing.T) {
	err := error(&HandOffError{
		Requested: 3,
		Delivered: 1,
		Err:       &EmptyContainerError{Container: "release stack"},
	})
	require.ErrorIs(t, err, ErrEmptyContainer)
	require.EqualError(t, err, "hand-off stopped after 1 of 3: release stack is empty")

	var empty *EmptyContainerError
	require.True(t, errors.As(err, &empty))
	require.Equal(t, "release stack", empty.Container)
}
