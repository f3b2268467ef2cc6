package training

import (
	"testing"

	"github.com/linskybing/recruit-go/internal/domain/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTransition_ForwardPath(t *testing.T) {
	assert.NoError(t, CheckTransition(StatusAssigned, StatusInProgress))
	assert.NoError(t, CheckTransition(StatusInProgress, StatusCompleted))
	assert.NoError(t, CheckTransition(StatusCompleted, StatusReadyForReassessment))
}

func TestCheckTransition_StartRequiresAssigned(t *testing.T) {
	for _, current := range []Status{StatusInProgress, StatusCompleted, StatusReadyForReassessment, StatusCancelled} {
		err := CheckTransition(current, StatusInProgress)
		require.Error(t, err, current)

		var te *TransitionError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, current, te.Current)
		assert.Contains(t, err.Error(), string(current))
	}
}

func TestCheckTransition_NoSkipsOrBackwardMoves(t *testing.T) {
	assert.Error(t, CheckTransition(StatusAssigned, StatusCompleted))
	assert.Error(t, CheckTransition(StatusCompleted, StatusInProgress))
	assert.Error(t, CheckTransition(StatusAssigned, StatusAssigned))
	assert.Error(t, CheckTransition(StatusAssigned, StatusCancelled))
}

func TestSubStatusFor(t *testing.T) {
	want := map[Status]status.Name{
		StatusAssigned:             status.SubTrainingAssigned,
		StatusInProgress:           status.SubTrainingInProgress,
		StatusCompleted:            status.SubTrainingCompleted,
		StatusReadyForReassessment: status.SubReadyForReassessment,
	}
	for s, n := range want {
		got, ok := SubStatusFor(s)
		assert.True(t, ok)
		assert.Equal(t, n, got)
	}
	_, ok := SubStatusFor(StatusCancelled)
	assert.False(t, ok)
}
