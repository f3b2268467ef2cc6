// Package training holds the training assignment state machine:
//
//	assigned ──► in_progress ──► completed ──► ready_for_reassessment
//
// Every forward move requires the exact predecessor.
package training

import (
	"fmt"

	"github.com/linskybing/recruit-go/internal/domain/status"
)

var predecessor = map[Status]Status{
	StatusInProgress:           StatusAssigned,
	StatusCompleted:            StatusInProgress,
	StatusReadyForReassessment: StatusCompleted,
}

var subStatusFor = map[Status]status.Name{
	StatusAssigned:             status.SubTrainingAssigned,
	StatusInProgress:           status.SubTrainingInProgress,
	StatusCompleted:            status.SubTrainingCompleted,
	StatusReadyForReassessment: status.SubReadyForReassessment,
}

// TransitionError names the status a rejected move started from.
type TransitionError struct {
	Current Status
	Next    Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move training to %s: current status is %s", e.Next, e.Current)
}

// CheckTransition validates current → next.
func CheckTransition(current, next Status) error {
	want, ok := predecessor[next]
	if !ok || current != want {
		return &TransitionError{Current: current, Next: next}
	}
	return nil
}

// SubStatusFor maps a training status to the assignment sub status.
func SubStatusFor(s Status) (status.Name, bool) {
	n, ok := subStatusFor[s]
	return n, ok
}
