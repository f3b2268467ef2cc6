package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/recruit-go/internal/domain/assignment"
	"github.com/linskybing/recruit-go/internal/domain/status"
	"github.com/linskybing/recruit-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --------------------- TransitionTx ---------------------
func TestTransitionTx_MainIsParentOfSub(t *testing.T) {
	m := setupWorkflowMocks(t)
	_, subs := testCatalog()

	for _, e := range status.DefaultSub {
		a := assignmentAt(1, status.SubPendingDocuments)
		h := m.expectTransition(a, e.Sub)

		moved, err := TransitionTx(m.repos, TransitionInput{AssignmentID: 1, SubStatus: e.Sub, ChangedBy: 9, Reason: "test"})
		require.NoError(t, err, e.Sub)

		want := subs[e.Sub]
		assert.Equal(t, want.MainStatusID, *moved.MainStatusID, e.Sub)
		assert.Equal(t, want.ID, *moved.SubStatusID, e.Sub)
		assert.Equal(t, e.Main, moved.MainStatus.Name, e.Sub)
		assert.Equal(t, want.MainStatusID, h.MainStatusID, e.Sub)
		assert.Equal(t, e.Main, h.MainStatusName, e.Sub)
		assert.Equal(t, e.Sub, h.SubStatusName, e.Sub)
	}
}

func TestTransitionTx_WritesSnapshotAndPreviousState(t *testing.T) {
	m := setupWorkflowMocks(t)

	a := assignmentAt(5, status.SubVerificationInProgress)
	h := m.expectTransition(a, status.SubDocumentsVerified)

	_, err := TransitionTx(m.repos, TransitionInput{
		AssignmentID: 5,
		SubStatus:    status.SubDocumentsVerified,
		ChangedBy:    9,
		Reason:       "all good",
		Notes:        "n",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(5), h.AssignmentID)
	assert.Equal(t, "Documents Verified", h.SubStatusLabel)
	assert.Equal(t, "Documents", h.MainStatusLabel)
	assert.Equal(t, status.SubVerificationInProgress, h.FromSubStatus)
	assert.Equal(t, status.MainDocuments, h.FromMainStatus)
	assert.Equal(t, "tester", h.ChangedByName)
	assert.Equal(t, uint(9), *h.ChangedByUserID)
	assert.Equal(t, "all good", h.Reason)
	assert.Equal(t, nowFunc(), h.ChangedAt)
}

func TestTransitionTx_SystemActorStoredAsNull(t *testing.T) {
	m := setupWorkflowMocks(t)

	h := m.expectTransition(assignmentAt(5, ""), status.SubPendingDocuments)

	_, err := TransitionTx(m.repos, TransitionInput{AssignmentID: 5, SubStatus: status.SubPendingDocuments})
	require.NoError(t, err)
	assert.Nil(t, h.ChangedByUserID)
	assert.Empty(t, h.ChangedByName)
	assert.Empty(t, h.FromSubStatus)
}

func TestTransitionTx_UnknownSubStatus(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.assignment.EXPECT().GetByID(uint(5)).Return(assignmentAt(5, ""), nil)
	m.status.EXPECT().GetSubByName(status.Name("nope")).Return(status.SubStatus{}, errNotFoundRecord)

	_, err := TransitionTx(m.repos, TransitionInput{AssignmentID: 5, SubStatus: "nope"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTransitionTx_UnknownAssignment(t *testing.T) {
	m := setupWorkflowMocks(t)

	m.assignment.EXPECT().GetByID(uint(404)).Return(assignment.Assignment{}, errNotFoundRecord)

	_, err := TransitionTx(m.repos, TransitionInput{AssignmentID: 404, SubStatus: status.SubPendingDocuments})
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "assignment 404")
}

func TestTransitionTx_LoadsMainWhenNotPreloaded(t *testing.T) {
	m := setupWorkflowMocks(t)
	mains, subs := testCatalog()

	sub := subs[status.SubTrainingAssigned]
	sub.MainStatus = nil
	m.assignment.EXPECT().GetByID(uint(5)).Return(assignmentAt(5, ""), nil)
	m.status.EXPECT().GetSubByName(status.SubTrainingAssigned).Return(sub, nil)
	m.status.EXPECT().GetMainByID(sub.MainStatusID).Return(mains[status.MainInterview], nil)
	m.assignment.EXPECT().UpdateStatus(uint(5), sub.MainStatusID, sub.ID).Return(nil)
	m.assignment.EXPECT().AppendHistory(gomock.Any()).Return(nil)

	moved, err := TransitionTx(m.repos, TransitionInput{AssignmentID: 5, SubStatus: status.SubTrainingAssigned})
	require.NoError(t, err)
	assert.Equal(t, status.MainInterview, moved.MainStatus.Name)
}

// --------------------- Nominate ---------------------
func TestNominate_PlacesAtPendingDocuments(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewStatusService(m.repos)

	m.user.EXPECT().GetCandidate(uint(7)).Return(user.Candidate{ID: 7}, nil)
	m.assignment.EXPECT().FindActive(uint(7), uint(3), uint(2)).Return(assignment.Assignment{}, errNotFoundRecord)
	m.assignment.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *assignment.Assignment) error {
		a.ID = 11
		return nil
	})
	h := m.expectTransition(assignment.Assignment{ID: 11, CandidateID: 7, ProjectID: 3, RoleID: 2}, status.SubPendingDocuments)

	a, err := svc.Nominate(context.Background(), 7, 3, 2, 9)
	require.NoError(t, err)
	assert.Equal(t, status.SubPendingDocuments, a.SubStatus.Name)
	assert.Equal(t, "Candidate nominated", h.Reason)
}

func TestNominate_DuplicateIsConflict(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewStatusService(m.repos)

	m.user.EXPECT().GetCandidate(uint(7)).Return(user.Candidate{ID: 7}, nil)
	m.assignment.EXPECT().FindActive(uint(7), uint(3), uint(2)).Return(assignment.Assignment{ID: 4}, nil)

	_, err := svc.Nominate(context.Background(), 7, 3, 2, 9)
	assert.True(t, errors.Is(err, ErrConflict))
}
