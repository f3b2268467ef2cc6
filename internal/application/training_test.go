package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/recruit-go/internal/domain/status"
	"github.com/linskybing/recruit-go/internal/domain/training"
	"github.com/linskybing/recruit-go/internal/domain/user"
	"github.com/linskybing/recruit-go/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --------------------- CreateAssignment ---------------------
func TestCreateTrainingAssignment_Basic(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewTrainingService(m.repos, m.publisher)

	a := assignmentAt(1, status.SubMockInterviewFailed)
	m.assignment.EXPECT().GetByID(uint(1)).Return(a, nil)
	m.user.EXPECT().HasRole(uint(6), user.RoleTrainer).Return(true, nil)
	m.training.EXPECT().CreateAssignment(gomock.Any()).DoAndReturn(func(ta *training.Assignment) error {
		ta.ID = 50
		return nil
	})
	h := m.expectTransition(a, status.SubTrainingAssigned)
	m.training.EXPECT().AppendHistory(gomock.Any()).DoAndReturn(func(th *training.History) error {
		assert.Equal(t, "assigned", th.Action)
		assert.Equal(t, training.StatusAssigned, th.NewStatus)
		return nil
	})
	m.publisher.EXPECT().Publish(gomock.Any(), events.TrainingStatusChanged, gomock.Any()).Return(nil)

	ta, err := svc.CreateAssignment(context.Background(), training.CreateAssignmentDTO{AssignmentID: 1, TrainerID: 6}, 9)
	require.NoError(t, err)
	assert.Equal(t, "basic", ta.TrainingType)
	assert.Equal(t, "medium", ta.Priority)
	assert.Equal(t, training.StatusAssigned, ta.Status)
	assert.Equal(t, status.SubTrainingAssigned, h.SubStatusName)
}

func TestCreateTrainingAssignment_ScreeningOfOtherAssignment(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewTrainingService(m.repos, m.publisher)

	screening := uint(77)
	m.assignment.EXPECT().GetByID(uint(1)).Return(assignmentAt(1, ""), nil)
	m.user.EXPECT().HasRole(uint(6), user.RoleTrainer).Return(true, nil)
	m.training.EXPECT().GetScreening(screening).Return(training.Screening{ID: screening, AssignmentID: 2}, nil)

	_, err := svc.CreateAssignment(context.Background(), training.CreateAssignmentDTO{AssignmentID: 1, TrainerID: 6, ScreeningID: &screening}, 9)
	assert.True(t, errors.Is(err, ErrBadRequest))
}

func TestCreateTrainingAssignment_UnknownTrainer(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewTrainingService(m.repos, m.publisher)

	m.assignment.EXPECT().GetByID(uint(1)).Return(assignmentAt(1, ""), nil)
	m.user.EXPECT().HasRole(uint(6), user.RoleTrainer).Return(false, nil)

	_, err := svc.CreateAssignment(context.Background(), training.CreateAssignmentDTO{AssignmentID: 1, TrainerID: 6}, 9)
	assert.True(t, errors.Is(err, ErrNotFound))
}

// --------------------- Lifecycle ---------------------
func TestStartTraining_FromAssigned(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewTrainingService(m.repos, m.publisher)

	a := assignmentAt(1, status.SubTrainingAssigned)
	m.training.EXPECT().GetAssignmentForUpdate(uint(50)).Return(training.Assignment{ID: 50, AssignmentID: 1, TrainerID: 6, Status: training.StatusAssigned}, nil)
	m.training.EXPECT().SaveAssignment(gomock.Any()).Return(nil)
	h := m.expectTransition(a, status.SubTrainingInProgress)
	m.training.EXPECT().AppendHistory(gomock.Any()).DoAndReturn(func(th *training.History) error {
		assert.Equal(t, training.StatusAssigned, th.PreviousStatus)
		assert.Equal(t, training.StatusInProgress, th.NewStatus)
		return nil
	})
	m.publisher.EXPECT().Publish(gomock.Any(), events.TrainingStatusChanged, gomock.Any()).Return(nil)

	ta, err := svc.Start(context.Background(), 50, "kickoff", 9)
	require.NoError(t, err)
	assert.NotNil(t, ta.StartedAt)
	assert.Equal(t, "kickoff", ta.Notes)
	assert.Equal(t, "Training in_progress", h.Reason)
}

func TestStartTraining_FromInProgressNamesCurrentStatus(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewTrainingService(m.repos, m.publisher)

	m.training.EXPECT().GetAssignmentForUpdate(uint(50)).Return(training.Assignment{ID: 50, AssignmentID: 1, Status: training.StatusInProgress}, nil)
	m.training.EXPECT().SaveAssignment(gomock.Any()).Times(0)

	_, err := svc.Start(context.Background(), 50, "", 9)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadRequest))
	assert.Contains(t, err.Error(), "current status is "+string(training.StatusInProgress))
}

func TestCompleteTraining_RequiresInProgress(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewTrainingService(m.repos, m.publisher)

	m.training.EXPECT().GetAssignmentForUpdate(uint(50)).Return(training.Assignment{ID: 50, AssignmentID: 1, Status: training.StatusAssigned}, nil)

	_, err := svc.Complete(context.Background(), 50, "", 9)
	assert.True(t, errors.Is(err, ErrBadRequest))
}

func TestMarkReadyForReassessment_FromCompleted(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewTrainingService(m.repos, m.publisher)

	a := assignmentAt(1, status.SubTrainingCompleted)
	m.training.EXPECT().GetAssignmentForUpdate(uint(50)).Return(training.Assignment{ID: 50, AssignmentID: 1, Status: training.StatusCompleted}, nil)
	m.training.EXPECT().SaveAssignment(gomock.Any()).Return(nil)
	m.expectTransition(a, status.SubReadyForReassessment)
	m.training.EXPECT().AppendHistory(gomock.Any()).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any(), events.TrainingStatusChanged, gomock.Any()).Return(nil)

	ta, err := svc.MarkReadyForReassessment(context.Background(), 50, "", 9)
	require.NoError(t, err)
	assert.Equal(t, training.StatusReadyForReassessment, ta.Status)
}

// --------------------- Sessions ---------------------
func TestAddSession_NumbersSequentially(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewTrainingService(m.repos, m.publisher)

	m.training.EXPECT().GetAssignmentForUpdate(uint(50)).Return(training.Assignment{ID: 50, Status: training.StatusInProgress}, nil)
	m.training.EXPECT().CountSessions(uint(50)).Return(int64(2), nil)
	m.training.EXPECT().CreateSession(gomock.Any()).Return(nil)

	sess, err := svc.AddSession(context.Background(), 50, training.CreateSessionDTO{Topic: "Safety"})
	require.NoError(t, err)
	assert.Equal(t, 3, sess.SessionNumber)
	assert.Equal(t, 60, sess.DurationMinutes)
}

func TestAddSession_CancelledTraining(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewTrainingService(m.repos, m.publisher)

	m.training.EXPECT().GetAssignmentForUpdate(uint(50)).Return(training.Assignment{ID: 50, Status: training.StatusCancelled}, nil)

	_, err := svc.AddSession(context.Background(), 50, training.CreateSessionDTO{Topic: "Safety"})
	assert.True(t, errors.Is(err, ErrBadRequest))
}

func TestCompleteSession_RatingOutOfRange(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewTrainingService(m.repos, m.publisher)

	_, err := svc.CompleteSession(context.Background(), 5, training.CompleteSessionDTO{PerformanceRating: ptrInt(6)})
	assert.True(t, errors.Is(err, ErrBadRequest))
}

func TestCompleteSession_Success(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewTrainingService(m.repos, m.publisher)

	m.training.EXPECT().GetSession(uint(5)).Return(training.Session{ID: 5, TrainingAssignmentID: 50, SessionNumber: 1}, nil)
	m.training.EXPECT().SaveSession(gomock.Any()).Return(nil)

	sess, err := svc.CompleteSession(context.Background(), 5, training.CompleteSessionDTO{Attended: true, PerformanceRating: ptrInt(4)})
	require.NoError(t, err)
	assert.True(t, sess.IsCompleted())
	assert.True(t, sess.Attended)
}

func TestDeleteSession_CompletedIsRejected(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewTrainingService(m.repos, m.publisher)

	done := nowFunc()
	m.training.EXPECT().GetSession(uint(5)).Return(training.Session{ID: 5, CompletedAt: &done}, nil)
	m.training.EXPECT().DeleteSession(gomock.Any()).Times(0)

	err := svc.DeleteSession(context.Background(), 5)
	assert.True(t, errors.Is(err, ErrBadRequest))
}
