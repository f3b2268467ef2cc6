package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/recruit-go/internal/domain/staffing"
	"github.com/linskybing/recruit-go/internal/domain/user"
	"github.com/linskybing/recruit-go/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --------------------- AssignRecruiter ---------------------
func TestAssignRecruiter_BalancesToLeastLoaded(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewStaffingService(m.repos, m.publisher, 1)

	m.user.EXPECT().GetCandidate(uint(7)).Return(user.Candidate{ID: 7}, nil)
	m.user.EXPECT().HasRole(uint(9), user.RoleRecruiter).Return(false, nil)
	m.staffing.EXPECT().RecruiterLoads().Return([]staffing.Load{
		{UserID: 21, Active: 4},
		{UserID: 14, Active: 1},
		{UserID: 12, Active: 1},
	}, nil)
	m.staffing.EXPECT().DeactivateRecruiter(uint(7), gomock.Any(), gomock.Any()).Return(int64(0), nil)
	m.staffing.EXPECT().CreateRecruiterAssignment(gomock.Any()).Return(nil)
	m.staffing.EXPECT().CountActiveRecruiters(uint(7)).Return(int64(1), nil)
	m.assignment.EXPECT().SetRecruiter(uint(7), uint(12)).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any(), events.RecruiterAssigned, gomock.Any()).Return(nil)

	ra, err := svc.AssignRecruiter(context.Background(), 7, 9)
	require.NoError(t, err)
	assert.Equal(t, uint(12), ra.RecruiterID)
	assert.Equal(t, staffing.DefaultRecruiterReason, ra.Reason)
	assert.True(t, ra.IsActive)
}

func TestAssignRecruiter_CreatorWhoIsRecruiterKeepsCandidate(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewStaffingService(m.repos, m.publisher, 1)

	m.user.EXPECT().GetCandidate(uint(7)).Return(user.Candidate{ID: 7}, nil)
	m.user.EXPECT().HasRole(uint(9), user.RoleRecruiter).Return(true, nil)
	m.staffing.EXPECT().RecruiterLoads().Times(0)
	m.staffing.EXPECT().DeactivateRecruiter(uint(7), gomock.Any(), gomock.Any()).Return(int64(1), nil)
	m.staffing.EXPECT().CreateRecruiterAssignment(gomock.Any()).Return(nil)
	m.staffing.EXPECT().CountActiveRecruiters(uint(7)).Return(int64(1), nil)
	m.assignment.EXPECT().SetRecruiter(uint(7), uint(9)).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any(), events.RecruiterAssigned, gomock.Any()).Return(nil)

	ra, err := svc.AssignRecruiter(context.Background(), 7, 9)
	require.NoError(t, err)
	assert.Equal(t, uint(9), ra.RecruiterID)
	assert.Equal(t, staffing.SelfAssignedReason, ra.Reason)
}

func TestAssignRecruiter_NoRecruiters(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewStaffingService(m.repos, m.publisher, 1)

	m.user.EXPECT().GetCandidate(uint(7)).Return(user.Candidate{ID: 7}, nil)
	m.staffing.EXPECT().RecruiterLoads().Return(nil, nil)

	_, err := svc.AssignRecruiter(context.Background(), 7, 0)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAssignRecruiter_SecondActiveRowIsConflict(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewStaffingService(m.repos, m.publisher, 1)

	m.user.EXPECT().GetCandidate(uint(7)).Return(user.Candidate{ID: 7}, nil)
	m.user.EXPECT().HasRole(uint(9), user.RoleRecruiter).Return(true, nil)
	m.staffing.EXPECT().DeactivateRecruiter(uint(7), gomock.Any(), gomock.Any()).Return(int64(0), nil)
	m.staffing.EXPECT().CreateRecruiterAssignment(gomock.Any()).Return(nil)
	m.staffing.EXPECT().CountActiveRecruiters(uint(7)).Return(int64(2), nil)
	m.assignment.EXPECT().SetRecruiter(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.AssignRecruiter(context.Background(), 7, 9)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestAssignRecruiter_UnknownCandidate(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewStaffingService(m.repos, m.publisher, 1)

	m.user.EXPECT().GetCandidate(uint(7)).Return(user.Candidate{}, errNotFoundRecord)

	_, err := svc.AssignRecruiter(context.Background(), 7, 9)
	assert.True(t, errors.Is(err, ErrNotFound))
}

// --------------------- AssignCRE ---------------------
func TestAssignCRE_FallsBackToSystemUser(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewStaffingService(m.repos, m.publisher, 1)

	m.user.EXPECT().GetCandidate(uint(7)).Return(user.Candidate{ID: 7}, nil)
	m.user.EXPECT().UserExists(uint(99)).Return(false, nil)
	m.user.EXPECT().UserExists(uint(1)).Return(true, nil)
	m.user.EXPECT().HasRole(gomock.Any(), gomock.Any()).Times(0)
	m.staffing.EXPECT().CRELoads().Return([]staffing.Load{{UserID: 31, Active: 2}, {UserID: 32, Active: 0}}, nil)
	m.staffing.EXPECT().DeactivateCRE(uint(7), gomock.Any(), gomock.Any()).Return(int64(0), nil)
	m.staffing.EXPECT().CreateCREAssignment(gomock.Any()).Return(nil)
	m.staffing.EXPECT().CREAssignmentCount(uint(7)).Return(int64(1), nil)
	m.publisher.EXPECT().Publish(gomock.Any(), events.CREAssigned, gomock.Any()).Return(nil)

	ca, err := svc.AssignCRE(context.Background(), 7, 99)
	require.NoError(t, err)
	assert.Equal(t, uint(32), ca.CREID)
	require.NotNil(t, ca.AssignedBy)
	assert.Equal(t, uint(1), *ca.AssignedBy)
	assert.Equal(t, staffing.DefaultCREReason, ca.Reason)
}

func TestAssignCRE_NoAssignerStoresNull(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewStaffingService(m.repos, m.publisher, 1)

	m.user.EXPECT().GetCandidate(uint(7)).Return(user.Candidate{ID: 7}, nil)
	m.user.EXPECT().UserExists(uint(1)).Return(false, nil)
	m.staffing.EXPECT().CRELoads().Return([]staffing.Load{{UserID: 31, Active: 0}}, nil)
	m.staffing.EXPECT().DeactivateCRE(uint(7), gomock.Nil(), gomock.Any()).Return(int64(0), nil)
	m.staffing.EXPECT().CreateCREAssignment(gomock.Any()).Return(nil)
	m.staffing.EXPECT().CREAssignmentCount(uint(7)).Return(int64(1), nil)
	m.publisher.EXPECT().Publish(gomock.Any(), events.CREAssigned, gomock.Any()).Return(nil)

	ca, err := svc.AssignCRE(context.Background(), 7, 0)
	require.NoError(t, err)
	assert.Nil(t, ca.AssignedBy)
	assert.Equal(t, uint(31), ca.CREID)
}

func TestAssignCRE_NoCREs(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewStaffingService(m.repos, m.publisher, 0)

	m.user.EXPECT().GetCandidate(uint(7)).Return(user.Candidate{ID: 7}, nil)
	m.staffing.EXPECT().CRELoads().Return([]staffing.Load{}, nil)

	_, err := svc.AssignCRE(context.Background(), 7, 0)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAssignCRE_PublishFailureDoesNotFailAssignment(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewStaffingService(m.repos, m.publisher, 0)

	m.user.EXPECT().GetCandidate(uint(7)).Return(user.Candidate{ID: 7}, nil)
	m.staffing.EXPECT().CRELoads().Return([]staffing.Load{{UserID: 31}}, nil)
	m.staffing.EXPECT().DeactivateCRE(uint(7), gomock.Nil(), gomock.Any()).Return(int64(0), nil)
	m.staffing.EXPECT().CreateCREAssignment(gomock.Any()).Return(nil)
	m.staffing.EXPECT().CREAssignmentCount(uint(7)).Return(int64(1), nil)
	m.publisher.EXPECT().Publish(gomock.Any(), events.CREAssigned, gomock.Any()).Return(errors.New("broker down"))

	ca, err := svc.AssignCRE(context.Background(), 7, 0)
	require.NoError(t, err)
	assert.Equal(t, uint(31), ca.CREID)
}

func TestAssignCRE_SystemFallbackNeverSelfAssigns(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewStaffingService(m.repos, m.publisher, 1)

	// The system user holds the CRE role and is the busiest CRE.
	m.user.EXPECT().GetCandidate(uint(7)).Return(user.Candidate{ID: 7}, nil)
	m.user.EXPECT().UserExists(uint(1)).Return(true, nil)
	m.user.EXPECT().HasRole(gomock.Any(), gomock.Any()).Times(0)
	m.staffing.EXPECT().CRELoads().Return([]staffing.Load{{UserID: 2, Active: 0}, {UserID: 1, Active: 50}}, nil)
	m.staffing.EXPECT().DeactivateCRE(uint(7), gomock.Any(), gomock.Any()).Return(int64(0), nil)
	m.staffing.EXPECT().CreateCREAssignment(gomock.Any()).Return(nil)
	m.staffing.EXPECT().CREAssignmentCount(uint(7)).Return(int64(1), nil)
	m.publisher.EXPECT().Publish(gomock.Any(), events.CREAssigned, gomock.Any()).Return(nil)

	ca, err := svc.AssignCRE(context.Background(), 7, 0)
	require.NoError(t, err)
	assert.Equal(t, uint(2), ca.CREID)
	assert.Equal(t, staffing.DefaultCREReason, ca.Reason)
	require.NotNil(t, ca.AssignedBy)
	assert.Equal(t, uint(1), *ca.AssignedBy)
}

func TestAssignCRE_ActingCREKeepsCandidate(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewStaffingService(m.repos, m.publisher, 1)

	m.user.EXPECT().GetCandidate(uint(7)).Return(user.Candidate{ID: 7}, nil)
	m.user.EXPECT().UserExists(uint(31)).Return(true, nil)
	m.user.EXPECT().HasRole(uint(31), user.RoleCRE).Return(true, nil)
	m.staffing.EXPECT().CRELoads().Times(0)
	m.staffing.EXPECT().DeactivateCRE(uint(7), gomock.Any(), gomock.Any()).Return(int64(0), nil)
	m.staffing.EXPECT().CreateCREAssignment(gomock.Any()).Return(nil)
	m.staffing.EXPECT().CREAssignmentCount(uint(7)).Return(int64(1), nil)
	m.publisher.EXPECT().Publish(gomock.Any(), events.CREAssigned, gomock.Any()).Return(nil)

	ca, err := svc.AssignCRE(context.Background(), 7, 31)
	require.NoError(t, err)
	assert.Equal(t, uint(31), ca.CREID)
	assert.Equal(t, staffing.SelfAssignedReason, ca.Reason)
}

func TestAssignCRE_SecondActiveRowIsConflict(t *testing.T) {
	m := setupWorkflowMocks(t)
	svc := NewStaffingService(m.repos, m.publisher, 0)

	m.user.EXPECT().GetCandidate(uint(7)).Return(user.Candidate{ID: 7}, nil)
	m.staffing.EXPECT().CRELoads().Return([]staffing.Load{{UserID: 31}}, nil)
	m.staffing.EXPECT().DeactivateCRE(uint(7), gomock.Nil(), gomock.Any()).Return(int64(0), nil)
	m.staffing.EXPECT().CreateCREAssignment(gomock.Any()).Return(nil)
	m.staffing.EXPECT().CREAssignmentCount(uint(7)).Return(int64(2), nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.AssignCRE(context.Background(), 7, 0)
	assert.True(t, errors.Is(err, ErrConflict))
}
