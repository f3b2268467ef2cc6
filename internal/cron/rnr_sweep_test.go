package cron_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/recruit-go/internal/cron"
	"github.com/linskybing/recruit-go/internal/cron/mock"
	"github.com/linskybing/recruit-go/internal/domain/staffing"
	"github.com/linskybing/recruit-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func setupSweep(t *testing.T) (*cron.RNRSweep, *mock.MockStaleCandidateFinder, *mock.MockCREAssigner) {
	ctrl := gomock.NewController(t)
	finder := mock.NewMockStaleCandidateFinder(ctrl)
	assigner := mock.NewMockCREAssigner(ctrl)
	sweep := cron.NewRNRSweep(finder, assigner, 3)
	sweep.Now = func() time.Time { return fixedNow }
	return sweep, finder, assigner
}

func rnrCandidate(id uint, age time.Duration) user.Candidate {
	return user.Candidate{ID: id, Status: user.CandidateStatusRNR, UpdatedAt: fixedNow.Add(-age)}
}

func TestRNRSweep_AssignsOnlyStaleCandidates(t *testing.T) {
	sweep, finder, assigner := setupSweep(t)

	stale := rnrCandidate(10, 4*24*time.Hour)
	fresh := rnrCandidate(11, 24*time.Hour)

	finder.EXPECT().
		StaleRNRCandidates(gomock.Any(), fixedNow.Add(-3*24*time.Hour)).
		Return([]user.Candidate{stale, fresh}, nil)
	assigner.EXPECT().
		AssignCRE(gomock.Any(), uint(10), uint(0)).
		Return(&staffing.CREAssignment{CandidateID: 10, CREID: 5}, nil).
		Times(1)

	res, err := sweep.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cron.SweepResult{Scanned: 1, Assigned: 1}, res)
}

func TestRNRSweep_FreshCandidateIsNeverAssigned(t *testing.T) {
	sweep, finder, _ := setupSweep(t)

	finder.EXPECT().StaleRNRCandidates(gomock.Any(), gomock.Any()).
		Return([]user.Candidate{rnrCandidate(11, 24*time.Hour)}, nil)

	res, err := sweep.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.Assigned)
	assert.Zero(t, res.Scanned)
}

func TestRNRSweep_IgnoresCandidatesNoLongerInRNR(t *testing.T) {
	sweep, finder, _ := setupSweep(t)

	c := rnrCandidate(12, 10*24*time.Hour)
	c.Status = "contacted"
	finder.EXPECT().StaleRNRCandidates(gomock.Any(), gomock.Any()).Return([]user.Candidate{c}, nil)

	res, err := sweep.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cron.SweepResult{}, res)
}

func TestRNRSweep_FailureDoesNotAbortBatch(t *testing.T) {
	sweep, finder, assigner := setupSweep(t)

	finder.EXPECT().StaleRNRCandidates(gomock.Any(), gomock.Any()).Return([]user.Candidate{
		rnrCandidate(1, 5*24*time.Hour),
		rnrCandidate(2, 5*24*time.Hour),
		rnrCandidate(3, 5*24*time.Hour),
	}, nil)
	gomock.InOrder(
		assigner.EXPECT().AssignCRE(gomock.Any(), uint(1), uint(0)).Return(&staffing.CREAssignment{CREID: 4}, nil),
		assigner.EXPECT().AssignCRE(gomock.Any(), uint(2), uint(0)).Return(nil, errors.New("no active user with role cre")),
		assigner.EXPECT().AssignCRE(gomock.Any(), uint(3), uint(0)).Return(&staffing.CREAssignment{CREID: 4}, nil),
	)

	res, err := sweep.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cron.SweepResult{Scanned: 3, Assigned: 2, Failed: 1}, res)
}

func TestRNRSweep_FinderError(t *testing.T) {
	sweep, finder, _ := setupSweep(t)

	finder.EXPECT().StaleRNRCandidates(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := sweep.Run(context.Background())
	assert.Error(t, err)
}

type countingJob struct{ runs chan struct{} }

func (j countingJob) Run(context.Context) (cron.SweepResult, error) {
	j.runs <- struct{}{}
	return cron.SweepResult{}, nil
}

func TestScheduler_RunsJobOnSpec(t *testing.T) {
	job := countingJob{runs: make(chan struct{}, 4)}
	s := cron.NewScheduler(job, "@every 1s")
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	select {
	case <-job.runs:
	case <-time.After(3 * time.Second):
		t.Fatal("sweep did not run")
	}
}

func TestScheduler_InvalidSpec(t *testing.T) {
	s := cron.NewScheduler(countingJob{runs: make(chan struct{}, 1)}, "not a spec")
	assert.Error(t, s.Start(context.Background()))
}
