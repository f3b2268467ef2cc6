package application

import (
	"context"
	"time"

	"github.com/linskybing/recruit-go/internal/domain/staffing"
	"github.com/linskybing/recruit-go/internal/domain/user"
	"github.com/linskybing/recruit-go/internal/events"
	"github.com/linskybing/recruit-go/internal/repository"
)

type StaffingService struct {
	Repos     *repository.Repos
	Publisher events.Publisher
	// SystemUserID stamps CRE rows when the preferred assigner does not exist.
	SystemUserID uint
}

func NewStaffingService(repos *repository.Repos, publisher events.Publisher, systemUserID uint) *StaffingService {
	return &StaffingService{
		Repos:        repos,
		Publisher:    publisher,
		SystemUserID: systemUserID,
	}
}

// AssignRecruiter gives a candidate an owning recruiter. A creator who is a
// recruiter keeps the candidate; otherwise the least loaded recruiter wins.
// Any previous active row is closed first so exactly one stays active.
func (s *StaffingService) AssignRecruiter(ctx context.Context, candidateID, createdBy uint) (*staffing.RecruiterAssignment, error) {
	var (
		out staffing.RecruiterAssignment
		buf events.Buffer
	)
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		buf.Reset()
		if _, err := tx.User.GetCandidate(candidateID); err != nil {
			return lookup(err, "candidate", candidateID)
		}

		recruiterID, reason, err := pickOwner(tx, createdBy, user.RoleRecruiter, staffing.DefaultRecruiterReason, tx.Staffing.RecruiterLoads)
		if err != nil {
			return err
		}

		now := nowFunc()
		if _, err := tx.Staffing.DeactivateRecruiter(candidateID, optionalID(createdBy), now); err != nil {
			return err
		}
		ra := staffing.RecruiterAssignment{
			CandidateID: candidateID,
			RecruiterID: recruiterID,
			IsActive:    true,
			AssignedAt:  now,
			AssignedBy:  optionalID(createdBy),
			Reason:      reason,
		}
		if err := tx.Staffing.CreateRecruiterAssignment(&ra); err != nil {
			return err
		}
		n, err := tx.Staffing.CountActiveRecruiters(candidateID)
		if err != nil {
			return err
		}
		if n != 1 {
			return conflict("candidate %d has %d active recruiters", candidateID, n)
		}
		if err := tx.Assignment.SetRecruiter(candidateID, recruiterID); err != nil {
			return err
		}

		buf.Add(events.RecruiterAssigned, map[string]interface{}{
			"candidate_id": candidateID,
			"recruiter_id": recruiterID,
			"reason":       reason,
		})
		out = ra
		return nil
	})
	if err != nil {
		return nil, err
	}
	events.Dispatch(ctx, s.Publisher, buf.Events())
	return &out, nil
}

// AssignCRE hands a candidate to the CRE with the fewest RNR candidates.
// The assigner falls back to the system user when the preferred id is unknown.
// Only a preferred assigner who exists and holds the CRE role keeps the
// candidate; the system fallback always goes through the balancer.
func (s *StaffingService) AssignCRE(ctx context.Context, candidateID, preferredAssigner uint) (*staffing.CREAssignment, error) {
	var (
		out staffing.CREAssignment
		buf events.Buffer
	)
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		buf.Reset()
		if _, err := tx.User.GetCandidate(candidateID); err != nil {
			return lookup(err, "candidate", candidateID)
		}
		assigner, err := s.resolveAssigner(tx, preferredAssigner)
		if err != nil {
			return err
		}

		var actor uint
		if assigner != nil && *assigner == preferredAssigner {
			actor = preferredAssigner
		}
		creID, reason, err := pickOwner(tx, actor, user.RoleCRE, staffing.DefaultCREReason, tx.Staffing.CRELoads)
		if err != nil {
			return err
		}

		now := nowFunc()
		if _, err := tx.Staffing.DeactivateCRE(candidateID, assigner, now); err != nil {
			return err
		}
		ca := staffing.CREAssignment{
			CandidateID: candidateID,
			CREID:       creID,
			IsActive:    true,
			AssignedAt:  now,
			AssignedBy:  assigner,
			Reason:      reason,
		}
		if err := tx.Staffing.CreateCREAssignment(&ca); err != nil {
			return err
		}
		n, err := tx.Staffing.CREAssignmentCount(candidateID)
		if err != nil {
			return err
		}
		if n != 1 {
			return conflict("candidate %d has %d active CREs", candidateID, n)
		}

		buf.Add(events.CREAssigned, map[string]interface{}{
			"candidate_id": candidateID,
			"cre_id":       creID,
			"reason":       reason,
		})
		out = ca
		return nil
	})
	if err != nil {
		return nil, err
	}
	events.Dispatch(ctx, s.Publisher, buf.Events())
	return &out, nil
}

// StaleRNRCandidates lists RNR candidates untouched since cutoff that have no
// active CRE.
func (s *StaffingService) StaleRNRCandidates(ctx context.Context, cutoff time.Time) ([]user.Candidate, error) {
	return s.Repos.WithContext(ctx).Staffing.StaleRNRCandidates(cutoff)
}

func (s *StaffingService) ActiveRecruiter(ctx context.Context, candidateID uint) (*staffing.RecruiterAssignment, error) {
	ra, err := s.Repos.WithContext(ctx).Staffing.ActiveRecruiter(candidateID)
	if err != nil {
		return nil, lookup(err, "active recruiter for candidate", candidateID)
	}
	return &ra, nil
}

func (s *StaffingService) ActiveCRE(ctx context.Context, candidateID uint) (*staffing.CREAssignment, error) {
	ca, err := s.Repos.WithContext(ctx).Staffing.ActiveCRE(candidateID)
	if err != nil {
		return nil, lookup(err, "active CRE for candidate", candidateID)
	}
	return &ca, nil
}

func (s *StaffingService) resolveAssigner(tx *repository.Repos, preferred uint) (*uint, error) {
	for _, id := range []uint{preferred, s.SystemUserID} {
		if id == 0 {
			continue
		}
		ok, err := tx.User.UserExists(id)
		if err != nil {
			return nil, err
		}
		if ok {
			return optionalID(id), nil
		}
	}
	return nil, nil
}

// pickOwner keeps the actor when they hold role, else balances over loads.
func pickOwner(tx *repository.Repos, actor uint, role user.RoleName, defaultReason string, loads func() ([]staffing.Load, error)) (uint, string, error) {
	if actor != 0 {
		ok, err := tx.User.HasRole(actor, role)
		if err != nil {
			return 0, "", err
		}
		if ok {
			return actor, staffing.SelfAssignedReason, nil
		}
	}
	list, err := loads()
	if err != nil {
		return 0, "", err
	}
	id, ok := staffing.PickLeastLoaded(list)
	if !ok {
		return 0, "", notFound("no active user with role %s", role)
	}
	return id, defaultReason, nil
}
