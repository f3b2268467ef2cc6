package application

import (
	"context"
	"errors"
	"time"

	"github.com/linskybing/recruit-go/internal/domain/assignment"
	"github.com/linskybing/recruit-go/internal/domain/status"
	"github.com/linskybing/recruit-go/internal/repository"
	"gorm.io/gorm"
)

// nowFunc is swapped in tests that need a fixed clock.
var nowFunc = func() time.Time { return time.Now().UTC() }

// TransitionInput asks the core to move an assignment to a sub status.
type TransitionInput struct {
	AssignmentID uint
	SubStatus    status.Name
	ChangedBy    uint
	Reason       string
	Notes        string
}

type StatusService struct {
	Repos *repository.Repos
}

func NewStatusService(repos *repository.Repos) *StatusService {
	return &StatusService{
		Repos: repos,
	}
}

// Transition applies a status change and its history row in one transaction.
// It performs no business validation; callers decide whether the move is legal.
func (s *StatusService) Transition(ctx context.Context, in TransitionInput) (*assignment.Assignment, error) {
	var out assignment.Assignment
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		a, err := TransitionTx(tx, in)
		if err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// TransitionTx is Transition joined to a caller-owned transaction.
func TransitionTx(tx *repository.Repos, in TransitionInput) (assignment.Assignment, error) {
	a, err := tx.Assignment.GetByID(in.AssignmentID)
	if err != nil {
		return a, lookup(err, "assignment", in.AssignmentID)
	}

	sub, err := tx.Status.GetSubByName(in.SubStatus)
	if err != nil {
		return a, lookup(err, "sub status", in.SubStatus)
	}
	main := sub.MainStatus
	if main == nil {
		m, err := tx.Status.GetMainByID(sub.MainStatusID)
		if err != nil {
			return a, lookup(err, "main status", sub.MainStatusID)
		}
		main = &m
	}

	if err := tx.Assignment.UpdateStatus(a.ID, main.ID, sub.ID); err != nil {
		return a, lookup(err, "assignment", a.ID)
	}

	h := &assignment.StatusHistory{
		AssignmentID:    a.ID,
		MainStatusID:    main.ID,
		SubStatusID:     sub.ID,
		MainStatusName:  main.Name,
		SubStatusName:   sub.Name,
		MainStatusLabel: main.Label,
		SubStatusLabel:  sub.Label,
		ChangedByUserID: optionalID(in.ChangedBy),
		ChangedByName:   displayName(tx, in.ChangedBy),
		Reason:          in.Reason,
		Notes:           in.Notes,
		ChangedAt:       nowFunc(),
	}
	if a.MainStatus != nil {
		h.FromMainStatus = a.MainStatus.Name
	}
	if a.SubStatus != nil {
		h.FromSubStatus = a.SubStatus.Name
	}
	if err := tx.Assignment.AppendHistory(h); err != nil {
		return a, err
	}

	a.MainStatusID = &main.ID
	a.SubStatusID = &sub.ID
	a.MainStatus = main
	subCopy := sub
	subCopy.MainStatus = nil
	a.SubStatus = &subCopy
	return a, nil
}

// Nominate creates the assignment for a candidate on a project role and
// places it at pending documents.
func (s *StatusService) Nominate(ctx context.Context, candidateID, projectID, roleID, by uint) (*assignment.Assignment, error) {
	var out assignment.Assignment
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.User.GetCandidate(candidateID); err != nil {
			return lookup(err, "candidate", candidateID)
		}
		existing, err := tx.Assignment.FindActive(candidateID, projectID, roleID)
		if err == nil {
			return conflict("candidate %d already has active assignment %d for project %d role %d",
				candidateID, existing.ID, projectID, roleID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		a := &assignment.Assignment{
			CandidateID: candidateID,
			ProjectID:   projectID,
			RoleID:      roleID,
			IsActive:    true,
		}
		if err := tx.Assignment.Create(a); err != nil {
			return err
		}
		moved, err := TransitionTx(tx, TransitionInput{
			AssignmentID: a.ID,
			SubStatus:    status.SubPendingDocuments,
			ChangedBy:    by,
			Reason:       "Candidate nominated",
		})
		if err != nil {
			return err
		}
		out = moved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StatusService) GetAssignment(ctx context.Context, id uint) (*assignment.Assignment, error) {
	a, err := s.Repos.WithContext(ctx).Assignment.GetByID(id)
	if err != nil {
		return nil, lookup(err, "assignment", id)
	}
	return &a, nil
}

// History returns the full audit trail, oldest first.
func (s *StatusService) History(ctx context.Context, assignmentID uint) ([]assignment.StatusHistory, error) {
	repos := s.Repos.WithContext(ctx)
	if _, err := repos.Assignment.GetByID(assignmentID); err != nil {
		return nil, lookup(err, "assignment", assignmentID)
	}
	return repos.Assignment.ListHistory(assignmentID)
}

// LatestEntryInto returns the most recent transition into sub.
func (s *StatusService) LatestEntryInto(ctx context.Context, assignmentID uint, sub status.Name) (*assignment.StatusHistory, error) {
	h, err := s.Repos.WithContext(ctx).Assignment.LatestHistoryInto(assignmentID, sub)
	if err != nil {
		return nil, lookup(err, "transition into "+sub.String()+" for assignment", assignmentID)
	}
	return &h, nil
}

// Catalog lists main and sub statuses for display.
func (s *StatusService) Catalog(ctx context.Context) ([]status.MainStatus, []status.SubStatus, error) {
	repos := s.Repos.WithContext(ctx)
	mains, err := repos.Status.ListMain()
	if err != nil {
		return nil, nil, err
	}
	subs, err := repos.Status.ListSub()
	if err != nil {
		return nil, nil, err
	}
	return mains, subs, nil
}

// SeedCatalog upserts the default reference data. Safe to run repeatedly.
func (s *StatusService) SeedCatalog(ctx context.Context) error {
	return s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		ids := make(map[status.Name]uint, len(status.DefaultMain))
		for _, e := range status.DefaultMain {
			m := &status.MainStatus{Name: e.Name, Label: e.Label, Order: e.Order, Color: e.Color, Icon: e.Icon}
			if err := tx.Status.UpsertMain(m); err != nil {
				return err
			}
			stored, err := tx.Status.GetMainByName(e.Name)
			if err != nil {
				return err
			}
			ids[e.Name] = stored.ID
		}
		for _, e := range status.DefaultSub {
			sub := &status.SubStatus{
				MainStatusID: ids[e.Main],
				Name:         e.Sub,
				Label:        e.Label,
				Order:        e.Order,
				Color:        e.Color,
			}
			if err := tx.Status.UpsertSub(sub); err != nil {
				return err
			}
		}
		return nil
	})
}

func optionalID(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}

// displayName resolves an actor for ledger snapshots. Lookup failures yield
// an empty name rather than an error.
func displayName(tx *repository.Repos, id uint) string {
	if id == 0 {
		return ""
	}
	u, err := tx.User.GetUserByID(id)
	if err != nil {
		return ""
	}
	return u.DisplayName()
}
