package application

import (
	"context"
	"errors"
	"time"

	"github.com/linskybing/recruit-go/internal/domain/interview"
	"github.com/linskybing/recruit-go/internal/domain/status"
	"github.com/linskybing/recruit-go/internal/domain/user"
	"github.com/linskybing/recruit-go/internal/events"
	"github.com/linskybing/recruit-go/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MockInterviewService struct {
	Repos     *repository.Repos
	Publisher events.Publisher
}

func NewMockInterviewService(repos *repository.Repos, publisher events.Publisher) *MockInterviewService {
	return &MockInterviewService{
		Repos:     repos,
		Publisher: publisher,
	}
}

// Create schedules a mock interview. Only one open interview may exist per
// assignment.
func (s *MockInterviewService) Create(ctx context.Context, input interview.CreateMockInterviewDTO, by uint) (*interview.MockInterview, error) {
	mode := interview.ModeOnline
	if input.Mode != "" {
		mode = interview.Mode(input.Mode)
		if !validMode(mode) {
			return nil, badRequest("unknown interview mode %q", input.Mode)
		}
	}

	var (
		out interview.MockInterview
		buf events.Buffer
	)
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		buf.Reset()
		a, err := tx.Assignment.GetByID(input.AssignmentID)
		if err != nil {
			return lookup(err, "assignment", input.AssignmentID)
		}
		ok, err := tx.User.HasRole(input.CoordinatorID, user.RoleInterviewCoordinator)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("interview coordinator %d not found", input.CoordinatorID)
		}
		open, err := tx.Interview.FindOpen(a.ID)
		if err == nil {
			return conflict("assignment %d already has open mock interview %d", a.ID, open.ID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		m := interview.MockInterview{
			AssignmentID:    a.ID,
			CoordinatorID:   input.CoordinatorID,
			InterviewType:   input.InterviewType,
			ScheduledTime:   input.ScheduledTime,
			DurationMinutes: input.DurationMinutes,
			MeetingLink:     input.MeetingLink,
			Mode:            mode,
			Notes:           input.Notes,
		}
		if m.InterviewType == "" {
			m.InterviewType = "mock"
		}
		if m.DurationMinutes <= 0 {
			m.DurationMinutes = 60
		}
		if err := tx.Interview.Create(&m); err != nil {
			// A concurrent Create won the open-interview index.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflict("assignment %d already has an open mock interview", a.ID)
			}
			return err
		}
		if _, err := TransitionTx(tx, TransitionInput{
			AssignmentID: a.ID,
			SubStatus:    status.SubMockInterviewScheduled,
			ChangedBy:    by,
			Reason:       "Mock interview scheduled",
			Notes:        m.ScheduledTime.Format(time.RFC3339),
		}); err != nil {
			return err
		}
		if err := appendInterviewHistory(tx, m, "scheduled", "", m.State(), by, m.Notes); err != nil {
			return err
		}

		buf.Add(events.MockInterviewScheduled, map[string]interface{}{
			"assignment_id":  a.ID,
			"interview_id":   m.ID,
			"coordinator_id": m.CoordinatorID,
			"scheduled_time": m.ScheduledTime,
		})
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	events.Dispatch(ctx, s.Publisher, buf.Events())
	return &out, nil
}

// Update changes scheduling details of an interview that has not happened yet.
func (s *MockInterviewService) Update(ctx context.Context, id uint, input interview.UpdateMockInterviewDTO, by uint) (*interview.MockInterview, error) {
	var out interview.MockInterview
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		m, err := tx.Interview.GetForUpdate(id)
		if err != nil {
			return lookup(err, "mock interview", id)
		}
		if m.IsCompleted() {
			return badRequest("mock interview %d is already completed", m.ID)
		}

		if input.ScheduledTime != nil {
			m.ScheduledTime = *input.ScheduledTime
		}
		if input.DurationMinutes != nil {
			if *input.DurationMinutes <= 0 {
				return badRequest("duration must be positive")
			}
			m.DurationMinutes = *input.DurationMinutes
		}
		if input.MeetingLink != nil {
			m.MeetingLink = *input.MeetingLink
		}
		if input.Mode != nil {
			mode := interview.Mode(*input.Mode)
			if !validMode(mode) {
				return badRequest("unknown interview mode %q", *input.Mode)
			}
			m.Mode = mode
		}
		if input.Notes != nil {
			m.Notes = *input.Notes
		}
		if err := tx.Interview.Save(&m); err != nil {
			return err
		}
		if err := appendInterviewHistory(tx, m, "rescheduled", m.State(), m.State(), by, ""); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Complete records the outcome of an interview. It is terminal: a second
// call fails and leaves the checklist untouched.
func (s *MockInterviewService) Complete(ctx context.Context, id uint, input interview.CompleteMockInterviewDTO, by uint) (*interview.MockInterview, error) {
	decision, err := interview.ParseDecision(input.Decision)
	if err != nil {
		return nil, badRequest("%s", err.Error())
	}
	target, _ := interview.TargetSubStatus(decision)

	var (
		out interview.MockInterview
		buf events.Buffer
	)
	err = s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		buf.Reset()
		m, err := tx.Interview.GetForUpdate(id)
		if err != nil {
			return lookup(err, "mock interview", id)
		}
		if m.IsCompleted() {
			return badRequest("mock interview %d is already completed", m.ID)
		}

		prev := m.State()
		now := nowFunc()
		m.Decision = &decision
		m.ConductedAt = &now
		m.Remarks = input.Remarks
		if len(input.Ratings) > 0 {
			m.Ratings = datatypes.JSON(input.Ratings)
		}
		if err := tx.Interview.Save(&m); err != nil {
			return err
		}

		items := make([]interview.ChecklistItem, 0, len(input.ChecklistItems))
		for _, it := range input.ChecklistItems {
			items = append(items, interview.ChecklistItem{
				MockInterviewID: m.ID,
				Category:        it.Category,
				Criterion:       it.Criterion,
				Passed:          it.Passed,
				Score:           it.Score,
				Notes:           it.Notes,
			})
		}
		if err := tx.Interview.CreateChecklistItems(items); err != nil {
			return err
		}

		if _, err := TransitionTx(tx, TransitionInput{
			AssignmentID: m.AssignmentID,
			SubStatus:    target,
			ChangedBy:    by,
			Reason:       "Mock interview completed: " + string(decision),
			Notes:        input.Remarks,
		}); err != nil {
			return err
		}
		if err := appendInterviewHistory(tx, m, "completed", prev, m.State(), by, input.Remarks); err != nil {
			return err
		}

		buf.Add(events.MockInterviewCompleted, map[string]interface{}{
			"assignment_id": m.AssignmentID,
			"interview_id":  m.ID,
			"decision":      string(decision),
			"sub_status":    target.String(),
		})
		m.ChecklistItems = items
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	events.Dispatch(ctx, s.Publisher, buf.Events())
	return &out, nil
}

// Remove deletes an interview that has not been conducted.
func (s *MockInterviewService) Remove(ctx context.Context, id uint, by uint) error {
	return s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		m, err := tx.Interview.GetForUpdate(id)
		if err != nil {
			return lookup(err, "mock interview", id)
		}
		if m.IsCompleted() {
			return badRequest("mock interview %d is already completed and cannot be removed", m.ID)
		}
		if err := appendInterviewHistory(tx, m, "cancelled", m.State(), "cancelled", by, ""); err != nil {
			return err
		}
		return tx.Interview.Delete(m.ID)
	})
}

func (s *MockInterviewService) Get(ctx context.Context, id uint) (*interview.MockInterview, error) {
	m, err := s.Repos.WithContext(ctx).Interview.GetByID(id)
	if err != nil {
		return nil, lookup(err, "mock interview", id)
	}
	return &m, nil
}

func (s *MockInterviewService) ListByAssignment(ctx context.Context, assignmentID uint) ([]interview.MockInterview, error) {
	repos := s.Repos.WithContext(ctx)
	if _, err := repos.Assignment.GetByID(assignmentID); err != nil {
		return nil, lookup(err, "assignment", assignmentID)
	}
	return repos.Interview.ListByAssignment(assignmentID)
}

func (s *MockInterviewService) History(ctx context.Context, id uint) ([]interview.History, error) {
	return s.Repos.WithContext(ctx).Interview.ListHistory(id)
}

func validMode(m interview.Mode) bool {
	switch m {
	case interview.ModeOnline, interview.ModeInPerson, interview.ModePhone:
		return true
	}
	return false
}

// appendInterviewHistory writes the coordination ledger row. A zero actor is
// stored as NULL.
func appendInterviewHistory(tx *repository.Repos, m interview.MockInterview, action, prev, next string, by uint, notes string) error {
	return tx.Interview.AppendHistory(&interview.History{
		AssignmentID:    m.AssignmentID,
		InterviewID:     m.ID,
		InterviewType:   m.InterviewType,
		Action:          action,
		PreviousStatus:  prev,
		NewStatus:       next,
		PerformedBy:     optionalID(by),
		PerformedByName: displayName(tx, by),
		Notes:           notes,
		CreatedAt:       nowFunc(),
	})
}
