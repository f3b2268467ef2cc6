package application

import (
	"context"

	"github.com/linskybing/recruit-go/internal/domain/training"
	"github.com/linskybing/recruit-go/internal/domain/user"
	"github.com/linskybing/recruit-go/internal/events"
	"github.com/linskybing/recruit-go/internal/repository"
)

type TrainingService struct {
	Repos     *repository.Repos
	Publisher events.Publisher
}

func NewTrainingService(repos *repository.Repos, publisher events.Publisher) *TrainingService {
	return &TrainingService{
		Repos:     repos,
		Publisher: publisher,
	}
}

// CreateAssignment assigns a trainer. When a screening is linked it is marked
// as having a trainer.
func (s *TrainingService) CreateAssignment(ctx context.Context, input training.CreateAssignmentDTO, by uint) (*training.Assignment, error) {
	var (
		out training.Assignment
		buf events.Buffer
	)
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		buf.Reset()
		a, err := tx.Assignment.GetByID(input.AssignmentID)
		if err != nil {
			return lookup(err, "assignment", input.AssignmentID)
		}
		ok, err := tx.User.HasRole(input.TrainerID, user.RoleTrainer)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("trainer %d not found", input.TrainerID)
		}
		if input.ScreeningID != nil {
			sc, err := tx.Training.GetScreening(*input.ScreeningID)
			if err != nil {
				return lookup(err, "screening", *input.ScreeningID)
			}
			if sc.AssignmentID != a.ID {
				return badRequest("screening %d does not belong to assignment %d", sc.ID, a.ID)
			}
			if err := tx.Training.MarkScreeningTrainerAssigned(sc.ID); err != nil {
				return err
			}
		}

		t := training.Assignment{
			AssignmentID: a.ID,
			ScreeningID:  input.ScreeningID,
			TrainerID:    input.TrainerID,
			AssignedBy:   optionalID(by),
			TrainingType: input.TrainingType,
			FocusAreas:   input.FocusAreas,
			Priority:     input.Priority,
			Status:       training.StatusAssigned,
			Notes:        input.Notes,
		}
		if t.TrainingType == "" {
			if t.IsBasic() {
				t.TrainingType = "basic"
			} else {
				t.TrainingType = "screening"
			}
		}
		if t.Priority == "" {
			t.Priority = "medium"
		}
		if err := tx.Training.CreateAssignment(&t); err != nil {
			return err
		}
		if err := s.syncAssignment(tx, t, "", "assigned", by, input.Notes); err != nil {
			return err
		}

		buf.Add(events.TrainingStatusChanged, trainingPayload(t, ""))
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	events.Dispatch(ctx, s.Publisher, buf.Events())
	return &out, nil
}

func (s *TrainingService) Start(ctx context.Context, id uint, notes string, by uint) (*training.Assignment, error) {
	return s.advance(ctx, id, training.StatusInProgress, notes, by)
}

func (s *TrainingService) Complete(ctx context.Context, id uint, notes string, by uint) (*training.Assignment, error) {
	return s.advance(ctx, id, training.StatusCompleted, notes, by)
}

func (s *TrainingService) MarkReadyForReassessment(ctx context.Context, id uint, notes string, by uint) (*training.Assignment, error) {
	return s.advance(ctx, id, training.StatusReadyForReassessment, notes, by)
}

// advance moves a training assignment one step forward and mirrors the new
// state onto the owning assignment.
func (s *TrainingService) advance(ctx context.Context, id uint, next training.Status, notes string, by uint) (*training.Assignment, error) {
	var (
		out training.Assignment
		buf events.Buffer
	)
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		buf.Reset()
		t, err := tx.Training.GetAssignmentForUpdate(id)
		if err != nil {
			return lookup(err, "training assignment", id)
		}
		if err := training.CheckTransition(t.Status, next); err != nil {
			return badRequest("%s", err.Error())
		}

		prev := t.Status
		now := nowFunc()
		t.Status = next
		switch next {
		case training.StatusInProgress:
			t.StartedAt = &now
		case training.StatusCompleted:
			t.CompletedAt = &now
		}
		if notes != "" {
			t.Notes = notes
		}
		if err := tx.Training.SaveAssignment(&t); err != nil {
			return err
		}
		if err := s.syncAssignment(tx, t, prev, string(next), by, notes); err != nil {
			return err
		}

		buf.Add(events.TrainingStatusChanged, trainingPayload(t, prev))
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	events.Dispatch(ctx, s.Publisher, buf.Events())
	return &out, nil
}

// syncAssignment writes both ledgers for a training state change.
func (s *TrainingService) syncAssignment(tx *repository.Repos, t training.Assignment, prev training.Status, action string, by uint, notes string) error {
	sub, ok := training.SubStatusFor(t.Status)
	if !ok {
		return badRequest("training status %s has no assignment sub status", t.Status)
	}
	if _, err := TransitionTx(tx, TransitionInput{
		AssignmentID: t.AssignmentID,
		SubStatus:    sub,
		ChangedBy:    by,
		Reason:       "Training " + string(t.Status),
		Notes:        notes,
	}); err != nil {
		return err
	}
	return tx.Training.AppendHistory(&training.History{
		TrainingAssignmentID: t.ID,
		AssignmentID:         t.AssignmentID,
		Action:               action,
		PreviousStatus:       prev,
		NewStatus:            t.Status,
		PerformedBy:          optionalID(by),
		PerformedByName:      displayName(tx, by),
		Notes:                notes,
		CreatedAt:            nowFunc(),
	})
}

func (s *TrainingService) Get(ctx context.Context, id uint) (*training.Assignment, error) {
	t, err := s.Repos.WithContext(ctx).Training.GetAssignment(id)
	if err != nil {
		return nil, lookup(err, "training assignment", id)
	}
	return &t, nil
}

func (s *TrainingService) ListByAssignment(ctx context.Context, assignmentID uint) ([]training.Assignment, error) {
	return s.Repos.WithContext(ctx).Training.ListByAssignment(assignmentID)
}

func (s *TrainingService) History(ctx context.Context, id uint) ([]training.History, error) {
	return s.Repos.WithContext(ctx).Training.ListHistory(id)
}

// AddSession appends a numbered session to a live training assignment.
func (s *TrainingService) AddSession(ctx context.Context, trainingID uint, input training.CreateSessionDTO) (*training.Session, error) {
	var out training.Session
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		t, err := tx.Training.GetAssignmentForUpdate(trainingID)
		if err != nil {
			return lookup(err, "training assignment", trainingID)
		}
		if t.Status == training.StatusCancelled {
			return badRequest("training assignment %d is cancelled", t.ID)
		}
		n, err := tx.Training.CountSessions(t.ID)
		if err != nil {
			return err
		}
		sess := training.Session{
			TrainingAssignmentID: t.ID,
			SessionNumber:        int(n) + 1,
			Topic:                input.Topic,
			ScheduledTime:        input.ScheduledTime,
			DurationMinutes:      input.DurationMinutes,
			Notes:                input.Notes,
		}
		if sess.DurationMinutes <= 0 {
			sess.DurationMinutes = 60
		}
		if err := tx.Training.CreateSession(&sess); err != nil {
			return err
		}
		out = sess
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *TrainingService) UpdateSession(ctx context.Context, sessionID uint, input training.UpdateSessionDTO) (*training.Session, error) {
	var out training.Session
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		sess, err := tx.Training.GetSession(sessionID)
		if err != nil {
			return lookup(err, "training session", sessionID)
		}
		if sess.IsCompleted() {
			return badRequest("training session %d is already completed", sess.ID)
		}
		if input.Topic != nil {
			sess.Topic = *input.Topic
		}
		if input.ScheduledTime != nil {
			sess.ScheduledTime = *input.ScheduledTime
		}
		if input.DurationMinutes != nil {
			sess.DurationMinutes = *input.DurationMinutes
		}
		if input.Notes != nil {
			sess.Notes = *input.Notes
		}
		if err := tx.Training.SaveSession(&sess); err != nil {
			return err
		}
		out = sess
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CompleteSession closes one session. The parent training is not moved.
func (s *TrainingService) CompleteSession(ctx context.Context, sessionID uint, input training.CompleteSessionDTO) (*training.Session, error) {
	if r := input.PerformanceRating; r != nil && (*r < 1 || *r > 5) {
		return nil, badRequest("performance rating must be between 1 and 5")
	}
	var out training.Session
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		sess, err := tx.Training.GetSession(sessionID)
		if err != nil {
			return lookup(err, "training session", sessionID)
		}
		if sess.IsCompleted() {
			return badRequest("training session %d is already completed", sess.ID)
		}
		now := nowFunc()
		sess.CompletedAt = &now
		sess.Attended = input.Attended
		sess.PerformanceRating = input.PerformanceRating
		if input.Notes != "" {
			sess.Notes = input.Notes
		}
		if err := tx.Training.SaveSession(&sess); err != nil {
			return err
		}
		out = sess
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSession removes a session that has not been completed.
func (s *TrainingService) DeleteSession(ctx context.Context, sessionID uint) error {
	return s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		sess, err := tx.Training.GetSession(sessionID)
		if err != nil {
			return lookup(err, "training session", sessionID)
		}
		if sess.IsCompleted() {
			return badRequest("training session %d is already completed", sess.ID)
		}
		return tx.Training.DeleteSession(sess.ID)
	})
}

func trainingPayload(t training.Assignment, prev training.Status) map[string]interface{} {
	return map[string]interface{}{
		"training_assignment_id": t.ID,
		"assignment_id":          t.AssignmentID,
		"trainer_id":             t.TrainerID,
		"previous_status":        string(prev),
		"status":                 string(t.Status),
	}
}
