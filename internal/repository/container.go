package repository

import (
	"context"

	"gorm.io/gorm"
)

type Repos struct {
	Status     StatusRepo
	Assignment AssignmentRepo
	Document   DocumentRepo
	Interview  InterviewRepo
	Training   TrainingRepo
	Staffing   StaffingRepo
	User       UserRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Status:     NewStatusRepo(db),
		Assignment: NewAssignmentRepo(db),
		Document:   NewDocumentRepo(db),
		Interview:  NewInterviewRepo(db),
		Training:   NewTrainingRepo(db),
		Staffing:   NewStaffingRepo(db),
		User:       NewUserRepo(db),
		db:         db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Status:     r.Status.WithTx(tx),
		Assignment: r.Assignment.WithTx(tx),
		Document:   r.Document.WithTx(tx),
		Interview:  r.Interview.WithTx(tx),
		Training:   r.Training.WithTx(tx),
		Staffing:   r.Staffing.WithTx(tx),
		User:       r.User.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn with repositories bound to one transaction. Any error from
// fn rolls everything back.
func (r *Repos) ExecTx(ctx context.Context, fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

// WithContext binds ctx to every repository for read paths.
func (r *Repos) WithContext(ctx context.Context) *Repos {
	if r.db == nil {
		return r
	}
	return r.WithTx(r.db.WithContext(ctx))
}
