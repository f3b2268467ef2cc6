package repository

import (
	"github.com/linskybing/recruit-go/internal/domain/training"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrainingRepo interface {
	CreateAssignment(a *training.Assignment) error
	GetAssignment(id uint) (training.Assignment, error)
	GetAssignmentForUpdate(id uint) (training.Assignment, error)
	SaveAssignment(a *training.Assignment) error
	ListByAssignment(assignmentID uint) ([]training.Assignment, error)

	GetScreening(id uint) (training.Screening, error)
	MarkScreeningTrainerAssigned(id uint) error

	CreateSession(s *training.Session) error
	GetSession(id uint) (training.Session, error)
	SaveSession(s *training.Session) error
	DeleteSession(id uint) error
	CountSessions(trainingAssignmentID uint) (int64, error)

	AppendHistory(h *training.History) error
	ListHistory(trainingAssignmentID uint) ([]training.History, error)
	WithTx(tx *gorm.DB) TrainingRepo
}

type DBTrainingRepo struct {
	db *gorm.DB
}

func NewTrainingRepo(db *gorm.DB) *DBTrainingRepo {
	return &DBTrainingRepo{
		db: db,
	}
}

func (r *DBTrainingRepo) CreateAssignment(a *training.Assignment) error {
	return r.db.Omit("Sessions").Create(a).Error
}

func (r *DBTrainingRepo) GetAssignment(id uint) (training.Assignment, error) {
	var a training.Assignment
	err := r.db.Preload("Sessions", func(db *gorm.DB) *gorm.DB {
		return db.Order("session_number ASC")
	}).First(&a, id).Error
	return a, err
}

func (r *DBTrainingRepo) GetAssignmentForUpdate(id uint) (training.Assignment, error) {
	var a training.Assignment
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&a, id).Error
	return a, err
}

func (r *DBTrainingRepo) SaveAssignment(a *training.Assignment) error {
	return r.db.Omit("Sessions").Save(a).Error
}

func (r *DBTrainingRepo) ListByAssignment(assignmentID uint) ([]training.Assignment, error) {
	var list []training.Assignment
	err := r.db.Where("assignment_id = ?", assignmentID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *DBTrainingRepo) GetScreening(id uint) (training.Screening, error) {
	var s training.Screening
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBTrainingRepo) MarkScreeningTrainerAssigned(id uint) error {
	return r.db.Model(&training.Screening{}).Where("id = ?", id).Update("is_assigned_trainer", true).Error
}

func (r *DBTrainingRepo) CreateSession(s *training.Session) error {
	return r.db.Create(s).Error
}

func (r *DBTrainingRepo) GetSession(id uint) (training.Session, error) {
	var s training.Session
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBTrainingRepo) SaveSession(s *training.Session) error {
	return r.db.Save(s).Error
}

func (r *DBTrainingRepo) DeleteSession(id uint) error {
	return r.db.Delete(&training.Session{}, id).Error
}

func (r *DBTrainingRepo) CountSessions(trainingAssignmentID uint) (int64, error) {
	var n int64
	err := r.db.Model(&training.Session{}).Where("training_assignment_id = ?", trainingAssignmentID).Count(&n).Error
	return n, err
}

func (r *DBTrainingRepo) AppendHistory(h *training.History) error {
	return r.db.Create(h).Error
}

func (r *DBTrainingRepo) ListHistory(trainingAssignmentID uint) ([]training.History, error) {
	var list []training.History
	err := r.db.Where("training_assignment_id = ?", trainingAssignmentID).Order("created_at ASC, id ASC").Find(&list).Error
	return list, err
}

func (r *DBTrainingRepo) WithTx(tx *gorm.DB) TrainingRepo {
	if tx == nil {
		return r
	}
	return &DBTrainingRepo{
		db: tx,
	}
}
