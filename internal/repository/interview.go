package repository

import (
	"github.com/linskybing/recruit-go/internal/domain/interview"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InterviewRepo interface {
	Create(m *interview.MockInterview) error
	GetByID(id uint) (interview.MockInterview, error)
	GetForUpdate(id uint) (interview.MockInterview, error)
	Save(m *interview.MockInterview) error
	Delete(id uint) error
	FindOpen(assignmentID uint) (interview.MockInterview, error)
	ListByAssignment(assignmentID uint) ([]interview.MockInterview, error)
	CreateChecklistItems(items []interview.ChecklistItem) error
	AppendHistory(h *interview.History) error
	ListHistory(interviewID uint) ([]interview.History, error)
	WithTx(tx *gorm.DB) InterviewRepo
}

type DBInterviewRepo struct {
	db *gorm.DB
}

func NewInterviewRepo(db *gorm.DB) *DBInterviewRepo {
	return &DBInterviewRepo{
		db: db,
	}
}

func (r *DBInterviewRepo) Create(m *interview.MockInterview) error {
	return r.db.Omit("ChecklistItems").Create(m).Error
}

func (r *DBInterviewRepo) GetByID(id uint) (interview.MockInterview, error) {
	var m interview.MockInterview
	err := r.db.Preload("ChecklistItems").First(&m, id).Error
	return m, err
}

// GetForUpdate row-locks the interview for the rest of the transaction.
func (r *DBInterviewRepo) GetForUpdate(id uint) (interview.MockInterview, error) {
	var m interview.MockInterview
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error
	return m, err
}

// Save writes the interview row only; checklist items are inserted separately.
func (r *DBInterviewRepo) Save(m *interview.MockInterview) error {
	return r.db.Omit("ChecklistItems").Save(m).Error
}

func (r *DBInterviewRepo) Delete(id uint) error {
	return r.db.Delete(&interview.MockInterview{}, id).Error
}

func (r *DBInterviewRepo) FindOpen(assignmentID uint) (interview.MockInterview, error) {
	var m interview.MockInterview
	err := r.db.Where("assignment_id = ? AND decision IS NULL", assignmentID).First(&m).Error
	return m, err
}

func (r *DBInterviewRepo) ListByAssignment(assignmentID uint) ([]interview.MockInterview, error) {
	var list []interview.MockInterview
	err := r.db.Preload("ChecklistItems").
		Where("assignment_id = ?", assignmentID).
		Order("scheduled_time DESC").
		Find(&list).Error
	return list, err
}

func (r *DBInterviewRepo) CreateChecklistItems(items []interview.ChecklistItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

func (r *DBInterviewRepo) AppendHistory(h *interview.History) error {
	return r.db.Create(h).Error
}

func (r *DBInterviewRepo) ListHistory(interviewID uint) ([]interview.History, error) {
	var list []interview.History
	err := r.db.Where("interview_id = ?", interviewID).Order("created_at ASC, id ASC").Find(&list).Error
	return list, err
}

func (r *DBInterviewRepo) WithTx(tx *gorm.DB) InterviewRepo {
	if tx == nil {
		return r
	}
	return &DBInterviewRepo{
		db: tx,
	}
}
