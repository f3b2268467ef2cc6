package repository

import (
	"github.com/linskybing/recruit-go/internal/domain/status"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatusRepo interface {
	GetMainByID(id uint) (status.MainStatus, error)
	GetMainByName(name status.Name) (status.MainStatus, error)
	GetSubByName(name status.Name) (status.SubStatus, error)
	ListMain() ([]status.MainStatus, error)
	ListSub() ([]status.SubStatus, error)
	UpsertMain(m *status.MainStatus) error
	UpsertSub(s *status.SubStatus) error
	WithTx(tx *gorm.DB) StatusRepo
}

type DBStatusRepo struct {
	db *gorm.DB
}

func NewStatusRepo(db *gorm.DB) *DBStatusRepo {
	return &DBStatusRepo{
		db: db,
	}
}

func (r *DBStatusRepo) GetMainByID(id uint) (status.MainStatus, error) {
	var m status.MainStatus
	err := r.db.First(&m, id).Error
	return m, err
}

func (r *DBStatusRepo) GetMainByName(name status.Name) (status.MainStatus, error) {
	var m status.MainStatus
	err := r.db.Where("name = ?", name).First(&m).Error
	return m, err
}

// GetSubByName loads the sub status with its parent main status.
func (r *DBStatusRepo) GetSubByName(name status.Name) (status.SubStatus, error) {
	var s status.SubStatus
	err := r.db.Preload("MainStatus").Where("name = ?", name).First(&s).Error
	return s, err
}

func (r *DBStatusRepo) ListMain() ([]status.MainStatus, error) {
	var list []status.MainStatus
	err := r.db.Order("sort_order ASC, id ASC").Find(&list).Error
	return list, err
}

func (r *DBStatusRepo) ListSub() ([]status.SubStatus, error) {
	var list []status.SubStatus
	err := r.db.Preload("MainStatus").Order("main_status_id ASC, sort_order ASC").Find(&list).Error
	return list, err
}

// UpsertMain inserts or refreshes display fields keyed by name.
func (r *DBStatusRepo) UpsertMain(m *status.MainStatus) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"label", "sort_order", "color", "icon", "updated_at"}),
	}).Create(m).Error
}

func (r *DBStatusRepo) UpsertSub(s *status.SubStatus) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"main_status_id", "label", "sort_order", "color", "icon", "updated_at"}),
	}).Create(s).Error
}

func (r *DBStatusRepo) WithTx(tx *gorm.DB) StatusRepo {
	if tx == nil {
		return r
	}
	return &DBStatusRepo{
		db: tx,
	}
}
