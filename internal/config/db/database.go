package db

import (
	"fmt"
	"log"

	"github.com/linskybing/recruit-go/internal/config"
	"github.com/linskybing/recruit-go/internal/domain/assignment"
	"github.com/linskybing/recruit-go/internal/domain/document"
	"github.com/linskybing/recruit-go/internal/domain/interview"
	"github.com/linskybing/recruit-go/internal/domain/staffing"
	"github.com/linskybing/recruit-go/internal/domain/status"
	"github.com/linskybing/recruit-go/internal/domain/training"
	"github.com/linskybing/recruit-go/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Models lists every table owned by the workflow, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&user.User{},
		&user.Role{},
		&user.UserRole{},
		&user.Candidate{},
		&status.MainStatus{},
		&status.SubStatus{},
		&assignment.Assignment{},
		&assignment.StatusHistory{},
		&document.DocumentType{},
		&document.ProjectRequirement{},
		&document.Document{},
		&document.Verification{},
		&document.VerificationHistory{},
		&interview.MockInterview{},
		&interview.ChecklistItem{},
		&interview.History{},
		&training.Screening{},
		&training.Assignment{},
		&training.Session{},
		&training.History{},
		&staffing.RecruiterAssignment{},
		&staffing.CREAssignment{},
	}
}

func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)
}

func Init() {
	var err error
	DB, err = gorm.Open(postgres.Open(DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}
	log.Println("Database connected")
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// Migrate creates or updates the workflow schema.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(Models()...)
}
