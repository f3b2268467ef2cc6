package application

import (
	"github.com/linskybing/recruit-go/internal/events"
	"github.com/linskybing/recruit-go/internal/repository"
)

type Services struct {
	Status        *StatusService
	Document      *DocumentService
	MockInterview *MockInterviewService
	Training      *TrainingService
	Staffing      *StaffingService
}

func New(repos *repository.Repos, publisher events.Publisher, systemUserID uint) *Services {
	return &Services{
		Status:        NewStatusService(repos),
		Document:      NewDocumentService(repos, publisher),
		MockInterview: NewMockInterviewService(repos, publisher),
		Training:      NewTrainingService(repos, publisher),
		Staffing:      NewStaffingService(repos, publisher, systemUserID),
	}
}
