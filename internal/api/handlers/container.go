package handlers

import (
	"github.com/linskybing/recruit-go/internal/application"
)

type Handlers struct {
	Status        *StatusHandler
	Document      *DocumentHandler
	MockInterview *MockInterviewHandler
	Training      *TrainingHandler
	Staffing      *StaffingHandler
}

func New(svc *application.Services, blobs BlobStore) *Handlers {
	return &Handlers{
		Status:        NewStatusHandler(svc.Status),
		Document:      NewDocumentHandler(svc.Document, blobs),
		MockInterview: NewMockInterviewHandler(svc.MockInterview),
		Training:      NewTrainingHandler(svc.Training),
		Staffing:      NewStaffingHandler(svc.Staffing),
	}
}
