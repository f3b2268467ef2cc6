package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/recruit-go/internal/domain/assignment"
	"github.com/linskybing/recruit-go/internal/domain/status"
	"github.com/linskybing/recruit-go/internal/domain/user"
	evmock "github.com/linskybing/recruit-go/internal/events/mock"
	"github.com/linskybing/recruit-go/internal/repository"
	"github.com/linskybing/recruit-go/internal/repository/mock"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
type workflowMocks struct {
	status     *mock.MockStatusRepo
	assignment *mock.MockAssignmentRepo
	document   *mock.MockDocumentRepo
	interview  *mock.MockInterviewRepo
	training   *mock.MockTrainingRepo
	staffing   *mock.MockStaffingRepo
	user       *mock.MockUserRepo
	publisher  *evmock.MockPublisher
	repos      *repository.Repos
}

func setupWorkflowMocks(t *testing.T) *workflowMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &workflowMocks{
		status:     mock.NewMockStatusRepo(ctrl),
		assignment: mock.NewMockAssignmentRepo(ctrl),
		document:   mock.NewMockDocumentRepo(ctrl),
		interview:  mock.NewMockInterviewRepo(ctrl),
		training:   mock.NewMockTrainingRepo(ctrl),
		staffing:   mock.NewMockStaffingRepo(ctrl),
		user:       mock.NewMockUserRepo(ctrl),
		publisher:  evmock.NewMockPublisher(ctrl),
	}
	m.repos = &repository.Repos{
		Status:     m.status,
		Assignment: m.assignment,
		Document:   m.document,
		Interview:  m.interview,
		Training:   m.training,
		Staffing:   m.staffing,
		User:       m.user,
	}

	// Ledger snapshots look up actor names; tests don't care about them.
	m.user.EXPECT().GetUserByID(gomock.Any()).Return(user.User{Username: "tester"}, nil).AnyTimes()

	fixed := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	prev := nowFunc
	nowFunc = func() time.Time { return fixed }
	t.Cleanup(func() { nowFunc = prev })
	return m
}

// testCatalog gives every seeded status a stable id: mains 1..n, subs 100+.
func testCatalog() (map[status.Name]status.MainStatus, map[status.Name]status.SubStatus) {
	mains := make(map[status.Name]status.MainStatus, len(status.DefaultMain))
	for i, e := range status.DefaultMain {
		mains[e.Name] = status.MainStatus{ID: uint(i + 1), Name: e.Name, Label: e.Label}
	}
	subs := make(map[status.Name]status.SubStatus, len(status.DefaultSub))
	for i, e := range status.DefaultSub {
		main := mains[e.Main]
		subs[e.Sub] = status.SubStatus{ID: uint(100 + i), MainStatusID: main.ID, MainStatus: &main, Name: e.Sub, Label: e.Label}
	}
	return mains, subs
}

// expectTransition arms the calls TransitionTx makes for one move into sub
// and returns a pointer that receives the written history row.
func (m *workflowMocks) expectTransition(a assignment.Assignment, sub status.Name) *assignment.StatusHistory {
	_, subs := testCatalog()
	s, ok := subs[sub]
	if !ok {
		panic("unknown sub status " + sub.String())
	}
	var written assignment.StatusHistory
	m.assignment.EXPECT().GetByID(a.ID).Return(a, nil)
	m.status.EXPECT().GetSubByName(sub).Return(s, nil)
	m.assignment.EXPECT().UpdateStatus(a.ID, s.MainStatusID, s.ID).Return(nil)
	m.assignment.EXPECT().AppendHistory(gomock.Any()).DoAndReturn(func(h *assignment.StatusHistory) error {
		written = *h
		return nil
	})
	return &written
}

func assignmentAt(id uint, sub status.Name) assignment.Assignment {
	a := assignment.Assignment{ID: id, CandidateID: 7, ProjectID: 3, RoleID: 2, IsActive: true}
	if sub == "" {
		return a
	}
	_, subs := testCatalog()
	s := subs[sub]
	a.MainStatus = s.MainStatus
	a.SubStatus = &s
	a.MainStatusID = &s.MainStatusID
	a.SubStatusID = &s.ID
	return a
}

var errNotFoundRecord = gorm.ErrRecordNotFound

func ptrInt(v int) *int { return &v }
