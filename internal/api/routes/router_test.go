package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/recruit-go/internal/api/handlers"
	"github.com/linskybing/recruit-go/internal/api/middleware"
	"github.com/linskybing/recruit-go/internal/api/routes"
	"github.com/linskybing/recruit-go/internal/application"
	"github.com/linskybing/recruit-go/internal/config"
	"github.com/linskybing/recruit-go/internal/domain/assignment"
	"github.com/linskybing/recruit-go/internal/domain/interview"
	"github.com/linskybing/recruit-go/internal/domain/training"
	"github.com/linskybing/recruit-go/internal/domain/user"
	evmock "github.com/linskybing/recruit-go/internal/events/mock"
	"github.com/linskybing/recruit-go/internal/repository"
	"github.com/linskybing/recruit-go/internal/repository/mock"
	"github.com/linskybing/recruit-go/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	router     *gin.Engine
	assignment *mock.MockAssignmentRepo
	interview  *mock.MockInterviewRepo
	training   *mock.MockTrainingRepo
	user       *mock.MockUserRepo
}

// --------------------- Setup ---------------------
func setupServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	config.JwtSecret = "router-test-secret"
	config.Issuer = "recruit-test"
	middleware.Init()

	s := &testServer{
		assignment: mock.NewMockAssignmentRepo(ctrl),
		interview:  mock.NewMockInterviewRepo(ctrl),
		training:   mock.NewMockTrainingRepo(ctrl),
		user:       mock.NewMockUserRepo(ctrl),
	}
	repos := &repository.Repos{
		Status:     mock.NewMockStatusRepo(ctrl),
		Assignment: s.assignment,
		Document:   mock.NewMockDocumentRepo(ctrl),
		Interview:  s.interview,
		Training:   s.training,
		Staffing:   mock.NewMockStaffingRepo(ctrl),
		User:       s.user,
	}
	svc := application.New(repos, evmock.NewMockPublisher(ctrl), 1)

	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	routes.RegisterRoutes(s.router, handlers.New(svc, nil), repos)
	return s
}

func token(t *testing.T, userID uint, admin bool) string {
	tok, err := middleware.GenerateToken(userID, "tester", admin, time.Hour)
	require.NoError(t, err)
	return tok
}

func (s *testServer) do(t *testing.T, method, path, tok string, body interface{}) (*httptest.ResponseRecorder, response.Envelope) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env response.Envelope
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

// --------------------- Auth ---------------------
func TestHealthz(t *testing.T) {
	s := setupServer(t)
	w, _ := s.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPI_RequiresToken(t *testing.T) {
	s := setupServer(t)
	w, env := s.do(t, http.MethodGet, "/api/v1/assignments/1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
}

func TestAPI_RejectsForeignSignature(t *testing.T) {
	s := setupServer(t)
	tok := token(t, 9, true)
	config.JwtSecret = "another-secret"
	middleware.Init()

	w, _ := s.do(t, http.MethodGet, "/api/v1/assignments/1", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_RoleCheck(t *testing.T) {
	s := setupServer(t)
	s.user.EXPECT().HasRole(uint(9), user.RoleAdmin).Return(false, nil)
	s.user.EXPECT().HasRole(uint(9), user.RoleInterviewCoordinator).Return(false, nil)
	s.user.EXPECT().HasRole(uint(9), user.RoleRecruiter).Return(false, nil)

	w, env := s.do(t, http.MethodGet, "/api/v1/mock-interviews/3", token(t, 9, false), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "insufficient role", env.Message)
}

// --------------------- Error mapping ---------------------
func TestAPI_NotFoundMapsTo404(t *testing.T) {
	s := setupServer(t)
	s.assignment.EXPECT().GetByID(uint(404)).Return(assignment.Assignment{}, gorm.ErrRecordNotFound)

	w, env := s.do(t, http.MethodGet, "/api/v1/assignments/404", token(t, 9, true), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "assignment 404 not found", env.Message)
}

func TestAPI_InvalidIDMapsTo400(t *testing.T) {
	s := setupServer(t)

	w, env := s.do(t, http.MethodGet, "/api/v1/assignments/abc", token(t, 9, true), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid id", env.Message)
}

func TestAPI_OpenInterviewMapsTo409(t *testing.T) {
	s := setupServer(t)
	s.user.EXPECT().GetUserByID(gomock.Any()).Return(user.User{Username: "tester"}, nil).AnyTimes()
	s.assignment.EXPECT().GetByID(uint(1)).Return(assignment.Assignment{ID: 1, CandidateID: 7}, nil)
	s.user.EXPECT().HasRole(uint(4), user.RoleInterviewCoordinator).Return(true, nil)
	s.interview.EXPECT().FindOpen(uint(1)).Return(interview.MockInterview{ID: 30, AssignmentID: 1}, nil)

	w, env := s.do(t, http.MethodPost, "/api/v1/mock-interviews", token(t, 9, true), map[string]interface{}{
		"assignment_id":  1,
		"coordinator_id": 4,
		"scheduled_time": "2026-03-12T10:00:00Z",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, env.Success)
}

func TestAPI_IllegalTrainingMoveMapsTo400(t *testing.T) {
	s := setupServer(t)
	s.training.EXPECT().GetAssignmentForUpdate(uint(50)).Return(training.Assignment{ID: 50, AssignmentID: 1, Status: training.StatusInProgress}, nil)

	w, env := s.do(t, http.MethodPost, "/api/v1/trainings/50/start", token(t, 9, true), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "current status is in_progress")
}

func TestAPI_MissingRequiredFieldIs400(t *testing.T) {
	s := setupServer(t)

	w, env := s.do(t, http.MethodPost, "/api/v1/mock-interviews", token(t, 9, true), map[string]interface{}{
		"assignment_id": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestAPI_RepositoryFailureIs500(t *testing.T) {
	s := setupServer(t)
	s.assignment.EXPECT().GetByID(uint(2)).Return(assignment.Assignment{}, assert.AnError)

	w, env := s.do(t, http.MethodGet, "/api/v1/assignments/2", token(t, 9, true), nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal error", env.Message)
}
