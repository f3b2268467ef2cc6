package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/recruit-go/internal/application"
	"github.com/linskybing/recruit-go/internal/domain/interview"
	"github.com/linskybing/recruit-go/pkg/response"
	"github.com/linskybing/recruit-go/pkg/utils"
)

type MockInterviewHandler struct {
	service *application.MockInterviewService
}

func NewMockInterviewHandler(service *application.MockInterviewService) *MockInterviewHandler {
	return &MockInterviewHandler{service: service}
}

func (h *MockInterviewHandler) Create(c *gin.Context) {
	var input interview.CreateMockInterviewDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}
	uid, ok := actor(c)
	if !ok {
		return
	}
	m, err := h.service.Create(c.Request.Context(), input, uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OKMessage(m, "Mock interview scheduled"))
}

func (h *MockInterviewHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input interview.UpdateMockInterviewDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}
	uid, ok := actor(c)
	if !ok {
		return
	}
	m, err := h.service.Update(c.Request.Context(), id, input, uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(m))
}

func (h *MockInterviewHandler) Complete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input interview.CompleteMockInterviewDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}
	uid, ok := actor(c)
	if !ok {
		return
	}
	m, err := h.service.Complete(c.Request.Context(), id, input, uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(m, "Mock interview completed"))
}

func (h *MockInterviewHandler) Remove(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	uid, ok := actor(c)
	if !ok {
		return
	}
	if err := h.service.Remove(c.Request.Context(), id, uid); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(nil, "Mock interview removed"))
}

func (h *MockInterviewHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	m, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(m))
}

// List expects ?assignment_id=.
func (h *MockInterviewHandler) List(c *gin.Context) {
	aid, err := utils.ParseQueryUintParam(c, "assignment_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("assignment_id is required"))
		return
	}
	list, err := h.service.ListByAssignment(c.Request.Context(), aid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(list))
}

func (h *MockInterviewHandler) History(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	list, err := h.service.History(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(list))
}
