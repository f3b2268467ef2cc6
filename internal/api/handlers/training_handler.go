package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/recruit-go/internal/application"
	"github.com/linskybing/recruit-go/internal/domain/training"
	"github.com/linskybing/recruit-go/pkg/response"
	"github.com/linskybing/recruit-go/pkg/utils"
)

type TrainingHandler struct {
	service *application.TrainingService
}

func NewTrainingHandler(service *application.TrainingService) *TrainingHandler {
	return &TrainingHandler{service: service}
}

func (h *TrainingHandler) Create(c *gin.Context) {
	var input training.CreateAssignmentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}
	uid, ok := actor(c)
	if !ok {
		return
	}
	t, err := h.service.CreateAssignment(c.Request.Context(), input, uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OKMessage(t, "Training assigned"))
}

type trainingStep func(ctx context.Context, id uint, notes string, by uint) (*training.Assignment, error)

// step builds a handler for one forward move of the training state machine.
func (h *TrainingHandler) step(move trainingStep, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		var input training.TransitionDTO
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&input); err != nil {
				badInput(c, err)
				return
			}
		}
		uid, ok := actor(c)
		if !ok {
			return
		}
		t, err := move(c.Request.Context(), id, input.Notes, uid)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKMessage(t, msg))
	}
}

func (h *TrainingHandler) Start() gin.HandlerFunc {
	return h.step(h.service.Start, "Training started")
}

func (h *TrainingHandler) Complete() gin.HandlerFunc {
	return h.step(h.service.Complete, "Training completed")
}

func (h *TrainingHandler) ReadyForReassessment() gin.HandlerFunc {
	return h.step(h.service.MarkReadyForReassessment, "Ready for reassessment")
}

func (h *TrainingHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	t, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(t))
}

// List expects ?assignment_id=.
func (h *TrainingHandler) List(c *gin.Context) {
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

func (h *TrainingHandler) History(c *gin.Context) {
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

func (h *TrainingHandler) AddSession(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input training.CreateSessionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}
	s, err := h.service.AddSession(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(s))
}

func (h *TrainingHandler) UpdateSession(c *gin.Context) {
	id, ok := idParam(c, "session_id")
	if !ok {
		return
	}
	var input training.UpdateSessionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}
	s, err := h.service.UpdateSession(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(s))
}

func (h *TrainingHandler) CompleteSession(c *gin.Context) {
	id, ok := idParam(c, "session_id")
	if !ok {
		return
	}
	var input training.CompleteSessionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}
	s, err := h.service.CompleteSession(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(s, "Session completed"))
}

func (h *TrainingHandler) DeleteSession(c *gin.Context) {
	id, ok := idParam(c, "session_id")
	if !ok {
		return
	}
	if err := h.service.DeleteSession(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(nil, "Session deleted"))
}
