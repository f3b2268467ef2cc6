package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/recruit-go/internal/application"
	"github.com/linskybing/recruit-go/internal/domain/assignment"
	"github.com/linskybing/recruit-go/internal/domain/status"
	"github.com/linskybing/recruit-go/pkg/response"
)

type StatusHandler struct {
	service *application.StatusService
}

func NewStatusHandler(service *application.StatusService) *StatusHandler {
	return &StatusHandler{service: service}
}

func (h *StatusHandler) Nominate(c *gin.Context) {
	var input assignment.NominateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}
	uid, ok := actor(c)
	if !ok {
		return
	}
	a, err := h.service.Nominate(c.Request.Context(), input.CandidateID, input.ProjectID, input.RoleID, uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OKMessage(a, "Candidate nominated"))
}

func (h *StatusHandler) GetAssignment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	a, err := h.service.GetAssignment(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(a))
}

func (h *StatusHandler) Transition(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input assignment.TransitionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}
	uid, ok := actor(c)
	if !ok {
		return
	}
	a, err := h.service.Transition(c.Request.Context(), application.TransitionInput{
		AssignmentID: id,
		SubStatus:    status.Name(input.SubStatus),
		ChangedBy:    uid,
		Reason:       input.Reason,
		Notes:        input.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(a, "Status updated"))
}

func (h *StatusHandler) History(c *gin.Context) {
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

func (h *StatusHandler) Catalog(c *gin.Context) {
	mains, subs, err := h.service.Catalog(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(gin.H{"main_statuses": mains, "sub_statuses": subs}))
}
