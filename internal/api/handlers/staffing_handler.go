package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/recruit-go/internal/application"
	"github.com/linskybing/recruit-go/internal/domain/user"
	"github.com/linskybing/recruit-go/pkg/response"
)

type StaffingHandler struct {
	service *application.StaffingService
}

func NewStaffingHandler(service *application.StaffingService) *StaffingHandler {
	return &StaffingHandler{service: service}
}

func (h *StaffingHandler) AssignRecruiter(c *gin.Context) {
	var input user.AssignOwnerDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}
	uid, ok := actor(c)
	if !ok {
		return
	}
	ra, err := h.service.AssignRecruiter(c.Request.Context(), input.CandidateID, uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(user.OwnerDTO{CandidateID: ra.CandidateID, UserID: ra.RecruiterID}, ra.Reason))
}

func (h *StaffingHandler) AssignCRE(c *gin.Context) {
	var input user.AssignOwnerDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}
	uid, ok := actor(c)
	if !ok {
		return
	}
	ca, err := h.service.AssignCRE(c.Request.Context(), input.CandidateID, uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(user.OwnerDTO{CandidateID: ca.CandidateID, UserID: ca.CREID}, ca.Reason))
}

func (h *StaffingHandler) Owners(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	out := gin.H{}
	ra, err := h.service.ActiveRecruiter(c.Request.Context(), id)
	switch {
	case err == nil:
		out["recruiter"] = ra
	case !errors.Is(err, application.ErrNotFound):
		writeError(c, err)
		return
	}
	ca, err := h.service.ActiveCRE(c.Request.Context(), id)
	switch {
	case err == nil:
		out["cre"] = ca
	case !errors.Is(err, application.ErrNotFound):
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(out))
}
