package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/recruit-go/internal/api/handlers"
	"github.com/linskybing/recruit-go/internal/api/middleware"
	"github.com/linskybing/recruit-go/internal/domain/user"
	"github.com/linskybing/recruit-go/internal/repository"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, repos *repository.Repos) {
	authMiddleware := middleware.NewAuth(repos)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := r.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("/statuses", h.Status.Catalog)

		assignments := api.Group("/assignments")
		{
			assignments.POST("", authMiddleware.RequireRole(user.RoleRecruiter), h.Status.Nominate)
			assignments.GET("/:id", h.Status.GetAssignment)
			assignments.GET("/:id/history", h.Status.History)
			assignments.POST("/:id/status", authMiddleware.RequireRole(user.RoleRecruiter), h.Status.Transition)

			docs := assignments.Group("/:id/documents")
			docs.Use(authMiddleware.RequireRole(user.RoleRecruiter))
			{
				docs.GET("", h.Document.Summary)
				docs.POST("/complete", h.Document.Complete)
				docs.POST("/types/:type_id", h.Document.Replace)
				docs.POST("/:document_id", h.Document.Attach)
				docs.POST("/:document_id/verify", h.Document.Verify)
				docs.POST("/:document_id/resubmission", h.Document.RequestResubmission)
				docs.PUT("/:document_id/file", h.Document.Reupload)
				docs.GET("/:document_id/history", h.Document.History)
			}
		}

		interviews := api.Group("/mock-interviews")
		interviews.Use(authMiddleware.RequireRole(user.RoleInterviewCoordinator, user.RoleRecruiter))
		{
			interviews.GET("", h.MockInterview.List)
			interviews.POST("", h.MockInterview.Create)
			interviews.GET("/:id", h.MockInterview.Get)
			interviews.PUT("/:id", h.MockInterview.Update)
			interviews.POST("/:id/complete", h.MockInterview.Complete)
			interviews.DELETE("/:id", h.MockInterview.Remove)
			interviews.GET("/:id/history", h.MockInterview.History)
		}

		trainings := api.Group("/trainings")
		trainings.Use(authMiddleware.RequireRole(user.RoleTrainer, user.RoleRecruiter))
		{
			trainings.GET("", h.Training.List)
			trainings.POST("", h.Training.Create)
			trainings.GET("/:id", h.Training.Get)
			trainings.GET("/:id/history", h.Training.History)
			trainings.POST("/:id/start", h.Training.Start())
			trainings.POST("/:id/complete", h.Training.Complete())
			trainings.POST("/:id/ready-for-reassessment", h.Training.ReadyForReassessment())
			trainings.POST("/:id/sessions", h.Training.AddSession)
			trainings.PUT("/sessions/:session_id", h.Training.UpdateSession)
			trainings.POST("/sessions/:session_id/complete", h.Training.CompleteSession)
			trainings.DELETE("/sessions/:session_id", h.Training.DeleteSession)
		}

		staffing := api.Group("/staffing")
		{
			staffing.POST("/recruiter", authMiddleware.RequireRole(user.RoleRecruiter), h.Staffing.AssignRecruiter)
			staffing.POST("/cre", authMiddleware.RequireRole(user.RoleCRE, user.RoleRecruiter), h.Staffing.AssignCRE)
			staffing.GET("/candidates/:id", h.Staffing.Owners)
		}
	}
}
