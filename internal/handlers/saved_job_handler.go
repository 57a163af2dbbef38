package handlers

import (
	"net/http"

	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	*BaseHandler
	savedJobService *services.SavedJobService
}

func NewSavedJobHandler(base *BaseHandler, savedJobService *services.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{
		BaseHandler:     base,
		savedJobService: savedJobService,
	}
}

func (h *SavedJobHandler) RegisterRoutes(r *gin.RouterGroup) {
	saved := r.Group("/saved-jobs")
	saved.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleJobSeeker))
	{
		saved.POST("/:jobId", h.SaveJob)
		saved.DELETE("/:jobId", h.UnsaveJob)
		saved.GET("/my", h.GetSavedJobs)
	}
}

func (h *SavedJobHandler) SaveJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	saved, err := h.savedJobService.SaveJob(c.Request.Context(), c.Param("jobId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}

func (h *SavedJobHandler) UnsaveJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.savedJobService.UnsaveJob(c.Request.Context(), c.Param("jobId"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job removed from saved"})
}

func (h *SavedJobHandler) GetSavedJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	saved, err := h.savedJobService.GetSavedJobs(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"saved_jobs": saved,
		"total":      len(saved),
	})
}
