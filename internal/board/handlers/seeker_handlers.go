package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ykhalil/gulfboard/internal/board/auth"
	"github.com/ykhalil/gulfboard/internal/board/models"
	"github.com/ykhalil/gulfboard/internal/board/profile"
)

type applyRequest struct {
	JobID string `json:"jobId" binding:"required"`
	CVURL string `json:"cvUrl"`
}

type saveJobRequest struct {
	JobID string `json:"jobId" binding:"required"`
}

type validateStepRequest struct {
	Step    int                      `json:"step" binding:"required,min=1,max=4"`
	Profile *models.JobSeekerProfile `json:"profile" binding:"required"`
}

// Apply submits an application for the authenticated seeker.
func (h *Handler) Apply(c *gin.Context) {
	claims, _ := auth.CurrentUser(c)
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	app, err := h.board.Apply(c.Request.Context(), claims.UserID, req.JobID, req.CVURL)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// MyApplications lists the seeker's applications plus the applied job ids
// kept in the key-value side store.
func (h *Handler) MyApplications(c *gin.Context) {
	claims, _ := auth.CurrentUser(c)
	apps, err := h.board.ApplicationsByUser(c.Request.Context(), claims.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	appliedIDs, err := h.board.AppliedJobIDs(c.Request.Context(), claims.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps, "appliedJobIds": appliedIDs})
}

// SavedJobs returns the seeker's saved job ids.
func (h *Handler) SavedJobs(c *gin.Context) {
	claims, _ := auth.CurrentUser(c)
	saved, err := h.board.SavedJobs(c.Request.Context(), claims.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"savedJobIds": saved})
}

// SaveJob adds a job to the seeker's saved list.
func (h *Handler) SaveJob(c *gin.Context) {
	claims, _ := auth.CurrentUser(c)
	var req saveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.board.SaveJob(c.Request.Context(), claims.UserID, req.JobID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// UnsaveJob removes a job from the seeker's saved list.
func (h *Handler) UnsaveJob(c *gin.Context) {
	claims, _ := auth.CurrentUser(c)
	if err := h.board.UnsaveJob(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// Profile returns the seeker's profile, defaults included.
func (h *Handler) Profile(c *gin.Context) {
	claims, _ := auth.CurrentUser(c)
	p, err := h.board.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	skipped, err := h.board.ProfileSkipped(c.Request.Context(), claims.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": p, "skipped": skipped})
}

// SaveProfile persists the seeker's profile, recomputing completeness.
func (h *Handler) SaveProfile(c *gin.Context) {
	claims, _ := auth.CurrentUser(c)
	var p models.JobSeekerProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.board.SaveProfile(c.Request.Context(), claims.UserID, &p)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// SkipProfile records the wizard dismissal.
func (h *Handler) SkipProfile(c *gin.Context) {
	claims, _ := auth.CurrentUser(c)
	if err := h.board.SkipProfile(c.Request.Context(), claims.UserID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "skipped"})
}

// ValidateProfileStep checks one wizard step. Violations come back as
// data with status 200; the wizard decides whether to advance.
func (h *Handler) ValidateProfileStep(c *gin.Context) {
	var req validateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile.ValidateStep(req.Step, req.Profile))
}
