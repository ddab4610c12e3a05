package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ykhalil/gulfboard/internal/board/auth"
	"github.com/ykhalil/gulfboard/internal/board/models"
)

type reviewApplicationRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,oneof=pending reviewed shortlisted rejected"`
}

// PostJob creates a listing for the authenticated employer. The listing
// starts in pending status regardless of what the payload claims.
func (h *Handler) PostJob(c *gin.Context) {
	claims, _ := auth.CurrentUser(c)
	var job models.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.board.PostJob(c.Request.Context(), claims.UserID, &job)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// EmployerJobs lists all of the employer's listings, any status.
func (h *Handler) EmployerJobs(c *gin.Context) {
	claims, _ := auth.CurrentUser(c)
	jobs, err := h.board.EmployerJobs(c.Request.Context(), claims.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "total": len(jobs)})
}

// JobApplications lists applications for one of the employer's own jobs.
func (h *Handler) JobApplications(c *gin.Context) {
	claims, _ := auth.CurrentUser(c)
	apps, err := h.board.ApplicationsByJob(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps, "total": len(apps)})
}

// ReviewApplication moves one of the employer's applications to a new
// status.
func (h *Handler) ReviewApplication(c *gin.Context) {
	claims, _ := auth.CurrentUser(c)
	var req reviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	app, err := h.board.ReviewApplication(c.Request.Context(), claims.UserID, c.Param("id"), req.Status)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// RecordCVView bumps the CV view counter for one of the employer's
// applications.
func (h *Handler) RecordCVView(c *gin.Context) {
	claims, _ := auth.CurrentUser(c)
	views, err := h.board.RecordCVView(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"views": views})
}

// EmployerCompanyProfile returns the editable company profile for the
// authenticated employer.
func (h *Handler) EmployerCompanyProfile(c *gin.Context) {
	claims, _ := auth.CurrentUser(c)
	p, err := h.board.EmployerCompanyProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// SaveEmployerCompanyProfile stores the employer's company profile edits.
func (h *Handler) SaveEmployerCompanyProfile(c *gin.Context) {
	claims, _ := auth.CurrentUser(c)
	var p models.CompanyProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.board.SaveEmployerCompanyProfile(c.Request.Context(), claims.UserID, &p); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}
