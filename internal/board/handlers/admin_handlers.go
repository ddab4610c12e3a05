package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ykhalil/gulfboard/internal/board/models"
)

// DashboardStats returns the counters shown on the admin dashboard.
func (h *Handler) DashboardStats(c *gin.Context) {
	stats, err := h.board.DashboardStats(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AdminJobs lists jobs for moderation, filtered by ?status= when given.
func (h *Handler) AdminJobs(c *gin.Context) {
	jobs, err := h.board.JobsByStatus(c.Request.Context(), models.JobStatus(c.Query("status")))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "total": len(jobs)})
}

// ApproveJob publishes a pending listing.
func (h *Handler) ApproveJob(c *gin.Context) {
	job, err := h.board.ApproveJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// RejectJob declines a pending listing.
func (h *Handler) RejectJob(c *gin.Context) {
	job, err := h.board.RejectJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CloseJob takes a published listing off the board.
func (h *Handler) CloseJob(c *gin.Context) {
	job, err := h.board.CloseJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// VerifyCompany marks a company and its employer accounts as verified.
func (h *Handler) VerifyCompany(c *gin.Context) {
	company, err := h.board.VerifyCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}
