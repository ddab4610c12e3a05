package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ykhalil/gulfboard/internal/board/refdata"
	"github.com/ykhalil/gulfboard/internal/board/search"
)

// SearchJobs filters the job list by the query parameters: keyword,
// country, city, category, experience, jobType, salaryMin, salaryMax.
// Absent parameters impose no constraint.
func (h *Handler) SearchJobs(c *gin.Context) {
	var criteria search.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	jobs, err := h.board.SearchJobs(c.Request.Context(), criteria)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "total": len(jobs)})
}

// JobBySlug resolves a job detail page and counts the visit.
func (h *Handler) JobBySlug(c *gin.Context) {
	job, err := h.board.ViewJob(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Companies lists all companies.
func (h *Handler) Companies(c *gin.Context) {
	companies, err := h.board.Companies(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// CompanyByID returns one company.
func (h *Handler) CompanyByID(c *gin.Context) {
	company, err := h.board.GetCompanyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// Locations returns the country order and the country-to-cities map.
func (h *Handler) Locations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"countries": refdata.Countries,
		"cities":    refdata.Cities,
	})
}

// Categories returns the flat category list.
func (h *Handler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": refdata.Categories})
}

// SuggestRoles returns role autocomplete hits for ?q=.
func (h *Handler) SuggestRoles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"suggestions": refdata.JobRoleSuggestions(c.Query("q"))})
}

// SuggestLocations returns location autocomplete hits for ?q=.
func (h *Handler) SuggestLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"suggestions": refdata.LocationSuggestions(c.Query("q"))})
}
