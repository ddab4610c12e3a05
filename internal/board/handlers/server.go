// Package handlers provides the HTTP surface of the board, bridging the
// transport layer and the business logic.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ykhalil/gulfboard/internal/board/auth"
	"github.com/ykhalil/gulfboard/internal/board/models"
	"go.uber.org/zap"
)

// Server wraps the gin engine and the underlying http.Server for graceful
// shutdown.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer constructs the HTTP server with CORS configured and all board
// routes registered.
func NewServer(port int, allowOrigins []string, jwtSecret string, h *Handler, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(allowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	registerRoutes(engine, jwtSecret, h)

	return &Server{
		engine: engine,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: engine,
		},
		logger: logger.Named("http_server"),
	}
}

func registerRoutes(engine *gin.Engine, jwtSecret string, h *Handler) {
	api := engine.Group("/api/v1")

	api.GET("/health", h.Health)

	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)

	api.GET("/jobs", h.SearchJobs)
	api.GET("/jobs/:slug", h.JobBySlug)
	api.GET("/companies", h.Companies)
	api.GET("/companies/:id", h.CompanyByID)

	api.GET("/meta/locations", h.Locations)
	api.GET("/meta/categories", h.Categories)
	api.GET("/meta/suggest/roles", h.SuggestRoles)
	api.GET("/meta/suggest/locations", h.SuggestLocations)

	me := api.Group("/me", auth.Middleware(jwtSecret), auth.RequireRole(models.RoleJobSeeker))
	{
		me.POST("/applications", h.Apply)
		me.GET("/applications", h.MyApplications)
		me.GET("/saved-jobs", h.SavedJobs)
		me.POST("/saved-jobs", h.SaveJob)
		me.DELETE("/saved-jobs/:id", h.UnsaveJob)
		me.GET("/profile", h.Profile)
		me.PUT("/profile", h.SaveProfile)
		me.POST("/profile/skip", h.SkipProfile)
		me.POST("/profile/validate", h.ValidateProfileStep)
	}

	employer := api.Group("/employer", auth.Middleware(jwtSecret), auth.RequireRole(models.RoleEmployer))
	{
		employer.POST("/jobs", h.PostJob)
		employer.GET("/jobs", h.EmployerJobs)
		employer.GET("/jobs/:id/applications", h.JobApplications)
		employer.PATCH("/applications/:id", h.ReviewApplication)
		employer.POST("/applications/:id/cv-view", h.RecordCVView)
		employer.GET("/company-profile", h.EmployerCompanyProfile)
		employer.PUT("/company-profile", h.SaveEmployerCompanyProfile)
	}

	admin := api.Group("/admin", auth.Middleware(jwtSecret), auth.RequireRole(models.RoleAdmin))
	{
		admin.GET("/stats", h.DashboardStats)
		admin.GET("/jobs", h.AdminJobs)
		admin.POST("/jobs/:id/approve", h.ApproveJob)
		admin.POST("/jobs/:id/reject", h.RejectJob)
		admin.POST("/jobs/:id/close", h.CloseJob)
		admin.POST("/companies/:id/verify", h.VerifyCompany)
	}
}

// Start runs the HTTP server, blocking until it stops.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP serve error: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() {
	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	s.logger.Info("Server stopped")
}

// Engine exposes the router, used by tests to serve requests directly.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
