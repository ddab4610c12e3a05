package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ykhalil/gulfboard/internal/board/controller"
	e "github.com/ykhalil/gulfboard/internal/board/errors"
	"go.uber.org/zap"
)

// Handler bundles the HTTP handlers over the board and auth services.
type Handler struct {
	board  *controller.BoardService
	auth   *controller.AuthService
	logger *zap.Logger
}

// NewHandler constructs a Handler with the given services and logger.
func NewHandler(board *controller.BoardService, authSvc *controller.AuthService, logger *zap.Logger) *Handler {
	return &Handler{
		board:  board,
		auth:   authSvc,
		logger: logger.Named("http_handler"),
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps service errors onto HTTP statuses. Unrecognized
// errors become opaque 500s; the detail stays in the log.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, e.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, e.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, e.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, e.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
	case errors.Is(err, e.ErrDuplicateApplication):
		c.JSON(http.StatusConflict, gin.H{"error": "already applied to this job"})
	case errors.Is(err, e.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		h.logger.Error("request failed", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
