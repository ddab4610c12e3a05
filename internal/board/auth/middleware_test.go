package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ykhalil/gulfboard/internal/board/models"
)

func setupRouter(roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	group := engine.Group("/", Middleware(testSecret))
	if len(roles) > 0 {
		group.Use(RequireRole(roles...))
	}
	group.GET("/whoami", func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no claims"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID, "role": claims.Role})
	})
	return engine
}

func doRequest(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestMiddlewareValidToken(t *testing.T) {
	token, err := GenerateToken(testUser(), testSecret)
	require.NoError(t, err)

	w := doRequest(setupRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestMiddlewareMissingHeader(t *testing.T) {
	w := doRequest(setupRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddlewareMalformedHeader(t *testing.T) {
	w := doRequest(setupRouter(), "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(setupRouter(), "Bearer ")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddlewareInvalidToken(t *testing.T) {
	w := doRequest(setupRouter(), "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleAllows(t *testing.T) {
	token, err := GenerateToken(testUser(), testSecret)
	require.NoError(t, err)

	w := doRequest(setupRouter(models.RoleJobSeeker), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleRejects(t *testing.T) {
	token, err := GenerateToken(testUser(), testSecret)
	require.NoError(t, err)

	w := doRequest(setupRouter(models.RoleAdmin), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleMultiple(t *testing.T) {
	token, err := GenerateToken(testUser(), testSecret)
	require.NoError(t, err)

	w := doRequest(setupRouter(models.RoleAdmin, models.RoleJobSeeker), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCurrentUserWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := CurrentUser(c)
	assert.False(t, ok)
}
