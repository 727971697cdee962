package middlewares

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-reservation-api/models"
	"restaurant-reservation-api/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

func protectedRouter(requiredRole string) *gin.Engine {
	router := gin.New()
	group := router.Group("/", AuthMiddleware())
	if requiredRole != "" {
		group.Use(RequireRole(requiredRole))
	}
	group.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
	})
	return router
}

func performWithHeader(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := protectedRouter("")
	w := performWithHeader(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	router := protectedRouter("")
	w := performWithHeader(router, "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	router := protectedRouter("")
	w := performWithHeader(router, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	token, err := utils.GenerateToken(7, "worker", []string{models.RoleUser})
	require.NoError(t, err)

	router := protectedRouter("")
	w := performWithHeader(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "worker")
}

func TestRequireRoleForbidden(t *testing.T) {
	token, err := utils.GenerateToken(7, "worker", []string{models.RoleUser})
	require.NoError(t, err)

	router := protectedRouter(models.RoleAdmin)
	w := performWithHeader(router, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAllowed(t *testing.T) {
	token, err := utils.GenerateToken(7, "chief", []string{models.RoleUser, models.RoleAdmin})
	require.NoError(t, err)

	router := protectedRouter(models.RoleAdmin)
	w := performWithHeader(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
