package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brodverk-backend/internal/auth"
	"brodverk-backend/internal/models"
)

const testSecret = "test-secret"

func protectedRouter(handler gin.HandlerFunc, protect gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", protect, handler)
	return r
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	r := protectedRouter(func(c *gin.Context) { c.Status(http.StatusOK) }, AuthMiddleware(testSecret))

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	r := protectedRouter(func(c *gin.Context) { c.Status(http.StatusOK) }, AuthMiddleware(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddlewareSetsSession(t *testing.T) {
	var got models.SessionContext
	r := protectedRouter(func(c *gin.Context) {
		session, ok := Session(c)
		require.True(t, ok)
		got = session
		c.Status(http.StatusOK)
	}, AuthMiddleware(testSecret))

	token, err := auth.GenerateAccessToken(7, "anna@brodverk.se", models.RoleStaff, testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 7, got.UserID)
	assert.Equal(t, "anna@brodverk.se", got.Email)
	assert.Equal(t, models.RoleStaff, got.Role)
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	r := protectedRouter(func(c *gin.Context) { c.Status(http.StatusOK) }, AuthMiddleware(testSecret))

	token, err := auth.GenerateAccessToken(7, "anna@brodverk.se", models.RoleStaff, "other-secret")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAdminMiddlewareRejectsStaff(t *testing.T) {
	r := protectedRouter(func(c *gin.Context) { c.Status(http.StatusOK) }, AdminMiddleware(testSecret))

	token, err := auth.GenerateAccessToken(7, "anna@brodverk.se", models.RoleStaff, testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	r := protectedRouter(func(c *gin.Context) { c.Status(http.StatusOK) }, AdminMiddleware(testSecret))

	token, err := auth.GenerateAccessToken(1, "chef@brodverk.se", models.RoleAdmin, testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
