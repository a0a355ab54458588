package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-ordering/models"
)

var secret = []byte("test-secret")

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthRequired(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "role": GetRole(c)})
	})
	r.GET("/admin", AuthRequired(secret), RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func get(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()
	r := newRouter()

	user := &models.User{ID: "user-demo", Email: "dana@example.com", Role: models.RoleCustomer}
	token, err := GenerateToken(user, secret)
	require.NoError(t, err)

	w := get(r, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-demo")
	assert.Contains(t, w.Body.String(), "customer")

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", token).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "Bearer garbage").Code)

	// Tokens signed with another secret are rejected.
	forged, err := GenerateToken(user, []byte("other-secret"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "Bearer "+forged).Code)
}

func TestRoleRequired(t *testing.T) {
	t.Parallel()
	r := newRouter()

	customer, err := GenerateToken(&models.User{ID: "u1", Role: models.RoleCustomer}, secret)
	require.NoError(t, err)
	admin, err := GenerateToken(&models.User{ID: "u2", Role: models.RoleAdmin}, secret)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, get(r, "/admin", "Bearer "+customer).Code)
	assert.Equal(t, http.StatusOK, get(r, "/admin", "Bearer "+admin).Code)
}
