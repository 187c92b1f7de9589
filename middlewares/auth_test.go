package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/entity"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newGateServer(roles ...entity.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/protected", AuthMiddleware(secret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": utils.CurrentUserID(c),
			"role":   utils.CurrentRole(c),
		})
	})
	return r
}

func request(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	r := newGateServer()

	assert.Equal(t, http.StatusForbidden, request(r, "").Code)
	assert.Equal(t, http.StatusForbidden, request(r, "garbage").Code)

	expired, err := utils.GenerateToken(1, entity.RoleCustomer, secret, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, request(r, expired).Code)

	wrongKey, err := utils.GenerateToken(1, entity.RoleCustomer, "other-secret", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, request(r, wrongKey).Code)
}

func TestAuthMiddlewareResolvesActor(t *testing.T) {
	r := newGateServer()

	token, err := utils.GenerateToken(42, entity.RoleDeliveryCrew, secret, time.Hour)
	require.NoError(t, err)

	w := request(r, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId": 42, "role": "delivery_crew"}`, w.Body.String())
}

func TestAuthMiddlewareRoleGate(t *testing.T) {
	r := newGateServer(entity.RoleManager, entity.RoleAdmin)

	customer, err := utils.GenerateToken(1, entity.RoleCustomer, secret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, request(r, customer).Code)

	for _, role := range []entity.Role{entity.RoleManager, entity.RoleAdmin} {
		token, err := utils.GenerateToken(2, role, secret, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, request(r, token).Code, "role %s", role)
	}
}
