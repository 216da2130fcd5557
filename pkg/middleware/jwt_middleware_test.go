package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "fitlife/pkg/memcache"
	"fitlife/pkg/utils"
)

func guardedEngine(revoked mem.RevokedTokenStore, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(revoked), func(c *gin.Context) {
		*hits++
		c.String(http.StatusOK, c.GetString("user_id"))
	})
	return r
}

func TestGuardBlocksMissingToken(t *testing.T) {
	var hits int
	r := guardedEngine(mem.NewRevokedTokens(), &hits)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, hits, "handler must not run for an unresolved session")
}

func TestGuardBlocksGarbageToken(t *testing.T) {
	var hits int
	r := guardedEngine(mem.NewRevokedTokens(), &hits)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, hits)
}

func TestGuardPassesValidTokenAndSetsIdentity(t *testing.T) {
	var hits int
	r := guardedEngine(mem.NewRevokedTokens(), &hits)

	userID := uuid.New()
	token, err := utils.CreateToken(userID, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, hits)
	assert.Equal(t, userID.String(), w.Body.String())
}

func TestGuardBlocksRevokedToken(t *testing.T) {
	var hits int
	revoked := mem.NewRevokedTokens()
	r := guardedEngine(revoked, &hits)

	token, err := utils.CreateToken(uuid.New(), time.Hour)
	require.NoError(t, err)
	revoked.Revoke(token, time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, hits)
}
