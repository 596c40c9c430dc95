package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/model"
	"taskboard/services"
)

func newRouter(tokens *services.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/private", AccessTokenMiddleware(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.MustGet("userId")})
	})
	return router
}

func get(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAccessTokenMiddleware(t *testing.T) {
	issuedAt := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	now := issuedAt
	tokens := services.NewTokenIssuer("secret", 10*time.Minute).WithClock(func() time.Time { return now })
	router := newRouter(tokens)

	token, _, err := tokens.CreateAccessToken(&model.User{UserID: "u1", Email: "a@b.com", Username: "ana"})
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(router, "").Code)
	})

	t.Run("bad format", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(router, "Token "+token).Code)
	})

	t.Run("valid token", func(t *testing.T) {
		rec := get(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"userId":"u1"}`, rec.Body.String())
	})

	t.Run("expired token", func(t *testing.T) {
		now = issuedAt.Add(10*time.Minute + time.Second)
		defer func() { now = issuedAt }()
		rec := get(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "expired")
	})

	t.Run("other secret", func(t *testing.T) {
		other := services.NewTokenIssuer("other", 0).WithClock(func() time.Time { return now })
		forged, _, err := other.CreateAccessToken(&model.User{UserID: "u1"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, get(router, "Bearer "+forged).Code)
	})
}
