package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/dto"
	"taskboard/middleware"
	"taskboard/model"
	"taskboard/services"
)

// SessionController exposes the claims of the caller's access token.
func SessionController(router gin.IRouter, tokens *services.TokenIssuer) {
	router.GET("/session", middleware.AccessTokenMiddleware(tokens), Session)
}

func Session(c *gin.Context) {
	claims := c.MustGet("claims").(*model.AccessClaims)
	c.JSON(http.StatusOK, dto.SessionResponse{
		UID:       claims.UserID,
		Email:     claims.Email,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time.UTC().Format(time.RFC3339),
	})
}
