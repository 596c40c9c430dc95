package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/controller"
	"taskboard/dto"
	"taskboard/services"
)

func SignUpController(router gin.IRouter, authService *services.AuthService) {
	router.POST("/register", func(c *gin.Context) {
		Signup(c, authService)
	})
}

func Signup(c *gin.Context, authService *services.AuthService) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		controller.BadRequest(c, "All fields are required")
		return
	}

	uid, err := authService.Register(c.Request.Context(), services.RegisterInput{
		Username: request.Username,
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		controller.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "User registered successfully",
		UID:     uid,
	})
}
