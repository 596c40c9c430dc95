package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/controller"
	"taskboard/dto"
	"taskboard/services"
)

func SignInController(router gin.IRouter, authService *services.AuthService) {
	router.POST("/login", func(c *gin.Context) {
		Signin(c, authService)
	})
}

func Signin(c *gin.Context, authService *services.AuthService) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		controller.BadRequest(c, "Email and password are required")
		return
	}

	result, err := authService.Login(c.Request.Context(), services.LoginInput{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		controller.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SigninResponse{
		Message: "Login successful",
		Token:   result.Token,
		User: dto.LoginUser{
			DocID:     result.User.UserID,
			Email:     result.User.Email,
			Username:  result.User.Username,
			Rol:       result.User.Role,
			LastLogin: services.FormatLastLogin(result.User),
		},
	})
}
