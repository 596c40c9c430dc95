package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/controller"
	"taskboard/dto"
	"taskboard/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func UserController(router gin.IRouter, accountService *services.AccountService) {
	routes := router.Group("/usuarios")
	{
		routes.GET("", func(c *gin.Context) {
			ListUsers(c, accountService)
		})
		routes.GET("/export", func(c *gin.Context) {
			ExportUsers(c, accountService)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateUser(c, accountService)
		})
	}
}

func ListUsers(c *gin.Context, accountService *services.AccountService) {
	users, err := accountService.ListAccounts(c.Request.Context())
	if err != nil {
		controller.Fail(c, err)
		return
	}

	userResponses := make([]dto.AccountResponse, 0, len(users))
	for _, u := range users {
		userResponses = append(userResponses, dto.NewAccountResponse(u))
	}
	c.JSON(http.StatusOK, userResponses)
}

// UpdateUser overwrites email, username and role of an existing account.
func UpdateUser(c *gin.Context, accountService *services.AccountService) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(c, "Invalid request format")
		return
	}

	err := accountService.EditAccount(c.Request.Context(), c.Param("id"), req.Email, req.Username, req.Rol)
	if err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

func ExportUsers(c *gin.Context, accountService *services.AccountService) {
	f, err := accountService.ExportAccounts(c.Request.Context())
	if err != nil {
		controller.Fail(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `attachment; filename="usuarios.xlsx"`)
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	if _, err := f.WriteTo(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
