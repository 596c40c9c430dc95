package group

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskboard/controller"
	"taskboard/dto"
	"taskboard/services"
)

func GroupController(router gin.IRouter, groupService *services.GroupService) {
	router.POST("/groups", func(c *gin.Context) {
		CreateGroup(c, groupService)
	})
	router.GET("/groups", func(c *gin.Context) {
		includeCreated := true
		if v, err := strconv.ParseBool(c.DefaultQuery("includeCreated", "true")); err == nil {
			includeCreated = v
		}
		ListGroups(c, groupService, includeCreated)
	})
	router.GET("/misgrupos", func(c *gin.Context) {
		ListGroups(c, groupService, false)
	})
	router.PUT("/groups/:id", func(c *gin.Context) {
		EditGroup(c, groupService)
	})
	router.DELETE("/groups/:id", func(c *gin.Context) {
		DeleteGroup(c, groupService)
	})
}

func CreateGroup(c *gin.Context, groupService *services.GroupService) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if controller.IsTypeError(err, "members") {
			controller.BadRequest(c, "members must be an array")
			return
		}
		controller.BadRequest(c, "Invalid input")
		return
	}

	group, err := groupService.CreateGroup(c.Request.Context(), services.NewGroupInput{
		CreatedBy:   req.CreatedBy,
		Description: req.Description,
		Members:     req.Members,
		Name:        req.Name,
	})
	if err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewGroupResponse(*group))
}

// ListGroups answers with the caller's member groups, falling back to the
// groups they created when includeCreated is set.
func ListGroups(c *gin.Context, groupService *services.GroupService, includeCreated bool) {
	groups, err := groupService.ListGroups(c.Request.Context(), c.Query("userId"), includeCreated)
	if err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGroupList(groups))
}

func EditGroup(c *gin.Context, groupService *services.GroupService) {
	var req dto.EditGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if controller.IsTypeError(err, "members") {
			controller.BadRequest(c, "members must be an array")
			return
		}
		controller.BadRequest(c, "Name, description and members are required")
		return
	}

	err := groupService.EditGroup(c.Request.Context(), services.EditGroupInput{
		GroupID:     c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Members:     req.Members,
	})
	if err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Group updated successfully"})
}

// DeleteGroup checks ownership against the token's account when the route is
// protected, otherwise against the userId query parameter.
func DeleteGroup(c *gin.Context, groupService *services.GroupService) {
	userID := c.Query("userId")
	if tokenUser := c.GetString("userId"); tokenUser != "" {
		userID = tokenUser
	}
	err := groupService.DeleteGroup(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Group deleted successfully"})
}
