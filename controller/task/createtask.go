package task

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/controller"
	"taskboard/dto"
	"taskboard/services"
)

func CreateTask(c *gin.Context, taskService *services.TaskService) {
	var taskReq dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&taskReq); err != nil {
		controller.BadRequest(c, "Invalid input")
		return
	}

	input := services.NewTaskInput{
		Category:    taskReq.Category,
		Deadline:    taskReq.Deadline,
		Description: taskReq.Description,
		NameTask:    taskReq.NameTask,
		Status:      taskReq.Status,
		UserID:      taskReq.UserID,
	}
	if taskReq.GroupName != nil {
		input.GroupName = *taskReq.GroupName
	}

	taskid, err := taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		controller.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"id":      taskid,
	})
}

func ListUserTasks(c *gin.Context, taskService *services.TaskService) {
	tasks, err := taskService.ListUserTasks(c.Request.Context(), c.Query("userId"))
	if err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskList(tasks))
}

func ListGroupTasks(c *gin.Context, taskService *services.TaskService) {
	tasks, err := taskService.ListGroupTasks(c.Request.Context(), c.Query("groupId"))
	if err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskList(tasks))
}
