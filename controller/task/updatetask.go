package task

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/controller"
	"taskboard/dto"
	"taskboard/services"
)

func CompleteTask(c *gin.Context, taskService *services.TaskService) {
	taskID, ok := bindTaskID(c)
	if !ok {
		return
	}
	if err := taskService.CompleteTask(c.Request.Context(), taskID); err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task completed successfully"})
}

func MarkPending(c *gin.Context, taskService *services.TaskService) {
	taskID, ok := bindTaskID(c)
	if !ok {
		return
	}
	if err := taskService.MarkPending(c.Request.Context(), taskID); err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task status changed to pending"})
}

func DeleteTask(c *gin.Context, taskService *services.TaskService) {
	taskID, ok := bindTaskID(c)
	if !ok {
		return
	}
	if err := taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func EditTask(c *gin.Context, taskService *services.TaskService) {
	var req dto.EditTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(c, "Invalid input")
		return
	}

	err := taskService.EditTask(c.Request.Context(), services.EditTaskInput{
		TaskID:      req.TaskID,
		Category:    req.Category,
		Deadline:    req.Deadline,
		Description: req.Description,
		NameTask:    req.NameTask,
		Status:      req.Status,
	})
	if err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task updated successfully"})
}

// SetBoardStatus handles PUT /tareas/:id with a board column as status.
func SetBoardStatus(c *gin.Context, taskService *services.TaskService) {
	var req dto.BoardStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(c, "Invalid status")
		return
	}
	if err := taskService.SetBoardStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}

func bindTaskID(c *gin.Context) (string, bool) {
	var req dto.TaskIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TaskID == "" {
		controller.BadRequest(c, "Task id is required")
		return "", false
	}
	return req.TaskID, true
}
