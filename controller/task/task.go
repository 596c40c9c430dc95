package task

import (
	"github.com/gin-gonic/gin"

	"taskboard/services"
)

func TaskController(router gin.IRouter, taskService *services.TaskService) {
	router.POST("/task", func(c *gin.Context) {
		CreateTask(c, taskService)
	})
	router.GET("/tasks", func(c *gin.Context) {
		ListUserTasks(c, taskService)
	})
	router.POST("/task/complete", func(c *gin.Context) {
		CompleteTask(c, taskService)
	})
	router.POST("/task/pending", func(c *gin.Context) {
		MarkPending(c, taskService)
	})
	router.DELETE("/task/delete", func(c *gin.Context) {
		DeleteTask(c, taskService)
	})
	router.PATCH("/task/edit", func(c *gin.Context) {
		EditTask(c, taskService)
	})
	router.GET("/tareas", func(c *gin.Context) {
		ListGroupTasks(c, taskService)
	})
	router.PUT("/tareas/:id", func(c *gin.Context) {
		SetBoardStatus(c, taskService)
	})
}
