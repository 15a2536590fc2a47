package tasks_controllers

import (
	"net/http"

	"taskhive/internal/apierrors"
	tasks_dto "taskhive/internal/features/tasks/dto"
	tasks_services "taskhive/internal/features/tasks/services"
	users_middleware "taskhive/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskController struct {
	taskService *tasks_services.TaskService
}

func (c *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/projects/:projectId/tasks", c.CreateTask)
	router.GET("/projects/:projectId/tasks", c.GetTasks)
	router.PATCH("/tasks/:taskId", c.UpdateTask)
}

// CreateTask
// @Summary Create a task
// @Description Create a task in a project (members only)
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param request body tasks_dto.CreateTaskRequestDTO true "Task data"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /projects/{projectId}/tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid project ID"})
		return
	}

	var request tasks_dto.CreateTaskRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request format"})
		return
	}

	task, err := c.taskService.CreateTask(projectID, &request, user)
	if err != nil {
		apierrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"ok": true, "task": task})
}

// GetTasks
// @Summary List project tasks
// @Description Tasks of a project, newest first (members only)
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /projects/{projectId}/tasks [get]
func (c *TaskController) GetTasks(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid project ID"})
		return
	}

	tasks, err := c.taskService.ListTasksForProject(projectID, user)
	if err != nil {
		apierrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true, "tasks": tasks})
}

// UpdateTask
// @Summary Update a task
// @Description Partial update; only fields present in the body are applied
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskId path string true "Task ID"
// @Param request body tasks_dto.UpdateTaskRequestDTO true "Fields to update"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Failure 403 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /tasks/{taskId} [patch]
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "User not authenticated"})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid task ID"})
		return
	}

	var patch tasks_dto.UpdateTaskRequestDTO
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request format"})
		return
	}

	task, err := c.taskService.UpdateTask(taskID, &patch, user)
	if err != nil {
		apierrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true, "task": task})
}
