package projects_controllers

import (
	"net/http"

	"taskhive/internal/apierrors"
	projects_dto "taskhive/internal/features/projects/dto"
	projects_services "taskhive/internal/features/projects/services"
	users_middleware "taskhive/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	projectService *projects_services.ProjectService
}

func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/projects", c.CreateProject)
	router.GET("/projects", c.GetProjects)
}

// CreateProject
// @Summary Create a project
// @Description Create a project; the creator becomes its OWNER
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body projects_dto.CreateProjectRequestDTO true "Project data"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router /projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "User not authenticated"})
		return
	}

	var request projects_dto.CreateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request format"})
		return
	}

	project, err := c.projectService.CreateProject(&request, user)
	if err != nil {
		apierrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"ok": true, "project": project})
}

// GetProjects
// @Summary List the user's projects
// @Description Projects the user is a member of, newest first, with member lists
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router /projects [get]
func (c *ProjectController) GetProjects(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "User not authenticated"})
		return
	}

	projects, err := c.projectService.ListProjectsForUser(user.ID)
	if err != nil {
		apierrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
}
