package projects_controllers

import (
	"net/http"

	"taskhive/internal/apierrors"
	projects_dto "taskhive/internal/features/projects/dto"
	projects_services "taskhive/internal/features/projects/services"
	users_middleware "taskhive/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MembershipController struct {
	projectService *projects_services.ProjectService
}

func (c *MembershipController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/projects/:projectId/members", c.AddMember)
}

// AddMember
// @Summary Add or update a project member
// @Description Grant MEMBER or ADMIN to a user by email; repeating the call updates the role
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param request body projects_dto.AddMemberRequestDTO true "Member data"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Failure 403 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /projects/{projectId}/members [post]
func (c *MembershipController) AddMember(ctx *gin.Context) {
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

	var request projects_dto.AddMemberRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request format"})
		return
	}

	membership, err := c.projectService.AddOrUpdateMember(projectID, &request, user)
	if err != nil {
		apierrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"ok": true, "membership": membership})
}
