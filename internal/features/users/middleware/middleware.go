package users_middleware

import (
	"net/http"
	"strings"

	"taskhive/internal/apierrors"
	users_models "taskhive/internal/features/users/models"
	users_services "taskhive/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the Authorization header to a user and puts it in
// the request context. The password hash never leaves this layer: the model
// excludes it from serialization.
func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")

		if !strings.HasPrefix(header, bearerPrefix) || strings.TrimSpace(header[len(bearerPrefix):]) == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Missing Bearer token"})
			return
		}

		token := strings.TrimSpace(header[len(bearerPrefix):])

		user, err := userService.GetUserFromToken(token)
		if err != nil {
			apierrors.Respond(ctx, err)
			ctx.Abort()
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}

// GetUserFromContext extracts the authenticated user set by AuthMiddleware.
func GetUserFromContext(ctx *gin.Context) (*users_models.User, bool) {
	userInterface, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}

	user, ok := userInterface.(*users_models.User)

	return user, ok
}
