package users_controllers

import (
	"net/http"

	"taskhive/internal/apierrors"
	users_dto "taskhive/internal/features/users/dto"
	users_middleware "taskhive/internal/features/users/middleware"
	users_services "taskhive/internal/features/users/services"
	rate_limit "taskhive/internal/util/rate_limit"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type AuthController struct {
	userService     *users_services.UserService
	loginLimiter    *rate.Limiter
	registerLimiter *rate_limit.RateLimiter
}

func (c *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/auth/register", c.Register)
	router.POST("/auth/login", c.Login)
}

func (c *AuthController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/auth/me", c.GetCurrentUser)
}

// Register
// @Summary Register a user
// @Description Create an account with email and password, returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body users_dto.RegisterRequestDTO true "Registration data"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	if !c.allowRegistration(ctx.ClientIP()) {
		ctx.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "Rate limit exceeded. Please try again later."})
		return
	}

	var request users_dto.RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request format"})
		return
	}

	response, err := c.userService.Register(&request)
	if err != nil {
		apierrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"ok": true, "user": response.User, "token": response.Token})
}

// Login
// @Summary Authenticate a user
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body users_dto.LoginRequestDTO true "Login data"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Failure 429 {object} map[string]any "Rate limit exceeded"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	// We use a rate limiter to prevent brute force attacks
	if !c.loginLimiter.Allow() {
		ctx.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "Rate limit exceeded. Please try again later."})
		return
	}

	var request users_dto.LoginRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request format"})
		return
	}

	response, err := c.userService.Login(&request)
	if err != nil {
		apierrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true, "user": response.User, "token": response.Token})
}

// GetCurrentUser
// @Summary Get current user
// @Description Profile of the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router /auth/me [get]
func (c *AuthController) GetCurrentUser(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true, "user": user})
}

// Registration is throttled per client IP. The limiter fails open: an
// unreachable cache must not lock everyone out of signup.
func (c *AuthController) allowRegistration(clientIP string) bool {
	result, err := c.registerLimiter.CheckRateLimit(clientIP, registerRpsLimit, registerBurstLimit)
	if err != nil {
		return true
	}

	return result.Allowed
}
