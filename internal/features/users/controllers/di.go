package users_controllers

import (
	"sync"

	"taskhive/internal/cache"
	users_services "taskhive/internal/features/users/services"
	rate_limit "taskhive/internal/util/rate_limit"

	"golang.org/x/time/rate"
)

const (
	loginRatePerSecond = 5
	loginBurst         = 20

	registerRpsLimit   = 5
	registerBurstLimit = 30
)

var (
	once           sync.Once
	authController *AuthController
)

func GetAuthController() *AuthController {
	once.Do(func() {
		authController = &AuthController{
			userService:     users_services.GetUserService(),
			loginLimiter:    rate.NewLimiter(rate.Limit(loginRatePerSecond), loginBurst),
			registerLimiter: rate_limit.NewRateLimiter(cache.GetCache(), "rate_limit:register:"),
		}
	})

	return authController
}
