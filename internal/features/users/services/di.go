package users_services

import (
	"sync"
	"time"

	"taskhive/internal/config"
	users_repositories "taskhive/internal/features/users/repositories"
	"taskhive/internal/storage"
)

var (
	once         sync.Once
	userService  *UserService
	tokenService *TokenService
)

func setupDependencies() {
	env := config.GetEnv()

	tokenService = NewTokenService(
		[]byte(env.JwtSecret),
		time.Duration(env.TokenTtlHours)*time.Hour,
	)

	userService = NewUserService(
		users_repositories.NewUserRepository(storage.GetDb()),
		tokenService,
	)
}

func GetUserService() *UserService {
	once.Do(setupDependencies)
	return userService
}

func GetTokenService() *TokenService {
	once.Do(setupDependencies)
	return tokenService
}
