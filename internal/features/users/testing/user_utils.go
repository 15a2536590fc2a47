package users_testing

import (
	"fmt"
	"time"

	users_models "taskhive/internal/features/users/models"
	users_repositories "taskhive/internal/features/users/repositories"
	users_services "taskhive/internal/features/users/services"
	"taskhive/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const TestUserPassword = "Password123!"

type TestUser struct {
	User  *users_models.User
	Email string
	Token string
}

// CreateTestUser inserts a user directly through the repository and issues
// a real token for it. Each call gets a unique email.
func CreateTestUser() *TestUser {
	userID := uuid.New()
	email := fmt.Sprintf("user-%s@test.com", userID.String()[:8])

	hash, err := bcrypt.GenerateFromPassword([]byte(TestUserPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	now := time.Now().UTC()
	user := &users_models.User{
		ID:           userID,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	userRepository := users_repositories.NewUserRepository(storage.GetDb())
	if err := userRepository.CreateUser(user); err != nil {
		panic(err)
	}

	token, err := users_services.GetTokenService().Issue(user.ID)
	if err != nil {
		panic(err)
	}

	return &TestUser{
		User:  user,
		Email: email,
		Token: token,
	}
}
