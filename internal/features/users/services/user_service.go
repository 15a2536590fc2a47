package users_services

import (
	"fmt"
	"strings"
	"time"

	"taskhive/internal/apierrors"
	users_dto "taskhive/internal/features/users/dto"
	users_models "taskhive/internal/features/users/models"
	users_repositories "taskhive/internal/features/users/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepository *users_repositories.UserRepository
	tokenService   *TokenService
}

func NewUserService(
	userRepository *users_repositories.UserRepository,
	tokenService *TokenService,
) *UserService {
	return &UserService{
		userRepository: userRepository,
		tokenService:   tokenService,
	}
}

func (s *UserService) Register(request *users_dto.RegisterRequestDTO) (*users_dto.RegisterResponseDTO, error) {
	email := NormalizeEmail(request.Email)

	if email == "" || request.Password == "" {
		return nil, apierrors.Validation("Email and password are required")
	}

	if len(request.Password) < 8 {
		return nil, apierrors.Validation("Password must be at least 8 characters")
	}

	existingUser, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return nil, apierrors.Conflict("Email already in use")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &users_models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokenService.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &users_dto.RegisterResponseDTO{
		User: users_dto.RegisteredUserDTO{
			ID:        user.ID,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
		Token: token,
	}, nil
}

// Login reports one identical failure for unknown email and wrong password
// so callers cannot enumerate registered accounts.
func (s *UserService) Login(request *users_dto.LoginRequestDTO) (*users_dto.LoginResponseDTO, error) {
	email := NormalizeEmail(request.Email)

	if email == "" || request.Password == "" {
		return nil, apierrors.Validation("Email and password are required")
	}

	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, apierrors.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		return nil, apierrors.Unauthorized("Invalid credentials")
	}

	token, err := s.tokenService.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &users_dto.LoginResponseDTO{
		User: users_dto.LoginUserDTO{
			ID:    user.ID,
			Email: user.Email,
		},
		Token: token,
	}, nil
}

func (s *UserService) GetUserFromToken(token string) (*users_models.User, error) {
	subjectID, err := s.tokenService.Verify(token)
	if err != nil {
		return nil, apierrors.Unauthorized("Invalid or expired token")
	}

	user, err := s.userRepository.GetUserByID(subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, apierrors.Unauthorized("User not found")
	}

	return user, nil
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) GetUserByEmail(email string) (*users_models.User, error) {
	return s.userRepository.GetUserByEmail(NormalizeEmail(email))
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
