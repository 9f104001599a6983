package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stratoview-taxonomy-api/internal/domain"
	"stratoview-taxonomy-api/internal/dto"
	"stratoview-taxonomy-api/internal/repository"
	"stratoview-taxonomy-api/internal/response"
)

// UserService defines the business logic for platform accounts
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, userType *string) ([]dto.UserResponse, error)
	RecordLogin(ctx context.Context, id uuid.UUID) error
}

// userServiceImpl is the implementation of UserService
type userServiceImpl struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository, logger *zap.Logger) UserService {
	return &userServiceImpl{userRepo: userRepo, logger: logger}
}

// CreateUser registers a new platform account
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	userType := domain.UserType(req.UserType)
	if !userType.Valid() {
		return nil, response.NewValidationError("Unknown user type", req.UserType)
	}

	user := &domain.User{
		Username: req.Username,
		UserType: userType,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Username already taken", req.Username)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
	}

	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("user_type", string(user.UserType)))

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// GetUser finds a user by ID
func (s *userServiceImpl) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", id.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get user", err.Error())
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// ListUsers lists users with an optional type filter
func (s *userServiceImpl) ListUsers(ctx context.Context, userType *string) ([]dto.UserResponse, error) {
	var typeFilter *domain.UserType
	if userType != nil {
		t := domain.UserType(*userType)
		if !t.Valid() {
			return nil, response.NewValidationError("Unknown user type", *userType)
		}
		typeFilter = &t
	}

	users, err := s.userRepo.List(ctx, typeFilter)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list users", err.Error())
	}

	result := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, dto.ToUserResponse(user))
	}
	return result, nil
}

// RecordLogin stamps the user's last login time
func (s *userServiceImpl) RecordLogin(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.UpdateLastLogin(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("User not found", id.String())
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to record login", err.Error())
	}
	return nil
}
