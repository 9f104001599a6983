package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stratoview-taxonomy-api/internal/domain"
	"stratoview-taxonomy-api/internal/dto"
	"stratoview-taxonomy-api/internal/response"
)

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name        string
		req         *dto.CreateUserRequest
		repoErr     error
		wantErrCode string
		wantDisplay string
	}{
		{
			name:        "admin account",
			req:         &dto.CreateUserRequest{Username: "admin", UserType: "ADMIN"},
			wantDisplay: "Administrator",
		},
		{
			name:        "customer account",
			req:         &dto.CreateUserRequest{Username: "rossi", UserType: "CUSTOMER"},
			wantDisplay: "Customer",
		},
		{
			name:        "unknown user type rejected",
			req:         &dto.CreateUserRequest{Username: "rossi", UserType: "SUPERUSER"},
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:        "duplicate username rejected",
			req:         &dto.CreateUserRequest{Username: "rossi", UserType: "CUSTOMER"},
			repoErr:     gorm.ErrDuplicatedKey,
			wantErrCode: response.ErrCodeAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &MockUserRepository{
				CreateFunc: func(ctx context.Context, user *domain.User) error {
					if tt.repoErr != nil {
						return tt.repoErr
					}
					user.ID = uuid.New()
					return nil
				},
			}
			svc := NewUserService(userRepo, zap.NewNop())

			resp, err := svc.CreateUser(context.Background(), tt.req)

			if tt.wantErrCode != "" {
				require.Error(t, err)
				appErr, ok := err.(*response.AppError)
				require.True(t, ok)
				assert.Equal(t, tt.wantErrCode, appErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.req.Username, resp.Username)
			assert.Equal(t, tt.wantDisplay, resp.UserTypeDisplay)
			assert.Nil(t, resp.LastLogin)
		})
	}
}

func TestUserService_ListUsers_TypeFilter(t *testing.T) {
	var captured *domain.UserType
	userRepo := &MockUserRepository{
		ListFunc: func(ctx context.Context, userType *domain.UserType) ([]*domain.User, error) {
			captured = userType
			return []*domain.User{{ID: uuid.New(), Username: "admin", UserType: domain.UserTypeAdmin}}, nil
		},
	}
	svc := NewUserService(userRepo, zap.NewNop())

	filter := "ADMIN"
	users, err := svc.ListUsers(context.Background(), &filter)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.NotNil(t, captured)
	assert.Equal(t, domain.UserTypeAdmin, *captured)

	bad := "ROOT"
	_, err = svc.ListUsers(context.Background(), &bad)
	require.Error(t, err)
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, response.ErrCodeValidation, appErr.Code)
}

func TestUserService_RecordLogin(t *testing.T) {
	stamped := false
	userRepo := &MockUserRepository{
		UpdateLastLoginFunc: func(ctx context.Context, id uuid.UUID) error {
			stamped = true
			return nil
		},
	}
	svc := NewUserService(userRepo, zap.NewNop())

	require.NoError(t, svc.RecordLogin(context.Background(), uuid.New()))
	assert.True(t, stamped)

	userRepo.UpdateLastLoginFunc = func(ctx context.Context, id uuid.UUID) error {
		return gorm.ErrRecordNotFound
	}
	err := svc.RecordLogin(context.Background(), uuid.New())
	require.Error(t, err)
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
}
