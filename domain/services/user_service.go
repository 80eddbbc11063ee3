package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/AkshatShukla22/task-management/domain/dto"
	"github.com/AkshatShukla22/task-management/domain/models"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error

	// Deactivate disables the account. User records are never hard-deleted;
	// tasks are, see TaskService.DeleteTask.
	Deactivate(ctx context.Context, userID uuid.UUID) error

	ListUsers(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	GenerateJWT(user *models.User) (string, error)
}
