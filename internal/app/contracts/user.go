package contracts

import (
	"context"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetUserProfile(ctx context.Context, userID string) (*responses.UserProfile, error)
	UpdateUserProfile(ctx context.Context, userID string, request *requests.UpdateUserProfile) (*responses.UserProfile, error)
	DeactivateUser(ctx context.Context, actor *authz.Actor, userID string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
}
