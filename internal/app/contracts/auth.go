package contracts

import (
	"context"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/dto/responses"
	"time"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	LogoutUser(ctx context.Context, sessionID string) error
}

// TokenManager signs and verifies the bearer tokens carrying actor identity
// and role.
type TokenManager interface {
	Issue(subject, role string, ttl time.Duration) (string, error)
	Decode(tokenString string) (subject, role string, err error)
}
