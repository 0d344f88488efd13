package auth

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"healthrecords-service/internal/app/config"
	"healthrecords-service/internal/app/contracts"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/dto/responses"
	"healthrecords-service/internal/pkg/exceptions"
	"healthrecords-service/internal/pkg/utils"
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	TokenManager    contracts.TokenManager
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

// session is the payload stored in redis for each login.
type session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	RoleName  string    `json:"role_name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	tokenManager contracts.TokenManager,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:  userRepository,
		RedisRepository: redisRepository,
		TokenManager:    tokenManager,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !models.IsKnownRole(request.RoleName) {
		return nil, exceptions.ErrInvalidRoleType(nil)
	}
	if request.Password != request.ConfirmPassword {
		return nil, exceptions.ErrPasswordDoNotMatch(nil)
	}

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password, uc.InternalConfig.JWT.BcryptHashCost)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	userModel := &models.User{
		ID:        utils.GenerateDocumentID(),
		Email:     request.Email,
		Password:  hashedPassword,
		RoleName:  request.RoleName,
		Active:    true,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, userModel)
	if err != nil {
		return nil, err
	}

	return &responses.RegisterUser{
		UserID:   userID,
		Email:    userModel.Email,
		RoleName: userModel.RoleName,
	}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userModel, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if userModel == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !userModel.Active {
		return nil, exceptions.ErrUserDeactivated(nil)
	}
	if !utils.CheckPasswordHash(request.Password, userModel.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	tokenTTL := time.Duration(uc.InternalConfig.JWT.ExpTimeInMinutes) * time.Minute
	accessToken, err := uc.TokenManager.Issue(userModel.Email, userModel.RoleName, tokenTTL)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	sessionID := utils.GenerateSessionID()
	sessionTTL := time.Duration(uc.InternalConfig.App.SessionExpiryTimeInHours) * time.Hour
	err = uc.RedisRepository.Set(ctx,
		fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID),
		&session{
			UserID:    userModel.ID,
			Email:     userModel.Email,
			RoleName:  userModel.RoleName,
			CreatedAt: time.Now(),
		},
		sessionTTL,
	)
	if err != nil {
		return nil, err
	}

	return &responses.LoginUser{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		SessionID:   sessionID,
		RoleName:    userModel.RoleName,
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LogoutUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if sessionID == "" {
		return exceptions.ErrInvalidSession(nil)
	}

	sessionKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	stored, err := uc.RedisRepository.Get(ctx, sessionKey)
	if err != nil {
		return err
	}
	if stored == "" {
		return exceptions.ErrInvalidSession(nil)
	}

	return uc.RedisRepository.Delete(ctx, sessionKey)
}
