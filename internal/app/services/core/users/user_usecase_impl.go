package users

import (
	"context"
	"time"

	"go.uber.org/zap"

	"healthrecords-service/internal/app/contracts"
	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/dto/responses"
	"healthrecords-service/internal/pkg/exceptions"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Engine         *authz.Engine
	Log            *zap.Logger
}

func NewUserUsecase(userRepository contracts.UserRepository, engine *authz.Engine, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		Engine:         engine,
		Log:            logger,
	}
}

func (uc *userUsecase) GetUserProfile(ctx context.Context, userID string) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetUserProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userModel, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if userModel == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	return &responses.UserProfile{
		UserID:    userModel.ID,
		Email:     userModel.Email,
		RoleName:  userModel.RoleName,
		Active:    userModel.Active,
		PatientID: userModel.PatientID,
		DoctorID:  userModel.DoctorID,
	}, nil
}

func (uc *userUsecase) UpdateUserProfile(ctx context.Context, userID string, request *requests.UpdateUserProfile) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateUserProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userModel, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if userModel == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if request.Email != "" && request.Email != userModel.Email {
		existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		userModel.Email = request.Email
	}

	userModel.UpdatedAt = time.Now()
	if err := uc.UserRepository.UpdateUser(ctx, userModel); err != nil {
		return nil, err
	}

	return &responses.UserProfile{
		UserID:    userModel.ID,
		Email:     userModel.Email,
		RoleName:  userModel.RoleName,
		Active:    userModel.Active,
		PatientID: userModel.PatientID,
		DoctorID:  userModel.DoctorID,
	}, nil
}

// DeactivateUser flips the active flag instead of removing the row, so
// later authorization checks deny with an inactive reason rather than a
// missing actor. Users may deactivate their own account through
// ownership; anyone else's account takes the admin bypass.
func (uc *userUsecase) DeactivateUser(ctx context.Context, actor *authz.Actor, userID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.DeactivateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionDeleteUser, userID); !decision.Allowed {
		return exceptions.ErrInsufficientPermission(decision.Reason)
	}

	userModel, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if userModel == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	userModel.Active = false
	userModel.UpdatedAt = time.Now()
	return uc.UserRepository.UpdateUser(ctx, userModel)
}
