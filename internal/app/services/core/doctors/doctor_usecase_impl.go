package doctors

import (
	"context"
	"time"

	"go.uber.org/zap"

	"healthrecords-service/internal/app/contracts"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/dto/responses"
	"healthrecords-service/internal/pkg/exceptions"
	"healthrecords-service/internal/pkg/utils"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	UserRepository   contracts.UserRepository
	Engine           *authz.Engine
	Log              *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	engine *authz.Engine,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		UserRepository:   userRepository,
		Engine:           engine,
		Log:              logger,
	}
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, actor *authz.Actor, request *requests.CreateDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionCreateDoctor, ""); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	now := time.Now()
	doctor := &models.Doctor{
		ID:             utils.GenerateDocumentID(),
		Name:           request.Name,
		Email:          request.Email,
		Specialization: request.Specialization,
		Experience:     request.Experience,
		AvailableSlots: request.AvailableSlots,
		TimeModel:      models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	userModel, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if userModel != nil && userModel.RoleName == constvars.RoleDoctor && userModel.DoctorID == "" {
		doctor.UserID = userModel.ID
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}

	if doctor.UserID != "" {
		userModel.DoctorID = doctorID
		userModel.UpdatedAt = now
		if err := uc.UserRepository.UpdateUser(ctx, userModel); err != nil {
			uc.Log.Error("doctorUsecase.CreateDoctor failed to link user account",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("doctor_id", doctorID),
				zap.Error(err),
			)
		}
	}

	return convertDoctorToResponse(doctor), nil
}

func (uc *doctorUsecase) GetAllDoctors(ctx context.Context, actor *authz.Actor) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GetAllDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionViewAllDoctors, ""); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	doctorResponses := make([]responses.Doctor, 0, len(doctors))
	for i := range doctors {
		doctorResponses = append(doctorResponses, *convertDoctorToResponse(&doctors[i]))
	}
	return doctorResponses, nil
}

func (uc *doctorUsecase) GetDoctorByID(ctx context.Context, actor *authz.Actor, doctorID string) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GetDoctorByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionViewAllDoctors, ""); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}
	return convertDoctorToResponse(doctor), nil
}

func (uc *doctorUsecase) UpdateDoctor(ctx context.Context, actor *authz.Actor, doctorID string, request *requests.UpdateDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UpdateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Editing a doctor profile is not granted to any role; a doctor
	// reaches their own profile through ownership, admin through bypass.
	if decision := uc.Engine.Authorize(actor, constvars.ActionEditDoctor, doctorID); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}

	if request.Name != "" {
		doctor.Name = request.Name
	}
	if request.Specialization != "" {
		doctor.Specialization = request.Specialization
	}
	if request.Experience > 0 {
		doctor.Experience = request.Experience
	}
	if request.AvailableSlots != nil {
		doctor.AvailableSlots = request.AvailableSlots
	}
	doctor.UpdatedAt = time.Now()

	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return nil, err
	}
	return convertDoctorToResponse(doctor), nil
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, actor *authz.Actor, doctorID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.DeleteDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionDeleteDoctor, ""); !decision.Allowed {
		return exceptions.ErrInsufficientPermission(decision.Reason)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDataNotFound(nil)
	}

	return uc.DoctorRepository.DeleteByID(ctx, doctorID)
}

func convertDoctorToResponse(doctor *models.Doctor) *responses.Doctor {
	return &responses.Doctor{
		ID:             doctor.ID,
		UserID:         doctor.UserID,
		Name:           doctor.Name,
		Email:          doctor.Email,
		Specialization: doctor.Specialization,
		Experience:     doctor.Experience,
		AvailableSlots: doctor.AvailableSlots,
	}
}
