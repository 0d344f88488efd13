package patients

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

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	UserRepository    contracts.UserRepository
	Engine            *authz.Engine
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	userRepository contracts.UserRepository,
	engine *authz.Engine,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		UserRepository:    userRepository,
		Engine:            engine,
		Log:               logger,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, actor *authz.Actor, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionCreatePatient, ""); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	now := time.Now()
	patient := &models.Patient{
		ID:             utils.GenerateDocumentID(),
		FirstName:      request.FirstName,
		LastName:       request.LastName,
		Age:            request.Age,
		Gender:         request.Gender,
		Phone:          request.Phone,
		Email:          request.Email,
		Address:        request.Address,
		MedicalHistory: request.MedicalHistory,
		DateRegistered: now,
		TimeModel:      models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	// Link the record to an existing account with the same email so the
	// patient can reach it through ownership checks.
	userModel, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if userModel != nil && userModel.RoleName == constvars.RolePatient && userModel.PatientID == "" {
		patient.UserID = userModel.ID
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}

	if patient.UserID != "" {
		userModel.PatientID = patientID
		userModel.UpdatedAt = now
		if err := uc.UserRepository.UpdateUser(ctx, userModel); err != nil {
			uc.Log.Error("patientUsecase.CreatePatient failed to link user account",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("patient_id", patientID),
				zap.Error(err),
			)
		}
	}

	return convertPatientToResponse(patient), nil
}

func (uc *patientUsecase) GetAllPatients(ctx context.Context, actor *authz.Actor) ([]responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.GetAllPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionViewAllPatients, ""); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	patientResponses := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		patientResponses = append(patientResponses, *convertPatientToResponse(&patients[i]))
	}
	return patientResponses, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, actor *authz.Actor, patientID string) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.GetPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionViewPatients, patientID); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}
	return convertPatientToResponse(patient), nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, actor *authz.Actor, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionEditPatient, patientID); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}

	if request.FirstName != "" {
		patient.FirstName = request.FirstName
	}
	if request.LastName != "" {
		patient.LastName = request.LastName
	}
	if request.Age > 0 {
		patient.Age = request.Age
	}
	if request.Gender != "" {
		patient.Gender = request.Gender
	}
	if request.Phone != "" {
		patient.Phone = request.Phone
	}
	if request.Address != "" {
		patient.Address = request.Address
	}
	if request.MedicalHistory != "" {
		patient.MedicalHistory = request.MedicalHistory
	}
	patient.UpdatedAt = time.Now()

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}
	return convertPatientToResponse(patient), nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, actor *authz.Actor, patientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionDeletePatient, patientID); !decision.Allowed {
		return exceptions.ErrInsufficientPermission(decision.Reason)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrDataNotFound(nil)
	}

	return uc.PatientRepository.DeleteByID(ctx, patientID)
}

func convertPatientToResponse(patient *models.Patient) *responses.Patient {
	return &responses.Patient{
		ID:             patient.ID,
		UserID:         patient.UserID,
		FirstName:      patient.FirstName,
		LastName:       patient.LastName,
		Age:            patient.Age,
		Gender:         patient.Gender,
		Phone:          patient.Phone,
		Email:          patient.Email,
		Address:        patient.Address,
		MedicalHistory: patient.MedicalHistory,
		DateRegistered: patient.DateRegistered,
	}
}
