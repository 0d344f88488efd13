package prescriptions

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

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	PatientRepository      contracts.PatientRepository
	MedicineRepository     contracts.MedicineRepository
	Engine                 *authz.Engine
	Log                    *zap.Logger
}

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	patientRepository contracts.PatientRepository,
	medicineRepository contracts.MedicineRepository,
	engine *authz.Engine,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	return &prescriptionUsecase{
		PrescriptionRepository: prescriptionRepository,
		PatientRepository:      patientRepository,
		MedicineRepository:     medicineRepository,
		Engine:                 engine,
		Log:                    logger,
	}
}

func (uc *prescriptionUsecase) CreatePrescription(ctx context.Context, actor *authz.Actor, request *requests.CreatePrescription) (*responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.CreatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionCreatePrescription, ""); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}

	// Prescribing is restricted to medicines in the catalog.
	medicine, err := uc.MedicineRepository.FindByName(ctx, request.MedicineName)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}

	now := time.Now()
	prescription := &models.Prescription{
		ID:           utils.GenerateDocumentID(),
		PatientID:    request.PatientID,
		DoctorID:     request.DoctorID,
		MedicineName: request.MedicineName,
		Dosage:       request.Dosage,
		Frequency:    request.Frequency,
		StartDate:    request.StartDate,
		EndDate:      request.EndDate,
		Notes:        request.Notes,
		TimeModel:    models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	if _, err := uc.PrescriptionRepository.CreatePrescription(ctx, prescription); err != nil {
		return nil, err
	}
	return convertPrescriptionToResponse(prescription), nil
}

func (uc *prescriptionUsecase) GetPrescriptions(ctx context.Context, actor *authz.Actor) ([]responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.GetPrescriptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ownerID := ""
	if actor != nil {
		ownerID = actor.PatientID
	}
	if decision := uc.Engine.Authorize(actor, constvars.ActionViewPrescriptions, ownerID); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	var (
		prescriptions []models.Prescription
		err           error
	)
	if actor.RoleName == constvars.RolePatient {
		prescriptions, err = uc.PrescriptionRepository.FindByPatientID(ctx, actor.PatientID)
	} else {
		prescriptions, err = uc.PrescriptionRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	prescriptionResponses := make([]responses.Prescription, 0, len(prescriptions))
	for i := range prescriptions {
		prescriptionResponses = append(prescriptionResponses, *convertPrescriptionToResponse(&prescriptions[i]))
	}
	return prescriptionResponses, nil
}

func (uc *prescriptionUsecase) GetPrescriptionByID(ctx context.Context, actor *authz.Actor, prescriptionID string) (*responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.GetPrescriptionByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}

	if decision := uc.Engine.Authorize(actor, constvars.ActionViewPrescriptions, prescription.PatientID); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}
	if actor.RoleName == constvars.RolePatient && !actor.OwnsPatientRecord(prescription.PatientID) {
		return nil, exceptions.ErrInsufficientPermission(constvars.ReasonInsufficientPermission)
	}
	return convertPrescriptionToResponse(prescription), nil
}

func (uc *prescriptionUsecase) UpdatePrescription(ctx context.Context, actor *authz.Actor, prescriptionID string, request *requests.UpdatePrescription) (*responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.UpdatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionEditPrescription, ""); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}

	if request.Dosage != "" {
		prescription.Dosage = request.Dosage
	}
	if request.Frequency != "" {
		prescription.Frequency = request.Frequency
	}
	if request.EndDate != nil {
		prescription.EndDate = request.EndDate
	}
	if request.Notes != "" {
		prescription.Notes = request.Notes
	}
	prescription.UpdatedAt = time.Now()

	if err := uc.PrescriptionRepository.UpdatePrescription(ctx, prescription); err != nil {
		return nil, err
	}
	return convertPrescriptionToResponse(prescription), nil
}

func convertPrescriptionToResponse(prescription *models.Prescription) *responses.Prescription {
	return &responses.Prescription{
		ID:           prescription.ID,
		PatientID:    prescription.PatientID,
		DoctorID:     prescription.DoctorID,
		MedicineName: prescription.MedicineName,
		Dosage:       prescription.Dosage,
		Frequency:    prescription.Frequency,
		StartDate:    prescription.StartDate,
		EndDate:      prescription.EndDate,
		Notes:        prescription.Notes,
	}
}
