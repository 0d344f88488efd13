package medicalrecords

import (
	"context"
	"fmt"
	"path/filepath"
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

type medicalRecordUsecase struct {
	MedicalRecordRepository contracts.MedicalRecordRepository
	PatientRepository       contracts.PatientRepository
	Storage                 contracts.Storage
	Engine                  *authz.Engine
	MaxUploadBytes          int64
	Log                     *zap.Logger
}

func NewMedicalRecordUsecase(
	medicalRecordRepository contracts.MedicalRecordRepository,
	patientRepository contracts.PatientRepository,
	storage contracts.Storage,
	engine *authz.Engine,
	maxUploadBytes int64,
	logger *zap.Logger,
) contracts.MedicalRecordUsecase {
	return &medicalRecordUsecase{
		MedicalRecordRepository: medicalRecordRepository,
		PatientRepository:       patientRepository,
		Storage:                 storage,
		Engine:                  engine,
		MaxUploadBytes:          maxUploadBytes,
		Log:                     logger,
	}
}

func (uc *medicalRecordUsecase) CreateMedicalRecord(ctx context.Context, actor *authz.Actor, request *requests.CreateMedicalRecord) (*responses.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.CreateMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionCreateMedicalRecord, ""); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}

	now := time.Now()
	record := &models.MedicalRecord{
		ID:                  utils.GenerateDocumentID(),
		PatientID:           request.PatientID,
		DoctorID:            request.DoctorID,
		Diagnosis:           request.Diagnosis,
		Treatment:           request.Treatment,
		PrescribedMedicines: request.PrescribedMedicines,
		VisitDate:           request.VisitDate,
		Notes:               request.Notes,
		TimeModel:           models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	if _, err := uc.MedicalRecordRepository.CreateMedicalRecord(ctx, record); err != nil {
		return nil, err
	}
	return convertMedicalRecordToResponse(record), nil
}

func (uc *medicalRecordUsecase) GetMedicalRecords(ctx context.Context, actor *authz.Actor) ([]responses.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.GetMedicalRecords called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ownerID := ""
	if actor != nil {
		ownerID = actor.PatientID
	}
	if decision := uc.Engine.Authorize(actor, constvars.ActionViewMedicalRecords, ownerID); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	var (
		records []models.MedicalRecord
		err     error
	)
	if actor.RoleName == constvars.RolePatient {
		records, err = uc.MedicalRecordRepository.FindByPatientID(ctx, actor.PatientID)
	} else {
		records, err = uc.MedicalRecordRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	recordResponses := make([]responses.MedicalRecord, 0, len(records))
	for i := range records {
		recordResponses = append(recordResponses, *convertMedicalRecordToResponse(&records[i]))
	}
	return recordResponses, nil
}

func (uc *medicalRecordUsecase) GetMedicalRecordByID(ctx context.Context, actor *authz.Actor, recordID string) (*responses.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.GetMedicalRecordByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	record, err := uc.MedicalRecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}

	if decision := uc.Engine.Authorize(actor, constvars.ActionViewMedicalRecords, record.PatientID); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}
	// The role grant covers the patient role as a whole, so a second
	// ownership check keeps one patient out of another's chart.
	if actor.RoleName == constvars.RolePatient && !actor.OwnsPatientRecord(record.PatientID) {
		return nil, exceptions.ErrInsufficientPermission(constvars.ReasonInsufficientPermission)
	}
	return convertMedicalRecordToResponse(record), nil
}

func (uc *medicalRecordUsecase) UpdateMedicalRecord(ctx context.Context, actor *authz.Actor, recordID string, request *requests.UpdateMedicalRecord) (*responses.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.UpdateMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionEditMedicalRecord, ""); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	record, err := uc.MedicalRecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}

	if request.Diagnosis != "" {
		record.Diagnosis = request.Diagnosis
	}
	if request.Treatment != "" {
		record.Treatment = request.Treatment
	}
	if request.PrescribedMedicines != "" {
		record.PrescribedMedicines = request.PrescribedMedicines
	}
	if request.Notes != "" {
		record.Notes = request.Notes
	}
	record.UpdatedAt = time.Now()

	if err := uc.MedicalRecordRepository.UpdateMedicalRecord(ctx, record); err != nil {
		return nil, err
	}
	return convertMedicalRecordToResponse(record), nil
}

func (uc *medicalRecordUsecase) AttachMedicalRecordFile(ctx context.Context, actor *authz.Actor, recordID string, request *requests.AttachMedicalRecordFile) (*responses.MedicalRecordAttachment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.AttachMedicalRecordFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("record_id", recordID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionEditMedicalRecord, ""); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}
	if int64(len(request.Data)) > uc.MaxUploadBytes {
		return nil, exceptions.ErrUploadTooLarge(fmt.Errorf("upload of %d bytes exceeds limit of %d", len(request.Data), uc.MaxUploadBytes))
	}

	record, err := uc.MedicalRecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}

	objectName := utils.GenerateFileName("medical-record", record.ID, filepath.Ext(request.FileName))
	storedName, err := uc.Storage.UploadObject(ctx, &contracts.UploadObjectInput{
		ObjectName:  objectName,
		Data:        request.Data,
		ContentType: request.ContentType,
	})
	if err != nil {
		return nil, err
	}

	record.AttachmentObject = storedName
	record.UpdatedAt = time.Now()
	if err := uc.MedicalRecordRepository.UpdateMedicalRecord(ctx, record); err != nil {
		return nil, err
	}

	presignedURL, err := uc.Storage.GetPresignedURL(ctx, storedName)
	if err != nil {
		return nil, err
	}
	return &responses.MedicalRecordAttachment{
		RecordID:     record.ID,
		ObjectName:   storedName,
		PresignedURL: presignedURL,
	}, nil
}

func convertMedicalRecordToResponse(record *models.MedicalRecord) *responses.MedicalRecord {
	return &responses.MedicalRecord{
		ID:                  record.ID,
		PatientID:           record.PatientID,
		DoctorID:            record.DoctorID,
		Diagnosis:           record.Diagnosis,
		Treatment:           record.Treatment,
		PrescribedMedicines: record.PrescribedMedicines,
		VisitDate:           record.VisitDate,
		Notes:               record.Notes,
		AttachmentObject:    record.AttachmentObject,
	}
}
