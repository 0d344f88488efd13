package contracts

import (
	"context"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/dto/responses"
)

type MedicalRecordUsecase interface {
	CreateMedicalRecord(ctx context.Context, actor *authz.Actor, request *requests.CreateMedicalRecord) (*responses.MedicalRecord, error)
	GetMedicalRecords(ctx context.Context, actor *authz.Actor) ([]responses.MedicalRecord, error)
	GetMedicalRecordByID(ctx context.Context, actor *authz.Actor, recordID string) (*responses.MedicalRecord, error)
	UpdateMedicalRecord(ctx context.Context, actor *authz.Actor, recordID string, request *requests.UpdateMedicalRecord) (*responses.MedicalRecord, error)
	AttachMedicalRecordFile(ctx context.Context, actor *authz.Actor, recordID string, request *requests.AttachMedicalRecordFile) (*responses.MedicalRecordAttachment, error)
}

type MedicalRecordRepository interface {
	CreateMedicalRecord(ctx context.Context, record *models.MedicalRecord) (recordID string, err error)
	FindAll(ctx context.Context) ([]models.MedicalRecord, error)
	FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.MedicalRecord, error)
	UpdateMedicalRecord(ctx context.Context, record *models.MedicalRecord) error
}
