package contracts

import (
	"context"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/dto/responses"
)

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, actor *authz.Actor, request *requests.CreatePrescription) (*responses.Prescription, error)
	GetPrescriptions(ctx context.Context, actor *authz.Actor) ([]responses.Prescription, error)
	GetPrescriptionByID(ctx context.Context, actor *authz.Actor, prescriptionID string) (*responses.Prescription, error)
	UpdatePrescription(ctx context.Context, actor *authz.Actor, prescriptionID string, request *requests.UpdatePrescription) (*responses.Prescription, error)
}

type PrescriptionRepository interface {
	CreatePrescription(ctx context.Context, prescription *models.Prescription) (prescriptionID string, err error)
	FindAll(ctx context.Context) ([]models.Prescription, error)
	FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Prescription, error)
	UpdatePrescription(ctx context.Context, prescription *models.Prescription) error
}
