package contracts

import (
	"context"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, actor *authz.Actor, request *requests.CreatePatient) (*responses.Patient, error)
	GetAllPatients(ctx context.Context, actor *authz.Actor) ([]responses.Patient, error)
	GetPatientByID(ctx context.Context, actor *authz.Actor, patientID string) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, actor *authz.Actor, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
	DeletePatient(ctx context.Context, actor *authz.Actor, patientID string) error
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (patientID string, err error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByUserID(ctx context.Context, userID string) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	DeleteByID(ctx context.Context, patientID string) error
}
