package contracts

import (
	"context"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/dto/responses"
)

type MedicineUsecase interface {
	CreateMedicine(ctx context.Context, actor *authz.Actor, request *requests.CreateMedicine) (*responses.Medicine, error)
	GetMedicines(ctx context.Context, actor *authz.Actor) ([]responses.Medicine, error)
	GetMedicineByID(ctx context.Context, actor *authz.Actor, medicineID string) (*responses.Medicine, error)
	UpdateMedicine(ctx context.Context, actor *authz.Actor, medicineID string, request *requests.UpdateMedicine) (*responses.Medicine, error)
	DeleteMedicine(ctx context.Context, actor *authz.Actor, medicineID string) error
}

type MedicineRepository interface {
	CreateMedicine(ctx context.Context, medicine *models.Medicine) (medicineID string, err error)
	FindAll(ctx context.Context) ([]models.Medicine, error)
	FindByID(ctx context.Context, medicineID string) (*models.Medicine, error)
	FindByName(ctx context.Context, name string) (*models.Medicine, error)
	UpdateMedicine(ctx context.Context, medicine *models.Medicine) error
	DeleteByID(ctx context.Context, medicineID string) error
}
