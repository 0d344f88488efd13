package contracts

import (
	"context"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, actor *authz.Actor, request *requests.CreateDoctor) (*responses.Doctor, error)
	GetAllDoctors(ctx context.Context, actor *authz.Actor) ([]responses.Doctor, error)
	GetDoctorByID(ctx context.Context, actor *authz.Actor, doctorID string) (*responses.Doctor, error)
	UpdateDoctor(ctx context.Context, actor *authz.Actor, doctorID string, request *requests.UpdateDoctor) (*responses.Doctor, error)
	DeleteDoctor(ctx context.Context, actor *authz.Actor, doctorID string) error
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (doctorID string, err error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindByUserID(ctx context.Context, userID string) (*models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
	DeleteByID(ctx context.Context, doctorID string) error
}
