package contracts

import (
	"context"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, actor *authz.Actor, request *requests.CreateAppointment) (*responses.Appointment, error)
	GetAppointments(ctx context.Context, actor *authz.Actor) ([]responses.Appointment, error)
	GetAppointmentByID(ctx context.Context, actor *authz.Actor, appointmentID string) (*responses.Appointment, error)
	UpdateAppointment(ctx context.Context, actor *authz.Actor, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error)
	DeleteAppointment(ctx context.Context, actor *authz.Actor, appointmentID string) error
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
	DeleteByID(ctx context.Context, appointmentID string) error
}
