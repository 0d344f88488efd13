package appointments

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

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	DoctorRepository      contracts.DoctorRepository
	Publisher             contracts.NotificationPublisher
	Engine                *authz.Engine
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	publisher contracts.NotificationPublisher,
	engine *authz.Engine,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		PatientRepository:     patientRepository,
		DoctorRepository:      doctorRepository,
		Publisher:             publisher,
		Engine:                engine,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, actor *authz.Actor, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionCreateAppointment, request.PatientID); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}
	// A patient may only book for themselves; the grant alone does not
	// let them book in another patient's name.
	if actor.RoleName == constvars.RolePatient && !actor.OwnsPatientRecord(request.PatientID) {
		return nil, exceptions.ErrInsufficientPermission(constvars.ReasonInsufficientPermission)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}

	now := time.Now()
	appointment := &models.Appointment{
		ID:              utils.GenerateDocumentID(),
		PatientID:       request.PatientID,
		DoctorID:        request.DoctorID,
		AppointmentDate: request.AppointmentDate,
		Reason:          request.Reason,
		Status:          constvars.AppointmentStatusPending,
		TimeModel:       models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, appointment)

	appointment.ID = appointmentID
	return convertAppointmentToResponse(appointment), nil
}

func (uc *appointmentUsecase) GetAppointments(ctx context.Context, actor *authz.Actor) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionViewAppointments, actor.PatientID); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	var (
		appointments []models.Appointment
		err          error
	)
	switch {
	case actor.RoleName == constvars.RolePatient:
		// Patients only ever see their own bookings.
		appointments, err = uc.AppointmentRepository.FindByPatientID(ctx, actor.PatientID)
	case actor.RoleName == constvars.RoleDoctor && actor.DoctorID != "":
		appointments, err = uc.AppointmentRepository.FindByDoctorID(ctx, actor.DoctorID)
	default:
		appointments, err = uc.AppointmentRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	appointmentResponses := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		appointmentResponses = append(appointmentResponses, *convertAppointmentToResponse(&appointments[i]))
	}
	return appointmentResponses, nil
}

func (uc *appointmentUsecase) GetAppointmentByID(ctx context.Context, actor *authz.Actor, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAppointmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}

	if decision := uc.Engine.Authorize(actor, constvars.ActionViewAppointments, appointment.PatientID); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}
	if actor.RoleName == constvars.RolePatient && !actor.OwnsPatientRecord(appointment.PatientID) {
		return nil, exceptions.ErrInsufficientPermission(constvars.ReasonInsufficientPermission)
	}

	return convertAppointmentToResponse(appointment), nil
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, actor *authz.Actor, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionEditAppointment, ""); !decision.Allowed {
		return nil, exceptions.ErrInsufficientPermission(decision.Reason)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}

	statusChanged := false
	if request.AppointmentDate != nil {
		appointment.AppointmentDate = *request.AppointmentDate
	}
	if request.Reason != "" {
		appointment.Reason = request.Reason
	}
	if request.Status != "" && request.Status != appointment.Status {
		appointment.Status = request.Status
		statusChanged = true
	}
	appointment.UpdatedAt = time.Now()

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	if statusChanged {
		uc.publishEvent(ctx, appointment)
	}

	return convertAppointmentToResponse(appointment), nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, actor *authz.Actor, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.DeleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if decision := uc.Engine.Authorize(actor, constvars.ActionDeleteAppointment, ""); !decision.Allowed {
		return exceptions.ErrInsufficientPermission(decision.Reason)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrDataNotFound(nil)
	}

	return uc.AppointmentRepository.DeleteByID(ctx, appointmentID)
}

// publishEvent is best effort: losing a notification never fails the
// appointment write that produced it.
func (uc *appointmentUsecase) publishEvent(ctx context.Context, appointment *models.Appointment) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	err := uc.Publisher.PublishAppointmentEvent(ctx, &contracts.AppointmentEvent{
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		Status:        appointment.Status,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		uc.Log.Warn("appointmentUsecase failed to publish event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("appointment_id", appointment.ID),
			zap.Error(err),
		)
	}
}

func convertAppointmentToResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: appointment.AppointmentDate,
		Reason:          appointment.Reason,
		Status:          appointment.Status,
	}
}
