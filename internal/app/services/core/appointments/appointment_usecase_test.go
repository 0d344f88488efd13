package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"healthrecords-service/internal/app/contracts"
	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/exceptions"
)

type stubAppointmentRepository struct {
	appointments map[string]*models.Appointment
}

func (s *stubAppointmentRepository) CreateAppointment(_ context.Context, appointment *models.Appointment) (string, error) {
	s.appointments[appointment.ID] = appointment
	return appointment.ID, nil
}

func (s *stubAppointmentRepository) FindAll(_ context.Context) ([]models.Appointment, error) {
	all := make([]models.Appointment, 0, len(s.appointments))
	for _, appointment := range s.appointments {
		all = append(all, *appointment)
	}
	return all, nil
}

func (s *stubAppointmentRepository) FindByID(_ context.Context, appointmentID string) (*models.Appointment, error) {
	return s.appointments[appointmentID], nil
}

func (s *stubAppointmentRepository) FindByPatientID(_ context.Context, patientID string) ([]models.Appointment, error) {
	var matched []models.Appointment
	for _, appointment := range s.appointments {
		if appointment.PatientID == patientID {
			matched = append(matched, *appointment)
		}
	}
	return matched, nil
}

func (s *stubAppointmentRepository) FindByDoctorID(_ context.Context, doctorID string) ([]models.Appointment, error) {
	var matched []models.Appointment
	for _, appointment := range s.appointments {
		if appointment.DoctorID == doctorID {
			matched = append(matched, *appointment)
		}
	}
	return matched, nil
}

func (s *stubAppointmentRepository) UpdateAppointment(_ context.Context, appointment *models.Appointment) error {
	s.appointments[appointment.ID] = appointment
	return nil
}

func (s *stubAppointmentRepository) DeleteByID(_ context.Context, appointmentID string) error {
	delete(s.appointments, appointmentID)
	return nil
}

type stubPatientRepository struct {
	patients map[string]*models.Patient
}

func (s *stubPatientRepository) CreatePatient(_ context.Context, patient *models.Patient) (string, error) {
	s.patients[patient.ID] = patient
	return patient.ID, nil
}
func (s *stubPatientRepository) FindAll(_ context.Context) ([]models.Patient, error) { return nil, nil }
func (s *stubPatientRepository) FindByID(_ context.Context, patientID string) (*models.Patient, error) {
	return s.patients[patientID], nil
}
func (s *stubPatientRepository) FindByUserID(_ context.Context, _ string) (*models.Patient, error) {
	return nil, nil
}
func (s *stubPatientRepository) UpdatePatient(_ context.Context, _ *models.Patient) error { return nil }
func (s *stubPatientRepository) DeleteByID(_ context.Context, _ string) error             { return nil }

type stubDoctorRepository struct {
	doctors map[string]*models.Doctor
}

func (s *stubDoctorRepository) CreateDoctor(_ context.Context, doctor *models.Doctor) (string, error) {
	s.doctors[doctor.ID] = doctor
	return doctor.ID, nil
}
func (s *stubDoctorRepository) FindAll(_ context.Context) ([]models.Doctor, error) { return nil, nil }
func (s *stubDoctorRepository) FindByID(_ context.Context, doctorID string) (*models.Doctor, error) {
	return s.doctors[doctorID], nil
}
func (s *stubDoctorRepository) FindByUserID(_ context.Context, _ string) (*models.Doctor, error) {
	return nil, nil
}
func (s *stubDoctorRepository) UpdateDoctor(_ context.Context, _ *models.Doctor) error { return nil }
func (s *stubDoctorRepository) DeleteByID(_ context.Context, _ string) error           { return nil }

type recordingPublisher struct {
	events []contracts.AppointmentEvent
}

func (p *recordingPublisher) PublishAppointmentEvent(_ context.Context, event *contracts.AppointmentEvent) error {
	p.events = append(p.events, *event)
	return nil
}

func newUsecaseForTest(appointmentRepo *stubAppointmentRepository, publisher *recordingPublisher) contracts.AppointmentUsecase {
	return NewAppointmentUsecase(
		appointmentRepo,
		&stubPatientRepository{patients: map[string]*models.Patient{
			"p1": {ID: "p1", FirstName: "Jane"},
			"p2": {ID: "p2", FirstName: "John"},
		}},
		&stubDoctorRepository{doctors: map[string]*models.Doctor{
			"d1": {ID: "d1", Name: "Dr. Gray"},
		}},
		publisher,
		authz.NewEngine(authz.NewDefaultRegistry()),
		zap.NewNop(),
	)
}

func patientActor(patientID string) *authz.Actor {
	return &authz.Actor{UserID: "user-pat", RoleName: constvars.RolePatient, Active: true, PatientID: patientID}
}

func doctorActor(doctorID string) *authz.Actor {
	return &authz.Actor{UserID: "user-doc", RoleName: constvars.RoleDoctor, Active: true, DoctorID: doctorID}
}

func TestAppointmentUsecaseCreateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("PatientBooksOwnAppointmentAndEventPublished", func(t *testing.T) {
		publisher := &recordingPublisher{}
		uc := newUsecaseForTest(&stubAppointmentRepository{appointments: map[string]*models.Appointment{}}, publisher)

		response, err := uc.CreateAppointment(ctx, patientActor("p1"), &requests.CreateAppointment{
			PatientID: "p1", DoctorID: "d1", AppointmentDate: time.Now().Add(24 * time.Hour), Reason: "checkup",
		})
		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusPending, response.Status)
		assert.Len(t, publisher.events, 1)
		assert.Equal(t, "p1", publisher.events[0].PatientID)
	})

	t.Run("PatientCannotBookForAnotherPatient", func(t *testing.T) {
		publisher := &recordingPublisher{}
		uc := newUsecaseForTest(&stubAppointmentRepository{appointments: map[string]*models.Appointment{}}, publisher)

		_, err := uc.CreateAppointment(ctx, patientActor("p1"), &requests.CreateAppointment{
			PatientID: "p2", DoctorID: "d1", AppointmentDate: time.Now().Add(24 * time.Hour), Reason: "checkup",
		})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Empty(t, publisher.events)
	})

	t.Run("UnknownDoctorRejected", func(t *testing.T) {
		uc := newUsecaseForTest(&stubAppointmentRepository{appointments: map[string]*models.Appointment{}}, &recordingPublisher{})

		_, err := uc.CreateAppointment(ctx, doctorActor("d1"), &requests.CreateAppointment{
			PatientID: "p1", DoctorID: "missing", AppointmentDate: time.Now(), Reason: "checkup",
		})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestAppointmentUsecaseGetAppointments(t *testing.T) {
	ctx := context.Background()

	seeded := func() *stubAppointmentRepository {
		return &stubAppointmentRepository{appointments: map[string]*models.Appointment{
			"a1": {ID: "a1", PatientID: "p1", DoctorID: "d1", Status: constvars.AppointmentStatusPending},
			"a2": {ID: "a2", PatientID: "p2", DoctorID: "d1", Status: constvars.AppointmentStatusConfirmed},
			"a3": {ID: "a3", PatientID: "p2", DoctorID: "d2", Status: constvars.AppointmentStatusPending},
		}}
	}

	t.Run("PatientSeesOnlyOwn", func(t *testing.T) {
		uc := newUsecaseForTest(seeded(), &recordingPublisher{})
		appointments, err := uc.GetAppointments(ctx, patientActor("p1"))
		assert.NoError(t, err)
		assert.Len(t, appointments, 1)
		assert.Equal(t, "a1", appointments[0].ID)
	})

	t.Run("DoctorSeesOwnSchedule", func(t *testing.T) {
		uc := newUsecaseForTest(seeded(), &recordingPublisher{})
		appointments, err := uc.GetAppointments(ctx, doctorActor("d1"))
		assert.NoError(t, err)
		assert.Len(t, appointments, 2)
	})

	t.Run("AdminSeesAll", func(t *testing.T) {
		uc := newUsecaseForTest(seeded(), &recordingPublisher{})
		admin := &authz.Actor{UserID: "user-adm", RoleName: constvars.RoleAdmin, Active: true}
		appointments, err := uc.GetAppointments(ctx, admin)
		assert.NoError(t, err)
		assert.Len(t, appointments, 3)
	})

	t.Run("PatientCannotReadAnotherPatientsBooking", func(t *testing.T) {
		uc := newUsecaseForTest(seeded(), &recordingPublisher{})
		_, err := uc.GetAppointmentByID(ctx, patientActor("p1"), "a2")
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestAppointmentUsecaseUpdateAppointment(t *testing.T) {
	ctx := context.Background()

	seeded := func() *stubAppointmentRepository {
		return &stubAppointmentRepository{appointments: map[string]*models.Appointment{
			"a1": {ID: "a1", PatientID: "p1", DoctorID: "d1", Status: constvars.AppointmentStatusPending},
		}}
	}

	t.Run("DoctorConfirmsAndEventPublished", func(t *testing.T) {
		publisher := &recordingPublisher{}
		uc := newUsecaseForTest(seeded(), publisher)

		response, err := uc.UpdateAppointment(ctx, doctorActor("d1"), "a1", &requests.UpdateAppointment{
			Status: constvars.AppointmentStatusConfirmed,
		})
		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusConfirmed, response.Status)
		assert.Len(t, publisher.events, 1)
		assert.Equal(t, constvars.AppointmentStatusConfirmed, publisher.events[0].Status)
	})

	t.Run("UnchangedStatusPublishesNothing", func(t *testing.T) {
		publisher := &recordingPublisher{}
		uc := newUsecaseForTest(seeded(), publisher)

		_, err := uc.UpdateAppointment(ctx, doctorActor("d1"), "a1", &requests.UpdateAppointment{
			Reason: "follow-up",
		})
		assert.NoError(t, err)
		assert.Empty(t, publisher.events)
	})

	t.Run("PatientCannotEdit", func(t *testing.T) {
		uc := newUsecaseForTest(seeded(), &recordingPublisher{})
		_, err := uc.UpdateAppointment(ctx, patientActor("p1"), "a1", &requests.UpdateAppointment{
			Status: constvars.AppointmentStatusCanceled,
		})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}
