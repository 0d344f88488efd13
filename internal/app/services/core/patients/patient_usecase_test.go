package patients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/exceptions"
)

type stubPatientRepository struct {
	patients map[string]*models.Patient
	deleted  []string
}

func (s *stubPatientRepository) CreatePatient(_ context.Context, patient *models.Patient) (string, error) {
	s.patients[patient.ID] = patient
	return patient.ID, nil
}

func (s *stubPatientRepository) FindAll(_ context.Context) ([]models.Patient, error) {
	all := make([]models.Patient, 0, len(s.patients))
	for _, patient := range s.patients {
		all = append(all, *patient)
	}
	return all, nil
}

func (s *stubPatientRepository) FindByID(_ context.Context, patientID string) (*models.Patient, error) {
	return s.patients[patientID], nil
}

func (s *stubPatientRepository) FindByUserID(_ context.Context, userID string) (*models.Patient, error) {
	for _, patient := range s.patients {
		if patient.UserID == userID {
			return patient, nil
		}
	}
	return nil, nil
}

func (s *stubPatientRepository) UpdatePatient(_ context.Context, patient *models.Patient) error {
	s.patients[patient.ID] = patient
	return nil
}

func (s *stubPatientRepository) DeleteByID(_ context.Context, patientID string) error {
	delete(s.patients, patientID)
	s.deleted = append(s.deleted, patientID)
	return nil
}

type stubUserRepository struct {
	usersByEmail map[string]*models.User
	updated      []*models.User
}

func (s *stubUserRepository) CreateUser(_ context.Context, userModel *models.User) (string, error) {
	s.usersByEmail[userModel.Email] = userModel
	return userModel.ID, nil
}

func (s *stubUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return s.usersByEmail[email], nil
}

func (s *stubUserRepository) FindByID(_ context.Context, _ string) (*models.User, error) {
	return nil, nil
}

func (s *stubUserRepository) UpdateUser(_ context.Context, userModel *models.User) error {
	s.updated = append(s.updated, userModel)
	return nil
}

func newUsecaseForTest(patientRepo *stubPatientRepository, userRepo *stubUserRepository) *patientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepo,
		UserRepository:    userRepo,
		Engine:            authz.NewEngine(authz.NewDefaultRegistry()),
		Log:               zap.NewNop(),
	}
}

func doctorActor() *authz.Actor {
	return &authz.Actor{UserID: "user-doc", RoleName: constvars.RoleDoctor, Active: true}
}

func patientActor(patientID string) *authz.Actor {
	return &authz.Actor{UserID: "user-pat", RoleName: constvars.RolePatient, Active: true, PatientID: patientID}
}

func adminActor() *authz.Actor {
	return &authz.Actor{UserID: "user-adm", RoleName: constvars.RoleAdmin, Active: true}
}

func TestPatientUsecaseCreatePatient(t *testing.T) {
	ctx := context.Background()

	t.Run("DoctorAllowed", func(t *testing.T) {
		patientRepo := &stubPatientRepository{patients: map[string]*models.Patient{}}
		uc := newUsecaseForTest(patientRepo, &stubUserRepository{usersByEmail: map[string]*models.User{}})

		response, err := uc.CreatePatient(ctx, doctorActor(), &requests.CreatePatient{
			FirstName: "Jane", LastName: "Doe", Age: 30, Gender: "female",
			Phone: "123", Email: "jane@example.com",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, response.ID)
		assert.Len(t, patientRepo.patients, 1)
	})

	t.Run("PatientDeniedWithForbidden", func(t *testing.T) {
		uc := newUsecaseForTest(&stubPatientRepository{patients: map[string]*models.Patient{}}, &stubUserRepository{usersByEmail: map[string]*models.User{}})

		_, err := uc.CreatePatient(ctx, patientActor("p1"), &requests.CreatePatient{
			FirstName: "Jane", LastName: "Doe", Age: 30, Gender: "female",
			Phone: "123", Email: "jane@example.com",
		})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("LinksMatchingPatientAccount", func(t *testing.T) {
		userRepo := &stubUserRepository{usersByEmail: map[string]*models.User{
			"jane@example.com": {ID: "user-9", Email: "jane@example.com", RoleName: constvars.RolePatient, Active: true},
		}}
		uc := newUsecaseForTest(&stubPatientRepository{patients: map[string]*models.Patient{}}, userRepo)

		response, err := uc.CreatePatient(ctx, doctorActor(), &requests.CreatePatient{
			FirstName: "Jane", LastName: "Doe", Age: 30, Gender: "female",
			Phone: "123", Email: "jane@example.com",
		})
		assert.NoError(t, err)
		assert.Equal(t, "user-9", response.UserID)
		assert.Len(t, userRepo.updated, 1)
		assert.Equal(t, response.ID, userRepo.updated[0].PatientID)
	})
}

func TestPatientUsecaseGetPatients(t *testing.T) {
	ctx := context.Background()

	seeded := func() *stubPatientRepository {
		return &stubPatientRepository{patients: map[string]*models.Patient{
			"p1": {ID: "p1", FirstName: "Jane", Email: "jane@example.com"},
			"p2": {ID: "p2", FirstName: "John", Email: "john@example.com"},
		}}
	}

	t.Run("DoctorListsAll", func(t *testing.T) {
		uc := newUsecaseForTest(seeded(), &stubUserRepository{usersByEmail: map[string]*models.User{}})
		all, err := uc.GetAllPatients(ctx, doctorActor())
		assert.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("PatientCannotListAll", func(t *testing.T) {
		uc := newUsecaseForTest(seeded(), &stubUserRepository{usersByEmail: map[string]*models.User{}})
		_, err := uc.GetAllPatients(ctx, patientActor("p1"))
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("PatientReadsOwnRecordThroughOwnership", func(t *testing.T) {
		uc := newUsecaseForTest(seeded(), &stubUserRepository{usersByEmail: map[string]*models.User{}})
		response, err := uc.GetPatientByID(ctx, patientActor("p1"), "p1")
		assert.NoError(t, err)
		assert.Equal(t, "Jane", response.FirstName)
	})

	t.Run("PatientDeniedSomeoneElsesRecord", func(t *testing.T) {
		uc := newUsecaseForTest(seeded(), &stubUserRepository{usersByEmail: map[string]*models.User{}})
		_, err := uc.GetPatientByID(ctx, patientActor("p1"), "p2")
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("MissingRecordIsNotFoundForDoctor", func(t *testing.T) {
		uc := newUsecaseForTest(seeded(), &stubUserRepository{usersByEmail: map[string]*models.User{}})
		_, err := uc.GetPatientByID(ctx, doctorActor(), "missing")
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestPatientUsecaseDeletePatient(t *testing.T) {
	ctx := context.Background()

	seeded := func() *stubPatientRepository {
		return &stubPatientRepository{patients: map[string]*models.Patient{
			"p1": {ID: "p1", FirstName: "Jane"},
		}}
	}

	t.Run("AdminAllowed", func(t *testing.T) {
		patientRepo := seeded()
		uc := newUsecaseForTest(patientRepo, &stubUserRepository{usersByEmail: map[string]*models.User{}})
		err := uc.DeletePatient(ctx, adminActor(), "p1")
		assert.NoError(t, err)
		assert.Equal(t, []string{"p1"}, patientRepo.deleted)
	})

	t.Run("DoctorDenied", func(t *testing.T) {
		patientRepo := seeded()
		uc := newUsecaseForTest(patientRepo, &stubUserRepository{usersByEmail: map[string]*models.User{}})
		err := uc.DeletePatient(ctx, doctorActor(), "p1")
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Empty(t, patientRepo.deleted)
	})

	t.Run("InactiveAdminDenied", func(t *testing.T) {
		actor := adminActor()
		actor.Active = false
		uc := newUsecaseForTest(seeded(), &stubUserRepository{usersByEmail: map[string]*models.User{}})
		err := uc.DeletePatient(ctx, actor, "p1")
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}
