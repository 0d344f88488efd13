package prescriptions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"healthrecords-service/internal/app/models"
	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/dto/requests"
	"healthrecords-service/internal/pkg/exceptions"
)

type stubPrescriptionRepository struct {
	prescriptions map[string]*models.Prescription
}

func (s *stubPrescriptionRepository) CreatePrescription(_ context.Context, prescription *models.Prescription) (string, error) {
	s.prescriptions[prescription.ID] = prescription
	return prescription.ID, nil
}

func (s *stubPrescriptionRepository) FindAll(_ context.Context) ([]models.Prescription, error) {
	all := make([]models.Prescription, 0, len(s.prescriptions))
	for _, prescription := range s.prescriptions {
		all = append(all, *prescription)
	}
	return all, nil
}

func (s *stubPrescriptionRepository) FindByID(_ context.Context, prescriptionID string) (*models.Prescription, error) {
	return s.prescriptions[prescriptionID], nil
}

func (s *stubPrescriptionRepository) FindByPatientID(_ context.Context, patientID string) ([]models.Prescription, error) {
	matching := make([]models.Prescription, 0)
	for _, prescription := range s.prescriptions {
		if prescription.PatientID == patientID {
			matching = append(matching, *prescription)
		}
	}
	return matching, nil
}

func (s *stubPrescriptionRepository) UpdatePrescription(_ context.Context, prescription *models.Prescription) error {
	s.prescriptions[prescription.ID] = prescription
	return nil
}

type stubPatientRepository struct {
	patients map[string]*models.Patient
}

func (s *stubPatientRepository) CreatePatient(_ context.Context, patient *models.Patient) (string, error) {
	s.patients[patient.ID] = patient
	return patient.ID, nil
}

func (s *stubPatientRepository) FindAll(_ context.Context) ([]models.Patient, error) {
	return nil, nil
}

func (s *stubPatientRepository) FindByID(_ context.Context, patientID string) (*models.Patient, error) {
	return s.patients[patientID], nil
}

func (s *stubPatientRepository) FindByUserID(_ context.Context, _ string) (*models.Patient, error) {
	return nil, nil
}

func (s *stubPatientRepository) UpdatePatient(_ context.Context, patient *models.Patient) error {
	s.patients[patient.ID] = patient
	return nil
}

func (s *stubPatientRepository) DeleteByID(_ context.Context, patientID string) error {
	delete(s.patients, patientID)
	return nil
}

type stubMedicineRepository struct {
	medicines map[string]*models.Medicine
}

func (s *stubMedicineRepository) CreateMedicine(_ context.Context, medicine *models.Medicine) (string, error) {
	s.medicines[medicine.Name] = medicine
	return medicine.ID, nil
}

func (s *stubMedicineRepository) FindAll(_ context.Context) ([]models.Medicine, error) {
	return nil, nil
}

func (s *stubMedicineRepository) FindByID(_ context.Context, _ string) (*models.Medicine, error) {
	return nil, nil
}

func (s *stubMedicineRepository) FindByName(_ context.Context, name string) (*models.Medicine, error) {
	return s.medicines[name], nil
}

func (s *stubMedicineRepository) UpdateMedicine(_ context.Context, _ *models.Medicine) error {
	return nil
}

func (s *stubMedicineRepository) DeleteByID(_ context.Context, _ string) error {
	return nil
}

func newUsecaseForTest(prescriptionRepo *stubPrescriptionRepository) *prescriptionUsecase {
	return &prescriptionUsecase{
		PrescriptionRepository: prescriptionRepo,
		PatientRepository: &stubPatientRepository{patients: map[string]*models.Patient{
			"p1": {ID: "p1", FirstName: "Jane"},
			"p2": {ID: "p2", FirstName: "John"},
		}},
		MedicineRepository: &stubMedicineRepository{medicines: map[string]*models.Medicine{
			"Amoxicillin": {ID: "m1", Name: "Amoxicillin"},
		}},
		Engine: authz.NewEngine(authz.NewDefaultRegistry()),
		Log:    zap.NewNop(),
	}
}

func doctorActor() *authz.Actor {
	return &authz.Actor{UserID: "user-doc", RoleName: constvars.RoleDoctor, Active: true, DoctorID: "d1"}
}

func patientActor(patientID string) *authz.Actor {
	return &authz.Actor{UserID: "user-pat", RoleName: constvars.RolePatient, Active: true, PatientID: patientID}
}

func prescriptionRequest() *requests.CreatePrescription {
	return &requests.CreatePrescription{
		PatientID:    "p1",
		DoctorID:     "d1",
		MedicineName: "Amoxicillin",
		Dosage:       "500mg",
		Frequency:    "3x daily",
		StartDate:    time.Now(),
	}
}

func TestPrescriptionUsecaseCreatePrescription(t *testing.T) {
	ctx := context.Background()

	t.Run("DoctorPrescribesCatalogMedicine", func(t *testing.T) {
		prescriptionRepo := &stubPrescriptionRepository{prescriptions: map[string]*models.Prescription{}}
		uc := newUsecaseForTest(prescriptionRepo)

		response, err := uc.CreatePrescription(ctx, doctorActor(), prescriptionRequest())
		assert.NoError(t, err)
		assert.NotEmpty(t, response.ID)
		assert.Len(t, prescriptionRepo.prescriptions, 1)
	})

	t.Run("PatientDenied", func(t *testing.T) {
		uc := newUsecaseForTest(&stubPrescriptionRepository{prescriptions: map[string]*models.Prescription{}})

		_, err := uc.CreatePrescription(ctx, patientActor("p1"), prescriptionRequest())
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("UnknownMedicineRejected", func(t *testing.T) {
		uc := newUsecaseForTest(&stubPrescriptionRepository{prescriptions: map[string]*models.Prescription{}})

		request := prescriptionRequest()
		request.MedicineName = "Unlisted"
		_, err := uc.CreatePrescription(ctx, doctorActor(), request)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("UnknownPatientRejected", func(t *testing.T) {
		uc := newUsecaseForTest(&stubPrescriptionRepository{prescriptions: map[string]*models.Prescription{}})

		request := prescriptionRequest()
		request.PatientID = "missing"
		_, err := uc.CreatePrescription(ctx, doctorActor(), request)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestPrescriptionUsecaseGetPrescriptions(t *testing.T) {
	ctx := context.Background()

	seeded := func() *stubPrescriptionRepository {
		return &stubPrescriptionRepository{prescriptions: map[string]*models.Prescription{
			"rx1": {ID: "rx1", PatientID: "p1", DoctorID: "d1", MedicineName: "Amoxicillin"},
			"rx2": {ID: "rx2", PatientID: "p2", DoctorID: "d1", MedicineName: "Amoxicillin"},
		}}
	}

	t.Run("PatientSeesOnlyOwn", func(t *testing.T) {
		uc := newUsecaseForTest(seeded())
		all, err := uc.GetPrescriptions(ctx, patientActor("p1"))
		assert.NoError(t, err)
		assert.Len(t, all, 1)
		assert.Equal(t, "p1", all[0].PatientID)
	})

	t.Run("DoctorSeesAll", func(t *testing.T) {
		uc := newUsecaseForTest(seeded())
		all, err := uc.GetPrescriptions(ctx, doctorActor())
		assert.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("PatientReadsOwnByID", func(t *testing.T) {
		uc := newUsecaseForTest(seeded())
		response, err := uc.GetPrescriptionByID(ctx, patientActor("p1"), "rx1")
		assert.NoError(t, err)
		assert.Equal(t, "rx1", response.ID)
	})

	t.Run("PatientCannotReadAnotherPatients", func(t *testing.T) {
		uc := newUsecaseForTest(seeded())
		_, err := uc.GetPrescriptionByID(ctx, patientActor("p1"), "rx2")
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestPrescriptionUsecaseUpdatePrescription(t *testing.T) {
	ctx := context.Background()

	seeded := func() *stubPrescriptionRepository {
		return &stubPrescriptionRepository{prescriptions: map[string]*models.Prescription{
			"rx1": {ID: "rx1", PatientID: "p1", DoctorID: "d1", MedicineName: "Amoxicillin", Dosage: "500mg"},
		}}
	}

	t.Run("DoctorAdjustsDosage", func(t *testing.T) {
		uc := newUsecaseForTest(seeded())
		response, err := uc.UpdatePrescription(ctx, doctorActor(), "rx1", &requests.UpdatePrescription{Dosage: "250mg"})
		assert.NoError(t, err)
		assert.Equal(t, "250mg", response.Dosage)
	})

	t.Run("PatientCannotEdit", func(t *testing.T) {
		uc := newUsecaseForTest(seeded())
		_, err := uc.UpdatePrescription(ctx, patientActor("p1"), "rx1", &requests.UpdatePrescription{Dosage: "250mg"})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}
