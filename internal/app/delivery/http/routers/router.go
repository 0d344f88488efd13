package routers

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"healthrecords-service/internal/app/config"
	"healthrecords-service/internal/app/delivery/http/middlewares"
	"healthrecords-service/internal/app/services/core/appointments"
	"healthrecords-service/internal/app/services/core/auth"
	"healthrecords-service/internal/app/services/core/doctors"
	"healthrecords-service/internal/app/services/core/medicalrecords"
	"healthrecords-service/internal/app/services/core/medicines"
	"healthrecords-service/internal/app/services/core/patients"
	"healthrecords-service/internal/app/services/core/prescriptions"
	"healthrecords-service/internal/app/services/core/roles"
	"healthrecords-service/internal/app/services/core/users"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	patientController *patients.PatientController,
	doctorController *doctors.DoctorController,
	appointmentController *appointments.AppointmentController,
	medicalRecordController *medicalrecords.MedicalRecordController,
	prescriptionController *prescriptions.PrescriptionController,
	medicineController *medicines.MedicineController,
	roleController *roles.RoleController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-Session-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimitWindow := time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, rateLimitWindow))

	router.Use(middlewares.BodyLimit)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestLogger)
	router.Use(middlewares.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, middlewares, userController)
		})

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, patientController)
		})

		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, middlewares, doctorController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})

		r.Route("/medical-records", func(r chi.Router) {
			attachMedicalRecordRoutes(r, middlewares, medicalRecordController)
		})

		r.Route("/prescriptions", func(r chi.Router) {
			attachPrescriptionRoutes(r, middlewares, prescriptionController)
		})

		r.Route("/medicines", func(r chi.Router) {
			attachMedicineRoutes(r, middlewares, medicineController)
		})

		r.Route("/roles", func(r chi.Router) {
			attachRoleRoutes(r, middlewares, roleController)
		})
	})
}
