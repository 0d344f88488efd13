package routers

import (
	"github.com/go-chi/chi/v5"

	"healthrecords-service/internal/app/delivery/http/middlewares"
	"healthrecords-service/internal/app/services/core/patients"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.With(middlewares.Authenticate).Post("/", patientController.CreatePatient)
	router.With(middlewares.Authenticate).Get("/", patientController.GetAllPatients)
	router.With(middlewares.Authenticate).Get("/{patientID}", patientController.GetPatientByID)
	router.With(middlewares.Authenticate).Put("/{patientID}", patientController.UpdatePatient)
	router.With(middlewares.Authenticate).Delete("/{patientID}", patientController.DeletePatient)
}
