package routers

import (
	"github.com/go-chi/chi/v5"

	"healthrecords-service/internal/app/delivery/http/middlewares"
	"healthrecords-service/internal/app/services/core/medicalrecords"
)

func attachMedicalRecordRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicalRecordController *medicalrecords.MedicalRecordController) {
	router.With(middlewares.Authenticate).Post("/", medicalRecordController.CreateMedicalRecord)
	router.With(middlewares.Authenticate).Get("/", medicalRecordController.GetMedicalRecords)
	router.With(middlewares.Authenticate).Get("/{recordID}", medicalRecordController.GetMedicalRecordByID)
	router.With(middlewares.Authenticate).Put("/{recordID}", medicalRecordController.UpdateMedicalRecord)
	router.With(middlewares.Authenticate).Post("/{recordID}/attachments", medicalRecordController.AttachMedicalRecordFile)
}
