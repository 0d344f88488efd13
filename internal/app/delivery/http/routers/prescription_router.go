package routers

import (
	"github.com/go-chi/chi/v5"

	"healthrecords-service/internal/app/delivery/http/middlewares"
	"healthrecords-service/internal/app/services/core/prescriptions"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, prescriptionController *prescriptions.PrescriptionController) {
	router.With(middlewares.Authenticate).Post("/", prescriptionController.CreatePrescription)
	router.With(middlewares.Authenticate).Get("/", prescriptionController.GetPrescriptions)
	router.With(middlewares.Authenticate).Get("/{prescriptionID}", prescriptionController.GetPrescriptionByID)
	router.With(middlewares.Authenticate).Put("/{prescriptionID}", prescriptionController.UpdatePrescription)
}
