package routers

import (
	"github.com/go-chi/chi/v5"

	"healthrecords-service/internal/app/delivery/http/middlewares"
	"healthrecords-service/internal/app/services/core/medicines"
)

func attachMedicineRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicineController *medicines.MedicineController) {
	router.With(middlewares.Authenticate).Post("/", medicineController.CreateMedicine)
	router.With(middlewares.Authenticate).Get("/", medicineController.GetMedicines)
	router.With(middlewares.Authenticate).Get("/{medicineID}", medicineController.GetMedicineByID)
	router.With(middlewares.Authenticate).Put("/{medicineID}", medicineController.UpdateMedicine)
	router.With(middlewares.Authenticate).Delete("/{medicineID}", medicineController.DeleteMedicine)
}
