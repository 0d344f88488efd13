package routers

import (
	"github.com/go-chi/chi/v5"

	"healthrecords-service/internal/app/delivery/http/middlewares"
	"healthrecords-service/internal/app/services/core/doctors"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	router.With(middlewares.Authenticate).Post("/", doctorController.CreateDoctor)
	router.With(middlewares.Authenticate).Get("/", doctorController.GetAllDoctors)
	router.With(middlewares.Authenticate).Get("/{doctorID}", doctorController.GetDoctorByID)
	router.With(middlewares.Authenticate).Put("/{doctorID}", doctorController.UpdateDoctor)
	router.With(middlewares.Authenticate).Delete("/{doctorID}", doctorController.DeleteDoctor)
}
