package routers

import (
	"github.com/go-chi/chi/v5"

	"healthrecords-service/internal/app/delivery/http/middlewares"
	"healthrecords-service/internal/app/services/core/appointments"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.With(middlewares.Authenticate).Post("/", appointmentController.CreateAppointment)
	router.With(middlewares.Authenticate).Get("/", appointmentController.GetAppointments)
	router.With(middlewares.Authenticate).Get("/{appointmentID}", appointmentController.GetAppointmentByID)
	router.With(middlewares.Authenticate).Put("/{appointmentID}", appointmentController.UpdateAppointment)
	router.With(middlewares.Authenticate).Delete("/{appointmentID}", appointmentController.DeleteAppointment)
}
