package rest

import (
	"github.com/gofiber/fiber/v2"

	domainAppointment "github.com/kinesia-app/kinesia/domains/appointment"
	"github.com/kinesia-app/kinesia/pkg/utils"
	"github.com/kinesia-app/kinesia/ui/rest/middleware"
)

type Appointment struct {
	Service domainAppointment.IAppointmentUsecase
}

func InitRestAppointment(app fiber.Router, service domainAppointment.IAppointmentUsecase) Appointment {
	rest := Appointment{Service: service}
	app.Get("/appointments", rest.List)
	app.Get("/appointments/today", rest.ListToday)
	app.Post("/appointments", rest.Create)
	app.Get("/appointments/:id", rest.GetByID)
	app.Put("/appointments/:id", rest.Update)
	app.Delete("/appointments/:id", rest.Delete)

	return rest
}

func (handler *Appointment) Create(c *fiber.Ctx) error {
	var request domainAppointment.CreateAppointmentRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
	}

	created, err := handler.Service.Create(c.UserContext(), middleware.OwnerID(c), request)
	utils.PanicIfNeeded(err)

	return c.Status(201).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Appointment created",
		Results: created,
	})
}

func (handler *Appointment) List(c *fiber.Ctx) error {
	appointments, err := handler.Service.List(c.UserContext(), middleware.OwnerID(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Appointments retrieved",
		Results: appointments,
	})
}

func (handler *Appointment) ListToday(c *fiber.Ctx) error {
	appointments, err := handler.Service.ListToday(c.UserContext(), middleware.OwnerID(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Today's appointments retrieved",
		Results: appointments,
	})
}

func (handler *Appointment) GetByID(c *fiber.Ctx) error {
	found, err := handler.Service.GetByID(c.UserContext(), middleware.OwnerID(c), c.Params("id"))
	if err == domainAppointment.ErrAppointmentNotFound {
		return c.Status(404).JSON(utils.ResponseData{
			Status:  404,
			Code:    "NOT_FOUND",
			Message: err.Error(),
		})
	}
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Appointment retrieved",
		Results: found,
	})
}

func (handler *Appointment) Update(c *fiber.Ctx) error {
	var request domainAppointment.UpdateAppointmentRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
	}

	updated, err := handler.Service.Update(c.UserContext(), middleware.OwnerID(c), c.Params("id"), request)
	if err == domainAppointment.ErrAppointmentNotFound {
		return c.Status(404).JSON(utils.ResponseData{
			Status:  404,
			Code:    "NOT_FOUND",
			Message: err.Error(),
		})
	}
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Appointment updated",
		Results: updated,
	})
}

func (handler *Appointment) Delete(c *fiber.Ctx) error {
	err := handler.Service.Delete(c.UserContext(), middleware.OwnerID(c), c.Params("id"))
	if err == domainAppointment.ErrAppointmentNotFound {
		return c.Status(404).JSON(utils.ResponseData{
			Status:  404,
			Code:    "NOT_FOUND",
			Message: err.Error(),
		})
	}
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Appointment deleted",
	})
}
