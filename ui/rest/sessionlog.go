package rest

import (
	"github.com/gofiber/fiber/v2"

	domainSessionLog "github.com/kinesia-app/kinesia/domains/sessionlog"
	"github.com/kinesia-app/kinesia/pkg/utils"
	"github.com/kinesia-app/kinesia/ui/rest/middleware"
)

type SessionLog struct {
	Service domainSessionLog.ISessionLogUsecase
}

func InitRestSessionLog(app fiber.Router, service domainSessionLog.ISessionLogUsecase) SessionLog {
	rest := SessionLog{Service: service}
	app.Get("/appointments/:id/logs", rest.ListByAppointment)
	app.Post("/session-logs", rest.Create)
	app.Put("/session-logs/:id", rest.Update)
	app.Delete("/session-logs/:id", rest.Delete)

	return rest
}

func (handler *SessionLog) Create(c *fiber.Ctx) error {
	var request domainSessionLog.CreateLogRequest
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
		Message: "Session log created",
		Results: created,
	})
}

func (handler *SessionLog) ListByAppointment(c *fiber.Ctx) error {
	logs, err := handler.Service.ListByAppointment(c.UserContext(), middleware.OwnerID(c), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Session logs retrieved",
		Results: logs,
	})
}

func (handler *SessionLog) Update(c *fiber.Ctx) error {
	var request domainSessionLog.UpdateLogRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
	}

	updated, err := handler.Service.Update(c.UserContext(), middleware.OwnerID(c), c.Params("id"), request)
	if err == domainSessionLog.ErrLogNotFound {
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
		Message: "Session log updated",
		Results: updated,
	})
}

func (handler *SessionLog) Delete(c *fiber.Ctx) error {
	err := handler.Service.Delete(c.UserContext(), middleware.OwnerID(c), c.Params("id"))
	if err == domainSessionLog.ErrLogNotFound {
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
		Message: "Session log deleted",
	})
}
