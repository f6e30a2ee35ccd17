package rest

import (
	"github.com/gofiber/fiber/v2"

	domainClient "github.com/kinesia-app/kinesia/domains/client"
	"github.com/kinesia-app/kinesia/pkg/utils"
	"github.com/kinesia-app/kinesia/ui/rest/middleware"
)

type Client struct {
	Service domainClient.IClientUsecase
}

func InitRestClient(app fiber.Router, service domainClient.IClientUsecase) Client {
	rest := Client{Service: service}
	app.Get("/clients", rest.List)
	app.Post("/clients", rest.Create)
	app.Get("/clients/:id", rest.GetByID)
	app.Put("/clients/:id", rest.Update)
	app.Delete("/clients/:id", rest.Delete)

	return rest
}

func (handler *Client) Create(c *fiber.Ctx) error {
	var request domainClient.CreateClientRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
	}

	created, err := handler.Service.Create(c.UserContext(), middleware.OwnerID(c), request)
	if err == domainClient.ErrDuplicateClient {
		return c.Status(409).JSON(utils.ResponseData{
			Status:  409,
			Code:    "DUPLICATE",
			Message: err.Error(),
		})
	}
	utils.PanicIfNeeded(err)

	return c.Status(201).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Client created",
		Results: created,
	})
}

func (handler *Client) List(c *fiber.Ctx) error {
	clients, err := handler.Service.List(c.UserContext(), middleware.OwnerID(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Clients retrieved",
		Results: clients,
	})
}

func (handler *Client) GetByID(c *fiber.Ctx) error {
	found, err := handler.Service.GetByID(c.UserContext(), middleware.OwnerID(c), c.Params("id"))
	if err == domainClient.ErrClientNotFound {
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
		Message: "Client retrieved",
		Results: found,
	})
}

func (handler *Client) Update(c *fiber.Ctx) error {
	var request domainClient.UpdateClientRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
	}

	updated, err := handler.Service.Update(c.UserContext(), middleware.OwnerID(c), c.Params("id"), request)
	if err == domainClient.ErrClientNotFound {
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
		Message: "Client updated",
		Results: updated,
	})
}

func (handler *Client) Delete(c *fiber.Ctx) error {
	err := handler.Service.Delete(c.UserContext(), middleware.OwnerID(c), c.Params("id"))
	if err == domainClient.ErrClientNotFound {
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
		Message: "Client deleted",
	})
}
