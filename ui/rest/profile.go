package rest

import (
	"github.com/gofiber/fiber/v2"

	domainProfile "github.com/kinesia-app/kinesia/domains/profile"
	"github.com/kinesia-app/kinesia/pkg/utils"
	"github.com/kinesia-app/kinesia/ui/rest/middleware"
)

type Profile struct {
	Service domainProfile.IProfileUsecase
}

// InitRestAuth mounts the unauthenticated register and login routes.
func InitRestAuth(app fiber.Router, service domainProfile.IProfileUsecase) Profile {
	rest := Profile{Service: service}
	app.Post("/auth/register", rest.Register)
	app.Post("/auth/login", rest.Login)

	return rest
}

// InitRestProfile mounts the authenticated profile routes.
func InitRestProfile(app fiber.Router, service domainProfile.IProfileUsecase) Profile {
	rest := Profile{Service: service}
	app.Get("/profile", rest.Get)
	app.Put("/profile", rest.Update)

	return rest
}

func (handler *Profile) Register(c *fiber.Ctx) error {
	var request domainProfile.RegisterRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
	}

	created, err := handler.Service.Register(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.Status(201).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Practitioner registered",
		Results: created,
	})
}

func (handler *Profile) Login(c *fiber.Ctx) error {
	var request domainProfile.LoginRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
	}

	token, practitioner, err := handler.Service.Login(c.UserContext(), request)
	if err == domainProfile.ErrInvalidCredentials {
		return c.Status(401).JSON(utils.ResponseData{
			Status:  401,
			Code:    "INVALID_CREDENTIALS",
			Message: err.Error(),
		})
	}
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Login success",
		Results: map[string]any{
			"token":   token,
			"profile": practitioner,
		},
	})
}

func (handler *Profile) Get(c *fiber.Ctx) error {
	practitioner, err := handler.Service.GetByID(c.UserContext(), middleware.OwnerID(c))
	if err == domainProfile.ErrProfileNotFound {
		return c.Status(404).JSON(utils.ResponseData{
			Status:  404,
			Code:    "PROFILE_NOT_FOUND",
			Message: err.Error(),
		})
	}
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Profile retrieved",
		Results: map[string]any{
			"profile":  practitioner,
			"complete": practitioner.Complete(),
		},
	})
}

func (handler *Profile) Update(c *fiber.Ctx) error {
	var request domainProfile.UpdateProfileRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
	}

	updated, err := handler.Service.Update(c.UserContext(), middleware.OwnerID(c), request)
	if err == domainProfile.ErrProfileNotFound {
		return c.Status(404).JSON(utils.ResponseData{
			Status:  404,
			Code:    "PROFILE_NOT_FOUND",
			Message: err.Error(),
		})
	}
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Profile updated",
		Results: updated,
	})
}
