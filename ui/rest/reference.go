package rest

import (
	"github.com/gofiber/fiber/v2"

	domainReference "github.com/kinesia-app/kinesia/domains/reference"
	"github.com/kinesia-app/kinesia/pkg/utils"
)

type Reference struct {
	Service domainReference.IReferenceUsecase
}

func InitRestReference(app fiber.Router, service domainReference.IReferenceUsecase) Reference {
	rest := Reference{Service: service}
	app.Get("/reference", rest.GetAll)
	app.Post("/reference/refresh", rest.Refresh)

	return rest
}

func (handler *Reference) GetAll(c *fiber.Ctx) error {
	set, err := handler.Service.GetAll(c.UserContext())
	return handler.respond(c, set, err)
}

func (handler *Reference) Refresh(c *fiber.Ctx) error {
	set, err := handler.Service.Refresh(c.UserContext())
	return handler.respond(c, set, err)
}

// respond renders the snapshot plus its gating flags. Needs-config is a
// setup prompt rather than an error, so it still comes back as 200.
func (handler *Reference) respond(c *fiber.Ctx, set domainReference.DataSet, err error) error {
	if handler.Service.NeedsConfig() {
		return c.JSON(utils.ResponseData{
			Status:  200,
			Code:    "NOTION_CONFIG_NOT_FOUND",
			Message: "Notion workspace is not configured yet",
			Results: map[string]any{"needs_config": true},
		})
	}
	if err != nil {
		return c.Status(502).JSON(utils.ResponseData{
			Status:  502,
			Code:    "REMOTE_ERROR",
			Message: err.Error(),
		})
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Reference data retrieved",
		Results: map[string]any{
			"data":      set,
			"is_cached": handler.Service.IsCached(),
		},
	})
}
