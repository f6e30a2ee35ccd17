package rest

import (
	"github.com/gofiber/fiber/v2"

	domainSync "github.com/kinesia-app/kinesia/domains/sync"
	"github.com/kinesia-app/kinesia/pkg/utils"
)

type Sync struct {
	Service domainSync.ISyncUsecase
}

func InitRestSync(app fiber.Router, service domainSync.ISyncUsecase) Sync {
	rest := Sync{Service: service}
	app.Get("/sync/status", rest.GetStatus)
	app.Post("/sync/check", rest.Check)
	app.Post("/sync/trigger", rest.Trigger)

	return rest
}

func (handler *Sync) GetStatus(c *fiber.Ctx) error {
	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Sync status retrieved",
		Results: handler.Service.Status(),
	})
}

// Check runs the mount-time probe: resync only if reference keys are missing.
func (handler *Sync) Check(c *fiber.Ctx) error {
	status := handler.Service.Start(c.UserContext())
	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Sync check finished",
		Results: status,
	})
}

// Trigger forces a resync. A trigger while one is in flight is dropped and
// the current status is returned unchanged.
func (handler *Sync) Trigger(c *fiber.Ctx) error {
	status := handler.Service.HandleSync(c.UserContext())
	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Sync triggered",
		Results: status,
	})
}
