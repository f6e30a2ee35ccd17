package rest

import (
	"github.com/gofiber/fiber/v2"

	domainCache "github.com/kinesia-app/kinesia/domains/cache"
	"github.com/kinesia-app/kinesia/pkg/utils"
	"github.com/kinesia-app/kinesia/ui/rest/middleware"
)

type Cache struct {
	Service domainCache.ICacheUsecase
}

func InitRestCache(app fiber.Router, service domainCache.ICacheUsecase) Cache {
	rest := Cache{Service: service}
	app.Get("/cache/stats", rest.GetStats)
	app.Get("/cache/entries", rest.ListEntries)
	app.Delete("/cache/key", rest.DeleteKey)
	app.Delete("/cache/prefix", rest.DeleteByPrefix)
	app.Post("/cache/clear", rest.ClearOwner)

	return rest
}

func (handler *Cache) GetStats(c *fiber.Ctx) error {
	stats, err := handler.Service.GetStats(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Cache stats retrieved",
		Results: stats,
	})
}

func (handler *Cache) ListEntries(c *fiber.Ctx) error {
	entries, err := handler.Service.ListEntries(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Cache entries retrieved",
		Results: entries,
	})
}

// DeleteKey removes one entry. Keys contain colons, so the key travels as a
// query parameter instead of a path segment.
func (handler *Cache) DeleteKey(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: "key query parameter is required",
		})
	}

	err := handler.Service.DeleteKey(c.UserContext(), key)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Cache key deleted",
	})
}

func (handler *Cache) DeleteByPrefix(c *fiber.Ctx) error {
	prefix := c.Query("prefix")
	if prefix == "" {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: "prefix query parameter is required",
		})
	}

	err := handler.Service.DeleteByPrefix(c.UserContext(), prefix)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Cache prefix deleted",
	})
}

// ClearOwner drops every cache entry belonging to the authenticated owner.
func (handler *Cache) ClearOwner(c *fiber.Ctx) error {
	err := handler.Service.ClearOwner(c.UserContext(), middleware.OwnerID(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Owner cache cleared",
	})
}
