package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kinesia-app/kinesia/notionbridge"
	"github.com/kinesia-app/kinesia/pkg/security"
	"github.com/kinesia-app/kinesia/pkg/utils"
)

// Auth validates the bearer token and attaches the practitioner session to
// the request context. Downstream code reads it via notionbridge.SessionFrom.
func Auth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			return c.Status(401).JSON(utils.ResponseData{
				Status:  401,
				Code:    "AUTHENTICATION_REQUIRED",
				Message: "missing bearer token",
			})
		}

		claims, err := security.ValidateToken(token)
		if err != nil {
			return c.Status(401).JSON(utils.ResponseData{
				Status:  401,
				Code:    "AUTHENTICATION_REQUIRED",
				Message: "invalid or expired token",
			})
		}

		session := &notionbridge.Session{
			OwnerID:          claims.PractitionerID,
			PractitionerName: claims.PractitionerName,
		}
		c.SetUserContext(notionbridge.WithSession(c.UserContext(), session))
		return c.Next()
	}
}

// OwnerID returns the authenticated owner for the request.
func OwnerID(c *fiber.Ctx) string {
	if s := notionbridge.SessionFrom(c.UserContext()); s != nil {
		return s.OwnerID
	}
	return ""
}
