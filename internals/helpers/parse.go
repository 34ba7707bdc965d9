package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDParam parses a UUID path parameter.
func ParseUUIDParam(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(param)))
}

// UserIDFromLocals reads the authenticated user id placed by the auth middleware.
func UserIDFromLocals(c *fiber.Ctx) (uuid.UUID, bool) {
	v, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
