package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/electromart/internal/utils"
)

const userContextKey = "currentUserID"

// Auth validates JWT bearer tokens and loads the authenticated user ID
// into context.
func Auth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		userID, err := utils.ParseToken(jwtSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(userContextKey, userID)
		return c.Next()
	}
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *fiber.Ctx) (int, bool) {
	if id, ok := c.Locals(userContextKey).(int); ok {
		return id, true
	}
	return 0, false
}
