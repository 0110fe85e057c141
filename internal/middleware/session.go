package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	sessionContextKey = "sessionID"

	// SessionHeader lets API clients carry their session id outside of
	// cookies. It wins over the cookie when both are present.
	SessionHeader = "X-Session-ID"

	// SessionCookie is the browser-facing session cookie. Carts are
	// kept for 30 days; the guest endpoint issues a shorter cookie.
	SessionCookie = "sessionId"

	SessionTTL      = 30 * 24 * time.Hour
	GuestSessionTTL = 24 * time.Hour
)

// Session resolves the request's session identifier from the header or
// cookie, minting a fresh UUID and setting the cookie when neither is
// present. The id is opaque and not an authentication credential.
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Get(SessionHeader)
		if sessionID == "" {
			sessionID = c.Cookies(SessionCookie)
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			SetSessionCookie(c, sessionID, SessionTTL)
		}

		c.Locals(sessionContextKey, sessionID)
		return c.Next()
	}
}

// SessionID extracts the resolved session id from context.
func SessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(sessionContextKey).(string); ok {
		return id
	}
	return ""
}

// SetSessionCookie writes the session cookie with the given lifetime.
func SetSessionCookie(c *fiber.Ctx, sessionID string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    sessionID,
		HTTPOnly: true,
		Expires:  time.Now().Add(ttl),
	})
}
