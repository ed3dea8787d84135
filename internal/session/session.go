package session

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CookieName identifies the anonymous visitor session.
const CookieName = "drink_session"

const localsKey = "sessionID"

// ErrNoSession means a handler ran outside the session middleware. That is
// a wiring bug, not a user condition, so callers should fail loudly.
var ErrNoSession = errors.New("no session in context")

// Middleware ensures every request carries a session id, issuing a new
// uuid cookie for first-time visitors.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(CookieName)
		if sid == "" {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     CookieName,
				Value:    sid,
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}
		c.Locals(localsKey, sid)
		return c.Next()
	}
}

// GetSessionIDFromCtx returns the session id stored by Middleware.
func GetSessionIDFromCtx(c *fiber.Ctx) (string, error) {
	sid, ok := c.Locals(localsKey).(string)
	if !ok || sid == "" {
		return "", ErrNoSession
	}
	return sid, nil
}
