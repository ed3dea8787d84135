package session

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestMiddleware_IssuesCookieForNewVisitor(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/", func(c *fiber.Ctx) error {
		sid, err := GetSessionIDFromCtx(c)
		if err != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(sid)
	})

	res, _ := app.Test(httptest.NewRequest("GET", "/", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	setCookie := res.Header.Get("Set-Cookie")
	if !strings.Contains(setCookie, CookieName+"=") {
		t.Fatalf("expected session cookie to be set, got %q", setCookie)
	}
}

func TestMiddleware_ReusesExistingCookie(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/", func(c *fiber.Ctx) error {
		sid, _ := GetSessionIDFromCtx(c)
		return c.SendString(sid)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Cookie", CookieName+"=visitor-1")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if sc := res.Header.Get("Set-Cookie"); strings.Contains(sc, CookieName+"=") {
		t.Fatalf("expected no new cookie for returning visitor, got %q", sc)
	}
}

func TestGetSessionIDFromCtx_FailsLoudlyWithoutMiddleware(t *testing.T) {
	// a handler mounted outside the middleware is a wiring bug, not a
	// user condition
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if _, err := GetSessionIDFromCtx(c); err != ErrNoSession {
			t.Fatalf("expected ErrNoSession, got %v", err)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	})
	res, _ := app.Test(httptest.NewRequest("GET", "/", nil))
	if res.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", res.StatusCode)
	}
}
