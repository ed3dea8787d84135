package wishlist

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/tamonkoch/drink-shop-backend/internal/session"
)

func doJSON(app *fiber.App, method, path, body string) (int, string) {
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	r.Header.Set("Cookie", session.CookieName+"=test-visitor")
	res, _ := app.Test(r)
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestWishlistRoutes_Basic(t *testing.T) {
	app := fiber.New()
	app.Use(session.Middleware())
	NewHandler(NewService(NewInMemoryRepository())).RegisterRoutes(app)

	code, body := doJSON(app, "POST", "/api/v1/wishlist", `{"id":9,"name":"Baobab Juice 33cl","price":"1.00","category":"juices"}`)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200 for add, got %d (%s)", code, body)
	}
	if !strings.Contains(body, `"totalItems":1`) {
		t.Fatalf("expected one wishlist entry, got %s", body)
	}

	// duplicate add keeps a single entry
	code, body = doJSON(app, "POST", "/api/v1/wishlist", `{"id":9}`)
	if code != fiber.StatusOK || !strings.Contains(body, `"totalItems":1`) {
		t.Fatalf("expected idempotent add, got %d %s", code, body)
	}

	code, body = doJSON(app, "GET", "/api/v1/wishlist/contains/9", "")
	if code != fiber.StatusOK || !strings.Contains(body, `"inWishlist":true`) {
		t.Fatalf("expected membership true, got %d %s", code, body)
	}

	code, body = doJSON(app, "DELETE", "/api/v1/wishlist", `{"id":9}`)
	if code != fiber.StatusOK || !strings.Contains(body, `"totalItems":0`) {
		t.Fatalf("expected empty wishlist after remove, got %d %s", code, body)
	}

	code, body = doJSON(app, "GET", "/api/v1/wishlist/contains/9", "")
	if code != fiber.StatusOK || !strings.Contains(body, `"inWishlist":false`) {
		t.Fatalf("expected membership false, got %d %s", code, body)
	}

	r := httptest.NewRequest("DELETE", "/api/v1/wishlist/all", nil)
	r.Header.Set("Cookie", session.CookieName+"=test-visitor")
	res, _ := app.Test(r)
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for clear, got %d", res.StatusCode)
	}
}
