package cart

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/tamonkoch/drink-shop-backend/internal/session"
)

func makeAppWithCartHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(session.Middleware())
	h.RegisterRoutes(app)
	return app
}

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

func TestCartRoutes_Basic(t *testing.T) {
	handler := NewHandler(NewService(NewInMemoryRepository()))
	app := makeAppWithCartHandler(handler)

	// ensure routes registered
	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Path] = true
		}
	}
	if !routes["/api/v1/cart"] {
		t.Fatalf("expected route '/api/v1/cart' to be registered")
	}
	if !routes["/api/v1/cart/items"] {
		t.Fatalf("expected route '/api/v1/cart/items' to be registered")
	}

	// empty cart reads as zero totals
	code, body := doJSON(app, "GET", "/api/v1/cart", "")
	if code != fiber.StatusOK {
		t.Fatalf("expected 200 for GET, got %d", code)
	}
	if !strings.Contains(body, `"totalItems":0`) {
		t.Fatalf("expected empty cart, got %s", body)
	}

	// add a product with explicit quantity=2
	code, body = doJSON(app, "POST", "/api/v1/cart/items", `{"id":3,"name":"Top Pamplemousse 60cl","price":"0.50","quantity":2}`)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200 for add, got %d (%s)", code, body)
	}
	if !strings.Contains(body, `"quantity":2`) {
		t.Fatalf("expected quantity 2, got %s", body)
	}

	// add same product again, should merge into one line
	code, body = doJSON(app, "POST", "/api/v1/cart/items", `{"id":3,"price":"0.50","quantity":1}`)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200 for second add, got %d", code)
	}
	if !strings.Contains(body, `"quantity":3`) || strings.Count(body, `"id":3`) != 1 {
		t.Fatalf("expected one merged line with quantity 3, got %s", body)
	}

	// quantity below one is silently rejected
	code, body = doJSON(app, "PATCH", "/api/v1/cart/items", `{"id":3,"quantity":0}`)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200 for patch, got %d", code)
	}
	if !strings.Contains(body, `"quantity":3`) {
		t.Fatalf("expected quantity to stay 3 after update to 0, got %s", body)
	}

	// valid quantity update
	code, body = doJSON(app, "PATCH", "/api/v1/cart/items", `{"id":3,"quantity":1}`)
	if code != fiber.StatusOK || !strings.Contains(body, `"quantity":1`) {
		t.Fatalf("expected quantity 1 after patch, got %d %s", code, body)
	}

	// remove the line
	code, body = doJSON(app, "DELETE", "/api/v1/cart/items", `{"id":3}`)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200 for remove, got %d", code)
	}
	if strings.Contains(body, `"id":3`) {
		t.Fatalf("expected product 3 removed, got %s", body)
	}

	// clear the cart via DELETE endpoint
	r := httptest.NewRequest("DELETE", "/api/v1/cart", nil)
	r.Header.Set("Cookie", session.CookieName+"=test-visitor")
	res, _ := app.Test(r)
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for clear cart, got %d", res.StatusCode)
	}

	// invalid payloads are rejected
	code, _ = doJSON(app, "POST", "/api/v1/cart/items", `{"id":0}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for invalid id, got %d", code)
	}
}
