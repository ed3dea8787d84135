package catalog

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeApp(t *testing.T) *fiber.App {
	t.Helper()
	repo, err := NewInMemoryRepository(SeedProducts(), SeedCategories)
	if err != nil {
		t.Fatalf("seed catalog should load: %v", err)
	}
	app := fiber.New()
	NewHandler(NewService(repo)).RegisterPublicRoutes(app)
	return app
}

func TestCatalogRoutes(t *testing.T) {
	app := makeApp(t)

	req := httptest.NewRequest("GET", "/api/v1/products/tangui-mineral-water-1l", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for known slug, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"slug":"tangui-mineral-water-1l"`) {
		t.Fatalf("response missing product slug: %s", string(b))
	}

	// unknown slug is a standard not-found, never a crash
	req2 := httptest.NewRequest("GET", "/api/v1/products/unknown-drink", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown slug, got %d", res2.StatusCode)
	}

	req3 := httptest.NewRequest("GET", "/api/v1/categories", nil)
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for categories, got %d", res3.StatusCode)
	}
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), `"slug":"soft-drinks"`) {
		t.Fatalf("response missing categories: %s", string(b3))
	}
}
