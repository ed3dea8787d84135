package locale

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/tamonkoch/drink-shop-backend/internal/session"
)

func TestT_FallsBackToKey(t *testing.T) {
	if got := T(LangFR, "cart.added"); got != "Ajouté au panier" {
		t.Fatalf("unexpected translation: %q", got)
	}
	// unmapped keys degrade to the key itself, never an error
	if got := T(LangEN, "no.such.key"); got != "no.such.key" {
		t.Fatalf("expected key fallback, got %q", got)
	}
	if got := T("de", "cart.added"); got != "cart.added" {
		t.Fatalf("expected key fallback for unknown language, got %q", got)
	}
}

func TestService_LanguagePersistence(t *testing.T) {
	svc := NewService()
	if svc.Language("s1") != DefaultLanguage {
		t.Fatalf("expected default language for fresh session")
	}
	if err := svc.SetLanguage("s1", LangFR); err != nil {
		t.Fatalf("expected fr to be accepted: %v", err)
	}
	if svc.Language("s1") != LangFR {
		t.Fatalf("expected fr to persist")
	}
	if svc.Language("s2") != DefaultLanguage {
		t.Fatalf("language must be per session")
	}
	if err := svc.SetLanguage("s1", "xx"); err != ErrUnsupportedLanguage {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
}

func TestLocaleRoutes(t *testing.T) {
	app := fiber.New()
	app.Use(session.Middleware())
	NewHandler(NewService()).RegisterRoutes(app)

	do := func(method, path, body string) (int, string) {
		r := httptest.NewRequest(method, path, strings.NewReader(body))
		if body != "" {
			r.Header.Set("Content-Type", "application/json")
		}
		r.Header.Set("Cookie", session.CookieName+"=test-visitor")
		res, _ := app.Test(r)
		b, _ := io.ReadAll(res.Body)
		return res.StatusCode, string(b)
	}

	code, body := do("GET", "/api/v1/locale", "")
	if code != fiber.StatusOK || !strings.Contains(body, `"language":"en"`) {
		t.Fatalf("expected default en, got %d %s", code, body)
	}

	code, _ = do("PUT", "/api/v1/locale", `{"language":"fr"}`)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200 setting fr, got %d", code)
	}

	code, body = do("GET", "/api/v1/locale/t/cart.added", "")
	if code != fiber.StatusOK || !strings.Contains(body, "Ajouté au panier") {
		t.Fatalf("expected french translation, got %d %s", code, body)
	}

	code, _ = do("PUT", "/api/v1/locale", `{"language":"xx"}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported language, got %d", code)
	}
}
