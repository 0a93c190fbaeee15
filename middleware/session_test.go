package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zaptest"

	"nskk-web/controller"
	"nskk-web/session"
)

func TestSessionCreatesThenReuses(t *testing.T) {
	store := session.NewStore(controller.NewApp(nil, zaptest.NewLogger(t), time.Second))
	app := fiber.New()
	app.Use(Session(store, time.Hour))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(Page(c).ID)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookie {
			cookie = c
		}
	}
	if cookie == nil || !cookie.HttpOnly {
		t.Fatal("no HttpOnly session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	if _, err := app.Test(req); err != nil {
		t.Fatal(err)
	}
	if store.Len() != 1 {
		t.Fatalf("store has %d sessions, want 1", store.Len())
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "expired"})
	if _, err := app.Test(req); err != nil {
		t.Fatal(err)
	}
	if store.Len() != 2 {
		t.Fatalf("unknown cookie did not start a new session, have %d", store.Len())
	}
}

func TestResumeNeverCreates(t *testing.T) {
	store := session.NewStore(controller.NewApp(nil, zaptest.NewLogger(t), time.Second))
	app := fiber.New()
	app.Post("/menu/toggle", Resume(store, time.Hour), func(c *fiber.Ctx) error {
		return c.SendString(Page(c).ID)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/menu/toggle", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized || resp.Header.Get("HX-Refresh") != "true" {
		t.Fatalf("status = %d, refresh = %q", resp.StatusCode, resp.Header.Get("HX-Refresh"))
	}
	if store.Len() != 0 {
		t.Fatalf("fragment request created %d sessions", store.Len())
	}

	p := store.Create()
	req := httptest.NewRequest(http.MethodPost, "/menu/toggle", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: p.ID})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("live session rejected with %d", resp.StatusCode)
	}
}
