package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"nskk-web/session"
)

const (
	SessionCookie = "nskk_session"
	localsPage    = "page"
)

func attach(c *fiber.Ctx, p *session.Page, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    p.ID,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(ttl),
	})
	c.Locals(localsPage, p)
}

// Session attaches the visitor's page state, creating it on first visit
// or after the previous one was swept. Only full page routes use it.
func Session(store *session.Store, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := store.Get(c.Cookies(SessionCookie))
		if !ok {
			p = store.Create()
		}
		attach(c, p, ttl)
		return c.Next()
	}
}

// Resume attaches an existing page state and never creates one. Without a
// live session htmx is told to reload, which goes through Session.
func Resume(store *session.Store, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := store.Get(c.Cookies(SessionCookie))
		if !ok {
			c.Set("HX-Refresh", "true")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Session expired"})
		}
		attach(c, p, ttl)
		return c.Next()
	}
}

// Page returns the session page set by Session or Resume.
func Page(c *fiber.Ctx) *session.Page {
	p, _ := c.Locals(localsPage).(*session.Page)
	return p
}
