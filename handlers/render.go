package handlers

import (
	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"

	"nskk-web/render"
	"nskk-web/views"
)

// renderWithLayout answers htmx requests with the bare fragment and plain
// navigation with the fragment inside the page shell.
func renderWithLayout(c *fiber.Ctx, title string, content templ.Component) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	if c.Get("HX-Request") == "true" {
		return content.Render(c.UserContext(), c.Response().BodyWriter())
	}
	return views.Layout(title, content).Render(c.UserContext(), c.Response().BodyWriter())
}

func fragment(c *fiber.Ctx, content templ.Component) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return content.Render(c.UserContext(), c.Response().BodyWriter())
}

func regionFragment(c *fiber.Ctx, content string) error {
	return fragment(c, templ.Raw(string(render.Trusted(content))))
}

// refresh tells htmx to reload the whole page.
func refresh(c *fiber.Ctx) error {
	c.Set("HX-Refresh", "true")
	return c.Status(fiber.StatusOK).SendString("")
}
