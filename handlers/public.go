package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"nskk-web/controller"
	"nskk-web/models"
	"nskk-web/views"
)

// PublicPage handles GET /
func (h *Handler) PublicPage(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	// Failed regions keep their placeholder; the page still renders.
	if err := p.Public.Init(ctx); err != nil {
		h.Log.Warn("public page loaded with errors", zap.String("session", p.ID), zap.Error(err))
	}
	return renderWithLayout(c, titlePublic, views.PublicPage(p.Public))
}

// Region handles GET /regions/:region
func (h *Handler) Region(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return err
	}
	id := c.Params("region")

	ctx, cancel := h.ctx(c)
	defer cancel()

	ok, err := p.Public.Reload(ctx, id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown region"})
	}
	if err != nil {
		h.Log.Warn("region reload failed", zap.String("region", id), zap.Error(err))
	}
	return regionFragment(c, p.Public.Region(id).Content())
}

// LibraryBooks handles GET /library/books?category=
func (h *Handler) LibraryBooks(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := p.Public.LoadLibraryBooks(ctx, c.Query("category")); err != nil {
		h.Log.Warn("library load failed", zap.String("category", c.Query("category")), zap.Error(err))
	}
	return regionFragment(c, p.Public.Region(controller.RegionLibrary).Content())
}

// FilterEvents handles POST /events/filter/:filter
func (h *Handler) FilterEvents(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return err
	}
	p.Public.FilterEvents(c.Params("filter"))
	return fragment(c, views.EventsPanel(p.Public))
}

// SelectNav handles POST /nav
func (h *Handler) SelectNav(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return err
	}
	p.Public.SelectNav(c.FormValue("href"))
	return fragment(c, views.SiteNav(p.Public))
}

// ToggleMenu handles POST /menu/toggle
func (h *Handler) ToggleMenu(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return err
	}
	p.Public.ToggleMenu()
	return fragment(c, views.SiteNav(p.Public))
}

// CloseMenu handles POST /menu/close, fired by clicks anywhere on the page
// while the menu is open.
func (h *Handler) CloseMenu(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return err
	}
	p.Public.OutsideClick(c.FormValue("target"))
	return fragment(c, views.SiteNav(p.Public))
}

// formValues collects the form's known fields; unknown keys are dropped.
func formValues(c *fiber.Ctx, fields []string) models.FormValues {
	values := make(models.FormValues, len(fields))
	for _, f := range fields {
		values[f] = c.FormValue(f)
	}
	return values
}

// SubmitAdmission handles POST /admission
func (h *Handler) SubmitAdmission(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	// The outcome is reported through the notification.
	_ = p.Public.SubmitAdmission(ctx, formValues(c, p.Public.Admission.Fields()))
	return fragment(c, views.FormResult(views.AdmissionForm(p.Public), p.Public))
}

// SubmitContact handles POST /contact
func (h *Handler) SubmitContact(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return err
	}
	p.Public.SubmitContact(formValues(c, p.Public.Contact.Fields()))
	return fragment(c, views.FormResult(views.ContactForm(p.Public), p.Public))
}

// Notification handles GET /notification
func (h *Handler) Notification(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return err
	}
	return fragment(c, views.Notification(p.Public))
}
