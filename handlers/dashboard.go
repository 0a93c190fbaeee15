package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"nskk-web/views"
)

// DashboardPage handles GET /dashboard
func (h *Handler) DashboardPage(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := p.Dashboard.Init(ctx); err != nil {
		h.Log.Warn("dashboard loaded with errors", zap.String("session", p.ID), zap.Error(err))
	}
	return renderWithLayout(c, titleDashboard, views.DashboardBody(p.Dashboard))
}

// SwitchTab handles GET /dashboard/tabs/:tab?narrow=true|false
func (h *Handler) SwitchTab(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return err
	}
	tab := c.Params("tab")

	ctx, cancel := h.ctx(c)
	defer cancel()

	if _, err := p.Dashboard.SwitchTab(ctx, tab, c.QueryBool("narrow")); err != nil {
		h.Log.Warn("tab load failed", zap.String("tab", tab), zap.Error(err))
	}
	return renderWithLayout(c, titleDashboard, views.DashboardBody(p.Dashboard))
}

// ApproveAdmission handles POST /dashboard/admissions/:id/approve
func (h *Handler) ApproveAdmission(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid admission ID"})
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if p.Dashboard.ApproveAdmission(ctx, id) {
		return refresh(c)
	}
	return c.Status(fiber.StatusBadGateway).SendString("")
}

// RejectAdmission handles POST /dashboard/admissions/:id/reject
func (h *Handler) RejectAdmission(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid admission ID"})
	}

	if p.Dashboard.RejectAdmission(id, c.FormValue("confirmed") == "true") {
		return refresh(c)
	}
	return c.Status(fiber.StatusOK).SendString("")
}

// ToggleSidebar handles POST /dashboard/sidebar/toggle
func (h *Handler) ToggleSidebar(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return err
	}
	p.Dashboard.ToggleSidebar()
	return fragment(c, views.DashboardBody(p.Dashboard))
}

// CloseSidebar handles POST /dashboard/sidebar/close
func (h *Handler) CloseSidebar(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return err
	}
	p.Dashboard.OutsideClick(c.FormValue("target"))
	return fragment(c, views.DashboardBody(p.Dashboard))
}

// OpenEventModal handles POST /dashboard/modal/event/open
func (h *Handler) OpenEventModal(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return err
	}
	p.Dashboard.ShowEventModal()
	return fragment(c, views.EventModal(p.Dashboard))
}

// CloseEventModal handles POST /dashboard/modal/event/close
func (h *Handler) CloseEventModal(c *fiber.Ctx) error {
	p, err := page(c)
	if err != nil {
		return err
	}
	p.Dashboard.CloseEventModal()
	return fragment(c, views.EventModal(p.Dashboard))
}
