package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"nskk-web/middleware"
	"nskk-web/session"
)

const (
	titlePublic    = "NSKK School"
	titleDashboard = "NSKK School - Admin Dashboard"
)

// Handler serves the public site and the dashboard for the session page
// attached by middleware.Session or middleware.Resume.
type Handler struct {
	Log     *zap.Logger
	Timeout time.Duration
}

func New(log *zap.Logger, timeout time.Duration) *Handler {
	return &Handler{Log: log, Timeout: timeout}
}

func (h *Handler) ctx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), h.Timeout)
}

func page(c *fiber.Ctx) (*session.Page, error) {
	p := middleware.Page(c)
	if p == nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "session not initialised")
	}
	return p, nil
}

// Register mounts every route on r. Full pages run start, which may open
// a session; fragments run resume, which needs one already.
func (h *Handler) Register(r fiber.Router, start, resume fiber.Handler) {
	r.Get("/", start, h.PublicPage)
	r.Get("/regions/:region", resume, h.Region)
	r.Get("/library/books", resume, h.LibraryBooks)
	r.Post("/events/filter/:filter", resume, h.FilterEvents)
	r.Post("/nav", resume, h.SelectNav)
	r.Post("/menu/toggle", resume, h.ToggleMenu)
	r.Post("/menu/close", resume, h.CloseMenu)
	r.Post("/admission", resume, h.SubmitAdmission)
	r.Post("/contact", resume, h.SubmitContact)
	r.Get("/notification", resume, h.Notification)

	dash := r.Group("/dashboard")
	dash.Get("/", start, h.DashboardPage)
	dash.Get("/tabs/:tab", resume, h.SwitchTab)
	dash.Post("/admissions/:id/approve", resume, h.ApproveAdmission)
	dash.Post("/admissions/:id/reject", resume, h.RejectAdmission)
	dash.Post("/sidebar/toggle", resume, h.ToggleSidebar)
	dash.Post("/sidebar/close", resume, h.CloseSidebar)
	dash.Post("/modal/event/open", resume, h.OpenEventModal)
	dash.Post("/modal/event/close", resume, h.CloseEventModal)
}
