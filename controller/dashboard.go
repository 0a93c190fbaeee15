package controller

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"nskk-web/client"
	"nskk-web/models"
	"nskk-web/page"
	"nskk-web/render"
)

const (
	TabAdmissions = "admissions"
	TabEvents     = "events"
	TabLibrary    = "library"
	TabAlumni     = "alumni"
	TabNotices    = "notices"
)

// Tabs lists the dashboard menu in display order.
var Tabs = []string{TabAdmissions, TabEvents, TabLibrary, TabAlumni, TabNotices}

const (
	RegionDashStats    = "dash-stats"
	RegionAdmissions   = "admissions-tbody"
	RegionAdminEvents  = "events-list"
	RegionAdminLibrary = "library-tbody"
	RegionAdminAlumni  = "admin-alumni-grid"
	RegionNotices      = "notices-list"
)

const ElementSidebar = "sidebar"

// TabRegion maps each tab to the region its loader fills.
var TabRegion = map[string]string{
	TabAdmissions: RegionAdmissions,
	TabEvents:     RegionAdminEvents,
	TabLibrary:    RegionAdminLibrary,
	TabAlumni:     RegionAdminAlumni,
	TabNotices:    RegionNotices,
}

// Dashboard controls the admin dashboard.
type Dashboard struct {
	app     *App
	regions map[string]*page.Region
	loaders map[string]func(context.Context) error

	Tabs       *page.Selector
	Sidebar    page.Toggle
	EventModal page.Toggle
}

func NewDashboard(app *App) *Dashboard {
	d := &Dashboard{
		app: app,
		regions: newRegions(RegionDashStats, RegionAdmissions, RegionAdminEvents,
			RegionAdminLibrary, RegionAdminAlumni, RegionNotices),
		Tabs: page.NewSelector(TabAdmissions, Tabs...),
	}
	d.loaders = map[string]func(context.Context) error{
		TabAdmissions: d.LoadAdmissions,
		TabEvents:     d.LoadEvents,
		TabLibrary:    d.LoadLibraryBooks,
		TabAlumni:     d.LoadAlumniAdmin,
		TabNotices:    d.LoadNotices,
	}
	return d
}

func (d *Dashboard) Region(id string) *page.Region {
	return d.regions[id]
}

// Init loads the stats and the admissions queue, the landing tab,
// concurrently. It runs on every full page load.
func (d *Dashboard) Init(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return d.LoadDashboardData(ctx) })
	g.Go(func() error { return d.LoadAdmissions(ctx) })
	return g.Wait()
}

// SwitchTab activates exactly one menu entry and its content region, then
// loads the tab's data. Unknown tabs change nothing. On narrow viewports
// the sidebar closes as well.
func (d *Dashboard) SwitchTab(ctx context.Context, tab string, narrow bool) (bool, error) {
	if !d.Tabs.Select(tab) {
		d.app.Log.Debug("ignoring unknown tab", zap.String("tab", tab))
		return false, nil
	}
	if narrow {
		d.CloseSidebar()
	}
	_, err := d.LoadTabData(ctx, tab)
	return true, err
}

// LoadTabData dispatches to the loader registered for tab. Unknown tabs are
// a no-op.
func (d *Dashboard) LoadTabData(ctx context.Context, tab string) (bool, error) {
	fn, ok := d.loaders[tab]
	if !ok {
		return false, nil
	}
	return true, fn(ctx)
}

func (d *Dashboard) LoadDashboardData(ctx context.Context) error {
	r := d.regions[RegionDashStats]
	return load(ctx, d.app.Log, r, d.app.API.Stats, replaceWith(r, render.DashboardStats))
}

func (d *Dashboard) LoadAdmissions(ctx context.Context) error {
	r := d.regions[RegionAdmissions]
	return load(ctx, d.app.Log, r, d.app.API.Applications, replaceWith(r, render.AdmissionRows))
}

func (d *Dashboard) LoadEvents(ctx context.Context) error {
	r := d.regions[RegionAdminEvents]
	return load(ctx, d.app.Log, r, d.app.API.Events, replaceWith(r, render.AdminEventItems))
}

func (d *Dashboard) LoadLibraryBooks(ctx context.Context) error {
	r := d.regions[RegionAdminLibrary]
	fetch := func(ctx context.Context) ([]models.Book, error) {
		return d.app.API.Books(ctx, "")
	}
	return load(ctx, d.app.Log, r, fetch, replaceWith(r, render.BookRows))
}

func (d *Dashboard) LoadAlumniAdmin(ctx context.Context) error {
	r := d.regions[RegionAdminAlumni]
	return load(ctx, d.app.Log, r, d.app.API.Alumni, replaceWith(r, render.AdminAlumniCards))
}

func (d *Dashboard) LoadNotices(ctx context.Context) error {
	r := d.regions[RegionNotices]
	return load(ctx, d.app.Log, r, d.app.API.Notices, replaceWith(r, render.NoticeItems))
}

// ApproveAdmission approves one application and reports whether the page
// should reload. Any HTTP answer, even an error status, triggers the
// reload; only a request that never got an answer does not.
func (d *Dashboard) ApproveAdmission(ctx context.Context, id int) bool {
	err := d.app.API.Approve(ctx, id)
	if err == nil {
		return true
	}
	var se *client.StatusError
	if errors.As(err, &se) {
		d.app.Log.Warn("approve answered with error status", zap.Int("id", id), zap.Int("status", se.Code))
		return true
	}
	d.app.Log.Error("approve request failed", zap.Int("id", id), zap.Error(err))
	return false
}

// RejectAdmission only asks for confirmation and reloads. The API has no
// reject endpoint, so nothing is sent.
func (d *Dashboard) RejectAdmission(id int, confirmed bool) bool {
	if !confirmed {
		return false
	}
	d.app.Log.Warn("reject confirmed but no reject endpoint exists", zap.Int("id", id))
	return true
}

func (d *Dashboard) ToggleSidebar() bool {
	return d.Sidebar.Toggle()
}

func (d *Dashboard) CloseSidebar() {
	d.Sidebar.Close()
}

// OutsideClick closes the sidebar unless the click landed on it or on its
// toggle.
func (d *Dashboard) OutsideClick(target string) {
	if target == ElementSidebar || target == ElementHamburger {
		return
	}
	d.CloseSidebar()
}

func (d *Dashboard) ShowEventModal() {
	d.EventModal.Open()
}

func (d *Dashboard) CloseEventModal() {
	d.EventModal.Close()
}
