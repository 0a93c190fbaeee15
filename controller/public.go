package controller

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"nskk-web/models"
	"nskk-web/page"
	"nskk-web/render"
)

const (
	RegionStats     = "stats"
	RegionBusRoutes = "bus-routes"
	RegionLibrary   = "library-books"
	RegionEvents    = "events-grid"
	RegionAlumni    = "alumni-grid"
)

// Element ids that count as "inside" for the outside-click rule.
const (
	ElementNavMenu   = "nav-menu"
	ElementHamburger = "hamburger"
)

const (
	MsgAdmissionOK    = "Admission application submitted successfully!"
	MsgAdmissionError = "Error submitting application"
	MsgContactOK      = "Thank you for contacting us! We will get back to you soon."
)

var EventFilters = []string{render.FilterAll, "academic", "sports", "cultural"}

var NavLinks = []render.NavLink{
	{Href: "#home", Label: "Home"},
	{Href: "#about", Label: "About"},
	{Href: "#admissions", Label: "Admissions"},
	{Href: "#events", Label: "Events"},
	{Href: "#library", Label: "Library"},
	{Href: "#transport", Label: "Transport"},
	{Href: "#alumni", Label: "Alumni"},
	{Href: "#contact", Label: "Contact"},
}

// PublicSite controls the public website.
type PublicSite struct {
	app     *App
	regions map[string]*page.Region

	Filters   *page.Selector
	Nav       *page.Selector
	Menu      page.Toggle
	Notice    *page.Notification
	Admission *page.Form
	Contact   *page.Form

	mu       sync.Mutex
	events   []models.Event
	category string
}

func NewPublicSite(app *App) *PublicSite {
	hrefs := make([]string, len(NavLinks))
	for i, l := range NavLinks {
		hrefs[i] = l.Href
	}
	return &PublicSite{
		app:       app,
		regions:   newRegions(RegionStats, RegionBusRoutes, RegionLibrary, RegionEvents, RegionAlumni),
		Filters:   page.NewSelector(render.FilterAll, EventFilters...),
		Nav:       page.NewSelector(hrefs[0], hrefs...),
		Notice:    page.NewNotification(app.NotificationDelay),
		Admission: page.NewForm(models.AdmissionFields...),
		Contact:   page.NewForm(models.ContactFields...),
	}
}

// Region returns the named region or nil.
func (p *PublicSite) Region(id string) *page.Region {
	return p.regions[id]
}

// Init fires the five page loads concurrently. Each one writes its own
// region; a failure in one never stops the others. Every full page load
// calls it again, so a reload always shows fresh data.
func (p *PublicSite) Init(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return p.LoadStats(ctx) })
	g.Go(func() error { return p.LoadBusRoutes(ctx) })
	g.Go(func() error { return p.LoadLibraryBooks(ctx, "") })
	g.Go(func() error { return p.LoadEvents(ctx) })
	g.Go(func() error { return p.LoadAlumni(ctx) })
	return g.Wait()
}

// Reload re-runs the loader behind a region. It reports false for unknown
// regions.
func (p *PublicSite) Reload(ctx context.Context, id string) (bool, error) {
	switch id {
	case RegionStats:
		return true, p.LoadStats(ctx)
	case RegionBusRoutes:
		return true, p.LoadBusRoutes(ctx)
	case RegionLibrary:
		return true, p.LoadLibraryBooks(ctx, p.LibraryCategory())
	case RegionEvents:
		return true, p.LoadEvents(ctx)
	case RegionAlumni:
		return true, p.LoadAlumni(ctx)
	}
	return false, nil
}

func (p *PublicSite) LoadStats(ctx context.Context) error {
	r := p.regions[RegionStats]
	return load(ctx, p.app.Log, r, p.app.API.Stats, replaceWith(r, render.PublicStats))
}

func (p *PublicSite) LoadBusRoutes(ctx context.Context) error {
	r := p.regions[RegionBusRoutes]
	return load(ctx, p.app.Log, r, p.app.API.BusRoutes, replaceWith(r, render.BusRouteCards))
}

// LoadLibraryBooks serves both the initial load and the category selector;
// an empty category lists every book. The category only becomes current
// once its books are shown.
func (p *PublicSite) LoadLibraryBooks(ctx context.Context, category string) error {
	r := p.regions[RegionLibrary]
	fetch := func(ctx context.Context) ([]models.Book, error) {
		return p.app.API.Books(ctx, category)
	}
	return load(ctx, p.app.Log, r, fetch, func(gen uint64, books []models.Book) bool {
		p.mu.Lock()
		defer p.mu.Unlock()
		if !r.Commit(gen, string(render.BookCards(books))) {
			return false
		}
		p.category = category
		return true
	})
}

func (p *PublicSite) LibraryCategory() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.category
}

func (p *PublicSite) LoadEvents(ctx context.Context) error {
	r := p.regions[RegionEvents]
	return load(ctx, p.app.Log, r, p.app.API.Events, func(gen uint64, events []models.Event) bool {
		p.mu.Lock()
		defer p.mu.Unlock()
		if !r.Commit(gen, string(render.EventCards(events, p.Filters.Active()))) {
			return false
		}
		p.events = events
		return true
	})
}

func (p *PublicSite) LoadAlumni(ctx context.Context) error {
	r := p.regions[RegionAlumni]
	return load(ctx, p.app.Log, r, p.app.API.Alumni, replaceWith(r, render.AlumniCards))
}

// FilterEvents marks the clicked filter button active and re-renders the
// events already held with cards outside the filter hidden. Nothing is
// fetched. Unknown filters are ignored.
func (p *PublicSite) FilterEvents(filter string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.Filters.Select(filter) {
		return false
	}
	if p.events != nil {
		p.regions[RegionEvents].Replace(string(render.EventCards(p.events, filter)))
	}
	return true
}

// SelectNav handles in-page anchors only: it marks the link active and
// closes the mobile menu.
func (p *PublicSite) SelectNav(href string) bool {
	if !strings.HasPrefix(href, "#") || !p.Nav.Select(href) {
		return false
	}
	p.CloseMenu()
	return true
}

func (p *PublicSite) ToggleMenu() bool {
	return p.Menu.Toggle()
}

func (p *PublicSite) CloseMenu() {
	p.Menu.Close()
}

// OutsideClick closes the menu unless the click landed on the menu or the
// hamburger.
func (p *PublicSite) OutsideClick(target string) {
	if target == ElementNavMenu || target == ElementHamburger {
		return
	}
	p.CloseMenu()
}

// SubmitAdmission posts the form as JSON. Success shows the success toast
// and clears the form; any failure shows the error toast and keeps what the
// visitor typed.
func (p *PublicSite) SubmitAdmission(ctx context.Context, values models.FormValues) error {
	p.Admission.Fill(values)

	if err := p.app.API.Apply(ctx, values); err != nil {
		p.app.Log.Error("admission submission failed", zap.Error(err))
		p.Notice.Show(MsgAdmissionError, render.KindError)
		return err
	}

	p.Notice.Show(MsgAdmissionOK, render.KindSuccess)
	p.Admission.Reset()
	return nil
}

// SubmitContact thanks the visitor and clears the form. The message is not
// sent anywhere: the API has no contact endpoint.
func (p *PublicSite) SubmitContact(values models.FormValues) {
	p.Contact.Fill(values)
	p.app.Log.Warn("contact form submitted but not transmitted", zap.Int("fields", len(values)))
	p.Notice.Show(MsgContactOK, render.KindSuccess)
	p.Contact.Reset()
}
