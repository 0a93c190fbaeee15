package views

import (
	"github.com/a-h/templ"

	"nskk-web/controller"
	"nskk-web/render"
)

// LibraryCategories feeds the library filter; the empty value lists all.
var LibraryCategories = []string{"", "Science", "Mathematics", "Literature", "History", "Fiction"}

func regionContent(p *controller.PublicSite, id string) render.HTML {
	if r := p.Region(id); r != nil {
		return render.Trusted(r.Content())
	}
	return ""
}

// SiteNav is the navigation bar with the mobile menu state.
func SiteNav(p *controller.PublicSite) templ.Component {
	menuClass := "nav-menu"
	closer := templ.Raw("")
	if p.Menu.IsOpen() {
		menuClass += " active"
		closer = templ.Raw(`<div class="menu-closer" hx-post="/menu/close" hx-trigger="click from:body" hx-vals='js:{target: (event.target.closest("[id]") || {}).id || ""}' hx-target="#site-nav" hx-swap="outerHTML"></div>`)
	}
	return seq(
		templ.Raw(`<nav id="site-nav" class="navbar"><div class="logo">NSKK School</div>`),
		templ.Raw(`<button id="hamburger" class="hamburger" hx-post="/menu/toggle" hx-target="#site-nav" hx-swap="outerHTML"><span></span><span></span><span></span></button>`),
		wrap(string(render.Markup(`<ul id="%s" class="%s">`, controller.ElementNavMenu, menuClass)),
			html(render.NavLinks(controller.NavLinks, p.Nav.Active())), `</ul>`),
		closer,
		templ.Raw(`</nav>`),
	)
}

// EventsPanel holds the filter bar and the events grid; filter clicks
// swap the whole panel.
func EventsPanel(p *controller.PublicSite) templ.Component {
	return seq(
		templ.Raw(`<div id="events-panel"><div class="event-filters">`),
		html(render.FilterButtons(controller.EventFilters, p.Filters.Active())),
		templ.Raw(`</div>`),
		region("div", controller.RegionEvents, "events-grid", regionContent(p, controller.RegionEvents)),
		templ.Raw(`</div>`),
	)
}

// Notification is the shared toast.
func Notification(p *controller.PublicSite) templ.Component {
	msg, kind, shown := p.Notice.State()
	return html(render.Notification(msg, kind, shown, p.Notice.Delay))
}

func AdmissionForm(p *controller.PublicSite) templ.Component {
	return html(render.AdmissionForm(p.Admission.Values()))
}

func ContactForm(p *controller.PublicSite) templ.Component {
	return html(render.ContactForm(p.Contact.Values()))
}

// FormResult is the answer to a form post: the form itself plus the
// notification swapped out of band.
func FormResult(form templ.Component, p *controller.PublicSite) templ.Component {
	msg, kind, shown := p.Notice.State()
	return seq(form, OOB(render.Notification(msg, kind, shown, p.Notice.Delay)))
}

func categorySelect(active string) templ.Component {
	var opts render.HTML
	for _, c := range LibraryCategories {
		label := c
		if c == "" {
			label = "All Categories"
		}
		selected := render.HTML("")
		if c == active {
			selected = " selected"
		}
		opts += render.Markup(`<option value="%s"%s>%s</option>`, c, selected, label)
	}
	return html(render.Markup(`<select id="library-category" name="category" hx-get="/library/books" hx-target="#library-books" hx-trigger="change">%s</select>`, opts))
}

func section(id, title string, body ...templ.Component) templ.Component {
	return wrap(string(render.Markup(`<section id="%s" class="section"><div class="container"><h2 class="section-title">%s</h2>`, id, title)),
		seq(body...), `</div></section>`)
}

// PublicPage is the whole public website body.
func PublicPage(p *controller.PublicSite) templ.Component {
	return seq(
		SiteNav(p),
		templ.Raw(`<section id="home" class="hero"><div class="hero-content"><h1>Welcome to NSKK School</h1><p>Nurturing Excellence, Building Futures</p></div></section>`),
		section("about", "About Us",
			region("div", controller.RegionStats, "stats-grid", regionContent(p, controller.RegionStats))),
		section("admissions", "Admissions", AdmissionForm(p)),
		section("events", "Events", EventsPanel(p)),
		section("library", "Library",
			categorySelect(p.LibraryCategory()),
			region("div", controller.RegionLibrary, "books-grid", regionContent(p, controller.RegionLibrary))),
		section("transport", "Transport",
			region("div", controller.RegionBusRoutes, "routes-grid", regionContent(p, controller.RegionBusRoutes))),
		section("alumni", "Our Alumni",
			region("div", controller.RegionAlumni, "alumni-grid", regionContent(p, controller.RegionAlumni))),
		section("contact", "Contact Us", ContactForm(p)),
		Notification(p),
	)
}
