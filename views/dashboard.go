package views

import (
	"github.com/a-h/templ"

	"nskk-web/controller"
	"nskk-web/render"
)

var tabTitles = map[string]string{
	controller.TabAdmissions: "Admissions",
	controller.TabEvents:     "Events",
	controller.TabLibrary:    "Library",
	controller.TabAlumni:     "Alumni",
	controller.TabNotices:    "Notices",
}

func dashContent(d *controller.Dashboard, id string) render.HTML {
	if r := d.Region(id); r != nil {
		return render.Trusted(r.Content())
	}
	return ""
}

func activeIf(on bool) string {
	if on {
		return " active"
	}
	return ""
}

func sidebar(d *controller.Dashboard) templ.Component {
	var items render.HTML
	for _, tab := range controller.Tabs {
		items += render.Markup(`<li><a class="menu-item%s" data-tab="%s" hx-get="/dashboard/tabs/%s" hx-vals='js:{narrow: window.innerWidth <= 768}' hx-target="#dashboard" hx-swap="outerHTML">%s</a></li>`,
			activeIf(d.Tabs.IsActive(tab)), tab, tab, tabTitles[tab])
	}
	return html(render.Markup(`<aside id="%s" class="sidebar%s"><div class="sidebar-header"><h2>NSKK Admin</h2></div><ul class="sidebar-menu">%s</ul></aside>`,
		controller.ElementSidebar, activeIf(d.Sidebar.IsOpen()), items))
}

func table(head render.HTML, tbodyID string, content render.HTML) templ.Component {
	return html(render.Markup(`<table class="data-table"><thead><tr>%s</tr></thead><tbody id="%s">%s</tbody></table>`,
		head, tbodyID, content))
}

func tabPanel(d *controller.Dashboard, tab string, body templ.Component) templ.Component {
	return wrap(string(render.Markup(`<section id="%s-tab" class="tab-content%s"><h2>%s</h2>`, tab, activeIf(d.Tabs.IsActive(tab)), tabTitles[tab])),
		body, `</section>`)
}

// EventModal is the add-event dialog; only its visibility is managed.
func EventModal(d *controller.Dashboard) templ.Component {
	display := "none"
	if d.EventModal.IsOpen() {
		display = "block"
	}
	return html(render.Markup(`<div id="event-modal" class="modal" style="display: %s"><div class="modal-content"><button class="close-modal" hx-post="/dashboard/modal/event/close" hx-target="#event-modal" hx-swap="outerHTML">&times;</button><h3>Add Event</h3></div></div>`, display))
}

// DashboardBody is everything the tab and sidebar actions swap.
func DashboardBody(d *controller.Dashboard) templ.Component {
	outside := templ.Raw("")
	if d.Sidebar.IsOpen() {
		outside = templ.Raw(`<div class="sidebar-closer" hx-post="/dashboard/sidebar/close" hx-trigger="click from:body" hx-vals='js:{target: (event.target.closest("[id]") || {}).id || ""}' hx-target="#dashboard" hx-swap="outerHTML"></div>`)
	}
	return seq(
		templ.Raw(`<div id="dashboard" class="dashboard">`),
		sidebar(d),
		outside,
		templ.Raw(`<main class="main-content"><header class="topbar"><button id="hamburger" class="hamburger" hx-post="/dashboard/sidebar/toggle" hx-target="#dashboard" hx-swap="outerHTML">&#9776;</button><h1>Dashboard</h1></header>`),
		region("div", controller.RegionDashStats, "stats-cards", dashContent(d, controller.RegionDashStats)),
		tabPanel(d, controller.TabAdmissions,
			table(`<th>Name</th><th>Email</th><th>Class</th><th>Applied On</th><th>Status</th><th>Actions</th>`,
				controller.RegionAdmissions, dashContent(d, controller.RegionAdmissions))),
		tabPanel(d, controller.TabEvents, seq(
			templ.Raw(`<button class="btn btn-primary" hx-post="/dashboard/modal/event/open" hx-target="#event-modal" hx-swap="outerHTML">Add Event</button>`),
			region("div", controller.RegionAdminEvents, "events-list", dashContent(d, controller.RegionAdminEvents)))),
		tabPanel(d, controller.TabLibrary,
			table(`<th>Title</th><th>Author</th><th>Category</th><th>Available</th>`,
				controller.RegionAdminLibrary, dashContent(d, controller.RegionAdminLibrary))),
		tabPanel(d, controller.TabAlumni,
			region("div", controller.RegionAdminAlumni, "alumni-grid", dashContent(d, controller.RegionAdminAlumni))),
		tabPanel(d, controller.TabNotices,
			region("div", controller.RegionNotices, "notices-list", dashContent(d, controller.RegionNotices))),
		templ.Raw(`</main>`),
		EventModal(d),
		templ.Raw(`</div>`),
	)
}
