package render

import "nskk-web/models"

const (
	NoBusRoutes = "No bus routes available"
	NoBooks     = "No books available"
	NoEvents    = "No events scheduled"
	NoAlumni    = "No alumni records yet"

	notSpecified = "Not specified"
)

// FilterAll is the event filter value that shows every card.
const FilterAll = "all"

func placeholder(text string) HTML {
	return Markup(`<p class="empty-state">%s</p>`, text)
}

func PublicStats(s models.Stats) HTML {
	return Markup(`
<div class="stat-item"><h3 id="stat-students">%s</h3><p>Students</p></div>
<div class="stat-item"><h3 id="stat-staff">%s</h3><p>Staff</p></div>
<div class="stat-item"><h3 id="stat-events">%s</h3><p>Events</p></div>
<div class="stat-item"><h3 id="stat-alumni">%s</h3><p>Alumni</p></div>`,
		s.TotalStudents, s.TotalStaff, s.TotalEvents, s.TotalAlumni)
}

func BusRouteCards(routes []models.BusRoute) HTML {
	if len(routes) == 0 {
		return placeholder(NoBusRoutes)
	}
	return join(routes, func(r models.BusRoute) HTML {
		return Markup(`
<div class="bus-card">
	<h4>🚌 %s</h4>
	<p><strong>Bus Number:</strong> %s</p>
	<p><strong>Driver:</strong> %s</p>
	<p><strong>Current Location:</strong> %s</p>
</div>`, r.RouteName, r.BusNumber, r.DriverName, r.CurrentLocation)
	})
}

// BookCards renders the public catalog for both the initial load and a
// category-filtered reload.
func BookCards(books []models.Book) HTML {
	if len(books) == 0 {
		return placeholder(NoBooks)
	}
	return join(books, func(b models.Book) HTML {
		return Markup(`
<div class="book-card">
	<div class="book-cover">📖</div>
	<div class="book-info">
		<h4>%s</h4>
		<p><strong>Author:</strong> %s</p>
		<p><strong>Category:</strong> %s</p>
		<p><strong>Available:</strong> %s</p>
	</div>
</div>`, b.Title, b.Author, b.Category, b.Available)
	})
}

// EventVisible reports whether a card of the given category is shown
// under filter.
func EventVisible(category, filter string) bool {
	return filter == "" || filter == FilterAll || category == filter
}

// EventCards renders every event; cards outside filter are hidden, not
// dropped, so filtering never needs a refetch.
func EventCards(events []models.Event, filter string) HTML {
	if len(events) == 0 {
		return placeholder(NoEvents)
	}
	return join(events, func(e models.Event) HTML {
		display := "none"
		if EventVisible(e.Category, filter) {
			display = "block"
		}
		return Markup(`
<div class="event-card" data-category="%s" style="display: %s">
	<div class="event-image">🎉</div>
	<div class="event-content">
		<span class="event-badge">%s</span>
		<h4>%s</h4>
		<p class="event-meta">📅 %s</p>
		<p class="event-meta">📍 %s</p>
		<p class="event-description">%s</p>
	</div>
</div>`, e.Category, display, e.Category, e.Title, e.EventDate, e.Location, e.Description)
	})
}

func AlumniCards(alumni []models.Alumni) HTML {
	if len(alumni) == 0 {
		return placeholder(NoAlumni)
	}
	return join(alumni, func(a models.Alumni) HTML {
		return Markup(`
<div class="alumni-card">
	<div class="alumni-photo">👨‍🎓</div>
	<div class="alumni-info">
		<div class="alumni-name">%s</div>
		<div class="alumni-designation">%s</div>
		<div class="alumni-org">%s</div>
		<small class="alumni-year">Class of %s</small>
	</div>
</div>`, a.FullName, orDefault(a.Designation, notSpecified), orDefault(a.CurrentOrganization, notSpecified), a.GraduationYear)
	})
}
