package render

import (
	"strconv"

	"nskk-web/models"
)

const (
	NoApplications = "No admission applications"
	NoAdminEvents  = "No events posted"
	NoAdminBooks   = "No books in the library"
	NoAdminAlumni  = "No alumni records"
	NoNotices      = "No notices posted"

	notAvailable = "N/A"
)

func DashboardStats(s models.Stats) HTML {
	return Markup(`
<div class="stat-card"><h3 id="dash-students">%s</h3><p>Total Students</p></div>
<div class="stat-card"><h3 id="dash-staff">%s</h3><p>Total Staff</p></div>
<div class="stat-card"><h3 id="dash-admissions">%s</h3><p>Pending Admissions</p></div>
<div class="stat-card"><h3 id="dash-routes">%s</h3><p>Active Routes</p></div>`,
		s.TotalStudents, s.TotalStaff, s.PendingAdmissions, s.ActiveRoutes)
}

func emptyRow(cols int, text string) HTML {
	return Markup(`<tr><td colspan="%s" class="empty-state">%s</td></tr>`, cols, text)
}

// StatusClass maps an admission status to a known CSS class.
func StatusClass(status string) string {
	switch status {
	case models.StatusPending, models.StatusApproved, models.StatusRejected:
		return status
	default:
		return "unknown"
	}
}

// AdmissionRows binds the approve and reject triggers to the row's id.
func AdmissionRows(apps []models.Admission) HTML {
	if len(apps) == 0 {
		return emptyRow(6, NoApplications)
	}
	return join(apps, func(a models.Admission) HTML {
		id := strconv.Itoa(a.ID)
		return Markup(`
<tr id="admission-%s">
	<td>%s</td>
	<td>%s</td>
	<td>%s</td>
	<td>%s</td>
	<td><span class="status-badge %s">%s</span></td>
	<td>
		<button class="btn btn-sm btn-success" hx-post="/dashboard/admissions/%s/approve" hx-swap="none">Approve</button>
		<button class="btn btn-sm btn-danger" hx-post="/dashboard/admissions/%s/reject" hx-swap="none" hx-confirm="Are you sure?" hx-vals='{"confirmed":"true"}'>Reject</button>
	</td>
</tr>`, id, a.FullName, a.Email, a.ClassGrade, a.AppliedOn, StatusClass(a.Status), a.Status, id, id)
	})
}

func AdminEventItems(events []models.Event) HTML {
	if len(events) == 0 {
		return placeholder(NoAdminEvents)
	}
	return join(events, func(e models.Event) HTML {
		return Markup(`
<div class="event-item">
	<h4>%s</h4>
	<p>%s</p>
	<small>📅 %s | 📍 %s</small>
</div>`, e.Title, e.Description, e.EventDate, e.Location)
	})
}

func BookRows(books []models.Book) HTML {
	if len(books) == 0 {
		return emptyRow(4, NoAdminBooks)
	}
	return join(books, func(b models.Book) HTML {
		return Markup(`
<tr>
	<td>%s</td>
	<td>%s</td>
	<td>%s</td>
	<td>%s</td>
</tr>`, b.Title, b.Author, b.Category, b.Available)
	})
}

func AdminAlumniCards(alumni []models.Alumni) HTML {
	if len(alumni) == 0 {
		return placeholder(NoAdminAlumni)
	}
	return join(alumni, func(a models.Alumni) HTML {
		return Markup(`
<div class="alumni-card">
	<div class="alumni-photo">👨‍🎓</div>
	<div class="alumni-info">
		<div class="alumni-name">%s</div>
		<div class="alumni-designation">%s</div>
		<div class="alumni-org">%s</div>
	</div>
</div>`, a.FullName, orDefault(a.Designation, notAvailable), orDefault(a.CurrentOrganization, notAvailable))
	})
}

func NoticeItems(notices []models.Notice) HTML {
	if len(notices) == 0 {
		return placeholder(NoNotices)
	}
	return join(notices, func(n models.Notice) HTML {
		return Markup(`
<div class="notice-item">
	<h4>%s</h4>
	<p>%s</p>
	<small>Posted on %s</small>
</div>`, n.Title, n.Content, n.CreatedAt)
	})
}
