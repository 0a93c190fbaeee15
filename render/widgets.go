package render

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Notification kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
)

func label(key string) string {
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError {
		return key
	}
	return string(unicode.ToUpper(r)) + strings.ReplaceAll(key[size:], "_", " ")
}

func activeClass(on bool) string {
	if on {
		return " active"
	}
	return ""
}

// FilterButtons renders the event filter bar with exactly the active
// filter marked.
func FilterButtons(filters []string, active string) HTML {
	return join(filters, func(f string) HTML {
		return Markup(`<button class="filter-btn%s" data-filter="%s" hx-post="/events/filter/%s" hx-target="#events-panel" hx-swap="outerHTML">%s</button>`,
			activeClass(f == active), f, f, label(f))
	})
}

type NavLink struct {
	Href  string
	Label string
}

func NavLinks(links []NavLink, active string) HTML {
	return join(links, func(l NavLink) HTML {
		return Markup(`<li><a class="nav-link%s" href="%s" hx-post="/nav" hx-vals='{"href":"%s"}' hx-target="#site-nav" hx-swap="outerHTML">%s</a></li>`,
			activeClass(l.Href == active), l.Href, l.Href, l.Label)
	})
}

// Notification renders the shared toast. While shown it re-checks the
// server after recheck so the auto-hide reaches the browser.
func Notification(message, kind string, shown bool, recheck time.Duration) HTML {
	if !shown {
		return Markup(`<div id="notification" class="notification %s">%s</div>`, kind, message)
	}
	delay := recheck.Milliseconds()
	return Markup(`<div id="notification" class="notification show %s" hx-get="/notification" hx-trigger="load delay:%sms" hx-swap="outerHTML">%s</div>`,
		kind, int(delay), message)
}

type Field struct {
	Name  string
	Label string
	Type  string
}

var admissionFields = []Field{
	{Name: "full_name", Label: "Student Name", Type: "text"},
	{Name: "email", Label: "Email", Type: "email"},
	{Name: "phone", Label: "Phone", Type: "tel"},
	{Name: "class_grade", Label: "Class", Type: "text"},
	{Name: "dob", Label: "Date of Birth", Type: "date"},
	{Name: "parent_name", Label: "Parent Name", Type: "text"},
	{Name: "parent_phone", Label: "Parent Phone", Type: "tel"},
}

var contactFields = []Field{
	{Name: "name", Label: "Your Name", Type: "text"},
	{Name: "email", Label: "Your Email", Type: "email"},
	{Name: "subject", Label: "Subject", Type: "text"},
	{Name: "message", Label: "Message", Type: "textarea"},
}

func formInputs(fields []Field, values map[string]string) HTML {
	return join(fields, func(f Field) HTML {
		if f.Type == "textarea" {
			return Markup(`
	<div class="form-group"><label for="%s">%s</label><textarea id="%s" name="%s" required>%s</textarea></div>`,
				f.Name, f.Label, f.Name, f.Name, values[f.Name])
		}
		return Markup(`
	<div class="form-group"><label for="%s">%s</label><input id="%s" name="%s" type="%s" value="%s" required></div>`,
			f.Name, f.Label, f.Name, f.Name, f.Type, values[f.Name])
	})
}

// AdmissionForm renders the admission form with values kept, empty after a
// reset.
func AdmissionForm(values map[string]string) HTML {
	return Markup(`<form id="admission-form" class="admission-form" hx-post="/admission" hx-swap="outerHTML">%s
	<button type="submit" class="btn btn-primary">Submit Application</button>
</form>`, formInputs(admissionFields, values))
}

func ContactForm(values map[string]string) HTML {
	return Markup(`<form id="contact-form" class="contact-form" hx-post="/contact" hx-swap="outerHTML">%s
	<button type="submit" class="btn btn-primary">Send Message</button>
</form>`, formInputs(contactFields, values))
}
