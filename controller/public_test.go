package controller

import (
	"context"
	"errors"
	"strings"
	"testing"

	"nskk-web/models"
	"nskk-web/render"
)

func TestPublicInitRendersEveryRegion(t *testing.T) {
	api := &fakeAPI{
		stats:  models.Stats{TotalStudents: 420, TotalStaff: 35},
		routes: []models.BusRoute{{RouteName: "North Loop", BusNumber: "KA-01"}},
		events: []models.Event{{Title: "Annual Day", Category: "cultural"}},
		alumni: []models.Alumni{{FullName: "Divya", GraduationYear: 2015}},
		books: func(ctx context.Context, category string) ([]models.Book, error) {
			return []models.Book{{Title: "Wings of Fire", Author: "A. P. J. Abdul Kalam"}}, nil
		},
	}
	p := NewPublicSite(newTestApp(t, api))

	if err := p.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}

	want := map[string]string{
		RegionStats:     "420",
		RegionBusRoutes: "North Loop",
		RegionLibrary:   "Wings of Fire",
		RegionEvents:    "Annual Day",
		RegionAlumni:    "Divya",
	}
	for id, text := range want {
		if got := p.Region(id).Content(); !strings.Contains(got, text) {
			t.Errorf("region %s = %q, want it to contain %q", id, got, text)
		}
	}

	if err := p.Init(context.Background()); err != nil {
		t.Fatalf("second Init: %v", err)
	}
	if n := len(api.Calls()); n != 10 {
		t.Fatalf("Init issued %d calls across two invocations, want 10", n)
	}
}

func TestPublicInitRetriesAfterFailure(t *testing.T) {
	api := &fakeAPI{err: errors.New("connection refused")}
	p := NewPublicSite(newTestApp(t, api))

	if err := p.Init(context.Background()); err == nil {
		t.Fatal("Init should report the failed loads")
	}
	if got := p.Region(RegionAlumni).Content(); got != "" {
		t.Fatalf("failed load rendered %q", got)
	}

	api.mu.Lock()
	api.err = nil
	api.alumni = []models.Alumni{{FullName: "Divya", GraduationYear: 2015}}
	api.mu.Unlock()

	if err := p.Init(context.Background()); err != nil {
		t.Fatalf("second Init: %v", err)
	}
	if got := p.Region(RegionAlumni).Content(); !strings.Contains(got, "Divya") {
		t.Fatalf("reload did not refresh alumni: %q", got)
	}
}

func TestPublicLibraryFailureKeepsCategory(t *testing.T) {
	api := &fakeAPI{books: func(ctx context.Context, category string) ([]models.Book, error) {
		if category == "History" {
			return nil, errors.New("timeout")
		}
		return []models.Book{{Title: "Cosmos", Category: "Science"}}, nil
	}}
	p := NewPublicSite(newTestApp(t, api))

	if err := p.LoadLibraryBooks(context.Background(), "Science"); err != nil {
		t.Fatal(err)
	}
	if err := p.LoadLibraryBooks(context.Background(), "History"); err == nil {
		t.Fatal("expected the History load to fail")
	}
	if got := p.LibraryCategory(); got != "Science" {
		t.Fatalf("category = %q, want Science", got)
	}
	if got := p.Region(RegionLibrary).Content(); !strings.Contains(got, "Cosmos") {
		t.Fatalf("catalog = %q", got)
	}
}

func TestPublicEmptyCollectionsShowPlaceholders(t *testing.T) {
	p := NewPublicSite(newTestApp(t, &fakeAPI{}))
	if err := p.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}

	want := map[string]string{
		RegionBusRoutes: render.NoBusRoutes,
		RegionLibrary:   render.NoBooks,
		RegionEvents:    render.NoEvents,
		RegionAlumni:    render.NoAlumni,
	}
	for id, text := range want {
		if got := p.Region(id).Content(); !strings.Contains(got, text) {
			t.Errorf("region %s = %q, want placeholder %q", id, got, text)
		}
	}
}

func TestPublicFailedLoadKeepsPreviousContent(t *testing.T) {
	api := &fakeAPI{routes: []models.BusRoute{{RouteName: "South Loop"}}}
	p := NewPublicSite(newTestApp(t, api))

	if err := p.LoadBusRoutes(context.Background()); err != nil {
		t.Fatalf("LoadBusRoutes: %v", err)
	}
	before := p.Region(RegionBusRoutes).Content()

	api.err = errors.New("connection refused")
	if err := p.LoadBusRoutes(context.Background()); err == nil {
		t.Fatal("want load error")
	}
	if got := p.Region(RegionBusRoutes).Content(); got != before {
		t.Fatalf("failed load changed region to %q", got)
	}
}

func TestPublicLibraryCategoryUsesSameRender(t *testing.T) {
	var categories []string
	api := &fakeAPI{books: func(ctx context.Context, category string) ([]models.Book, error) {
		categories = append(categories, category)
		if category == "Science" {
			return []models.Book{{Title: "Cosmos", Category: "Science"}}, nil
		}
		return []models.Book{{Title: "Malgudi Days", Category: "Fiction"}}, nil
	}}
	p := NewPublicSite(newTestApp(t, api))

	if err := p.LoadLibraryBooks(context.Background(), ""); err != nil {
		t.Fatal(err)
	}
	if err := p.LoadLibraryBooks(context.Background(), "Science"); err != nil {
		t.Fatal(err)
	}

	got := p.Region(RegionLibrary).Content()
	want := string(render.BookCards([]models.Book{{Title: "Cosmos", Category: "Science"}}))
	if got != want {
		t.Fatalf("filtered render differs from shared render:\n%s\n---\n%s", got, want)
	}
	if strings.Join(categories, ",") != ",Science" || p.LibraryCategory() != "Science" {
		t.Fatalf("categories = %q, current = %q", categories, p.LibraryCategory())
	}
}

func TestPublicOverlappingLoadsKeepLaterIssued(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	api := &fakeAPI{books: func(ctx context.Context, category string) ([]models.Book, error) {
		if category == "Fiction" {
			close(started)
			<-release
			return []models.Book{{Title: "Stale Fiction"}}, nil
		}
		return []models.Book{{Title: "Fresh Science"}}, nil
	}}
	p := NewPublicSite(newTestApp(t, api))

	done := make(chan error)
	go func() { done <- p.LoadLibraryBooks(context.Background(), "Fiction") }()
	<-started

	if err := p.LoadLibraryBooks(context.Background(), "Science"); err != nil {
		t.Fatal(err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}

	got := p.Region(RegionLibrary).Content()
	if !strings.Contains(got, "Fresh Science") || strings.Contains(got, "Stale Fiction") {
		t.Fatalf("stale response overwrote newer one: %q", got)
	}
}

func TestPublicFilterEvents(t *testing.T) {
	api := &fakeAPI{events: []models.Event{
		{Title: "Sports Meet", Category: "sports"},
		{Title: "Quiz Bowl", Category: "academic"},
		{Title: "Dance Night", Category: "cultural"},
	}}
	p := NewPublicSite(newTestApp(t, api))
	if err := p.LoadEvents(context.Background()); err != nil {
		t.Fatal(err)
	}
	callsBefore := len(api.Calls())

	if !p.FilterEvents("academic") {
		t.Fatal("known filter rejected")
	}
	got := p.Region(RegionEvents).Content()
	if strings.Count(got, "display: block") != 1 || !strings.Contains(got, `data-category="academic" style="display: block"`) {
		t.Fatalf("academic filter rendered %q", got)
	}
	active := 0
	for _, f := range EventFilters {
		if p.Filters.IsActive(f) {
			active++
		}
	}
	if active != 1 || p.Filters.Active() != "academic" {
		t.Fatalf("active buttons = %d (%q)", active, p.Filters.Active())
	}

	p.FilterEvents(render.FilterAll)
	if got := p.Region(RegionEvents).Content(); strings.Contains(got, "display: none") {
		t.Fatal("all filter hid cards")
	}
	if len(api.Calls()) != callsBefore {
		t.Fatal("filtering must not refetch")
	}

	if p.FilterEvents("bogus") {
		t.Fatal("unknown filter accepted")
	}
}

func TestPublicLaterLoadKeepsActiveFilter(t *testing.T) {
	api := &fakeAPI{events: []models.Event{{Title: "Sports Meet", Category: "sports"}}}
	p := NewPublicSite(newTestApp(t, api))
	p.FilterEvents("academic")

	if err := p.LoadEvents(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := p.Region(RegionEvents).Content(); !strings.Contains(got, "display: none") {
		t.Fatalf("new events ignored active filter: %q", got)
	}
}

func TestPublicSubmitAdmission(t *testing.T) {
	form := models.FormValues{"full_name": "Arjun", "email": "arjun@example.com", "class_grade": "3"}

	t.Run("success clears form", func(t *testing.T) {
		api := &fakeAPI{}
		p := NewPublicSite(newTestApp(t, api))

		if err := p.SubmitAdmission(context.Background(), form); err != nil {
			t.Fatalf("SubmitAdmission: %v", err)
		}
		msg, kind, shown := p.Notice.State()
		if msg != MsgAdmissionOK || kind != render.KindSuccess || !shown {
			t.Fatalf("notification = %q %q %v", msg, kind, shown)
		}
		if len(p.Admission.Values()) != 0 {
			t.Fatalf("form not cleared: %v", p.Admission.Values())
		}
		if len(api.applied) != 1 || api.applied[0]["full_name"] != "Arjun" {
			t.Fatalf("posted %v", api.applied)
		}
	})

	t.Run("failure keeps form", func(t *testing.T) {
		api := &fakeAPI{applyErr: errors.New("POST /api/admission/apply failed with status 400")}
		p := NewPublicSite(newTestApp(t, api))

		if err := p.SubmitAdmission(context.Background(), form); err == nil {
			t.Fatal("want error")
		}
		msg, kind, shown := p.Notice.State()
		if msg != MsgAdmissionError || kind != render.KindError || !shown {
			t.Fatalf("notification = %q %q %v", msg, kind, shown)
		}
		if p.Admission.Values()["full_name"] != "Arjun" {
			t.Fatalf("form cleared on failure: %v", p.Admission.Values())
		}
	})
}

func TestPublicSubmitContactNeverCallsAPI(t *testing.T) {
	api := &fakeAPI{}
	p := NewPublicSite(newTestApp(t, api))

	p.SubmitContact(models.FormValues{"name": "Lata", "message": "Hello"})

	if len(api.Calls()) != 0 {
		t.Fatalf("contact form hit the API: %v", api.Calls())
	}
	if msg, _, shown := p.Notice.State(); msg != MsgContactOK || !shown {
		t.Fatalf("notification = %q %v", msg, shown)
	}
	if len(p.Contact.Values()) != 0 {
		t.Fatal("contact form not cleared")
	}
}

func TestPublicMenuAndNav(t *testing.T) {
	p := NewPublicSite(newTestApp(t, &fakeAPI{}))

	if !p.ToggleMenu() {
		t.Fatal("toggle should open the menu")
	}
	p.OutsideClick(ElementHamburger)
	p.OutsideClick(ElementNavMenu)
	if !p.Menu.IsOpen() {
		t.Fatal("clicks on menu or hamburger must not close it")
	}
	p.OutsideClick("hero")
	if p.Menu.IsOpen() {
		t.Fatal("outside click must close the menu")
	}

	p.ToggleMenu()
	if !p.SelectNav("#events") {
		t.Fatal("anchor link rejected")
	}
	if p.Menu.IsOpen() || p.Nav.Active() != "#events" {
		t.Fatalf("menu open=%v, active=%q", p.Menu.IsOpen(), p.Nav.Active())
	}
	if p.SelectNav("/dashboard") {
		t.Fatal("non-anchor link handled")
	}
}

func TestPublicReloadUnknownRegion(t *testing.T) {
	api := &fakeAPI{}
	p := NewPublicSite(newTestApp(t, api))
	ok, err := p.Reload(context.Background(), "nope")
	if ok || err != nil || len(api.Calls()) != 0 {
		t.Fatalf("Reload(nope) = %v, %v with calls %v", ok, err, api.Calls())
	}
}
