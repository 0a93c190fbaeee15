package controller

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"nskk-web/models"
)

// fakeAPI records every call by endpoint name.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	err        error
	applyErr   error
	approveErr error

	stats   models.Stats
	apps    []models.Admission
	routes  []models.BusRoute
	events  []models.Event
	alumni  []models.Alumni
	notices []models.Notice
	books   func(ctx context.Context, category string) ([]models.Book, error)

	applied  []models.FormValues
	approved []int
}

func (f *fakeAPI) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) Stats(ctx context.Context) (models.Stats, error) {
	return f.stats, f.record("stats")
}

func (f *fakeAPI) Applications(ctx context.Context) ([]models.Admission, error) {
	return f.apps, f.record("applications")
}

func (f *fakeAPI) Apply(ctx context.Context, form models.FormValues) error {
	f.record("apply")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applied = append(f.applied, form)
	return f.applyErr
}

func (f *fakeAPI) Approve(ctx context.Context, id int) error {
	f.record("approve")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.approved = append(f.approved, id)
	return f.approveErr
}

func (f *fakeAPI) BusRoutes(ctx context.Context) ([]models.BusRoute, error) {
	return f.routes, f.record("bus")
}

func (f *fakeAPI) Books(ctx context.Context, category string) ([]models.Book, error) {
	if err := f.record("books"); err != nil {
		return nil, err
	}
	if f.books != nil {
		return f.books(ctx, category)
	}
	return nil, nil
}

func (f *fakeAPI) Events(ctx context.Context) ([]models.Event, error) {
	return f.events, f.record("events")
}

func (f *fakeAPI) Alumni(ctx context.Context) ([]models.Alumni, error) {
	return f.alumni, f.record("alumni")
}

func (f *fakeAPI) Notices(ctx context.Context) ([]models.Notice, error) {
	return f.notices, f.record("notices")
}

func newTestApp(t *testing.T, api API) *App {
	t.Helper()
	return NewApp(api, zaptest.NewLogger(t), time.Hour)
}

func sorted(s []string) []string {
	out := append([]string(nil), s...)
	slices.Sort(out)
	return out
}
