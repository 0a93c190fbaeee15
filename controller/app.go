// Package controller holds the two page controllers. Each one owns the
// view state of its page and runs fetch, decode, render and replace cycles
// against the school API.
package controller

import (
	"context"
	"time"

	"go.uber.org/zap"

	"nskk-web/models"
	"nskk-web/page"
	"nskk-web/render"
)

// API is the part of the school REST API the pages consume.
type API interface {
	Stats(ctx context.Context) (models.Stats, error)
	Applications(ctx context.Context) ([]models.Admission, error)
	Apply(ctx context.Context, form models.FormValues) error
	Approve(ctx context.Context, id int) error
	BusRoutes(ctx context.Context) ([]models.BusRoute, error)
	Books(ctx context.Context, category string) ([]models.Book, error)
	Events(ctx context.Context) ([]models.Event, error)
	Alumni(ctx context.Context) ([]models.Alumni, error)
	Notices(ctx context.Context) ([]models.Notice, error)
}

// App is built once at startup and shared by every controller.
type App struct {
	API               API
	Log               *zap.Logger
	NotificationDelay time.Duration
}

func NewApp(api API, log *zap.Logger, notificationDelay time.Duration) *App {
	return &App{API: api, Log: log, NotificationDelay: notificationDelay}
}

// load runs one fetch and hands the result to commit with the generation
// issued before the fetch. Failures are logged and leave the region as it
// was; stale responses are dropped.
func load[T any](ctx context.Context, log *zap.Logger, r *page.Region, fetch func(context.Context) (T, error), commit func(gen uint64, v T) bool) error {
	gen := r.Begin()
	v, err := fetch(ctx)
	if err != nil {
		log.Error("failed to load region", zap.String("region", r.ID), zap.Error(err))
		return err
	}
	if !commit(gen, v) {
		log.Debug("discarding stale response", zap.String("region", r.ID), zap.Uint64("generation", gen))
	}
	return nil
}

func replaceWith[T any](r *page.Region, draw func(T) render.HTML) func(uint64, T) bool {
	return func(gen uint64, v T) bool {
		return r.Commit(gen, string(draw(v)))
	}
}

func newRegions(ids ...string) map[string]*page.Region {
	regions := make(map[string]*page.Region, len(ids))
	for _, id := range ids {
		regions[id] = page.NewRegion(id, "")
	}
	return regions
}
