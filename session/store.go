// Package session keeps one pair of page controllers per visitor.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"nskk-web/controller"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// Page is one visitor's view state.
type Page struct {
	ID        string
	Public    *controller.PublicSite
	Dashboard *controller.Dashboard

	mu       sync.Mutex
	lastSeen time.Time
}

func (p *Page) touch() {
	p.mu.Lock()
	p.lastSeen = timeNow()
	p.mu.Unlock()
}

func (p *Page) idleSince(now time.Time) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return now.Sub(p.lastSeen)
}

// Store is an in-memory session table. Nothing is persisted.
type Store struct {
	app *controller.App

	mu    sync.RWMutex
	pages map[string]*Page
}

func NewStore(app *controller.App) *Store {
	return &Store{app: app, pages: make(map[string]*Page)}
}

// Get returns the page for id and marks it as seen.
func (s *Store) Get(id string) (*Page, bool) {
	s.mu.RLock()
	p, ok := s.pages[id]
	s.mu.RUnlock()
	if ok {
		p.touch()
	}
	return p, ok
}

// Create starts a fresh page with new controllers under a new id.
func (s *Store) Create() *Page {
	p := &Page{
		ID:        uuid.NewString(),
		Public:    controller.NewPublicSite(s.app),
		Dashboard: controller.NewDashboard(s.app),
	}
	p.touch()

	s.mu.Lock()
	s.pages[p.ID] = p
	s.mu.Unlock()
	return p
}

// Sweep drops pages idle for longer than ttl and returns how many went.
func (s *Store) Sweep(ttl time.Duration) int {
	now := timeNow()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, p := range s.pages {
		if p.idleSince(now) > ttl {
			delete(s.pages, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pages)
}
