// Package page holds the view state a page controller renders from:
// regions, selectors, toggles, the notification and forms. Every type is
// safe for concurrent use.
package page

import "sync"

// Region is a container whose whole content is replaced on each render.
// Loads take a generation from Begin and may only Commit while that
// generation is still the latest one issued, so a slow stale response can
// never overwrite a newer one.
type Region struct {
	ID string

	mu      sync.RWMutex
	content string
	issued  uint64
}

func NewRegion(id, initial string) *Region {
	return &Region{ID: id, content: initial}
}

// Begin issues the next request generation.
func (r *Region) Begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.issued++
	return r.issued
}

// Commit replaces the content if gen is the latest issued generation and
// reports whether it did.
func (r *Region) Commit(gen uint64, html string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.issued {
		return false
	}
	r.content = html
	return true
}

// Replace swaps the content without touching generations. Used for
// re-renders of data already held, such as client-side filtering.
func (r *Region) Replace(html string) {
	r.mu.Lock()
	r.content = html
	r.mu.Unlock()
}

func (r *Region) Content() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.content
}
