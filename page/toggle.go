package page

import "sync"

// Toggle is an element pair that opens and closes together, like the
// hamburger and its menu.
type Toggle struct {
	mu sync.Mutex
	on bool
}

func (t *Toggle) Toggle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.on = !t.on
	return t.on
}

func (t *Toggle) Open() {
	t.mu.Lock()
	t.on = true
	t.mu.Unlock()
}

func (t *Toggle) Close() {
	t.mu.Lock()
	t.on = false
	t.mu.Unlock()
}

func (t *Toggle) IsOpen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.on
}
