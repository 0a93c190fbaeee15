package page

import (
	"slices"
	"sync"
)

// Selector marks at most one of a fixed set of keys active: tab menus,
// filter buttons, nav links.
type Selector struct {
	mu     sync.RWMutex
	keys   []string
	active string
}

func NewSelector(active string, keys ...string) *Selector {
	s := &Selector{keys: keys}
	if slices.Contains(keys, active) {
		s.active = active
	}
	return s
}

// Select clears every entry and marks key active. Unknown keys leave the
// state untouched and return false.
func (s *Selector) Select(key string) bool {
	if !s.Has(key) {
		return false
	}
	s.mu.Lock()
	s.active = key
	s.mu.Unlock()
	return true
}

func (s *Selector) Has(key string) bool {
	return slices.Contains(s.keys, key)
}

func (s *Selector) Active() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *Selector) IsActive(key string) bool {
	return s.Active() == key
}

func (s *Selector) Keys() []string {
	return slices.Clone(s.keys)
}
