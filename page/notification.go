package page

import (
	"sync"
	"time"
)

// afterFunc is a variable for testability.
var afterFunc = time.AfterFunc

// Notification is the one shared toast region. Show overwrites whatever is
// displayed; nothing is queued. Each Show schedules its own hide, so an
// earlier timer can hide a later message early.
type Notification struct {
	Delay time.Duration

	mu      sync.Mutex
	message string
	kind    string
	shown   bool
}

func NewNotification(delay time.Duration) *Notification {
	return &Notification{Delay: delay}
}

func (n *Notification) Show(message, kind string) {
	n.mu.Lock()
	n.message = message
	n.kind = kind
	n.shown = true
	n.mu.Unlock()

	afterFunc(n.Delay, n.Hide)
}

// Hide drops the visible flag and keeps the last message.
func (n *Notification) Hide() {
	n.mu.Lock()
	n.shown = false
	n.mu.Unlock()
}

// State returns message, kind and whether it is currently shown.
func (n *Notification) State() (string, string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message, n.kind, n.shown
}
