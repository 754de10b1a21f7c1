package client

import (
	"sync"
	"time"
)

// NotificationKind classifies a notification for the display surface
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a short-lived message for the single display surface
type Notification struct {
	Message string
	Kind    NotificationKind
}

// Notifier holds at most one notification at a time. A new notification
// replaces the current one (last-write-wins, no queue) and restarts the
// auto-dismiss timer.
type Notifier struct {
	mu           sync.Mutex
	current      *Notification
	timer        *time.Timer
	dismissAfter time.Duration
}

// NewNotifier creates a notifier that auto-dismisses after the given interval
func NewNotifier(dismissAfter time.Duration) *Notifier {
	return &Notifier{dismissAfter: dismissAfter}
}

// Notify replaces the current notification and restarts the dismiss timer
func (n *Notifier) Notify(message string, kind NotificationKind) {
	n.mu.Lock()
	defer n.mu.Unlock()

	posted := &Notification{Message: message, Kind: kind}
	n.current = posted

	if n.timer != nil {
		n.timer.Stop()
	}
	// The timer callback only clears the notification it was armed for;
	// Stop may come too late to prevent a stale callback from firing.
	n.timer = time.AfterFunc(n.dismissAfter, func() { n.dismiss(posted) })
}

// Current returns the currently displayed notification, nil when dismissed
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *Notifier) dismiss(posted *Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == posted {
		n.current = nil
	}
}
