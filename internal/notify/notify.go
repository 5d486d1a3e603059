// Package notify delivers desktop notifications
package notify

import (
	"log/slog"

	"github.com/gen2brain/beeep"
)

// Notifier sends desktop notifications through beeep.
type Notifier struct {
	send    func(title, message, icon string) error
	icon    string
	enabled bool
}

// New returns a notifier. A disabled notifier drops every notification.
// icon may be empty.
func New(enabled bool, icon string) *Notifier {
	return &Notifier{
		send:    beeep.Notify,
		icon:    icon,
		enabled: enabled,
	}
}

// Notify displays a notification. Failures are logged, never returned.
func (n *Notifier) Notify(title, body string) {
	if !n.enabled {
		return
	}

	err := n.send(title, body, n.icon)
	if err != nil {
		slog.Error(
			"unable to display notification",
			slog.String("title", title),
			slog.Any("error", err),
		)
	}
}

// SetEnabled toggles notifications.
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

func (n *Notifier) Enabled() bool {
	return n.enabled
}
