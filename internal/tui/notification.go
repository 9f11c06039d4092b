package tui

import (
	"github.com/MKhiriev/go-cipher-desk/models"
)

var notificationPrefix = map[models.NotificationKind]string{
	models.NotificationInfo:    "i ",
	models.NotificationSuccess: "✓ ",
	models.NotificationError:   "✗ ",
}

// renderNotification is the only place notifications turn into text.
// A nil notification renders nothing.
func renderNotification(n *models.Notification) string {
	if n == nil || n.Message == "" {
		return ""
	}
	return notificationStyle(n.Kind).Render(notificationPrefix[n.Kind] + n.Message)
}
