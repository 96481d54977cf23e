//go:build linux

package notify

import (
	"html"

	"github.com/godbus/dbus/v5"
)

const (
	appName  = "Soundboard"
	appID    = "soundboard"
	category = "x-soundboard.clip"

	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
)

// dbusNotifier sends notifications to the freedesktop notification server.
type dbusNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus, falling back to Nop when there is none.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return Nop{}, nil //nolint:nilerr // notifications are optional
	}
	return &dbusNotifier{obj: conn.Object(dbusNotifyDest, dbusNotifyPath)}, nil
}

// Notify sends n and returns the id assigned by the server.
// Clip notifications are transient: they replace each other and stay out of
// the notification history.
func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant(appID),
		"category":      dbus.MakeVariant(category),
		"transient":     dbus.MakeVariant(true),
	}

	// Notify(app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout)
	call := n.obj.Call(
		dbusNotifyInterface+".Notify",
		0,
		appName,
		notif.ReplacesID,
		notif.Icon,
		notif.Title,
		escapeBody(notif.Body),
		[]string{},
		hints,
		notif.Timeout,
	)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Close withdraws the notification with the given id.
func (n *dbusNotifier) Close(id uint32) error {
	return n.obj.Call(dbusNotifyInterface+".CloseNotification", 0, id).Err
}

// escapeBody protects file and tag text from the server's body markup.
func escapeBody(body string) string {
	return html.EscapeString(body)
}
