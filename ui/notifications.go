// Package ui provides the graphical user interface for Greeter.
// This file contains desktop notifications sent over D-Bus.
package ui

import (
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/yllada/greeter/common"
)

const (
	notificationsDest  = "org.freedesktop.Notifications"
	notificationsPath  = "/org/freedesktop/Notifications"
	notificationsIface = notificationsDest + ".Notify"
)

// NotificationUrgency is the freedesktop urgency hint.
type NotificationUrgency byte

const (
	UrgencyLow NotificationUrgency = iota
	UrgencyNormal
	UrgencyCritical
)

// DBusNotifier sends notifications through org.freedesktop.Notifications
// on the session bus.
type DBusNotifier struct {
	conn    *dbus.Conn
	icon    string
	urgency NotificationUrgency
}

var _ common.Notifier = (*DBusNotifier)(nil)

// NewDBusNotifier connects to the session bus.
func NewDBusNotifier() (*DBusNotifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return &DBusNotifier{
		conn:    conn,
		icon:    "face-smile",
		urgency: UrgencyLow,
	}, nil
}

// Notify shows a notification with the given title and message.
func (n *DBusNotifier) Notify(title, message string) error {
	obj := n.conn.Object(notificationsDest, dbus.ObjectPath(notificationsPath))
	call := obj.Call(notificationsIface, 0, notifyArgs(n.icon, n.urgency, title, message)...)
	if call.Err != nil {
		return fmt.Errorf("notification failed: %w", call.Err)
	}
	return nil
}

// Close releases the bus connection.
func (n *DBusNotifier) Close() error {
	return n.conn.Close()
}

// notifyArgs builds the Notify(susssasa{sv}i) argument list.
func notifyArgs(icon string, urgency NotificationUrgency, title, message string) []interface{} {
	return []interface{}{
		common.AppName,
		uint32(0),
		icon,
		title,
		message,
		[]string{},
		map[string]dbus.Variant{
			"urgency": dbus.MakeVariant(byte(urgency)),
		},
		int32(common.NotificationTimeout.Milliseconds()),
	}
}

// NotifyFinished tells the user the rotation is over.
func NotifyFinished(n common.Notifier, count int) {
	if n == nil {
		return
	}
	msg := fmt.Sprintf("Showed %d greetings.", count)
	if err := n.Notify("Greeting rotation finished", msg); err != nil {
		common.LogWarn("Error showing notification: %v", err)
	}
}
