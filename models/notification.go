// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotificationKind classifies a [Notification] for rendering.
type NotificationKind int

const (
	NotificationInfo NotificationKind = iota
	NotificationSuccess
	NotificationError
)

// String returns the lower-case kind name.
func (k NotificationKind) String() string {
	switch k {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	default:
		return "info"
	}
}

// Notification is an advisory produced by the state machine, the admission
// guard or the submission controller. It carries no presentation details;
// the UI decides how each kind is shown.
type Notification struct {
	Kind    NotificationKind
	Message string
}

// Info returns an informational notification.
func Info(msg string) *Notification {
	return &Notification{Kind: NotificationInfo, Message: msg}
}

// Success returns a success notification.
func Success(msg string) *Notification {
	return &Notification{Kind: NotificationSuccess, Message: msg}
}

// Error returns an error notification.
func Error(msg string) *Notification {
	return &Notification{Kind: NotificationError, Message: msg}
}
