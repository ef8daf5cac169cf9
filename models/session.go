// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// WatchSession is a read-only view of the active watch session: the bridge
// between "save downloaded" and "save re-uploaded".
type WatchSession struct {
	GameID      string
	GameName    string
	AccountName string
	SaveDir     string
	Extension   string
	// Downloaded is the path of the save placed for the player. Empty when
	// the download was skipped for a first turn.
	Downloaded string
	StartedAt  time.Time
}

// TrayState is the coarse state reflected by the tray icon.
type TrayState int

const (
	// TrayIdle means nothing waits for the user.
	TrayIdle TrayState = iota
	// TrayMyTurn means at least one game waits for a local account.
	TrayMyTurn
	// TrayAwaitingSave means a watch session waits for the user to save.
	TrayAwaitingSave
)

// String returns the name of the state.
func (s TrayState) String() string {
	switch s {
	case TrayIdle:
		return "idle"
	case TrayMyTurn:
		return "my-turn"
	case TrayAwaitingSave:
		return "awaiting-save"
	default:
		return "unknown"
	}
}

// NotificationKind classifies user-visible notifications.
type NotificationKind int

const (
	NotificationInfo NotificationKind = iota
	NotificationUploadFailed
	NotificationConfirmFailed
	NotificationTransferFailed
)

// String returns the name of the notification kind.
func (k NotificationKind) String() string {
	switch k {
	case NotificationInfo:
		return "info"
	case NotificationUploadFailed:
		return "upload-failed"
	case NotificationConfirmFailed:
		return "confirm-failed"
	case NotificationTransferFailed:
		return "transfer-failed"
	default:
		return "unknown"
	}
}

// Notification is a message raised for the user.
type Notification struct {
	Kind    NotificationKind
	GameID  string
	Title   string
	Message string
	At      time.Time
}
