package tui

import "github.com/MKhiriev/go-pydt-client/models"

// changedMsg is sent when a snapshot is published or a notification raised.
type changedMsg struct{}

type refreshDoneMsg struct {
	err error
}

type activateDoneMsg struct {
	session models.WatchSession
	err     error
}

type accountAddedMsg struct {
	account models.Account
	err     error
}

type accountRemovedMsg struct {
	name string
	err  error
}

type clearStatusMsg struct{}
