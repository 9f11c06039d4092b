package tui

import (
	"github.com/MKhiriev/go-cipher-desk/models"
)

type submitDoneMsg struct {
	result models.SubmissionResult
	err    error
}

type downloadDoneMsg struct {
	path string
	err  error
}

type copyDoneMsg struct {
	err error
}

type historyLoadedMsg struct {
	entries []models.HistoryEntry
	err     error
}
