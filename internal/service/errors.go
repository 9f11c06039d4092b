package service

import "errors"

var (
	// ErrNoResult is returned by Download and Copy when no successful
	// result is held.
	ErrNoResult = errors.New("no result available")

	// ErrSubmissionInFlight is returned by Submit while a previous
	// submission is still outstanding.
	ErrSubmissionInFlight = errors.New("a submission is already in progress")

	// ErrHistoryDisabled is returned by HistoryService when no journal is
	// configured.
	ErrHistoryDisabled = errors.New("history journal is not configured")
)
