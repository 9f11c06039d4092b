package store

import "errors"

// Sentinel errors returned by the store. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning history rows fails.
	ErrScanningRows = errors.New("failed to scan history rows")

	// ErrHistoryNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrHistoryNotSaved = errors.New("history entry was not saved")

	// ErrInvalidLimit is returned by List for a non-positive limit.
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrWritingArtifact is returned when a downloaded artifact cannot be
	// written to the download directory.
	ErrWritingArtifact = errors.New("failed to write artifact")
)
