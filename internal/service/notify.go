package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cipher-desk/internal/app"
	"github.com/MKhiriev/go-cipher-desk/models"
)

// Notify maps the outcome of a Submit call to the notification shown to
// the user. Service messages are surfaced verbatim.
func Notify(result models.SubmissionResult, err error) *models.Notification {
	switch {
	case errors.Is(err, ErrSubmissionInFlight):
		return models.Info(app.MsgSubmissionInFlight)
	case err != nil:
		return models.Error(app.MsgErrorPrefix + err.Error())
	case result.Success:
		return models.Success(app.MsgProcessingSucceeded)
	default:
		return models.Error(app.MsgErrorPrefix + result.ErrorMessage)
	}
}

// NotifyDownload maps the outcome of a Download call.
func NotifyDownload(path string, err error) *models.Notification {
	switch {
	case errors.Is(err, ErrNoResult):
		return models.Error(app.MsgNothingToDownload)
	case err != nil:
		return models.Error(app.MsgDownloadFailed + err.Error())
	default:
		return models.Success(fmt.Sprintf(app.MsgResultSaved, path))
	}
}

// NotifyCopy maps the outcome of a Copy call.
func NotifyCopy(err error) *models.Notification {
	switch {
	case errors.Is(err, ErrNoResult):
		return models.Error(app.MsgNothingToCopy)
	case err != nil:
		return models.Error(app.MsgCopyFailed + err.Error())
	default:
		return models.Success(app.MsgCopied)
	}
}
