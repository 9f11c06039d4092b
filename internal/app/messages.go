// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// cipher-desk client services and terminal UI.
//
// All Msg* constants are human-readable messages shown to the user as
// notifications. Keeping them in one place ensures consistent wording.
package app

const (
	// MsgProcessingSucceeded is shown when the service completed a job.
	MsgProcessingSucceeded = "Processing completed successfully."

	// MsgSubmissionInFlight is shown when a submit is requested while the
	// previous one has not returned yet.
	MsgSubmissionInFlight = "A request is already in progress; wait for it to finish."

	// MsgErrorPrefix precedes service and transport error text.
	MsgErrorPrefix = "Error: "

	// MsgNothingToDownload is shown when download is requested without a
	// held result.
	MsgNothingToDownload = "There is no result to download yet."

	// MsgDownloadFailed precedes the cause of a failed download.
	MsgDownloadFailed = "Download failed: "

	// MsgResultSaved is a format string taking the written path.
	MsgResultSaved = "Result saved to %s"

	// MsgNothingToCopy is shown when copy is requested without a held
	// result.
	MsgNothingToCopy = "There is no result to copy yet."

	// MsgCopyFailed precedes the clipboard error.
	MsgCopyFailed = "Failed to copy to clipboard: "

	// MsgCopied is shown after the base64 payload reached the clipboard.
	MsgCopied = "Base64 result copied to clipboard."

	// MsgHistoryDisabled is shown when the history pane is not configured.
	MsgHistoryDisabled = "The history pane is disabled."

	// MsgEnterFilePath is shown when enter is pressed on an empty file
	// input.
	MsgEnterFilePath = "Enter the path of a file first."
)
