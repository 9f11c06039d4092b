// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TransformResponse is the JSON body returned by the transform service for
// both successful and failed jobs.
type TransformResponse struct {
	// Success reports whether the job completed.
	Success bool `json:"success"`

	// Result is the base64-encoded output bytes. Present on success.
	Result string `json:"result,omitempty"`

	// ResultText is a human-readable preview of the output. Optional.
	ResultText string `json:"result_text,omitempty"`

	// Filename is the suggested download name. Optional.
	Filename string `json:"filename,omitempty"`

	// IsFile reports whether the job was run on an uploaded file.
	IsFile bool `json:"is_file,omitempty"`

	// Size is the length of the decoded output in bytes.
	Size int64 `json:"size,omitempty"`

	// Error is the service message. Present on failure.
	Error string `json:"error,omitempty"`
}

// SubmissionResult is the client-side projection of one completed round trip.
// It is built in a single step from a [TransformResponse] or a transport
// failure, so success and payload fields are always consistent.
type SubmissionResult struct {
	Success bool

	// ResultText is the preview shown to the user. On success without a
	// service-provided preview it holds a placeholder.
	ResultText string

	// Payload is the base64-encoded artifact, forwarded as-is to the
	// download endpoint and the clipboard.
	Payload string

	Filename string
	Size     int64
	IsFile   bool

	// ErrorMessage is the text surfaced to the user on failure.
	ErrorMessage string
}

// NoPreviewPlaceholder is shown when the service returned no preview text.
const NoPreviewPlaceholder = "(no preview available)"

// NewSubmissionResult converts a service response into a [SubmissionResult].
func NewSubmissionResult(resp TransformResponse) SubmissionResult {
	if !resp.Success {
		return SubmissionResult{Success: false, ErrorMessage: resp.Error}
	}

	text := resp.ResultText
	if text == "" {
		text = NoPreviewPlaceholder
	}

	return SubmissionResult{
		Success:    true,
		ResultText: text,
		Payload:    resp.Result,
		Filename:   resp.Filename,
		Size:       resp.Size,
		IsFile:     resp.IsFile,
	}
}

// FailedSubmission builds the result of a round trip that produced no
// response at all.
func FailedSubmission(err error) SubmissionResult {
	msg := "request failed"
	if err != nil {
		msg = err.Error()
	}
	return SubmissionResult{Success: false, ErrorMessage: msg}
}
