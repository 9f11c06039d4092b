// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SubmissionState is the lifecycle position of the submission controller.
//
//	Idle -> Submitting -> Succeeded | Failed -> Idle (reset) or Submitting
type SubmissionState int

const (
	SubmissionIdle SubmissionState = iota
	SubmissionSubmitting
	SubmissionSucceeded
	SubmissionFailed
)

func (s SubmissionState) String() string {
	switch s {
	case SubmissionSubmitting:
		return "submitting"
	case SubmissionSucceeded:
		return "succeeded"
	case SubmissionFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Busy reports whether a request is outstanding.
func (s SubmissionState) Busy() bool {
	return s == SubmissionSubmitting
}
