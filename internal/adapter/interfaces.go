// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// remote transform service.
//
// The primary abstraction is [TransformAdapter], which decouples the
// submission controller from the underlying protocol. The package ships an
// HTTP implementation ([NewHTTPTransformAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling. A JSON body that reports a job outcome is never an error,
// whatever its status code: the service answers failed jobs with
// {"success": false, "error": "..."} and HTTP 400 or 500.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cipher-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transform_adapter_mock.go -package=mock

// TransformAdapter defines communication with the transform service.
type TransformAdapter interface {
	// Transform sends snapshot to the service as one multipart request and
	// returns the decoded job outcome. A non-nil error means no outcome was
	// received (network failure, timeout, unrecognised reply).
	Transform(ctx context.Context, snapshot models.FormSnapshot) (models.TransformResponse, error)

	// Download hands a previously returned base64 payload and its filename
	// back to the service and returns the decoded bytes it streams.
	Download(ctx context.Context, payload, filename string) ([]byte, error)
}
