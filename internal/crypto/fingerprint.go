// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto fingerprints transform results so that journal entries can
// be compared without keeping the output itself.
package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// ShortLen is the number of hex characters shown for a fingerprint.
const ShortLen = 12

var ErrEmptyPayload = errors.New("crypto: empty payload")

// Fingerprint decodes the base64 payload returned by the transform service
// and returns the hex-encoded BLAKE2b-256 digest of the raw bytes.
func Fingerprint(payloadB64 string) (string, error) {
	if payloadB64 == "" {
		return "", ErrEmptyPayload
	}

	raw, err := base64.StdEncoding.DecodeString(payloadB64)
	if err != nil {
		return "", fmt.Errorf("decode payload: %w", err)
	}

	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

// Short truncates a fingerprint for display.
func Short(digest string) string {
	if len(digest) <= ShortLen {
		return digest
	}
	return digest[:ShortLen]
}
