// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package admission decides whether a chosen file may be staged for the
// selected cipher.
package admission

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-cipher-desk/models"
)

// NoneSelected is the placeholder shown when no file is staged.
const NoneSelected = "(none selected)"

// Classifier is the part of the capability table the guard needs.
type Classifier interface {
	Classify(id models.CipherID) models.Capability
}

// Decision is the outcome of [Guard.Admit].
type Decision struct {
	Accepted bool

	// Reason explains a rejection.
	Reason string

	// Notice is the advisory to show: an error on rejection, an info
	// message when a letters-only cipher accepted the file.
	Notice *models.Notification
}

// Guard validates file choices against the capability table.
type Guard struct {
	classifier Classifier
}

// NewGuard returns a guard backed by classifier.
func NewGuard(classifier Classifier) *Guard {
	return &Guard{classifier: classifier}
}

// Extension returns the lower-cased text after the final dot of name, or ""
// when name has no dot.
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// NewSelectedFile describes the file at path.
func NewSelectedFile(path string) models.SelectedFile {
	name := filepath.Base(path)
	return models.SelectedFile{Name: name, Extension: Extension(name), Path: path}
}

// Admit checks file against cipher. Letters-only ciphers accept only .txt;
// every other cipher accepts any file. The caller must drop a rejected file.
func (g *Guard) Admit(file models.SelectedFile, cipher models.CipherID) Decision {
	if !g.classifier.Classify(cipher).LettersOnly {
		return Decision{Accepted: true}
	}

	if Extension(file.Name) != models.TextFileExtension {
		reason := fmt.Sprintf("Cipher %q accepts only .%s files (letters A-Z); %q was rejected.",
			cipher, models.TextFileExtension, file.Name)
		return Decision{Accepted: false, Reason: reason, Notice: models.Error(reason)}
	}

	return Decision{
		Accepted: true,
		Notice:   models.Info("Characters other than A-Z will be removed before processing."),
	}
}
