// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package preview

import "github.com/MKhiriev/go-cipher-desk/models"

// Classifier is the part of the capability table the engine needs.
type Classifier interface {
	Classify(id models.CipherID) models.Capability
}

// Engine renders the live preview for the selected cipher.
type Engine struct {
	classifier Classifier
}

// NewEngine returns an engine gated by classifier.
func NewEngine(classifier Classifier) *Engine {
	return &Engine{classifier: classifier}
}

// Render recomputes the preview from scratch. Ciphers without digraph
// preview yield an inactive, empty preview. The key is accepted for symmetry
// with the form but does not affect pairing.
func (e *Engine) Render(cipher models.CipherID, text, _ string) models.Preview {
	if !e.classifier.Classify(cipher).DigraphPreview {
		return models.Preview{}
	}

	cleaned := Normalize(text)
	return models.Preview{
		Active:  true,
		Cleaned: cleaned,
		Pairs:   Pair(cleaned),
	}
}
