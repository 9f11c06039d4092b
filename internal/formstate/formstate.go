// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package formstate derives the legal form configuration for the selected
// cipher and input mode.
package formstate

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-cipher-desk/models"
)

// Classifier is the part of the capability table the state machine needs.
type Classifier interface {
	Classify(id models.CipherID) models.Capability
}

// Reconfigure computes the UI state for cipher from scratch. It never
// changes the input mode: a File mode that became illegal is only reverted
// by [Machine.SelectMode] or by the admission guard.
func Reconfigure(classifier Classifier, cipher models.CipherID, mode models.InputMode) models.UIState {
	c := classifier.Classify(cipher)

	state := models.UIState{
		Cipher:           cipher,
		Panel:            c.Panel,
		KeyFieldVisible:  c.Panel == models.PanelNone,
		KeyFieldRequired: c.Panel == models.PanelNone,
		FileInputEnabled: c.FileInput,
		EffectiveMode:    mode,
		PreviewActive:    c.DigraphPreview,
	}

	if c.LettersOnly {
		state.AcceptedExtension = models.TextFileExtension
		state.Advisory = models.Info(fmt.Sprintf(
			"Cipher %q accepts only .txt files; characters other than A-Z will be discarded.", cipher))
	}

	return state
}

// Machine holds the current cipher and mode and applies user selections.
// It is safe for concurrent use.
type Machine struct {
	classifier Classifier

	mu    sync.RWMutex
	state models.UIState
}

// NewMachine starts in text mode on the given cipher.
func NewMachine(classifier Classifier, initial models.CipherID) *Machine {
	return &Machine{
		classifier: classifier,
		state:      Reconfigure(classifier, initial, models.ModeText),
	}
}

// State returns the current UI state.
func (m *Machine) State() models.UIState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// SelectCipher recomputes the whole state for cipher, keeping the mode.
func (m *Machine) SelectCipher(cipher models.CipherID) models.UIState {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = Reconfigure(m.classifier, cipher, m.state.EffectiveMode)
	return m.state
}

// SelectMode switches the input mode. Choosing File while the cipher offers
// no file input falls back to Text and sets an error advisory.
func (m *Machine) SelectMode(mode models.InputMode) models.UIState {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := Reconfigure(m.classifier, m.state.Cipher, mode)
	if mode == models.ModeFile && !next.FileInputEnabled {
		next.EffectiveMode = models.ModeText
		next.Advisory = models.Error(fmt.Sprintf(
			"File input is not available for cipher %q; switched back to text.", next.Cipher))
	}

	m.state = next
	return m.state
}
