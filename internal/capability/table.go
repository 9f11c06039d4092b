// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package capability classifies cipher identifiers.
//
// The classification is data: membership sets and per-cipher rows built once
// by [NewTable]. Adding a cipher means adding a row, never a branch.
package capability

import (
	"slices"

	"github.com/MKhiriev/go-cipher-desk/models"
)

// Cipher identifiers of the built-in catalog.
const (
	Vigenere         models.CipherID = "vigenere"
	Autokey          models.CipherID = "autokey"
	Playfair         models.CipherID = "playfair"
	Affine           models.CipherID = "affine"
	Hill             models.CipherID = "hill"
	Enigma           models.CipherID = "enigma"
	ExtendedVigenere models.CipherID = "extended_vigenere"
	Super            models.CipherID = "super"
)

// DefaultLettersOnly is used when the host provides no letters-only list.
var DefaultLettersOnly = []models.CipherID{Vigenere, Autokey, Playfair, Affine, Hill, Enigma}

// DefaultBinaryCapable is used when the host provides no binary-capable list.
var DefaultBinaryCapable = []models.CipherID{ExtendedVigenere, Super}

var panelRows = map[models.CipherID]models.ParamPanel{
	Affine: models.PanelAffine,
	Hill:   models.PanelHill,
	Super:  models.PanelSuper,
	Enigma: models.PanelEnigma,
}

var digraphRows = map[models.CipherID]struct{}{
	Playfair: {},
}

// Table is an immutable cipher classification.
type Table struct {
	catalog     []models.CipherID
	lettersOnly map[models.CipherID]struct{}
	noFileInput map[models.CipherID]struct{}
}

// Option customises a [Table] at construction.
type Option func(*Table)

// WithFileInputDisabled removes the file input affordance for the given
// ciphers. No built-in cipher uses it.
func WithFileInputDisabled(ids ...models.CipherID) Option {
	return func(t *Table) {
		for _, id := range ids {
			t.noFileInput[id] = struct{}{}
		}
	}
}

// NewTable builds a table from the letters-only and binary-capable lists
// injected by the host. An empty list falls back to the matching default.
func NewTable(lettersOnly, binaryCapable []models.CipherID, opts ...Option) *Table {
	if len(lettersOnly) == 0 {
		lettersOnly = DefaultLettersOnly
	}
	if len(binaryCapable) == 0 {
		binaryCapable = DefaultBinaryCapable
	}

	t := &Table{
		lettersOnly: make(map[models.CipherID]struct{}, len(lettersOnly)),
		noFileInput: make(map[models.CipherID]struct{}),
	}

	for _, id := range lettersOnly {
		if _, dup := t.lettersOnly[id]; dup || id == "" {
			continue
		}
		t.lettersOnly[id] = struct{}{}
		t.catalog = append(t.catalog, id)
	}
	for _, id := range binaryCapable {
		if id == "" || slices.Contains(t.catalog, id) {
			continue
		}
		t.catalog = append(t.catalog, id)
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Classify returns the capability of id. Unknown identifiers get the
// permissive default: binary-capable, key field required, no panel.
func (t *Table) Classify(id models.CipherID) models.Capability {
	_, letters := t.lettersOnly[id]
	_, digraph := digraphRows[id]
	_, noFile := t.noFileInput[id]
	panel := panelRows[id]

	return models.Capability{
		LettersOnly:    letters,
		NeedsKeyField:  panel == models.PanelNone,
		Panel:          panel,
		DigraphPreview: digraph,
		FileInput:      !noFile,
	}
}

// Catalog returns every known cipher, letters-only ciphers first, in the
// order the host listed them.
func (t *Table) Catalog() []models.CipherID {
	return slices.Clone(t.catalog)
}

// Known reports whether id is part of the catalog.
func (t *Table) Known(id models.CipherID) bool {
	return slices.Contains(t.catalog, id)
}
