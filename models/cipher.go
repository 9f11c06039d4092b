// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CipherID identifies a cipher algorithm offered by the transform service
// (e.g. "playfair", "extended_vigenere"). The value is opaque to the client:
// everything the client knows about a cipher comes from its [Capability].
type CipherID string

// String implements fmt.Stringer.
func (c CipherID) String() string {
	return string(c)
}

// TextFileExtension is the only file extension letters-only ciphers accept.
const TextFileExtension = "txt"

// ParamPanel selects which structured-parameter panel a cipher needs instead
// of the free-text key field.
type ParamPanel int

const (
	// PanelNone means the cipher is configured through the key field only.
	PanelNone ParamPanel = iota

	// PanelAffine holds the two affine coefficients a and b.
	PanelAffine

	// PanelHill holds the square key matrix.
	PanelHill

	// PanelSuper holds the Extended Vigenere key and the transposition key.
	PanelSuper

	// PanelEnigma holds rotor order, start positions, ring settings,
	// reflector and plugboard pairs.
	PanelEnigma
)

// String returns the lower-case panel name used in logs and the UI.
func (p ParamPanel) String() string {
	switch p {
	case PanelAffine:
		return "affine"
	case PanelHill:
		return "hill"
	case PanelSuper:
		return "super"
	case PanelEnigma:
		return "enigma"
	default:
		return "none"
	}
}

// Capability is the classification of a single cipher.
type Capability struct {
	// LettersOnly is true when the cipher works on A–Z only. Such ciphers
	// accept only .txt files and discard every non-letter character.
	LettersOnly bool

	// NeedsKeyField is true when the cipher takes a free-text key. It is
	// always the negation of "Panel != PanelNone".
	NeedsKeyField bool

	// Panel is the structured-parameter panel shown instead of the key
	// field, or PanelNone.
	Panel ParamPanel

	// DigraphPreview marks ciphers whose input is split into letter pairs
	// before substitution and therefore get a live pairing preview.
	DigraphPreview bool

	// FileInput reports whether the file input affordance is offered.
	FileInput bool
}
