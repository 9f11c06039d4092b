// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InputMode selects where the transform payload comes from.
type InputMode int

const (
	// ModeText submits the contents of the text area.
	ModeText InputMode = iota
	// ModeFile submits the bytes of the staged file.
	ModeFile
)

// String returns the wire name of the mode ("text" or "file").
func (m InputMode) String() string {
	if m == ModeFile {
		return "file"
	}
	return "text"
}

// Operation is the transform direction requested from the service.
type Operation string

const (
	OperationEncrypt Operation = "encrypt"
	OperationDecrypt Operation = "decrypt"
)

// Toggle returns the opposite operation.
func (o Operation) Toggle() Operation {
	if o == OperationDecrypt {
		return OperationEncrypt
	}
	return OperationDecrypt
}

// SelectedFile describes the file currently staged for submission.
type SelectedFile struct {
	// Name is the base name of the file as shown to the user.
	Name string
	// Extension is the lower-cased text after the final dot, or "".
	Extension string
	// Path is the location the file is read from at submit time.
	Path string
}

// FilePayload is the file part of a [FormSnapshot].
type FilePayload struct {
	Name string
	Data []byte
}

// AffineParams are the coefficients of the affine cipher E(x) = (a*x + b) mod 26.
type AffineParams struct {
	A int
	B int
}

// DefaultAffineParams returns the coefficients the service falls back to.
func DefaultAffineParams() AffineParams {
	return AffineParams{A: 5, B: 8}
}

// HillParams holds the square key matrix of the Hill cipher.
type HillParams struct {
	Matrix [][]int
}

// DefaultHillParams returns the 3x3 matrix the service falls back to.
func DefaultHillParams() HillParams {
	return HillParams{Matrix: [][]int{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}}
}

// EnigmaParams holds the machine settings of the Enigma cipher.
// All values are forwarded to the service as entered.
type EnigmaParams struct {
	Rotors    string
	Positions string
	Rings     string
	Reflector string
	Plugboard string
}

// FormSnapshot is the complete set of form values captured at the moment of
// submission. It is never mutated after construction and belongs to the
// request it was built for.
type FormSnapshot struct {
	CipherID  CipherID
	Operation Operation
	Mode      InputMode

	// Text is sent in ModeText.
	Text string
	// File is sent in ModeFile; nil means no file was staged.
	File *FilePayload

	// Key is the free-text key, or the Extended Vigenere key of the super
	// cipher.
	Key string
	// Key2 is the columnar transposition key of the super cipher.
	Key2 string

	Affine *AffineParams
	Hill   *HillParams
	Enigma *EnigmaParams
}
