// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UIState is the legal form configuration derived for one cipher and input
// mode. It is recomputed from scratch on every cipher change.
type UIState struct {
	Cipher CipherID

	// Panel is the structured-parameter panel to show, or PanelNone.
	Panel ParamPanel

	KeyFieldVisible  bool
	KeyFieldRequired bool

	FileInputEnabled bool

	// AcceptedExtension is the only file extension allowed, or "" when any
	// extension is accepted.
	AcceptedExtension string

	// Advisory is an optional message describing the current restrictions.
	Advisory *Notification

	EffectiveMode InputMode

	// PreviewActive reports whether the digraph preview applies.
	PreviewActive bool
}

// Preview is the derived digraph preview for the current text.
type Preview struct {
	Active  bool
	Cleaned string
	Pairs   []string
}
