// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package admission

import (
	"testing"

	"github.com/MKhiriev/go-cipher-desk/internal/capability"
	"github.com/MKhiriev/go-cipher-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"notes.txt":      "txt",
		"report.PDF":     "pdf",
		"archive.tar.GZ": "gz",
		"README":         "",
		"trailing.":      "",
		".txt":           "txt",
	}

	for in, want := range tests {
		assert.Equal(t, want, Extension(in), in)
	}
}

func TestNewSelectedFile(t *testing.T) {
	f := NewSelectedFile("/tmp/in/Notes.TXT")

	assert.Equal(t, models.SelectedFile{Name: "Notes.TXT", Extension: "txt", Path: "/tmp/in/Notes.TXT"}, f)
}

func TestAdmit_LettersOnly(t *testing.T) {
	g := NewGuard(capability.NewTable(nil, nil))

	d := g.Admit(NewSelectedFile("report.PDF"), capability.Vigenere)
	assert.False(t, d.Accepted)
	assert.Contains(t, d.Reason, "vigenere")
	require.NotNil(t, d.Notice)
	assert.Equal(t, models.NotificationError, d.Notice.Kind)

	d = g.Admit(NewSelectedFile("report.pdf"), capability.Playfair)
	assert.False(t, d.Accepted)

	d = g.Admit(NewSelectedFile("README"), capability.Hill)
	assert.False(t, d.Accepted)

	d = g.Admit(NewSelectedFile("notes.txt"), capability.Vigenere)
	assert.True(t, d.Accepted)
	require.NotNil(t, d.Notice)
	assert.Equal(t, models.NotificationInfo, d.Notice.Kind)
}

func TestAdmit_BinaryCapableAcceptsAnything(t *testing.T) {
	g := NewGuard(capability.NewTable(nil, nil))

	for _, name := range []string{"report.PDF", "notes.txt", "no_extension"} {
		d := g.Admit(NewSelectedFile(name), capability.ExtendedVigenere)
		assert.True(t, d.Accepted, name)
		assert.Nil(t, d.Notice, name)

		d = g.Admit(NewSelectedFile(name), "unknown")
		assert.True(t, d.Accepted, name)
	}
}
