// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package formstate

import (
	"testing"

	"github.com/MKhiriev/go-cipher-desk/internal/capability"
	"github.com/MKhiriev/go-cipher-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable() *capability.Table {
	return capability.NewTable(nil, nil)
}

func TestReconfigure_KeyFieldCipher(t *testing.T) {
	s := Reconfigure(newTable(), capability.Vigenere, models.ModeText)

	assert.Equal(t, models.PanelNone, s.Panel)
	assert.True(t, s.KeyFieldVisible)
	assert.True(t, s.KeyFieldRequired)
	assert.True(t, s.FileInputEnabled)
	assert.Equal(t, "txt", s.AcceptedExtension)
	require.NotNil(t, s.Advisory)
	assert.Equal(t, models.NotificationInfo, s.Advisory.Kind)
	assert.Contains(t, s.Advisory.Message, ".txt")
	assert.False(t, s.PreviewActive)
}

func TestReconfigure_StructuredCipher(t *testing.T) {
	tests := []struct {
		cipher models.CipherID
		panel  models.ParamPanel
	}{
		{capability.Affine, models.PanelAffine},
		{capability.Hill, models.PanelHill},
		{capability.Super, models.PanelSuper},
		{capability.Enigma, models.PanelEnigma},
	}

	for _, tt := range tests {
		t.Run(string(tt.cipher), func(t *testing.T) {
			s := Reconfigure(newTable(), tt.cipher, models.ModeText)
			assert.Equal(t, tt.panel, s.Panel)
			assert.False(t, s.KeyFieldVisible)
			assert.False(t, s.KeyFieldRequired)
		})
	}
}

func TestReconfigure_BinaryCipherHasNoRestriction(t *testing.T) {
	s := Reconfigure(newTable(), capability.ExtendedVigenere, models.ModeFile)

	assert.Empty(t, s.AcceptedExtension)
	assert.Nil(t, s.Advisory)
	assert.Equal(t, models.ModeFile, s.EffectiveMode)
}

func TestReconfigure_KeepsFileModeForLettersOnly(t *testing.T) {
	s := Reconfigure(newTable(), capability.Playfair, models.ModeFile)

	assert.Equal(t, models.ModeFile, s.EffectiveMode)
	assert.True(t, s.PreviewActive)
}

func TestMachine_SwitchingBackAndForthIsStable(t *testing.T) {
	m := NewMachine(newTable(), capability.Vigenere)

	for i := 0; i < 3; i++ {
		s := m.SelectCipher(capability.Hill)
		assert.False(t, s.KeyFieldVisible)
		assert.False(t, s.KeyFieldRequired)
		assert.Equal(t, models.PanelHill, s.Panel)

		s = m.SelectCipher(capability.Vigenere)
		assert.True(t, s.KeyFieldVisible)
		assert.True(t, s.KeyFieldRequired)
		assert.Equal(t, models.PanelNone, s.Panel)
	}

	for _, id := range newTable().Catalog() {
		s := m.SelectCipher(id)
		assert.Equal(t, s.KeyFieldVisible, s.KeyFieldRequired, "cipher %s", id)
	}
}

func TestMachine_SelectCipherKeepsMode(t *testing.T) {
	m := NewMachine(newTable(), capability.Super)
	m.SelectMode(models.ModeFile)

	s := m.SelectCipher(capability.Vigenere)
	assert.Equal(t, models.ModeFile, s.EffectiveMode)
	assert.Equal(t, s, m.State())
}

func TestMachine_SelectFileWhenDisabledReverts(t *testing.T) {
	tbl := capability.NewTable(nil, nil, capability.WithFileInputDisabled(capability.Enigma))
	m := NewMachine(tbl, capability.Enigma)

	s := m.SelectMode(models.ModeFile)
	assert.Equal(t, models.ModeText, s.EffectiveMode)
	require.NotNil(t, s.Advisory)
	assert.Equal(t, models.NotificationError, s.Advisory.Kind)

	s = m.SelectCipher(capability.Hill)
	assert.Equal(t, models.ModeText, s.EffectiveMode)
	s = m.SelectMode(models.ModeFile)
	assert.Equal(t, models.ModeFile, s.EffectiveMode)
}
