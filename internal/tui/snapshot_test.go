package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-cipher-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("HELLO"), 0o600))

	keyState := models.UIState{Cipher: "vigenere", KeyFieldVisible: true, KeyFieldRequired: true}

	tests := []struct {
		name    string
		state   models.UIState
		values  formValues
		want    models.FormSnapshot
		wantErr string
	}{
		{
			name:   "text with key",
			state:  keyState,
			values: formValues{operation: models.OperationEncrypt, text: "attack", key: "LEMON"},
			want: models.FormSnapshot{
				CipherID: "vigenere", Operation: models.OperationEncrypt, Mode: models.ModeText,
				Text: "attack", Key: "LEMON",
			},
		},
		{
			name:    "blank key rejected",
			state:   keyState,
			values:  formValues{operation: models.OperationEncrypt, text: "attack", key: "  "},
			wantErr: errKeyRequired.Error(),
		},
		{
			name: "file mode reads staged file",
			state: models.UIState{
				Cipher: "vigenere", KeyFieldVisible: true, KeyFieldRequired: true, EffectiveMode: models.ModeFile,
			},
			values: formValues{
				operation: models.OperationDecrypt,
				text:      "ignored",
				key:       "K",
				staged:    &models.SelectedFile{Name: "plain.txt", Extension: "txt", Path: path},
			},
			want: models.FormSnapshot{
				CipherID: "vigenere", Operation: models.OperationDecrypt, Mode: models.ModeFile,
				File: &models.FilePayload{Name: "plain.txt", Data: []byte("HELLO")}, Key: "K",
			},
		},
		{
			name:   "file mode without staged file is still sent",
			state:  models.UIState{Cipher: "super", Panel: models.PanelSuper, EffectiveMode: models.ModeFile},
			values: formValues{operation: models.OperationEncrypt, text: "ignored", params: []string{"VIG", "COL"}},
			want: models.FormSnapshot{
				CipherID: "super", Operation: models.OperationEncrypt, Mode: models.ModeFile,
				Key: "VIG", Key2: "COL",
			},
		},
		{
			name:  "file vanished before submit",
			state: models.UIState{Cipher: "super", Panel: models.PanelSuper, EffectiveMode: models.ModeFile},
			values: formValues{
				operation: models.OperationEncrypt,
				staged:    &models.SelectedFile{Name: "gone.bin", Path: filepath.Join(dir, "gone.bin")},
			},
			wantErr: "read gone.bin",
		},
		{
			name:   "affine defaults",
			state:  models.UIState{Cipher: "affine", Panel: models.PanelAffine},
			values: formValues{operation: models.OperationEncrypt, text: "abc", params: []string{"", ""}},
			want: models.FormSnapshot{
				CipherID: "affine", Operation: models.OperationEncrypt, Mode: models.ModeText,
				Text: "abc", Affine: &models.AffineParams{A: 5, B: 8},
			},
		},
		{
			name:   "affine values",
			state:  models.UIState{Cipher: "affine", Panel: models.PanelAffine},
			values: formValues{operation: models.OperationEncrypt, params: []string{" 7 ", "3"}},
			want: models.FormSnapshot{
				CipherID: "affine", Operation: models.OperationEncrypt, Mode: models.ModeText,
				Affine: &models.AffineParams{A: 7, B: 3},
			},
		},
		{
			name:    "affine not a number",
			state:   models.UIState{Cipher: "affine", Panel: models.PanelAffine},
			values:  formValues{operation: models.OperationEncrypt, params: []string{"x", "3"}},
			wantErr: `affine a: "x" is not an integer`,
		},
		{
			name:   "hill default matrix",
			state:  models.UIState{Cipher: "hill", Panel: models.PanelHill},
			values: formValues{operation: models.OperationEncrypt},
			want: models.FormSnapshot{
				CipherID: "hill", Operation: models.OperationEncrypt, Mode: models.ModeText,
				Hill: &models.HillParams{Matrix: [][]int{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}},
			},
		},
		{
			name:   "hill 2x2",
			state:  models.UIState{Cipher: "hill", Panel: models.PanelHill},
			values: formValues{operation: models.OperationEncrypt, params: []string{"[[3,3],[2,5]]"}},
			want: models.FormSnapshot{
				CipherID: "hill", Operation: models.OperationEncrypt, Mode: models.ModeText,
				Hill: &models.HillParams{Matrix: [][]int{{3, 3}, {2, 5}}},
			},
		},
		{
			name:    "hill not json",
			state:   models.UIState{Cipher: "hill", Panel: models.PanelHill},
			values:  formValues{operation: models.OperationEncrypt, params: []string{"[[3,3],[2,"}},
			wantErr: errHillMatrix.Error(),
		},
		{
			name:   "super keys",
			state:  models.UIState{Cipher: "super", Panel: models.PanelSuper},
			values: formValues{operation: models.OperationEncrypt, text: "x", key: "stale", params: []string{"VIG", "COL"}},
			want: models.FormSnapshot{
				CipherID: "super", Operation: models.OperationEncrypt, Mode: models.ModeText,
				Text: "x", Key: "VIG", Key2: "COL",
			},
		},
		{
			name:  "enigma settings",
			state: models.UIState{Cipher: "enigma", Panel: models.PanelEnigma},
			values: formValues{
				operation: models.OperationDecrypt,
				params:    []string{"I II III", "ABC", "AAA", "B", "AB CD"},
			},
			want: models.FormSnapshot{
				CipherID: "enigma", Operation: models.OperationDecrypt, Mode: models.ModeText,
				Enigma: &models.EnigmaParams{
					Rotors: "I II III", Positions: "ABC", Rings: "AAA", Reflector: "B", Plugboard: "AB CD",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildSnapshot(tt.state, tt.values)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
