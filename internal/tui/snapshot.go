package tui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-cipher-desk/models"
)

var (
	errKeyRequired = errors.New("key is required for this cipher")
	errHillMatrix  = errors.New("hill matrix must be a JSON array of integer rows")
)

// formValues are the raw field contents the snapshot is built from.
type formValues struct {
	operation models.Operation
	text      string
	key       string
	staged    *models.SelectedFile

	// params holds the inputs of the panel selected by the UI state, in
	// paramSpecs order.
	params []string
}

// buildSnapshot captures the form as it is right now. The staged file is
// read here, so its contents are the ones on disk at submit time. File mode
// with nothing staged is sent without a file and the service reports it.
func buildSnapshot(state models.UIState, values formValues) (models.FormSnapshot, error) {
	snapshot := models.FormSnapshot{
		CipherID:  state.Cipher,
		Operation: values.operation,
		Mode:      state.EffectiveMode,
	}

	switch {
	case state.EffectiveMode != models.ModeFile:
		snapshot.Text = values.text
	case values.staged != nil:
		data, err := os.ReadFile(values.staged.Path)
		if err != nil {
			return models.FormSnapshot{}, fmt.Errorf("read %s: %w", values.staged.Name, err)
		}
		snapshot.File = &models.FilePayload{Name: values.staged.Name, Data: data}
	}

	if state.KeyFieldVisible {
		if state.KeyFieldRequired && strings.TrimSpace(values.key) == "" {
			return models.FormSnapshot{}, errKeyRequired
		}
		snapshot.Key = values.key
	}

	param := func(i int) string {
		if i < len(values.params) {
			return strings.TrimSpace(values.params[i])
		}
		return ""
	}

	switch state.Panel {
	case models.PanelAffine:
		affine, err := parseAffine(param(0), param(1))
		if err != nil {
			return models.FormSnapshot{}, err
		}
		snapshot.Affine = &affine
	case models.PanelHill:
		hill, err := parseHill(param(0))
		if err != nil {
			return models.FormSnapshot{}, err
		}
		snapshot.Hill = &hill
	case models.PanelSuper:
		snapshot.Key = param(0)
		snapshot.Key2 = param(1)
	case models.PanelEnigma:
		snapshot.Enigma = &models.EnigmaParams{
			Rotors:    param(0),
			Positions: param(1),
			Rings:     param(2),
			Reflector: param(3),
			Plugboard: param(4),
		}
	}

	return snapshot, nil
}

// parseAffine reads the two coefficients. An empty field takes the
// service default.
func parseAffine(a, b string) (models.AffineParams, error) {
	params := models.DefaultAffineParams()

	if a != "" {
		v, err := strconv.Atoi(a)
		if err != nil {
			return models.AffineParams{}, fmt.Errorf("affine a: %q is not an integer", a)
		}
		params.A = v
	}
	if b != "" {
		v, err := strconv.Atoi(b)
		if err != nil {
			return models.AffineParams{}, fmt.Errorf("affine b: %q is not an integer", b)
		}
		params.B = v
	}

	return params, nil
}

// parseHill reads the key matrix as JSON. An empty field takes the service
// default. The shape is checked by the snapshot validator.
func parseHill(raw string) (models.HillParams, error) {
	if raw == "" {
		return models.DefaultHillParams(), nil
	}

	var matrix [][]int
	if err := json.Unmarshal([]byte(raw), &matrix); err != nil {
		return models.HillParams{}, fmt.Errorf("%w: %v", errHillMatrix, err)
	}

	return models.HillParams{Matrix: matrix}, nil
}
