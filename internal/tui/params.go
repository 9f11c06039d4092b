package tui

import (
	"github.com/MKhiriev/go-cipher-desk/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type paramSpec struct {
	label       string
	placeholder string
}

// paramSpecs lists the inputs of each structured-parameter panel in
// display order. buildSnapshot reads values in the same order.
var paramSpecs = map[models.ParamPanel][]paramSpec{
	models.PanelAffine: {
		{label: "a", placeholder: "5"},
		{label: "b", placeholder: "8"},
	},
	models.PanelHill: {
		{label: "Matrix", placeholder: "[[6,24,1],[13,16,10],[20,17,15]]"},
	},
	models.PanelSuper: {
		{label: "Vigenere key", placeholder: "extended vigenere key"},
		{label: "Column key", placeholder: "transposition key"},
	},
	models.PanelEnigma: {
		{label: "Rotors", placeholder: "I II III"},
		{label: "Positions", placeholder: "AAA"},
		{label: "Rings", placeholder: "AAA"},
		{label: "Reflector", placeholder: "B"},
		{label: "Plugboard", placeholder: "AB CD EF"},
	},
}

func newParamInputs() map[models.ParamPanel][]textinput.Model {
	inputs := make(map[models.ParamPanel][]textinput.Model, len(paramSpecs))
	for panel, specs := range paramSpecs {
		row := make([]textinput.Model, len(specs))
		for i, spec := range specs {
			row[i] = newInput(spec.placeholder, 40)
		}
		inputs[panel] = row
	}
	return inputs
}

func newInput(placeholder string, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = width
	in.Prompt = ""
	return in
}

func inputValues(inputs []textinput.Model) []string {
	values := make([]string, len(inputs))
	for i, in := range inputs {
		values[i] = in.Value()
	}
	return values
}
