package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cipher-desk/internal/admission"
	"github.com/MKhiriev/go-cipher-desk/models"
)

func (m workbenchModel) View() string {
	state := m.machine.State()
	target := m.focused()

	var b strings.Builder

	b.WriteString(m.label("Cipher", target.field == fieldCipher))
	b.WriteString(m.cipherRow())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Operation"))
	b.WriteString(string(m.operation))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Input"))
	b.WriteString(state.EffectiveMode.String())
	if state.AcceptedExtension != "" {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  (files: .%s only)", state.AcceptedExtension)))
	}
	b.WriteString("\n\n")

	if state.EffectiveMode == models.ModeFile {
		b.WriteString(m.label("File", target.field == fieldFile))
		b.WriteString(m.filePath.View())
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Selected"))
		if m.staged != nil {
			b.WriteString(m.staged.Name)
		} else {
			b.WriteString(admission.NoneSelected)
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.label("Text", target.field == fieldText))
		b.WriteString("\n")
		b.WriteString(m.text.View())
		b.WriteString("\n")
	}

	if state.KeyFieldVisible {
		b.WriteString(m.label("Key", target.field == fieldKey))
		b.WriteString(m.key.View())
		b.WriteString("\n")
	}

	if inputs := m.params[state.Panel]; len(inputs) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(strings.ToUpper(state.Panel.String()) + " parameters"))
		b.WriteString("\n")
		for i, spec := range paramSpecs[state.Panel] {
			focused := target.field == fieldParam && target.index == i
			b.WriteString(m.label(spec.label, focused))
			b.WriteString(inputs[i].View())
			b.WriteString("\n")
		}
	}

	if pane := m.binding.preview.view(m.width); pane != "" {
		b.WriteString("\n")
		b.WriteString(pane)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.busy {
		b.WriteString(infoStyle.Render("Processing..."))
		b.WriteString("\n")
	}
	if n := renderNotification(m.notice); n != "" {
		b.WriteString(n)
		b.WriteString("\n")
	}

	if pane := m.binding.result.view(m.width); pane != "" {
		b.WriteString("\n")
		b.WriteString(pane)
		b.WriteString("\n")
	}

	if pane := m.binding.history.view(m.width); pane != "" {
		b.WriteString("\n")
		b.WriteString(pane)
		b.WriteString("\n")
	}

	return appStyle.Render(renderPage("CIPHER DESK", b.String(), hotKeysHelp))
}

func (m workbenchModel) cipherRow() string {
	if len(m.catalog) == 0 {
		return "-"
	}
	current := m.catalog[m.cipherIdx]
	return fmt.Sprintf("◀ %s ▶  %s", focusedStyle.Render(current.String()),
		helpStyle.Render(fmt.Sprintf("%d/%d", m.cipherIdx+1, len(m.catalog))))
}

func (m workbenchModel) label(text string, focused bool) string {
	if focused {
		return focusedStyle.Inherit(labelStyle).Render("> " + text)
	}
	return labelStyle.Render("  " + text)
}
