package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cipher-desk/internal/config"
	"github.com/MKhiriev/go-cipher-desk/internal/crypto"
	"github.com/MKhiriev/go-cipher-desk/models"
)

// viewBinding holds the optional panes of the workbench. It is built once
// from the layout config. A nil pane renders nothing and ignores updates.
type viewBinding struct {
	preview *previewPane
	history *historyPane
	result  *resultPane
}

func newViewBinding(layout config.ClientUI) viewBinding {
	b := viewBinding{result: &resultPane{}}
	if layout.ShowPreview {
		b.preview = &previewPane{}
	}
	if layout.ShowHistory {
		b.history = &historyPane{}
	}
	return b
}

type previewPane struct {
	preview models.Preview
}

func (p *previewPane) update(preview models.Preview) {
	if p == nil {
		return
	}
	p.preview = preview
}

func (p *previewPane) view(width int) string {
	if p == nil || !p.preview.Active {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Digraph preview"))
	b.WriteString("\n")
	b.WriteString("Cleaned: ")
	b.WriteString(fitText(valueOrDash(p.preview.Cleaned), width))
	b.WriteString("\n")
	b.WriteString("Pairs:   ")
	b.WriteString(fitText(valueOrDash(strings.Join(p.preview.Pairs, " ")), width))
	return overlayBoxStyle.Render(b.String())
}

type resultPane struct {
	result models.SubmissionResult
	held   bool
}

func (p *resultPane) set(result models.SubmissionResult) {
	if p == nil {
		return
	}
	// failures keep the result area hidden
	p.result = result
	p.held = result.Success
}

func (p *resultPane) clear() {
	if p == nil {
		return
	}
	p.result = models.SubmissionResult{}
	p.held = false
}

func (p *resultPane) view(width int) string {
	if p == nil || !p.held {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Result"))
	b.WriteString("\n")
	b.WriteString(fitText(p.result.ResultText, width))
	b.WriteString("\n\n")
	b.WriteString("Base64:   ")
	b.WriteString(fitText(p.result.Payload, width))
	b.WriteString("\n")
	b.WriteString("Filename: ")
	b.WriteString(valueOrDash(p.result.Filename))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Size:     %d bytes", p.result.Size))
	return overlayBoxStyle.Render(b.String())
}

type historyPane struct {
	entries []models.HistoryEntry
	err     error
	visible bool
}

func (p *historyPane) toggle() bool {
	if p == nil {
		return false
	}
	p.visible = !p.visible
	return p.visible
}

func (p *historyPane) update(entries []models.HistoryEntry, err error) {
	if p == nil {
		return
	}
	p.entries = entries
	p.err = err
}

func (p *historyPane) view(width int) string {
	if p == nil || !p.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("History"))
	b.WriteString("\n")

	switch {
	case p.err != nil:
		b.WriteString(errorStyle.Render("Failed to load history: " + p.err.Error()))
	case len(p.entries) == 0:
		b.WriteString("No jobs yet.")
	default:
		for i, e := range p.entries {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(fitText(historyLine(e), width))
		}
	}

	return overlayBoxStyle.Render(b.String())
}

func historyLine(e models.HistoryEntry) string {
	outcome := "ok"
	detail := fmt.Sprintf("%s, %d bytes", valueOrDash(e.Filename), e.Size)
	if e.Digest != "" {
		detail += "  #" + crypto.Short(e.Digest)
	}
	if !e.Success {
		outcome = "failed"
		detail = e.Error
	}

	return fmt.Sprintf("%s  %-18s %-7s %-4s %-6s %s",
		e.CreatedAt.Local().Format("2006-01-02 15:04"),
		e.CipherID, e.Operation, e.Mode, outcome, detail)
}
