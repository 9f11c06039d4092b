package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-cipher-desk/internal/admission"
	"github.com/MKhiriev/go-cipher-desk/internal/app"
	"github.com/MKhiriev/go-cipher-desk/internal/capability"
	"github.com/MKhiriev/go-cipher-desk/internal/config"
	"github.com/MKhiriev/go-cipher-desk/internal/formstate"
	"github.com/MKhiriev/go-cipher-desk/internal/logger"
	"github.com/MKhiriev/go-cipher-desk/internal/preview"
	"github.com/MKhiriev/go-cipher-desk/internal/service"
	"github.com/MKhiriev/go-cipher-desk/internal/validators"
	"github.com/MKhiriev/go-cipher-desk/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type field int

const (
	fieldCipher field = iota
	fieldText
	fieldFile
	fieldKey
	fieldParam
)

type focusTarget struct {
	field field
	index int
}

// workbenchModel is the single screen of the client: cipher selection,
// input, parameters, and the submission result.
type workbenchModel struct {
	ctx context.Context

	catalog []models.CipherID
	machine *formstate.Machine
	guard   *admission.Guard
	preview *preview.Engine

	validator  validators.Validator
	submission service.SubmissionController
	history    service.HistoryService

	binding viewBinding

	cipherIdx int
	operation models.Operation
	text      textarea.Model
	key       textinput.Model
	filePath  textinput.Model
	params    map[models.ParamPanel][]textinput.Model
	staged    *models.SelectedFile

	focus  int
	notice *models.Notification
	busy   bool
	width  int

	logger *logger.Logger
}

func newWorkbenchModel(
	ctx context.Context,
	table *capability.Table,
	services *service.ClientServices,
	layout config.ClientUI,
	logger *logger.Logger,
) workbenchModel {
	catalog := table.Catalog()
	initial := models.CipherID("")
	if len(catalog) > 0 {
		initial = catalog[0]
	}

	text := textarea.New()
	text.Placeholder = "Text to encrypt or decrypt"
	text.ShowLineNumbers = false
	text.CharLimit = 0
	text.SetWidth(60)
	text.SetHeight(4)

	m := workbenchModel{
		ctx:        ctx,
		catalog:    catalog,
		machine:    formstate.NewMachine(table, initial),
		guard:      admission.NewGuard(table),
		preview:    preview.NewEngine(table),
		validator:  validators.NewSnapshotValidator(),
		submission: services.Submission,
		history:    services.History,
		binding:    newViewBinding(layout),
		operation:  models.OperationEncrypt,
		text:       text,
		key:        newInput("key", 40),
		filePath:   newInput("path to file, enter to select", 50),
		params:     newParamInputs(),
		width:      60,
		logger:     logger,
	}
	m.notice = m.machine.State().Advisory
	m.refreshPreview()
	m.applyFocus()

	return m
}

func (m workbenchModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m workbenchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width-8, 20)
		m.text.SetWidth(m.width)
		return m, nil
	case submitDoneMsg:
		// busy goes first so nothing is published while still submitting
		m.busy = false
		m.binding.result.set(msg.result)
		m.notice = service.Notify(msg.result, msg.err)
		return m, m.cmdRefreshHistory()
	case downloadDoneMsg:
		m.notice = service.NotifyDownload(msg.path, msg.err)
		return m, nil
	case copyDoneMsg:
		m.notice = service.NotifyCopy(msg.err)
		return m, nil
	case historyLoadedMsg:
		m.binding.history.update(msg.entries, msg.err)
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateFocused(msg)
}

func (m workbenchModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.submit):
		return m.submit()
	case key.Matches(msg, keys.download):
		return m, m.cmdDownload()
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy()
	case key.Matches(msg, keys.reset):
		m.reset()
		return m, nil
	case key.Matches(msg, keys.history):
		if m.binding.history == nil {
			m.notice = models.Info(app.MsgHistoryDisabled)
			return m, nil
		}
		if m.binding.history.toggle() {
			return m, m.cmdLoadHistory()
		}
		return m, nil
	case key.Matches(msg, keys.operation):
		m.operation = m.operation.Toggle()
		return m, nil
	case key.Matches(msg, keys.mode):
		m.toggleMode()
		cmd := m.applyFocus()
		return m, cmd
	case key.Matches(msg, keys.tab):
		m.focus++
		cmd := m.applyFocus()
		return m, cmd
	case key.Matches(msg, keys.backtab):
		m.focus--
		cmd := m.applyFocus()
		return m, cmd
	}

	switch m.focused().field {
	case fieldCipher:
		switch {
		case key.Matches(msg, keys.left):
			m.selectCipher(m.cipherIdx - 1)
		case key.Matches(msg, keys.right):
			m.selectCipher(m.cipherIdx + 1)
		}
		return m, nil
	case fieldFile:
		if key.Matches(msg, keys.enter) {
			m.stageFile()
			return m, nil
		}
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input.
func (m workbenchModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	target := m.focused()

	switch target.field {
	case fieldText:
		m.text, cmd = m.text.Update(msg)
		m.refreshPreview()
	case fieldKey:
		m.key, cmd = m.key.Update(msg)
		m.refreshPreview()
	case fieldFile:
		m.filePath, cmd = m.filePath.Update(msg)
	case fieldParam:
		inputs := m.params[m.machine.State().Panel]
		if target.index < len(inputs) {
			inputs[target.index], cmd = inputs[target.index].Update(msg)
		}
	}

	return m, cmd
}

func (m workbenchModel) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		m.notice = service.Notify(models.SubmissionResult{}, service.ErrSubmissionInFlight)
		return m, nil
	}

	snapshot, err := buildSnapshot(m.machine.State(), m.formValues())
	if err == nil {
		err = m.validator.Validate(m.ctx, snapshot)
	}
	if err != nil {
		m.notice = models.Error(err.Error())
		return m, nil
	}

	m.busy = true
	m.notice = nil
	m.binding.result.clear()

	m.logger.Debug().
		Str("cipher", snapshot.CipherID.String()).
		Str("operation", string(snapshot.Operation)).
		Str("mode", snapshot.Mode.String()).
		Msg("submitting")

	return m, m.cmdSubmit(snapshot)
}

func (m *workbenchModel) selectCipher(idx int) {
	if len(m.catalog) == 0 {
		return
	}
	m.cipherIdx = (idx + len(m.catalog)) % len(m.catalog)

	state := m.machine.SelectCipher(m.catalog[m.cipherIdx])
	m.notice = state.Advisory
	m.refreshPreview()
	m.applyFocus()
}

func (m *workbenchModel) toggleMode() {
	next := models.ModeFile
	if m.machine.State().EffectiveMode == models.ModeFile {
		next = models.ModeText
	}

	state := m.machine.SelectMode(next)
	m.notice = state.Advisory
}

// stageFile runs the admission guard on the path in the file input. A
// rejected file is dropped; an unreadable path keeps the previous choice.
func (m *workbenchModel) stageFile() {
	path := strings.TrimSpace(m.filePath.Value())
	if path == "" {
		m.notice = models.Error(app.MsgEnterFilePath)
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		m.notice = models.Error(fmt.Sprintf("Cannot open %q: %v", path, err))
		return
	}
	if info.IsDir() {
		m.notice = models.Error(fmt.Sprintf("%q is a directory.", path))
		return
	}

	file := admission.NewSelectedFile(path)
	decision := m.guard.Admit(file, m.machine.State().Cipher)
	if !decision.Accepted {
		m.staged = nil
		m.filePath.Reset()
		m.notice = decision.Notice
		return
	}

	m.staged = &file
	m.notice = decision.Notice
	if m.notice == nil {
		m.notice = models.Info(fmt.Sprintf("Selected %s (%d bytes).", file.Name, info.Size()))
	}
}

// reset returns the whole form to its initial state and drops any held
// result.
func (m *workbenchModel) reset() {
	m.submission.Reset()
	m.binding.result.clear()

	m.cipherIdx = 0
	if len(m.catalog) > 0 {
		m.machine.SelectCipher(m.catalog[0])
	}
	m.machine.SelectMode(models.ModeText)

	m.operation = models.OperationEncrypt
	m.text.Reset()
	m.key.Reset()
	m.filePath.Reset()
	for _, inputs := range m.params {
		for i := range inputs {
			inputs[i].Reset()
		}
	}
	m.staged = nil
	m.notice = nil
	m.focus = 0

	m.refreshPreview()
	m.applyFocus()
}

func (m *workbenchModel) refreshPreview() {
	state := m.machine.State()
	m.binding.preview.update(m.preview.Render(state.Cipher, m.text.Value(), m.key.Value()))
}

func (m workbenchModel) formValues() formValues {
	return formValues{
		operation: m.operation,
		text:      m.text.Value(),
		key:       m.key.Value(),
		staged:    m.staged,
		params:    inputValues(m.params[m.machine.State().Panel]),
	}
}

// focusOrder lists the inputs reachable with tab for the current state.
func (m workbenchModel) focusOrder() []focusTarget {
	state := m.machine.State()

	order := []focusTarget{{field: fieldCipher}}
	if state.EffectiveMode == models.ModeFile {
		order = append(order, focusTarget{field: fieldFile})
	} else {
		order = append(order, focusTarget{field: fieldText})
	}
	if state.KeyFieldVisible {
		order = append(order, focusTarget{field: fieldKey})
	}
	for i := range m.params[state.Panel] {
		order = append(order, focusTarget{field: fieldParam, index: i})
	}

	return order
}

func (m workbenchModel) focused() focusTarget {
	order := m.focusOrder()
	return order[m.focus]
}

// applyFocus wraps the focus index into the current order and moves the
// cursor to the matching input.
func (m *workbenchModel) applyFocus() tea.Cmd {
	order := m.focusOrder()
	m.focus = (m.focus%len(order) + len(order)) % len(order)

	m.text.Blur()
	m.key.Blur()
	m.filePath.Blur()
	for _, inputs := range m.params {
		for i := range inputs {
			inputs[i].Blur()
		}
	}

	target := order[m.focus]
	switch target.field {
	case fieldText:
		return m.text.Focus()
	case fieldKey:
		return m.key.Focus()
	case fieldFile:
		return m.filePath.Focus()
	case fieldParam:
		inputs := m.params[m.machine.State().Panel]
		return inputs[target.index].Focus()
	}

	return nil
}

func (m workbenchModel) cmdSubmit(snapshot models.FormSnapshot) tea.Cmd {
	ctx, submission := m.ctx, m.submission
	return func() tea.Msg {
		result, err := submission.Submit(ctx, snapshot)
		return submitDoneMsg{result: result, err: err}
	}
}

func (m workbenchModel) cmdDownload() tea.Cmd {
	ctx, submission := m.ctx, m.submission
	return func() tea.Msg {
		path, err := submission.Download(ctx)
		return downloadDoneMsg{path: path, err: err}
	}
}

func (m workbenchModel) cmdCopy() tea.Cmd {
	submission := m.submission
	return func() tea.Msg {
		return copyDoneMsg{err: submission.Copy()}
	}
}

func (m workbenchModel) cmdLoadHistory() tea.Cmd {
	ctx, history := m.ctx, m.history
	return func() tea.Msg {
		entries, err := history.Recent(ctx, service.DefaultHistoryLimit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

// cmdRefreshHistory reloads the history pane only while it is shown.
func (m workbenchModel) cmdRefreshHistory() tea.Cmd {
	if m.binding.history == nil || !m.binding.history.visible {
		return nil
	}
	return m.cmdLoadHistory()
}
