package tui

import (
	"github.com/MKhiriev/go-cipher-desk/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel wraps the workbench:
// 1) handles global Ctrl+C quit
// 2) shows the build info window on top of the workbench
// 3) delegates all other messages to the workbench
type RootModel struct {
	workbench tea.Model

	buildInfo      models.AppBuildInfo
	serviceAddress string
	showBuildInfo  bool
}

// NewRootModel wraps workbench with the global key handling.
func NewRootModel(workbench tea.Model, buildInfo models.AppBuildInfo, serviceAddress string) RootModel {
	return RootModel{
		workbench:      workbench,
		buildInfo:      buildInfo,
		serviceAddress: serviceAddress,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.workbench == nil {
		return nil
	}
	return r.workbench.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc):
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if r.workbench == nil {
		return r, nil
	}

	updated, cmd := r.workbench.Update(msg)
	r.workbench = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo, r.serviceAddress))
	}
	if r.workbench == nil {
		return renderPage("CIPHER DESK", "", "")
	}
	return r.workbench.View()
}
