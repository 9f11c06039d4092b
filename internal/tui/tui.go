// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal workbench of the client: cipher and
// mode selection, file staging, the digraph preview, and the submission
// result with download and copy actions.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-cipher-desk/internal/capability"
	"github.com/MKhiriev/go-cipher-desk/internal/config"
	"github.com/MKhiriev/go-cipher-desk/internal/logger"
	"github.com/MKhiriev/go-cipher-desk/internal/service"
	"github.com/MKhiriev/go-cipher-desk/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNilServices = errors.New("tui: client services are nil")

type TUI struct {
	services       *service.ClientServices
	table          *capability.Table
	layout         config.ClientUI
	buildInfo      models.AppBuildInfo
	serviceAddress string
	logger         *logger.Logger
}

func New(
	services *service.ClientServices,
	table *capability.Table,
	cfg *config.ClientConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*TUI, error) {
	if services == nil || services.Submission == nil {
		return nil, ErrNilServices
	}

	return &TUI{
		services:       services,
		table:          table,
		layout:         cfg.UI,
		buildInfo:      buildInfo,
		serviceAddress: cfg.Adapter.HTTPAddress,
		logger:         logger,
	}, nil
}

// Run shows the workbench and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	workbench := newWorkbenchModel(ctx, t.table, t.services, t.layout, t.logger)
	root := NewRootModel(workbench, t.buildInfo, t.serviceAddress)

	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
