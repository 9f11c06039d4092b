// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-cipher-desk/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, serviceAddress string) string {
	var b strings.Builder

	b.WriteString("Application: cipher-desk\n")
	for _, line := range info.Lines() {
		b.WriteString(line.Label)
		b.WriteString(": ")
		b.WriteString(line.Value)
		b.WriteString("\n")
	}
	b.WriteString("Transform service: ")
	b.WriteString(models.OrNotAvailable(serviceAddress))

	return renderPage("ABOUT", b.String(), "esc: back")
}
