// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// NotAvailable is shown for build metadata that was not injected.
const NotAvailable = "N/A"

// AppBuildInfo is the version stamp of the cipher-desk client, injected with
// -ldflags at build time. It is printed on startup and in the TUI's about
// window.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// BuildInfoLine is one labelled row of build metadata.
type BuildInfoLine struct {
	Label string
	Value string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// Lines returns version, date and commit in display order. Missing values
// read NotAvailable.
func (a AppBuildInfo) Lines() []BuildInfoLine {
	return []BuildInfoLine{
		{Label: "Version", Value: OrNotAvailable(a.buildVersion)},
		{Label: "Date", Value: OrNotAvailable(a.buildDate)},
		{Label: "Commit", Value: OrNotAvailable(a.buildCommit)},
	}
}

// OrNotAvailable returns v, or NotAvailable when v is blank.
func OrNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return NotAvailable
	}
	return v
}
