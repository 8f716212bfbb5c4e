// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render produces the human-readable view of a metadata record for
// the show command.
package render

import (
	"strings"

	"github.com/MKhiriev/go-repo-info/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(12)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
)

// Record renders info as a bordered field-per-line view.
func Record(info models.RepoInfo) string {
	fields := []struct {
		label string
		value string
	}{
		{"hostName", info.HostName()},
		{"hostUser", info.HostUser()},
		{"hostOsNV", info.HostOsNV()},
		{"buildUser", info.BuildUser()},
		{"buildTime", info.BuildTime()},
		{"modifyTime", info.ModifyTime()},
		{"repoHash", info.RepoHash()},
		{"repoUrl", info.RepoUrl()},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("REPOSITORY BUILD METADATA"))
	b.WriteString("\n")
	for _, field := range fields {
		b.WriteString(labelStyle.Render(field.label))
		b.WriteString(" ")
		b.WriteString(valueOrNA(field.value))
		b.WriteString("\n")
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
