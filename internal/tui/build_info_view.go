// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-safari-sync/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, baseURL string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Safari Packages client"))
	b.WriteString("\n\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n")
	b.WriteString("Server: ")
	b.WriteString(valueOrNA(baseURL))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("esc: back"))

	return overlayBoxStyle.Render(b.String())
}
