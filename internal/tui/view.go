// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-safari-sync/models"
)

const (
	// cardHeight is the number of lines a rendered card takes, spacing included.
	cardHeight       = 6
	chromeHeight     = 10
	descriptionWidth = 72
)

func (m packagesModel) View() string {
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.baseURL))
	}

	switch {
	case m.state.Phase == models.PhaseIdle || m.state.Phase == models.PhaseInitialLoading:
		return appStyle.Render(m.sync.View("Loading safari packages..."))
	case m.state.Phase == models.PhaseErrored && len(m.state.Items) == 0:
		return appStyle.Render(m.errorView())
	}

	return appStyle.Render(m.listView())
}

func (m packagesModel) errorView() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error Loading Safari Packages"))
	b.WriteString("\n\n")
	b.WriteString(m.state.LastError)
	if hint := serverUnavailableHint(m.state.LastError, m.baseURL); hint != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(hint))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("press r to retry, q to quit"))

	return overlayBoxStyle.Render(b.String())
}

func (m packagesModel) listView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Safari Packages"))
	b.WriteString(fmt.Sprintf(" (%d packages available)", len(m.state.Items)))
	if m.state.IsRefreshing() {
		b.WriteString("  ")
		b.WriteString(m.sync.View("Refreshing..."))
	}
	b.WriteString("\n")
	if !m.state.LastSyncedAt.IsZero() {
		b.WriteString(helpStyle.Render("Last synced at " + m.state.LastSyncedAt.Local().Format("15:04:05")))
		b.WriteString("\n")
	}
	if m.state.Phase == models.PhaseErrored {
		b.WriteString(errorStyle.Render("Refresh failed, showing the last fetched packages: " + m.state.LastError))
		b.WriteString("\n")
	}
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if len(m.state.Items) == 0 {
		b.WriteString(titleStyle.Render("No Safari Packages Available"))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("New packages will appear here automatically when they are added."))
		b.WriteString("\n")
	} else {
		perPage := 0
		if m.height > 0 {
			perPage = max(1, (m.height-chromeHeight)/cardHeight)
		}
		from, to := visibleRange(m.idx, len(m.state.Items), perPage)
		for i := from; i < to; i++ {
			b.WriteString(renderCard(m.state.Items[i], m.baseURL, i == m.idx))
			b.WriteString("\n")
		}
	}

	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Packages automatically refresh every " + m.interval.String()))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("r: refresh  ↑/↓: select  c: copy picture URL  i: about  q: quit"))

	return b.String()
}

func renderCard(pkg models.SafariPackage, baseURL string, selected bool) string {
	var b strings.Builder

	cursor := "  "
	name := pkg.Name
	if selected {
		cursor = "▸ "
		name = selectedStyle.Render(name)
	}

	b.WriteString(cursor)
	b.WriteString(name)
	b.WriteString("\n")
	if desc := fitText(pkg.Description, descriptionWidth); desc != "" {
		b.WriteString("  ")
		b.WriteString(desc)
		b.WriteString("\n")
	}

	b.WriteString("  Group Size: ")
	b.WriteString(tagStyle.Render(pkg.GroupSizeLabel()))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  Package #%d", pkg.ID))
	if added := formatDate(pkg.CreatedAt); added != "" {
		b.WriteString("  Added: ")
		b.WriteString(added)
	}
	b.WriteString("\n")

	b.WriteString("  ")
	if url := pkg.PictureURL(baseURL); url != "" {
		b.WriteString(helpStyle.Render(url))
	} else {
		b.WriteString(helpStyle.Render("no picture"))
	}
	b.WriteString("\n")

	return b.String()
}
