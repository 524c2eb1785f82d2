// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// syncModel is the spinner shown while a fetch is in flight.
type syncModel struct {
	spinner spinner.Model
}

func newSyncModel() syncModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return syncModel{spinner: s}
}

func (m syncModel) Tick() tea.Msg {
	return m.spinner.Tick()
}

func (m syncModel) Update(msg spinner.TickMsg) (syncModel, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m syncModel) View(label string) string {
	return m.spinner.View() + " " + label
}
