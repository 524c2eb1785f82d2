// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-safari-sync/internal/service"
	"github.com/MKhiriev/go-safari-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// packagesModel renders the package sync state and forwards manual refreshes
// to the sync service. It never mutates the state itself.
type packagesModel struct {
	ctx         context.Context
	syncService service.PackageSyncService
	changes     <-chan struct{}

	baseURL   string
	interval  time.Duration
	buildInfo models.AppBuildInfo

	state    models.SyncState
	idx      int
	sync     syncModel
	status   string
	showInfo bool
	height   int

	copyToClipboard func(string) error
}

func newPackagesModel(ctx context.Context, syncService service.PackageSyncService, opts Options) packagesModel {
	return packagesModel{
		ctx:             ctx,
		syncService:     syncService,
		changes:         syncService.Changes(),
		baseURL:         opts.BaseURL,
		interval:        opts.SyncInterval,
		buildInfo:       opts.BuildInfo,
		state:           syncService.State(),
		sync:            newSyncModel(),
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m packagesModel) Init() tea.Cmd {
	return tea.Batch(m.sync.Tick, waitForChange(m.changes))
}

// waitForChange blocks on the next notification of the sync service.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return changesClosedMsg{}
		}
		return stateChangedMsg{}
	}
}

func (m packagesModel) refresh() tea.Cmd {
	ctx, syncService := m.ctx, m.syncService
	return func() tea.Msg {
		return refreshDoneMsg{err: syncService.Refresh(ctx)}
	}
}

func (m packagesModel) copySelected() tea.Cmd {
	pkg, ok := m.selected()
	if !ok {
		return nil
	}
	url := pkg.PictureURL(m.baseURL)
	if url == "" {
		return func() tea.Msg { return copiedMsg{err: errNoPicture} }
	}

	copyFn := m.copyToClipboard
	return func() tea.Msg {
		return copiedMsg{url: url, err: copyFn(url)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m packagesModel) selected() (models.SafariPackage, bool) {
	if m.idx < 0 || m.idx >= len(m.state.Items) {
		return models.SafariPackage{}, false
	}
	return m.state.Items[m.idx], true
}

func (m packagesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		m.state = m.syncService.State()
		m.clampSelection()
		return m, waitForChange(m.changes)
	case changesClosedMsg:
		return m, tea.Quit
	case refreshDoneMsg:
		if errors.Is(msg.err, service.ErrSyncInProgress) {
			m.status = "Refresh already in progress"
			return m, clearStatusAfter(statusTTL)
		}
		return m, nil
	case copiedMsg:
		switch {
		case errors.Is(msg.err, errNoPicture):
			m.status = "Selected package has no picture"
		case msg.err != nil:
			m.status = "Copy failed: " + msg.err.Error()
		default:
			m.status = "Copied " + msg.url
		}
		return m, clearStatusAfter(statusTTL)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.sync, cmd = m.sync.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m packagesModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case m.showInfo:
		if key.Matches(msg, keys.esc, keys.info) {
			m.showInfo = false
		}
		return m, nil
	case key.Matches(msg, keys.refresh):
		return m, m.refresh()
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.state.Items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.copy):
		return m, m.copySelected()
	case key.Matches(msg, keys.info):
		m.showInfo = true
	}

	return m, nil
}

func (m *packagesModel) clampSelection() {
	if m.idx >= len(m.state.Items) {
		m.idx = len(m.state.Items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}
