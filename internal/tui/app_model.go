// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-secret-vault/internal/service"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenDetail
	screenTypeSelect
	screenFormCredential
	screenFormNote
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx  context.Context
	auth service.ClientAuthService
	sync service.VaultSyncService

	mode          appMode
	currentScreen screen

	welcome        welcomeModel
	login          loginModel
	register       registerModel
	list           listModel
	detail         detailModel
	typeSelect     typeSelectModel
	formCredential formCredentialModel
	formNote       formNoteModel

	session       *service.SessionContext
	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete *listEntry
	logout        bool
}

func newLoginAppModel(ctx context.Context, auth service.ClientAuthService) appModel {
	return appModel{
		ctx:           ctx,
		auth:          auth,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
	}
}

func newMainAppModel(ctx context.Context, sync service.VaultSyncService) appModel {
	m := appModel{
		ctx:           ctx,
		sync:          sync,
		mode:          modeMain,
		currentScreen: screenList,
		list:          newListModel(),
		typeSelect:    newTypeSelectModel(),
	}
	m.list.reload(sync.Cache())
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == nil {
					return m, nil
				}
				return m, m.cmdDeleteEntry(*m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = nil
			}
			return m, nil
		}
	case authDoneMsg:
		if msg.err != nil {
			m.setSubmitting(false)
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.session = msg.session
		return m, tea.Quit
	case syncDoneMsg:
		m.list.syncing = false
		if msg.err != nil {
			m.showErrorf("Сервер недоступен, синхронизация не выполнена")
		} else if msg.report.Partial() {
			m.list.status = fmt.Sprintf("Часть записей пропущена: %d", len(msg.report.Failures))
		}
		m.list.reload(m.sync.Cache())
		return m, nil
	case itemSavedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenList
		m.list.reload(m.sync.Cache())
		return m, nil
	case itemDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.pendingDelete = nil
		m.currentScreen = screenList
		m.list.reload(m.sync.Cache())
		return m, nil
	case copiedMsg:
		if m.currentScreen == screenDetail {
			m.detail.status = "Скопировано!"
		}
		m.list.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.list.syncing {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenTypeSelect:
		return m.updateTypeSelect(msg)
	case screenFormCredential:
		return m.updateFormCredential(msg)
	case screenFormNote:
		return m.updateFormNote(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenTypeSelect:
		body = m.typeSelect.View()
	case screenFormCredential:
		body = m.formCredential.View()
	case screenFormNote:
		body = m.formNote.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.formCredential.submitting = v
	m.formNote.submitting = v
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			username := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if username == "" || pass == "" {
				m.showErrorf("Логин и пароль обязательны")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(username, pass)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusPrevRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			username := strings.TrimSpace(m.register.inputs[0].Value())
			pass := m.register.inputs[1].Value()
			repeat := m.register.inputs[2].Value()
			if username == "" || pass == "" {
				m.showErrorf("Логин и пароль обязательны")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Пароли не совпадают")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegisterAndLogin(username, pass)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.entries)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		entry, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.openDetail(entry)
	case key.Matches(keyMsg, keys.newItem):
		m.currentScreen = screenTypeSelect
	case key.Matches(keyMsg, keys.sync):
		if m.list.syncing {
			return m, nil
		}
		m.list.syncing = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdSync())
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *appModel) openDetail(entry listEntry) {
	m.detail = detailModel{kind: entry.kind}
	switch entry.kind {
	case entryCredential:
		if cred, ok := m.sync.Cache().Credentials.Get(entry.id); ok {
			m.detail.credential = cred
		}
	case entryNote:
		if note, ok := m.sync.Cache().Notes.Get(entry.id); ok {
			m.detail.note = note
		}
	}
	m.currentScreen = screenDetail
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		switch m.detail.kind {
		case entryCredential:
			cred := m.detail.credential
			entry := listEntry{kind: entryCredential, id: cred.ID}
			m.formCredential = newFormCredentialModel(&entry, cred.Domain, cred.Username, cred.Secret)
			m.currentScreen = screenFormCredential
		case entryNote:
			note := m.detail.note
			entry := listEntry{kind: entryNote, id: note.ID}
			m.formNote = newFormNoteModel(&entry, note.Title, note.Content)
			m.currentScreen = screenFormNote
		}
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		switch m.detail.kind {
		case entryCredential:
			m.confirm.message = m.detail.credential.Domain
			m.pendingDelete = &listEntry{kind: entryCredential, id: m.detail.credential.ID}
		case entryNote:
			m.confirm.message = m.detail.note.Title
			m.pendingDelete = &listEntry{kind: entryNote, id: m.detail.note.ID}
		}
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		switch m.detail.kind {
		case entryCredential:
			if m.detail.credential.Secret != "" {
				return m, cmdCopyToClipboard(m.detail.credential.Secret)
			}
		case entryNote:
			if m.detail.note.Content != "" {
				return m, cmdCopyToClipboard(m.detail.note.Content)
			}
		}
	case key.Matches(keyMsg, keys.copyUser):
		if m.detail.kind == entryCredential && m.detail.credential.Username != "" {
			return m, cmdCopyToClipboard(m.detail.credential.Username)
		}
	}

	return m, nil
}

func (m appModel) updateTypeSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.up):
		if m.typeSelect.idx > 0 {
			m.typeSelect.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.typeSelect.idx < len(m.typeSelect.items)-1 {
			m.typeSelect.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.typeSelect.idx == 0 {
			m.formCredential = newFormCredentialModel(nil, "", "", "")
			m.currentScreen = screenFormCredential
		} else {
			m.formNote = newFormNoteModel(nil, "", "")
			m.currentScreen = screenFormNote
		}
	}

	return m, nil
}

func (m appModel) updateFormCredential(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = backFromForm(m.formCredential.editing)
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formCredential = focusNextFormCredential(m.formCredential)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formCredential = focusPrevFormCredential(m.formCredential)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.formCredential.submitting {
				return m, nil
			}
			domain := strings.TrimSpace(m.formCredential.inputs[0].Value())
			username := strings.TrimSpace(m.formCredential.inputs[1].Value())
			secret := m.formCredential.inputs[2].Value()
			if domain == "" || secret == "" {
				m.showErrorf("Домен и пароль обязательны")
				return m, nil
			}
			m.formCredential.submitting = true
			return m, m.cmdSaveCredential(m.formCredential.editing, m.formCredential.id, domain, username, secret)
		}
	}

	var cmd tea.Cmd
	m.formCredential.inputs[m.formCredential.focus], cmd = m.formCredential.inputs[m.formCredential.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateFormNote(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = backFromForm(m.formNote.editing)
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formNote = toggleFormNoteFocus(m.formNote)
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if m.formNote.submitting {
				return m, nil
			}
			title := strings.TrimSpace(m.formNote.title.Value())
			content := m.formNote.content.Value()
			if title == "" || content == "" {
				m.showErrorf("Заголовок и текст обязательны")
				return m, nil
			}
			m.formNote.submitting = true
			return m, m.cmdSaveNote(m.formNote.editing, m.formNote.id, title, content)
		}
	}

	var cmd tea.Cmd
	if m.formNote.focus == 0 {
		m.formNote.title, cmd = m.formNote.title.Update(msg)
	} else {
		m.formNote.content, cmd = m.formNote.content.Update(msg)
	}
	return m, cmd
}

func (m appModel) cmdLogin(username, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		session, err := auth.Login(ctx, username, pass)
		return authDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdRegisterAndLogin(username, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		if err := auth.Register(ctx, username, pass); err != nil {
			return authDoneMsg{err: err}
		}
		session, err := auth.Login(ctx, username, pass)
		return authDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	svc := m.sync
	return func() tea.Msg {
		report, err := svc.LoadAll(ctx)
		return syncDoneMsg{report: report, err: err}
	}
}

func (m appModel) cmdSaveCredential(editing bool, id, domain, username, secret string) tea.Cmd {
	ctx := m.ctx
	svc := m.sync
	return func() tea.Msg {
		var err error
		if editing {
			_, err = svc.UpdateCredential(ctx, id, domain, username, secret)
		} else {
			_, err = svc.CreateCredential(ctx, domain, username, secret)
		}
		return itemSavedMsg{err: err}
	}
}

func (m appModel) cmdSaveNote(editing bool, id, title, content string) tea.Cmd {
	ctx := m.ctx
	svc := m.sync
	return func() tea.Msg {
		var err error
		if editing {
			_, err = svc.UpdateNote(ctx, id, title, content)
		} else {
			_, err = svc.CreateNote(ctx, title, content)
		}
		return itemSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteEntry(entry listEntry) tea.Cmd {
	ctx := m.ctx
	svc := m.sync
	return func() tea.Msg {
		var err error
		switch entry.kind {
		case entryCredential:
			err = svc.DeleteCredential(ctx, entry.id)
		case entryNote:
			err = svc.DeleteNote(ctx, entry.id)
		}
		return itemDeletedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return itemSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func backFromForm(editing bool) screen {
	if editing {
		return screenDetail
	}
	return screenList
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextFormCredential(m formCredentialModel) formCredentialModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevFormCredential(m formCredentialModel) formCredentialModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func toggleFormNoteFocus(m formNoteModel) formNoteModel {
	if m.focus == 0 {
		m.title.Blur()
		m.content.Focus()
		m.focus = 1
	} else {
		m.content.Blur()
		m.title.Focus()
		m.focus = 0
	}
	return m
}
