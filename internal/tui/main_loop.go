package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dsmirnov/cryptodiary/internal/crypto"
	"github.com/dsmirnov/cryptodiary/internal/service"
	"github.com/dsmirnov/cryptodiary/internal/validators"
	"github.com/dsmirnov/cryptodiary/models"
)

type uiMode int

const (
	modeList uiMode = iota
	modeDetail
	modeEdit
)

type filterFocus int

const (
	filterNone filterFocus = iota
	filterSearch
	filterDay
)

type syncDoneMsg struct {
	err error
}

type saveDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}

// confirmPrompt is the pending deletion confirmation. onConfirm is the
// deferred destructive action captured from the editor session; result
// carries the delete outcome back once onConfirm has run.
type confirmPrompt struct {
	title    string
	message  string
	fromEdit bool

	onConfirm func()
	result    chan error
}

// mainLoopModel is the diary screen: the filtered entry list, the read-only
// entry view, and the editor. All plaintext it holds is derived on demand
// from the encrypted snapshot and discarded on re-render.
type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	items   []models.EntryListItem
	idx     int
	loading bool
	syncing bool
	status  string
	errMsg  string

	mode uiMode

	searchInput textinput.Model
	dayInput    textinput.Model
	focus       filterFocus

	detail models.DecryptedEntry

	titleInput  textinput.Model
	contentArea textarea.Model
	editFocus   int
	saving      bool

	confirm *confirmPrompt

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	search := textinput.New()
	search.Placeholder = "поиск"
	search.Width = 24

	day := textinput.New()
	day.Placeholder = "гггг-мм-дд"
	day.CharLimit = 10
	day.Width = 12

	title := textinput.New()
	title.Placeholder = "заголовок"
	title.CharLimit = 200
	title.Width = 52

	content := textarea.New()
	content.Placeholder = "текст записи"
	content.SetWidth(56)
	content.SetHeight(10)

	return mainLoopModel{
		ctx:         ctx,
		services:    services,
		loading:     true,
		searchInput: search,
		dayInput:    day,
		titleInput:  title,
		contentArea: content,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdSync()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case syncDoneMsg:
		m.syncing = false
		m.loading = false
		if msg.err != nil {
			m.errMsg = "Синхронизация не выполнена: " + humanizeServerUnavailableError(msg.err)
			m.refreshList()
			return m, nil
		}
		m.status = "Синхронизация завершена"
		m.errMsg = ""
		m.refreshList()
		return m, nil

	case saveDoneMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = "Ошибка сохранения: " + humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.status = "Запись сохранена"
		m.errMsg = ""
		m.refreshList()
		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			m.errMsg = "Ошибка удаления: " + humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.status = "Запись удалена"
		m.errMsg = ""
		m.refreshList()
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirm != nil {
		if !isKey {
			return m, nil
		}
		return m.updateConfirm(keyMsg)
	}

	switch m.mode {
	case modeEdit:
		return m.updateEdit(msg)
	case modeDetail:
		if !isKey {
			return m, nil
		}
		return m.updateDetail(keyMsg)
	default:
		return m.updateList(msg)
	}
}

func (m mainLoopModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		prompt := m.confirm
		m.confirm = nil
		return m, func() tea.Msg {
			prompt.onConfirm()
			return deleteDoneMsg{err: <-prompt.result}
		}

	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		// Declining issues no request. A binding made only for this
		// prompt is dropped again.
		if !m.confirm.fromEdit {
			m.services.Editor.OpenForCreate()
		}
		m.confirm = nil
		m.status = "Удаление отменено"
		return m, nil
	}

	return m, nil
}

func (m mainLoopModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	// While a filter input is focused, keystrokes edit the filter and the
	// list re-renders immediately.
	if m.focus != filterNone {
		if isKey {
			switch {
			case key.Matches(keyMsg, keys.esc):
				if m.focus == filterSearch {
					m.searchInput.SetValue("")
					m.searchInput.Blur()
				} else {
					m.dayInput.SetValue("")
					m.dayInput.Blur()
				}
				m.focus = filterNone
				m.refreshList()
				return m, nil
			case key.Matches(keyMsg, keys.enter):
				m.searchInput.Blur()
				m.dayInput.Blur()
				m.focus = filterNone
				return m, nil
			}
		}

		var cmd tea.Cmd
		if m.focus == filterSearch {
			m.searchInput, cmd = m.searchInput.Update(msg)
		} else {
			m.dayInput, cmd = m.dayInput.Update(msg)
		}
		m.refreshList()
		return m, cmd
	}

	if !isKey {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}

	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}

	case key.Matches(keyMsg, keys.search):
		m.dayInput.Blur()
		m.focus = filterSearch
		return m, m.searchInput.Focus()

	case key.Matches(keyMsg, keys.filterDay):
		m.searchInput.Blur()
		m.focus = filterDay
		return m, m.dayInput.Focus()

	case key.Matches(keyMsg, keys.esc):
		if m.searchInput.Value() != "" || m.dayInput.Value() != "" {
			m.searchInput.SetValue("")
			m.dayInput.SetValue("")
			m.refreshList()
		}

	case key.Matches(keyMsg, keys.newEntry):
		m.startCreate()
		return m, textarea.Blink

	case key.Matches(keyMsg, keys.enter):
		item, ok := m.current()
		if !ok {
			m.status = "Записей нет"
			return m, nil
		}
		m.openDetail(item.ID)

	case key.Matches(keyMsg, keys.edit):
		item, ok := m.current()
		if !ok {
			m.status = "Записей нет"
			return m, nil
		}
		m.startEdit(item.ID)
		return m, textarea.Blink

	case key.Matches(keyMsg, keys.delete):
		item, ok := m.current()
		if !ok {
			m.status = "Записей нет"
			return m, nil
		}
		m.startDelete(item.ID, false)

	case key.Matches(keyMsg, keys.copy):
		item, ok := m.current()
		if !ok {
			m.status = "Записей нет"
			return m, nil
		}
		m.copyEntryText(item.ID)

	case key.Matches(keyMsg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = "Синхронизация..."
		m.errMsg = ""
		return m, m.cmdSync()

	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.mode = modeList
		m.detail = models.DecryptedEntry{}

	case key.Matches(keyMsg, keys.edit):
		m.startEdit(m.detail.ID)
		return m, textarea.Blink

	case key.Matches(keyMsg, keys.copy):
		m.copyEntryText(m.detail.ID)

	case key.Matches(keyMsg, keys.delete):
		m.startDelete(m.detail.ID, false)
	}

	return m, nil
}

func (m mainLoopModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.services.Editor.OpenForCreate()
			m.mode = modeList
			m.errMsg = ""
			return m, nil

		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.toggleEditFocus()
			return m, nil

		case key.Matches(keyMsg, keys.enter) && m.editFocus == 0:
			// Enter in the title moves on to the body; the textarea
			// consumes enter as a newline itself.
			m.toggleEditFocus()
			return m, nil

		case key.Matches(keyMsg, keys.save):
			if m.saving {
				return m, nil
			}
			m.saving = true
			m.errMsg = ""
			return m, m.cmdSave(m.titleInput.Value(), m.contentArea.Value())

		case key.Matches(keyMsg, keys.delete):
			m.startDelete("", true)
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.editFocus == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.contentArea, cmd = m.contentArea.Update(msg)
	}
	return m, cmd
}

// refreshList re-renders the visible rows from the encrypted snapshot with
// the current keyword and date filters applied.
func (m *mainLoopModel) refreshList() {
	keyword := strings.TrimSpace(m.searchInput.Value())
	day := strings.TrimSpace(m.dayInput.Value())

	items, err := m.services.Render.RenderList(keyword, day)
	if err != nil {
		if errors.Is(err, crypto.ErrKeyMissing) {
			m.errMsg = "Сессия заблокирована, выполните вход заново"
		} else {
			m.errMsg = err.Error()
		}
		return
	}

	m.items = items
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// copyEntryText puts the tag-stripped body of an entry on the clipboard.
func (m *mainLoopModel) copyEntryText(id string) {
	entry, err := m.services.Render.DecryptOne(id)
	if err != nil {
		if errors.Is(err, service.ErrDecryptionFailed) {
			m.errMsg = "Запись не читается, копировать нечего"
		} else {
			m.errMsg = err.Error()
		}
		return
	}

	text := validators.PlainText(entry.Content)
	if strings.TrimSpace(text) == "" {
		m.status = "Нечего копировать"
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.errMsg = "Ошибка копирования: " + err.Error()
		return
	}
	m.status = "Скопировано"
}

func (m *mainLoopModel) openDetail(id string) {
	entry, err := m.services.Render.DecryptOne(id)
	if err != nil {
		if errors.Is(err, service.ErrDecryptionFailed) {
			m.errMsg = "Запись не читается: неверная парольная фраза или повреждённые данные"
		} else {
			m.errMsg = err.Error()
		}
		return
	}

	m.detail = entry
	m.errMsg = ""
	m.mode = modeDetail
}

func (m *mainLoopModel) startCreate() {
	m.services.Editor.OpenForCreate()
	m.titleInput.SetValue("")
	m.contentArea.SetValue("")
	m.setEditFocus(0)
	m.saving = false
	m.errMsg = ""
	m.mode = modeEdit
}

func (m *mainLoopModel) startEdit(id string) {
	entry, err := m.services.Render.DecryptOne(id)
	if err != nil {
		if errors.Is(err, service.ErrDecryptionFailed) {
			m.errMsg = "Запись не читается и не может быть изменена"
		} else {
			m.errMsg = err.Error()
		}
		return
	}

	m.services.Editor.OpenForEdit(entry.ID)
	m.titleInput.SetValue(entry.Title)
	m.contentArea.SetValue(entry.Content)
	m.setEditFocus(0)
	m.saving = false
	m.errMsg = ""
	m.mode = modeEdit
}

// startDelete routes the deletion through the editor session: the prompt is
// shown first and the request is only issued from the confirmation
// callback. fromEdit marks prompts raised inside the editor, where the
// binding must survive a decline.
func (m *mainLoopModel) startDelete(id string, fromEdit bool) {
	if !fromEdit {
		m.services.Editor.OpenForEdit(id)
	}

	result := make(chan error, 1)
	prompt := &confirmPrompt{fromEdit: fromEdit, result: result}

	capture := service.ConfirmerFunc(func(title, message string, onConfirm func()) {
		prompt.title = title
		prompt.message = message
		prompt.onConfirm = onConfirm
	})

	err := m.services.Editor.RequestDelete(m.ctx, capture, func(err error) { result <- err })
	if err != nil {
		if errors.Is(err, service.ErrNoEntryBound) {
			m.errMsg = "Нет записи для удаления"
		} else {
			m.errMsg = err.Error()
		}
		return
	}

	m.confirm = prompt
}

func (m *mainLoopModel) setEditFocus(focus int) {
	m.editFocus = focus
	if focus == 0 {
		m.contentArea.Blur()
		m.titleInput.Focus()
	} else {
		m.titleInput.Blur()
		m.contentArea.Focus()
	}
}

func (m *mainLoopModel) toggleEditFocus() {
	m.setEditFocus(1 - m.editFocus)
}

func (m mainLoopModel) current() (models.EntryListItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.EntryListItem{}, false
	}
	return m.items[m.idx], true
}

func (m mainLoopModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	entries := m.services.Entries

	return func() tea.Msg {
		return syncDoneMsg{err: entries.List(ctx)}
	}
}

func (m mainLoopModel) cmdSave(title, content string) tea.Cmd {
	ctx := m.ctx
	editor := m.services.Editor

	return func() tea.Msg {
		return saveDoneMsg{err: editor.Save(ctx, title, content)}
	}
}
