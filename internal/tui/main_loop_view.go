package tui

import (
	"fmt"
	"strings"

	"github.com/dsmirnov/cryptodiary/internal/service"
)

const (
	listTitleWidth   = 26
	listSnippetWidth = 40
)

func (m mainLoopModel) View() string {
	if m.confirm != nil {
		return m.viewConfirm()
	}

	switch m.mode {
	case modeEdit:
		return m.viewEdit()
	case modeDetail:
		return m.viewDetail()
	}
	return m.viewList()
}

func (m mainLoopModel) viewConfirm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.confirm.title))
	b.WriteString("\n\n")
	b.WriteString(m.confirm.message)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("y: да │ n: нет"))

	return appStyle.Render(overlayBoxStyle.Render(b.String()))
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	b.WriteString("Поиск: [")
	b.WriteString(m.searchInput.View())
	b.WriteString("]  Дата: [")
	b.WriteString(m.dayInput.View())
	b.WriteString("]\n\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("Статус: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" || m.status != "" {
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString("Загрузка списка...")
		return renderPage("ДНЕВНИК", b.String(), m.listHotKeys())
	}

	if len(m.items) == 0 {
		if m.searchInput.Value() != "" || m.dayInput.Value() != "" {
			b.WriteString("Ничего не найдено")
		} else {
			b.WriteString("Записей пока нет. Нажмите a, чтобы добавить первую.")
		}
		return renderPage("ДНЕВНИК", b.String(), m.listHotKeys())
	}

	b.WriteString("  Дата       │ ")
	b.WriteString(padText("Заголовок", listTitleWidth))
	b.WriteString(" │ Фрагмент\n")
	b.WriteString("  ───────────┼─")
	b.WriteString(strings.Repeat("─", listTitleWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", listSnippetWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}

		row := fmt.Sprintf(
			"%s%s │ %s │ %s",
			cursor,
			item.DisplayDate,
			padText(fitText(item.DisplayTitle, listTitleWidth), listTitleWidth),
			fitText(item.DisplaySnippet, listSnippetWidth),
		)
		if item.DecryptFailed {
			row = sentinelStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\nЗаписей: %d", len(m.items)))

	return renderPage("ДНЕВНИК", strings.TrimRight(b.String(), "\n"), m.listHotKeys())
}

func (m mainLoopModel) listHotKeys() string {
	if m.focus != filterNone {
		return "enter: применить │ esc: сбросить фильтр"
	}
	return "a: новая │ enter: открыть │ e: изм. │ c: коп. │ ctrl+d: уд. │ /: поиск │ f: дата │ s: синхр. │ l: выход"
}

func (m mainLoopModel) viewDetail() string {
	var b strings.Builder

	b.WriteString("Дата: ")
	b.WriteString(m.detail.DateModified)
	b.WriteString("\n\n")
	b.WriteString(m.detail.Content)

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString("Статус: " + m.status)
	}

	title := "ЗАПИСЬ: " + fitText(m.detail.Title, 40)
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "e: изменить │ c: копировать текст │ ctrl+d: удалить │ esc: назад")
}

func (m mainLoopModel) viewEdit() string {
	var b strings.Builder

	b.WriteString("Заголовок │ [")
	b.WriteString(m.titleInput.View())
	b.WriteString("]\n\n")
	b.WriteString(m.contentArea.View())
	b.WriteString("\n")

	if m.saving {
		b.WriteString("\nСохранение...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	title := "НОВАЯ ЗАПИСЬ"
	hotKeys := "tab: след. поле │ ctrl+s: сохранить │ esc: отмена"
	if state, _ := m.services.Editor.State(); state == service.StateEditing {
		title = "ИЗМЕНЕНИЕ ЗАПИСИ"
		hotKeys = "tab: след. поле │ ctrl+s: сохранить │ ctrl+d: удалить │ esc: отмена"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
