package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dsmirnov/cryptodiary/internal/service"
)

// UnlockModel is the passphrase prompt shown after a successful login. The
// passphrase is installed into the session keyring and never sent anywhere;
// a wrong passphrase is not detected here but surfaces later as unreadable
// entries.
type UnlockModel struct {
	session *service.SessionService

	input  textinput.Model
	errMsg string
}

// NewUnlockModel creates an [UnlockModel] with a masked passphrase input.
func NewUnlockModel(session *service.SessionService) *UnlockModel {
	input := textinput.New()
	input.Placeholder = "passphrase"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &UnlockModel{session: session, input: input}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *UnlockModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Enter installs the passphrase; esc returns
// to the menu. A successful [UnlockResult] is handled by [RootModel].
func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(UnlockResult); ok {
		if result.Err != nil {
			m.errMsg = result.Err.Error()
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.errMsg = ""
			m.input.SetValue("")
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "enter":
			pass := m.input.Value()
			if strings.TrimSpace(pass) == "" {
				m.errMsg = "Парольная фраза обязательна"
				return m, nil
			}

			m.errMsg = ""
			session := m.session
			return m, func() tea.Msg {
				return UnlockResult{Err: session.Unlock(pass)}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *UnlockModel) View() string {
	var b strings.Builder
	b.WriteString("Парольная фраза дневника. Она не отправляется на сервер\n")
	b.WriteString("и используется только для шифрования записей.\n\n")
	b.WriteString("Фраза │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("РАЗБЛОКИРОВКА", strings.TrimRight(b.String(), "\n"), "esc: назад │ enter: разблокировать")
}
