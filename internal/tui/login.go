// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login form. It renders two text
// inputs (username and password) and quits the program once both are filled
// and submitted.
type LoginModel struct {
	server string
	inputs []textinput.Model
	focus  int

	submitted bool
	quit      bool
	errMsg    string
}

// NewLoginModel creates a [LoginModel] with pre-configured username and
// password inputs. Focus starts on the password when a username is already
// known; the password field uses masked echo.
func NewLoginModel(req FormRequest) *LoginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 255
	usernameInput.Width = 40
	usernameInput.SetValue(req.Username)

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	m := &LoginModel{
		server: req.Server,
		inputs: []textinput.Model{usernameInput, passwordInput},
	}
	if req.LastError != nil {
		m.errMsg = humanizeLoginError(req.LastError)
	}

	if strings.TrimSpace(req.Username) != "" {
		m.focus = 1
	}
	m.inputs[m.focus].Focus()

	return m
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - esc, ctrl+c: closes the form without a result.
//   - tab: moves focus to the next input.
//   - shift+tab: moves focus to the previous input.
//   - enter: submits when both inputs are filled, otherwise moves on.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			username := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if username == "" || password == "" {
				if m.focus == 0 && username != "" {
					m.focusNext()
					return m, nil
				}
				m.errMsg = "Username and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	if m.submitted || m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString("Username │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString("Password │ ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	title := "LOG IN"
	if m.server != "" {
		title += " to " + m.server
	}

	return appStyle.Render(renderPage(titleStyle.Render(title), strings.TrimRight(b.String(), "\n"),
		helpStyle.Render("tab: next field │ enter: submit │ esc: quit")))
}

// Result returns the submitted credential or [ErrUserQuit].
func (m *LoginModel) Result() (FormResult, error) {
	if !m.submitted {
		return FormResult{}, ErrUserQuit
	}
	return FormResult{
		Username: strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}, nil
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
