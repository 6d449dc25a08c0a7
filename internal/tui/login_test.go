// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m *LoginModel, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestLoginModel_SubmitBothFields(t *testing.T) {
	m := NewLoginModel(FormRequest{Server: "example.org"})

	typeText(m, "  alice ")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "secret123")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	res, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Username)
	assert.Equal(t, "secret123", res.Password)
}

func TestLoginModel_EnterOnUsernameMovesToPassword(t *testing.T) {
	m := NewLoginModel(FormRequest{})

	typeText(m, "alice")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.focus)
	assert.Empty(t, m.errMsg)
}

func TestLoginModel_EmptySubmitShowsError(t *testing.T) {
	m := NewLoginModel(FormRequest{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Contains(t, m.errMsg, "required")
	_, err := m.Result()
	assert.ErrorIs(t, err, ErrUserQuit)
}

func TestLoginModel_PrefilledUsernameFocusesPassword(t *testing.T) {
	m := NewLoginModel(FormRequest{Username: "alice"})

	assert.Equal(t, 1, m.focus)
	typeText(m, "pw")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	res, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, FormResult{Username: "alice", Password: "pw"}, res)
}

func TestLoginModel_EscQuits(t *testing.T) {
	m := NewLoginModel(FormRequest{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	_, err := m.Result()
	assert.ErrorIs(t, err, ErrUserQuit)
	assert.Empty(t, m.View())
}

func TestLoginModel_FocusCycles(t *testing.T) {
	m := NewLoginModel(FormRequest{})

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.focus)
}

func TestLoginModel_ViewShowsServerAndLastError(t *testing.T) {
	m := NewLoginModel(FormRequest{Server: "example.org", LastError: errors.New("M_FORBIDDEN: Invalid password")})

	v := m.View()

	assert.Contains(t, v, "example.org")
	assert.Contains(t, v, "Invalid password")
}

func TestLoginModel_PasswordMasked(t *testing.T) {
	m := NewLoginModel(FormRequest{Username: "alice"})
	typeText(m, "hunter2")

	assert.NotContains(t, m.View(), "hunter2")
}

func TestHumanizeLoginError(t *testing.T) {
	assert.Empty(t, humanizeLoginError(nil))
	assert.Equal(t, "Network is down or the homeserver is unreachable",
		humanizeLoginError(errors.New("dial tcp 127.0.0.1:443: connection refused")))
	assert.Equal(t, "bad password", humanizeLoginError(errors.New("bad password")))
}
