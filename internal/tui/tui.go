// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the full-screen login form offered as an alternative
// to line prompts.
package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned when the operator closes the form without
// submitting it.
var ErrUserQuit = errors.New("login form closed by user")

// FormRequest describes one showing of the login form.
type FormRequest struct {
	// Server is shown in the title.
	Server string
	// Username pre-fills the username input.
	Username string
	// LastError is the reason the previous attempt failed, if any.
	LastError error
}

// FormResult is what the operator submitted.
type FormResult struct {
	Username string
	Password string
}

// LoginForm runs the login form as a Bubble Tea program.
type LoginForm struct {
	in  io.Reader
	out io.Writer
}

// NewLoginForm returns a form bound to the given terminal streams. Nil
// streams fall back to the process stdin and stdout.
func NewLoginForm(in io.Reader, out io.Writer) *LoginForm {
	return &LoginForm{in: in, out: out}
}

// Run shows the form and blocks until it is submitted, closed, or ctx is
// cancelled.
func (f *LoginForm) Run(ctx context.Context, req FormRequest) (FormResult, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if f.in != nil {
		opts = append(opts, tea.WithInput(f.in))
	}
	if f.out != nil {
		opts = append(opts, tea.WithOutput(f.out))
	}

	finalModel, err := tea.NewProgram(NewLoginModel(req), opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return FormResult{}, ctxErr
		}
		return FormResult{}, err
	}

	result, ok := finalModel.(*LoginModel)
	if !ok {
		return FormResult{}, tea.ErrProgramKilled
	}
	return result.Result()
}
