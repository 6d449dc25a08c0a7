// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/MKhiriev/go-matrix-client/internal/console"
	"github.com/MKhiriev/go-matrix-client/models"
)

// PasswordReader reads a secret without echoing it.
type PasswordReader func() (string, error)

// PromptSource asks for a username and password on the terminal.
type PromptSource struct {
	in           *bufio.Reader
	console      *console.Printer
	readPassword PasswordReader
}

// NewPromptSource prompts on in. When in is a terminal the password is read
// with echo disabled; otherwise it is read as the next line of in.
func NewPromptSource(in io.Reader, printer *console.Printer) *PromptSource {
	p := &PromptSource{
		in:      bufio.NewReader(in),
		console: printer,
	}

	p.readPassword = p.readLine
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.readPassword = TerminalPasswordReader(int(f.Fd()), printer)
	}

	return p
}

// WithPasswordReader replaces the password reader.
func (p *PromptSource) WithPasswordReader(r PasswordReader) *PromptSource {
	p.readPassword = r
	return p
}

// TerminalPasswordReader reads from the terminal fd with echo disabled.
func TerminalPasswordReader(fd int, printer *console.Printer) PasswordReader {
	return func() (string, error) {
		secret, err := term.ReadPassword(fd)
		// the terminal swallowed the newline
		printer.Println()
		if err != nil {
			return "", err
		}
		return string(secret), nil
	}
}

// Credential implements [Source]. Input ending before both values are
// read yields [ErrInputClosed]. Cancellation is checked between the two
// reads only; a blocked terminal read ends with the process.
func (p *PromptSource) Credential(ctx context.Context) (models.Credential, error) {
	p.console.Prompt("Username: ")
	username, err := p.readLine()
	if err != nil {
		return models.Credential{}, err
	}
	username = strings.TrimSpace(username)

	if err := ctx.Err(); err != nil {
		return models.Credential{}, err
	}

	p.console.Prompt("Password: ")
	password, err := p.readPassword()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, ErrInputClosed) {
			return models.Credential{}, ErrInputClosed
		}
		return models.Credential{}, fmt.Errorf("error reading password: %w", err)
	}

	return models.Credential{
		Username: username,
		Password: strings.TrimSpace(password),
		Origin:   models.OriginPrompt,
	}, nil
}

func (p *PromptSource) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
