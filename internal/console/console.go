// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package console prints operator-facing messages: prompts, login results,
// retry reasons and fatal diagnoses. Structured logs go to the log file via
// package logger; everything the operator must read goes through a Printer.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	prefixStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// Printer writes tagged lines to an output stream. The zero value is not
// usable; construct with New or Stdout.
type Printer struct {
	out    io.Writer
	prefix string
}

// New returns a Printer writing to out, tagging every line with tag
// (rendered as "[tag]").
func New(out io.Writer, tag string) *Printer {
	return &Printer{
		out:    out,
		prefix: prefixStyle.Render("[" + tag + "]"),
	}
}

// Stdout returns the Printer used by the client binary.
func Stdout() *Printer {
	return New(os.Stdout, "Main")
}

// Discard returns a Printer that drops everything. Useful in tests.
func Discard() *Printer {
	return New(io.Discard, "Main")
}

// Writer exposes the underlying stream for prompts that must share it.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Logf prints a tagged, newline-terminated line.
func (p *Printer) Logf(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.prefix, fmt.Sprintf(format, args...))
}

// Errorf prints a tagged line with the message rendered as an error.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.prefix, errorStyle.Render(fmt.Sprintf(format, args...)))
}

// Prompt prints label without a trailing newline.
func (p *Printer) Prompt(label string) {
	fmt.Fprint(p.out, label)
}

// Println prints an untagged line.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}
