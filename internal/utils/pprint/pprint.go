// Package pprint prints user-facing gl messages.
//
// There are three channels: Msg for information, Err for errors and Exp for
// indented explanations. Each can be redirected into any io.Writer with To,
// which is how diff headers end up inside the pager's file.
package pprint

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const (
	msgPrefix = "✔ "
	errPrefix = "✘ "
	expPrefix = "  ➜ "
)

var (
	msgStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	expStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Printer writes prefixed messages. Msg, Exp and Blank share one writer, Err has its own.
// The first failed write is remembered and reported by WriteErr.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	color  bool
	err    error
}

// New returns a Printer. color enables lipgloss styling of the prefixes.
func New(out, errOut io.Writer, color bool) *Printer {
	return &Printer{out: out, errOut: errOut, color: color}
}

// NewStd returns a Printer on stdout/stderr. Styling is applied only when
// color is requested and stdout is a terminal.
func NewStd(color bool) *Printer {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return New(os.Stdout, os.Stderr, color && tty)
}

// To returns an unstyled Printer sending every channel to w.
func (p *Printer) To(w io.Writer) *Printer {
	return New(w, w, false)
}

// Msg prints an informational message.
func (p *Printer) Msg(text string) {
	p.write(p.out, msgStyle, msgPrefix, text)
}

// Err prints an error message.
func (p *Printer) Err(text string) {
	p.write(p.errOut, errStyle, errPrefix, text)
}

// Exp prints an explanation, usually following a Msg or Err.
func (p *Printer) Exp(text string) {
	p.write(p.out, expStyle, expPrefix, text)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	p.record(fmt.Fprintln(p.out))
}

// WriteErr returns the first write error, if any.
func (p *Printer) WriteErr() error {
	return p.err
}

func (p *Printer) write(w io.Writer, style lipgloss.Style, prefix, text string) {
	if p.color {
		prefix = style.Render(prefix)
	}
	p.record(fmt.Fprintf(w, "%s%s\n", prefix, text))
}

func (p *Printer) record(_ int, err error) {
	if err != nil && p.err == nil {
		p.err = err
	}
}
