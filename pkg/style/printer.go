package style

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Kind selects the emoji and color of a status line
type Kind int

const (
	KindSuccess Kind = iota
	KindFailure
	KindNotice
	KindLaunch
)

type mark struct {
	emoji    string
	fallback string
	style    *pterm.Style
}

var marks = map[Kind]mark{
	KindSuccess: {"✅", "✔", pterm.NewStyle(pterm.FgGreen, pterm.Bold)},
	KindFailure: {"❌", "x", pterm.NewStyle(pterm.FgRed, pterm.Bold)},
	KindNotice:  {"✅", "✔", pterm.NewStyle(pterm.FgYellow, pterm.Bold)},
	KindLaunch:  {"🚀", "✔", pterm.NewStyle(pterm.FgYellow, pterm.Bold)},
}

// Printer writes status lines, styled only when the writer is a terminal
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a printer for out, detecting color support
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, color: ColorEnabled(out)}
}

// Status prints msg preceded by the emoji for kind
func (p *Printer) Status(kind Kind, msg string) {
	m := marks[kind]
	if !p.color {
		fmt.Fprintf(p.out, "%s %s\n", m.fallback, msg)
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", m.emoji, m.style.Sprint(msg))
}

// Println prints a plain line
func (p *Printer) Println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

// Render applies a lipgloss style when color is enabled
func (p *Printer) Render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}
