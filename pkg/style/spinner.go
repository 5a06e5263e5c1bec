package style

import (
	"github.com/pterm/pterm"
)

// Spinner shows progress while a blocking task runs
type Spinner struct {
	printer *Printer
	spinner *pterm.SpinnerPrinter
}

// StartSpinner starts a spinner with text. Without color support the text is
// printed once instead.
func (p *Printer) StartSpinner(text string) *Spinner {
	s := &Spinner{printer: p}
	if !p.color {
		p.Println(text)
		return s
	}

	spinner, err := pterm.DefaultSpinner.
		WithWriter(p.out).
		WithRemoveWhenDone(true).
		Start("⚙️  " + pterm.Bold.Sprint(text))
	if err == nil {
		s.spinner = spinner
	}
	return s
}

// Stop removes the spinner
func (s *Spinner) Stop() {
	if s == nil || s.spinner == nil {
		return
	}
	_ = s.spinner.Stop()
	s.spinner = nil
}
