package style

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorEnabled reports whether w is a color capable terminal. NO_COLOR,
// pipes, redirections and ascii-only terminals all disable styling.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}
