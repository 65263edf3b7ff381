package terminal

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color modes accepted by Profile.
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// Profile resolves a color mode against the output destination. "always"
// keeps 256-color output even through a pipe, the report's usual home;
// "auto" colors only a real terminal with NO_COLOR unset; "never" strips
// all styling. Unrecognized modes behave like "always".
func Profile(w io.Writer, mode string) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAuto:
		if os.Getenv("NO_COLOR") != "" {
			return termenv.Ascii
		}
		f, ok := w.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return termenv.Ascii
		}
		return termenv.ANSI256
	default:
		return termenv.ANSI256
	}
}
