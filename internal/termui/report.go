package termui

import (
	"fmt"
	"os"

	"github.com/ainfosec/PUFlib"
)

// NewStatusHandler builds a puflib.StatusHandler that renders status
// messages to the terminal, coloring by severity. debug-level messages are
// only shown when verbose is true; warn and error always go to stderr so
// they survive a pipe to another command.
func NewStatusHandler(verbose bool) puflib.StatusHandler {
	return func(module puflib.Module, level puflib.StatusLevel, formatted string) {
		if level == puflib.StatusDebug && !verbose {
			return
		}

		icon, colorFn, out := iconFor(level)
		if !IsTerminal(out) {
			colorFn = Colors.Normal
		}
		fmt.Fprintf(out, "%s %s\n", colorFn(icon), colorFn(formatted))
	}
}

func iconFor(level puflib.StatusLevel) (string, ColorFn, *os.File) {
	switch level {
	case puflib.StatusDebug:
		return "·", Colors.Dim, os.Stdout
	case puflib.StatusWarn:
		return "!", Colors.Yellow, os.Stderr
	case puflib.StatusError:
		return "✗", Colors.Red, os.Stderr
	default:
		return "·", Colors.Normal, os.Stdout
	}
}

// Fatalf prints a red message to stderr and exits 1, mirroring how a CLI
// surfaces an unrecoverable error outside the status-handler plane (e.g. a
// malformed command-line argument, not a module-reported status).
func Fatalf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, Colors.Red(format, args...))
	os.Exit(1)
}
