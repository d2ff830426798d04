package termui

import (
	"fmt"
	"os"

	"github.com/ainfosec/PUFlib"
)

// exitCode maps an error Kind to a process exit code, so scripts driving
// pufctl/puf can distinguish "not found" from "already exists" from a
// genuine I/O fault without scraping text.
func exitCode(kind puflib.ErrorKind) int {
	switch kind {
	case puflib.KindNotFound:
		return 2
	case puflib.KindAlreadyExists:
		return 3
	case puflib.KindInconsistentState:
		return 4
	case puflib.KindMalformedBlob:
		return 5
	case puflib.KindUnsupportedHardware:
		return 6
	case puflib.KindUserCanceled:
		return 7
	default:
		return 1
	}
}

// ErrorExit prints err in a one-line, colored form and terminates the
// process with a kind-specific exit code. User cancellation is reported in
// yellow as an expected outcome rather than a failure in red.
func ErrorExit(err error) {
	if err == nil {
		return
	}
	if !IsTerminal(os.Stderr) {
		fmt.Fprintln(os.Stderr, "✗", err.Error())
		os.Exit(exitCodeOrDefault(err))
	}

	kind, tagged := puflib.KindOf(err)
	if !tagged {
		fmt.Fprintf(os.Stderr, "%s %s\n", Colors.Red("✗"), Colors.Red(err.Error()))
		os.Exit(1)
	}

	if kind == puflib.KindUserCanceled {
		fmt.Fprintf(os.Stderr, "%s %s\n", Colors.Yellow("✗"), Colors.Yellow(err.Error()))
		os.Exit(exitCode(kind))
	}

	fmt.Fprintf(os.Stderr, "%s %s\n", Colors.Red("✗"), Colors.Red(err.Error()))
	os.Exit(exitCode(kind))
}

func exitCodeOrDefault(err error) int {
	kind, tagged := puflib.KindOf(err)
	if !tagged {
		return 1
	}
	return exitCode(kind)
}
