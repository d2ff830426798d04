package termui

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to an interactive terminal, used
// to decide whether PrintModuleTable draws ANSI colors or a plain table.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ReadSecretLine reads a line from stdin with local echo disabled, for
// query prompts whose key suggests the answer is sensitive. It falls back
// to an error when stdin isn't a terminal (e.g. piped input), since
// term.ReadPassword has no meaningful behavior there.
func ReadSecretLine() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", os.ErrClosed
	}
	data, err := term.ReadPassword(fd)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
