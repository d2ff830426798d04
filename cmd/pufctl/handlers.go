package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ainfosec/PUFlib"
	"github.com/ainfosec/PUFlib/internal/pufconfig"
	"github.com/ainfosec/PUFlib/internal/termui"
)

// sensitiveKeyMarkers flags a query key as one whose answer shouldn't echo
// to the terminal; module authors opt in simply by naming their key
// accordingly (e.g. "pin", "passphrase").
var sensitiveKeyMarkers = []string{"secret", "password", "passphrase", "pin"}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, marker := range sensitiveKeyMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// installHandlers wires the process-wide status and query handlers before
// any lifecycle operation runs, per cfg. NonInteractive installs no query
// handler at all, so puflib.Query fails every call with KindUserCanceled
// instead of blocking on stdin.
func installHandlers(cfg pufconfig.Config) {
	puflib.SetStatusHandler(termui.NewStatusHandler(cfg.Verbose))

	if cfg.NonInteractive {
		puflib.SetQueryHandler(nil)
		return
	}
	puflib.SetQueryHandler(interactiveQueryHandler)
}

// interactiveQueryHandler prompts on stdin, echoing the module and key so
// the operator knows what's asking and why.
func interactiveQueryHandler(module puflib.Module, key, prompt string) (string, bool, error) {
	name := "puflib"
	if module != nil {
		name = module.Name()
	}

	fmt.Printf("[%s:%s] %s", name, key, prompt)

	if isSensitiveKey(key) && termui.IsTerminal(os.Stdin) {
		value, err := termui.ReadSecretLine()
		fmt.Println()
		if err != nil {
			return "", false, err
		}
		if value == "" {
			return "", false, nil
		}
		return value, true, nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", false, err
	}

	value := strings.TrimRight(line, "\r\n")
	if value == "" {
		return "", false, nil
	}
	return value, true, nil
}
