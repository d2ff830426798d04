package puflib

import "fmt"

// Report formats and routes a status message through the installed status
// handler. Formatting is "<level> (<name>): <message>", where name is
// module's Name(), or the literal "puflib" when module is nil.
func Report(module Module, level StatusLevel, message string) {
	if level == StatusDebug && !debugReportsEnabled {
		return
	}

	name := "puflib"
	if module != nil {
		name = module.Name()
	}

	formatted := fmt.Sprintf("%s (%s): %s", level, name, message)

	h := currentStatusHandler()
	if h == nil {
		return
	}
	h(module, level, formatted)
}

// Reportf is Report with printf-style formatting. fmt.Sprintf has no
// failure path: a verb/argument mismatch is rendered inline as a %!-style
// marker, and the resulting message is reported as is.
func Reportf(module Module, level StatusLevel, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	Report(module, level, msg)
}

// Perror reports the current error through the status plane at StatusError,
// equivalent to the C puflib_perror(module). Go has no errno global, so
// callers pass the error explicitly.
func Perror(module Module, err error) {
	if err == nil {
		return
	}
	Report(module, StatusError, err.Error())
}
