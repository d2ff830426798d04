//go:build debug

package puflib

// debugReportsEnabled gates StatusDebug messages. Built with -tags debug,
// the development build, debug messages reach the status handler.
const debugReportsEnabled = true
