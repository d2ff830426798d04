//go:build !debug

package puflib

// debugReportsEnabled gates StatusDebug messages. In release builds (the
// default, no -tags debug) they are silently dropped before ever reaching
// the status handler.
const debugReportsEnabled = false
