//go:build !windows

package nvstore

import (
	"os"

	"golang.org/x/sys/unix"
)

// checkPermissionBits probes read+write (+execute, for directories) using
// the real POSIX access(2) semantics rather than inferring permission from
// the owner-bits in os.FileInfo, since the calling process may not be the
// file's owner.
func checkPermissionBits(path string, _ os.FileInfo, kind Kind) bool {
	mode := unix.R_OK | unix.W_OK
	if kind == KindDir {
		mode |= unix.X_OK
	}
	return unix.Access(path, uint32(mode)) == nil
}
