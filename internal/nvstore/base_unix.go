//go:build !windows

package nvstore

import (
	"errors"
	"os"
	"path/filepath"
)

// platformBaseDir implements the POSIX half of spec.md §6: a system-wide
// root for privileged processes, a per-user root otherwise. This mirrors
// puflib_get_nv_store_path() in src/platform-posix.c, generalized from a
// single nvstores directory to the temp/final/disabled layout.
func platformBaseDir() (string, error) {
	if os.Geteuid() == 0 {
		return "/var/lib/puflib", nil
	}

	home := os.Getenv("HOME")
	if home == "" {
		return "", errors.New("HOME is not set and process is unprivileged")
	}
	return filepath.Join(home, ".local", "lib", "puflib"), nil
}
