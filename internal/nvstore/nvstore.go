// Package nvstore implements the filesystem-backed state machine that
// tracks PUF module lifecycle state: the location, creation, probing, and
// deletion of the six storage-role artifacts a module can own. This is the
// "platform abstraction" plus "storage layout" layer (spec.md C1/C2) -
// narrow by design, the same way the teacher's sandbox/platform package is
// narrow around one concern (spawning a sandboxed process) per OS.
package nvstore

import (
	"fmt"
	"os"
	"path/filepath"
)

// Kind distinguishes the two artifact shapes a storage role can take. A
// module must use exactly one kind consistently for its TEMP and FINAL
// roles.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

// Role is one of the six storage roles from spec.md §3. Each maps to
// exactly one path per module; the Kind only changes how the path is
// created, probed, and deleted.
type Role int

const (
	TempFile Role = iota
	TempDir
	FinalFile
	FinalDir
	DisabledFile
	DisabledDir
)

// category is the directory segment ("temp", "final", "disabled") a role
// lives under.
func (r Role) category() string {
	switch r {
	case TempFile, TempDir:
		return "temp"
	case FinalFile, FinalDir:
		return "final"
	case DisabledFile, DisabledDir:
		return "disabled"
	default:
		panic(fmt.Sprintf("nvstore: unknown role %d", r))
	}
}

// Kind reports whether r is a file-shaped or directory-shaped role.
func (r Role) Kind() Kind {
	switch r {
	case TempFile, FinalFile, DisabledFile:
		return KindFile
	case TempDir, FinalDir, DisabledDir:
		return KindDir
	default:
		panic(fmt.Sprintf("nvstore: unknown role %d", r))
	}
}

func (r Role) String() string {
	switch r {
	case TempFile:
		return "TEMP_FILE"
	case TempDir:
		return "TEMP_DIR"
	case FinalFile:
		return "FINAL_FILE"
	case FinalDir:
		return "FINAL_DIR"
	case DisabledFile:
		return "DISABLED_FILE"
	case DisabledDir:
		return "DISABLED_DIR"
	default:
		return "UNKNOWN"
	}
}

// AllRoles lists every storage role in declaration order: temp roles, then
// final, then disabled.
var AllRoles = []Role{TempFile, TempDir, FinalFile, FinalDir, DisabledFile, DisabledDir}

// Path composes the on-disk path for (moduleName, role): <base>/<category>/<moduleName>.
func Path(moduleName string, role Role) (string, error) {
	base, err := baseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, role.category(), moduleName), nil
}

var testBaseDir string

// SetBaseDirForTesting overrides the storage base directory for the
// lifetime of a test, returning a restore function. This is the same seam
// the teacher's config package exposes via PMG_CONFIG_DIR_ENV, made
// explicit here since tests should never touch /var/lib/puflib or a
// developer's real $HOME.
func SetBaseDirForTesting(dir string) (restore func()) {
	prev := testBaseDir
	testBaseDir = dir
	return func() { testBaseDir = prev }
}

func baseDir() (string, error) {
	if testBaseDir != "" {
		return testBaseDir, nil
	}
	return platformBaseDir()
}

// CreateDirTree creates path and all missing parent directories, mkdir -p
// style. When skipLast is true, path's final component is treated as a
// filename and only its parent directories are created. Pre-existing
// components are not an error.
func CreateDirTree(path string, skipLast bool) error {
	dir := path
	if skipLast {
		dir = filepath.Dir(path)
	}
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	return nil
}

// CreateAndOpen atomically creates a new file at path, failing if it
// already exists, with owner-only read+write permission. The caller is
// responsible for closing the returned file.
func CreateAndOpen(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0o600)
}

// OpenExisting opens path without creating it.
func OpenExisting(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDWR, 0o600)
}

// CheckAccess reports whether path is present and accessible as the given
// kind: for directories, read+write+execute; for files, read+write. It is
// advisory only - a TOCTOU window exists between this check and any
// subsequent operation, so nothing in this package uses it to gate secrecy
// decisions, only lifecycle/status bookkeeping.
func CheckAccess(path string, kind Kind) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if kind == KindDir && !info.IsDir() {
		return false
	}
	if kind == KindFile && info.IsDir() {
		return false
	}
	return checkPermissionBits(path, info, kind)
}

// DeleteTree removes path: a plain unlink for a file, a recursive removal
// for a directory. Symlinks are treated as links, never followed into.
func DeleteTree(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}
