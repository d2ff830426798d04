package puflib

import "github.com/ainfosec/PUFlib/internal/nvstore"

// ModuleStatusFlags is a bitset describing which lifecycle artifacts a
// module currently has on disk (spec.md §3).
type ModuleStatusFlags uint8

const (
	// InProgress is set when any TEMP artifact exists.
	InProgress ModuleStatusFlags = 1 << iota
	// Provisioned is set when any FINAL or DISABLED artifact exists.
	Provisioned
	// Disabled is set when any DISABLED artifact exists.
	Disabled
	// ErrorFlag means an I/O fault prevented deriving the real status; none
	// of the other bits are meaningful when this is set. Named ErrorFlag
	// rather than Error/StatusError to avoid colliding with the StatusLevel
	// constant of the same natural name in callback.go.
	ErrorFlag
)

// contribution mirrors the table in spec.md §4.6: which role contributes
// which flags when its artifact is accessible.
var contribution = []struct {
	role  nvstore.Role
	flags ModuleStatusFlags
}{
	{nvstore.TempFile, InProgress},
	{nvstore.TempDir, InProgress},
	{nvstore.FinalFile, Provisioned},
	{nvstore.FinalDir, Provisioned},
	{nvstore.DisabledFile, Provisioned | Disabled},
	{nvstore.DisabledDir, Provisioned | Disabled},
}

// ModuleStatus derives a module's lifecycle status by probing every
// storage role's on-disk artifact. It never consults any state besides the
// filesystem; it is a best-effort snapshot, racy against concurrent
// lifecycle operations by design (spec.md §4.6).
func ModuleStatus(module Module) ModuleStatusFlags {
	if module == nil {
		return ErrorFlag
	}

	var status ModuleStatusFlags
	for _, c := range contribution {
		path, err := nvstore.Path(module.Name(), c.role)
		if err != nil {
			return ErrorFlag
		}
		if nvstore.CheckAccess(path, c.role.Kind()) {
			status |= c.flags
		}
	}
	return status
}
