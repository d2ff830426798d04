package puflib

import (
	"fmt"
	"os"

	"github.com/ainfosec/PUFlib/internal/nvstore"
)

// deprovisionRoles walks FINAL, DISABLED, then TEMP, matching
// puflib_deprovision's ordering in the C implementation.
var deprovisionRoles = []nvstore.Role{
	nvstore.FinalFile, nvstore.FinalDir,
	nvstore.DisabledFile, nvstore.DisabledDir,
	nvstore.TempFile, nvstore.TempDir,
}

// Deprovision removes every artifact (FINAL, DISABLED, and TEMP, in both
// kinds) belonging to module. It tolerates a partially-gone module: an
// absent artifact is not an error. Any delete failure is fatal for the
// whole operation.
func Deprovision(module Module) error {
	if module == nil {
		return newError(KindNotFound, "Deprovision", "", nil)
	}

	for _, role := range deprovisionRoles {
		path, err := nvstore.Path(module.Name(), role)
		if err != nil {
			return newError(KindIoFailure, "Deprovision", module.Name(), err)
		}
		if !nvstore.CheckAccess(path, role.Kind()) {
			continue
		}
		if err := nvstore.DeleteTree(path); err != nil {
			return newError(KindIoFailure, "Deprovision", module.Name(), err)
		}
	}
	return nil
}

// enDisPair is one {final, disabled} role pair the enable/disable state
// machine walks, once per kind (file, dir).
var enDisPairs = []struct {
	final    nvstore.Role
	disabled nvstore.Role
}{
	{nvstore.FinalFile, nvstore.DisabledFile},
	{nvstore.FinalDir, nvstore.DisabledDir},
}

// enDis implements the direction-parameterized enable/disable state
// transition from spec.md §4.7: for each kind, rename the disabled-side (or
// final-side) path to the other, refusing if both sides are simultaneously
// present, and treating "already in the requested state" as a no-op.
func enDis(module Module, enable bool) error {
	if module == nil {
		return newError(KindNotFound, "enDis", "", nil)
	}

	op := "Disable"
	if enable {
		op = "Enable"
	}

	for _, pair := range enDisPairs {
		finalPath, err := nvstore.Path(module.Name(), pair.final)
		if err != nil {
			return newError(KindIoFailure, op, module.Name(), err)
		}
		disabledPath, err := nvstore.Path(module.Name(), pair.disabled)
		if err != nil {
			return newError(KindIoFailure, op, module.Name(), err)
		}

		oldPath, newPath := finalPath, disabledPath
		kind := pair.final.Kind()
		if enable {
			oldPath, newPath = disabledPath, finalPath
		}

		oldAccessible := nvstore.CheckAccess(oldPath, kind)
		newAccessible := nvstore.CheckAccess(newPath, kind)

		if oldAccessible {
			if err := nvstore.CreateDirTree(newPath, true); err != nil {
				return newError(KindIoFailure, op, module.Name(), err)
			}
		}

		if oldAccessible && newAccessible {
			Reportf(module, StatusError,
				"cannot %s module - both enabled and disabled stores exist",
				map[bool]string{true: "enable", false: "disable"}[enable])
			return newError(KindInconsistentState, op, module.Name(),
				fmt.Errorf("both enabled and disabled stores exist"))
		}

		if newAccessible {
			// Already in the requested state for this kind.
			continue
		}

		if oldAccessible {
			if err := os.Rename(oldPath, newPath); err != nil {
				return newError(KindIoFailure, op, module.Name(), err)
			}
		}
	}

	return nil
}

// Enable renames a module's DISABLED artifact back to FINAL. Calling this
// on an already-enabled module is a no-op.
func Enable(module Module) error {
	return enDis(module, true)
}

// Disable renames a module's FINAL artifact aside to DISABLED. Calling this
// on an already-disabled module is a no-op.
func Disable(module Module) error {
	return enDis(module, false)
}

// The functions below are the module-facing nonvolatile-storage primitives
// (spec.md §4.7): modules call these from within Provision/Seal/Unseal to
// persist whatever state they need, without reaching into internal/nvstore
// directly.

// CreateNVStore atomically creates a new storage artifact for module under
// role, ensuring parent directories exist first. It refuses with
// KindAlreadyExists if the artifact is already present.
func CreateNVStore(module Module, role nvstore.Role) (string, error) {
	path, err := nvstore.Path(module.Name(), role)
	if err != nil {
		return "", newError(KindIoFailure, "CreateNVStore", module.Name(), err)
	}

	if role.Kind() == nvstore.KindDir {
		// Directory creation can't be made atomic with os.MkdirAll alone
		// (it treats an already-existing directory as success), so the
		// existence check happens first, same as the C implementation's
		// puflib_create_nv_store - callers accept the resulting TOCTOU
		// window, as documented on nvstore.CheckAccess.
		if nvstore.CheckAccess(path, nvstore.KindDir) {
			return "", newError(KindAlreadyExists, "CreateNVStore", module.Name(), nil)
		}
		if err := nvstore.CreateDirTree(path, false); err != nil {
			return "", newError(KindIoFailure, "CreateNVStore", module.Name(), err)
		}
		return path, nil
	}

	if err := nvstore.CreateDirTree(path, true); err != nil {
		return "", newError(KindIoFailure, "CreateNVStore", module.Name(), err)
	}
	f, err := nvstore.CreateAndOpen(path)
	if err != nil {
		if os.IsExist(err) {
			return "", newError(KindAlreadyExists, "CreateNVStore", module.Name(), err)
		}
		return "", newError(KindIoFailure, "CreateNVStore", module.Name(), err)
	}
	f.Close()
	return path, nil
}

// GetNVStore returns the path to an existing storage artifact for module
// under role, or KindNotFound if it is not accessible.
func GetNVStore(module Module, role nvstore.Role) (string, error) {
	path, err := nvstore.Path(module.Name(), role)
	if err != nil {
		return "", newError(KindIoFailure, "GetNVStore", module.Name(), err)
	}
	if !nvstore.CheckAccess(path, role.Kind()) {
		return "", newError(KindNotFound, "GetNVStore", module.Name(), os.ErrNotExist)
	}
	return path, nil
}

// DeleteNVStore removes a storage artifact for module under role: a file
// unlink for file roles, a recursive delete for directory roles.
func DeleteNVStore(module Module, role nvstore.Role) error {
	path, err := nvstore.Path(module.Name(), role)
	if err != nil {
		return newError(KindIoFailure, "DeleteNVStore", module.Name(), err)
	}
	if err := nvstore.DeleteTree(path); err != nil {
		return newError(KindIoFailure, "DeleteNVStore", module.Name(), err)
	}
	return nil
}
