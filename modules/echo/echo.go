// Package echo implements Module, a pass-through test module whose seal
// and unseal both return their input verbatim. It is the Go analog of
// modules/puflibtest's no-op seal/unseal pair used for envelope round-trip
// testing (spec.md §8, scenario S1), generalized to a named constructor so
// tests can stand up two independently-named instances for the dispatch
// test in scenario S2.
package echo

import (
	"context"
	"os"

	"github.com/ainfosec/PUFlib"
	"github.com/ainfosec/PUFlib/internal/nvstore"
)

// DefaultName is the name under which the package-level instance
// registers itself.
const DefaultName = "echo"

// Module is a pass-through test module: Seal, Unseal, and ChalResp all
// return a copy of their input. Provisioning is single-step: it drops a
// FINAL_FILE marker and is immediately complete.
type Module struct {
	name string
}

// New builds an echo module under the given name without registering it,
// for tests that need several independently-addressable instances.
func New(name string) Module {
	return Module{name: name}
}

func init() {
	puflib.Register(New(DefaultName))
}

func (m Module) Name() string   { return m.name }
func (Module) Author() string   { return "PUFlib" }
func (Module) Desc() string     { return "pass-through test module (seal/unseal are no-ops)" }
func (Module) IsHWSupported() bool { return true }

// Provision creates a FINAL_FILE marker and is immediately done; unlike
// modules/counter there is no TEMP phase to resume.
func (m Module) Provision(ctx context.Context) (puflib.ProvisionStatus, error) {
	status := puflib.ModuleStatus(m)
	if status&puflib.Provisioned != 0 {
		return puflib.ProvisionComplete, nil
	}

	path, err := puflib.CreateNVStore(m, nvstore.FinalFile)
	if err != nil {
		return puflib.ProvisionError, err
	}
	if err := os.WriteFile(path, []byte("provisioned\n"), 0o600); err != nil {
		return puflib.ProvisionError, err
	}
	return puflib.ProvisionComplete, nil
}

func (Module) Seal(ctx context.Context, plaintext []byte) ([]byte, error) {
	out := make([]byte, len(plaintext))
	copy(out, plaintext)
	return out, nil
}

func (m Module) Unseal(ctx context.Context, ciphertext []byte) ([]byte, error) {
	return m.Seal(ctx, ciphertext)
}

func (Module) ChalResp(ctx context.Context, data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}
