// Package chalresp implements a demo challenge-response module: it keeps no
// secret state (Provision completes in one call by dropping a FINAL_FILE
// marker, so the module reports as provisioned) and exists purely to
// exercise puflib.ChalResp end to end for
// the "puf chal" command. Responses are derived deterministically from the
// challenge via a version-5 UUID, standing in for a real PUF's
// challenge-to-response mapping without requiring hardware.
package chalresp

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ainfosec/PUFlib"
	"github.com/ainfosec/PUFlib/internal/nvstore"
)

const DefaultName = "chalresp"

// namespace seeds the deterministic UUID derivation; any fixed value works,
// it only needs to be stable across runs so the same challenge always maps
// to the same response.
var namespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

type Module struct {
	name string
}

func New(name string) Module {
	return Module{name: name}
}

func init() {
	puflib.Register(New(DefaultName))
}

func (m Module) Name() string      { return m.name }
func (Module) Author() string      { return "PUFlib" }
func (Module) Desc() string        { return "challenge-response demo module (no secret state, no seal/unseal)" }
func (Module) IsHWSupported() bool { return true }

// Provision creates an empty FINAL_FILE marker and is immediately complete;
// once the module is provisioned, later calls report complete without
// touching the store.
func (m Module) Provision(ctx context.Context) (puflib.ProvisionStatus, error) {
	if puflib.ModuleStatus(m)&puflib.Provisioned != 0 {
		return puflib.ProvisionComplete, nil
	}
	if _, err := puflib.CreateNVStore(m, nvstore.FinalFile); err != nil {
		return puflib.ProvisionError, err
	}
	return puflib.ProvisionComplete, nil
}

func (Module) Seal(ctx context.Context, plaintext []byte) ([]byte, error) {
	return nil, fmt.Errorf("chalresp: seal not supported, this module only demonstrates ChalResp")
}

func (Module) Unseal(ctx context.Context, ciphertext []byte) ([]byte, error) {
	return nil, fmt.Errorf("chalresp: unseal not supported, this module only demonstrates ChalResp")
}

// ChalResp maps data deterministically onto a 16-byte response by hashing it
// into a version-5 UUID under a fixed namespace - the same challenge always
// yields the same response, and different challenges very likely don't.
func (Module) ChalResp(ctx context.Context, data []byte) ([]byte, error) {
	response := uuid.NewSHA1(namespace, data)
	return response[:], nil
}
