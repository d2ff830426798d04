// Package counter implements the resumable step-counter test module from
// spec.md §8 scenario S3: a module that takes three calls to Provision to
// finish, using a TEMP_FILE to track progress across calls. It is the Go
// analog of modules/puflibtest/puflibtest.c's provision_start/
// provision_continue pair.
package counter

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ainfosec/PUFlib"
	"github.com/ainfosec/PUFlib/internal/nvstore"
)

const DefaultName = "counter"

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
func (Module) Desc() string        { return "resumable step-counter test module" }
func (Module) IsHWSupported() bool { return true }

// Provision writes "1\n" to a TEMP_FILE on its first call (and asks the
// operator a throwaway question, exercising the query plane), "2\n" on its
// second, and on the third deletes TEMP and writes FINAL, matching the
// three-call progression documented in spec.md §8 S3.
func (m Module) Provision(ctx context.Context) (puflib.ProvisionStatus, error) {
	path, err := puflib.CreateNVStore(m, nvstore.TempFile)
	if err == nil {
		return m.provisionStart(path)
	}

	kind, _ := puflib.KindOf(err)
	if kind != puflib.KindAlreadyExists {
		return puflib.ProvisionError, err
	}

	path, err = puflib.GetNVStore(m, nvstore.TempFile)
	if err != nil {
		return puflib.ProvisionError, err
	}
	return m.provisionContinue(path)
}

func (m Module) provisionStart(path string) (puflib.ProvisionStatus, error) {
	puflib.Report(m, puflib.StatusInfo, "creating NV store")
	if err := os.WriteFile(path, []byte("1\n"), 0o600); err != nil {
		return puflib.ProvisionError, err
	}
	puflib.Report(m, puflib.StatusInfo, "provisioning will continue after the next invocation")

	value, err := puflib.Query(m, "testquery", "Enter any data: ")
	if err != nil && !puflib.IsUserCanceled(err) {
		return puflib.ProvisionError, err
	}
	puflib.Reportf(m, puflib.StatusInfo, "query input was: %s", value)

	return puflib.ProvisionIncomplete, nil
}

func (m Module) provisionContinue(path string) (puflib.ProvisionStatus, error) {
	puflib.Report(m, puflib.StatusInfo, "reading from NV store")
	raw, err := os.ReadFile(path)
	if err != nil {
		return puflib.ProvisionError, err
	}

	step, convErr := strconv.Atoi(strings.TrimSpace(string(raw)))
	if convErr != nil {
		puflib.Report(m, puflib.StatusWarn, "NV store corrupted")
		return puflib.ProvisionError, fmt.Errorf("counter: corrupt step counter: %w", convErr)
	}

	switch step {
	case 1:
		puflib.Report(m, puflib.StatusInfo, "writing to NV store again")
		puflib.Report(m, puflib.StatusInfo, "provisioning will continue after the next invocation")
		if err := os.WriteFile(path, []byte("2\n"), 0o600); err != nil {
			return puflib.ProvisionError, err
		}
		return puflib.ProvisionIncomplete, nil

	case 2:
		puflib.Report(m, puflib.StatusInfo, "complete")
		puflib.Report(m, puflib.StatusInfo, "deleting NV store")
		if err := puflib.DeleteNVStore(m, nvstore.TempFile); err != nil {
			return puflib.ProvisionError, err
		}

		finalPath, err := puflib.CreateNVStore(m, nvstore.FinalFile)
		if err != nil {
			return puflib.ProvisionError, err
		}
		if err := os.WriteFile(finalPath, []byte("provisioned\n"), 0o600); err != nil {
			return puflib.ProvisionError, err
		}
		return puflib.ProvisionComplete, nil

	default:
		puflib.Report(m, puflib.StatusWarn, "NV store corrupted")
		return puflib.ProvisionError, fmt.Errorf("counter: unexpected step value %d", step)
	}
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
