// Package dirtest implements a directory-backed test module, exercising
// the directory half of every storage-role code path (TEMP_DIR, FINAL_DIR,
// DISABLED_DIR): recursive delete, directory-kind enable/disable, and
// directory-kind status derivation. It is the Go analog of
// modules/puflibdirtest/puflibtest.c, extended to reach FINAL_DIR (the
// original never provisions past TEMP_DIR) so the directory kind can be
// exercised end to end, including seal/unseal and enable/disable.
package dirtest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ainfosec/PUFlib"
	"github.com/ainfosec/PUFlib/internal/nvstore"
)

const DefaultName = "dirtest"

const stepFileName = "step"
const sealedFileName = "sealed"

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
func (Module) Desc() string        { return "directory-backed test module" }
func (Module) IsHWSupported() bool { return true }

func (m Module) Provision(ctx context.Context) (puflib.ProvisionStatus, error) {
	path, err := puflib.CreateNVStore(m, nvstore.TempDir)
	if err == nil {
		return m.provisionStart(path)
	}

	kind, _ := puflib.KindOf(err)
	if kind != puflib.KindAlreadyExists {
		return puflib.ProvisionError, err
	}

	path, err = puflib.GetNVStore(m, nvstore.TempDir)
	if err != nil {
		return puflib.ProvisionError, err
	}
	return m.provisionContinue(path)
}

func (m Module) provisionStart(dir string) (puflib.ProvisionStatus, error) {
	puflib.Report(m, puflib.StatusInfo, "creating NV store")
	if err := os.WriteFile(filepath.Join(dir, stepFileName), []byte("1\n"), 0o600); err != nil {
		return puflib.ProvisionError, err
	}
	puflib.Report(m, puflib.StatusInfo, "provisioning will continue after the next invocation")
	return puflib.ProvisionIncomplete, nil
}

func (m Module) provisionContinue(dir string) (puflib.ProvisionStatus, error) {
	puflib.Report(m, puflib.StatusInfo, "reading from NV store")
	raw, err := os.ReadFile(filepath.Join(dir, stepFileName))
	if err != nil {
		return puflib.ProvisionError, err
	}

	step, convErr := strconv.Atoi(strings.TrimSpace(string(raw)))
	if convErr != nil {
		puflib.Report(m, puflib.StatusWarn, "NV store corrupted")
		return puflib.ProvisionError, fmt.Errorf("dirtest: corrupt step counter: %w", convErr)
	}

	switch step {
	case 1:
		puflib.Report(m, puflib.StatusInfo, "writing to NV store again")
		if err := os.WriteFile(filepath.Join(dir, stepFileName), []byte("2\n"), 0o600); err != nil {
			return puflib.ProvisionError, err
		}
		puflib.Report(m, puflib.StatusInfo, "provisioning will continue after the next invocation")
		return puflib.ProvisionIncomplete, nil

	case 2:
		puflib.Report(m, puflib.StatusInfo, "complete")

		finalDir, err := puflib.CreateNVStore(m, nvstore.FinalDir)
		if err != nil {
			return puflib.ProvisionError, err
		}
		if err := os.WriteFile(filepath.Join(finalDir, sealedFileName), nil, 0o600); err != nil {
			return puflib.ProvisionError, err
		}

		puflib.Report(m, puflib.StatusInfo, "deleting NV store")
		if err := puflib.DeleteNVStore(m, nvstore.TempDir); err != nil {
			return puflib.ProvisionError, err
		}
		return puflib.ProvisionComplete, nil

	default:
		puflib.Report(m, puflib.StatusWarn, "NV store corrupted")
		return puflib.ProvisionError, fmt.Errorf("dirtest: unexpected step value %d", step)
	}
}

// Seal requires a FINAL_DIR to exist (i.e. Provision must have completed)
// but otherwise passes plaintext through unmodified, like modules/echo;
// dirtest exists to exercise the directory-shaped NV store lifecycle, not
// to demonstrate a real sealing transform.
func (m Module) Seal(ctx context.Context, plaintext []byte) ([]byte, error) {
	if _, err := puflib.GetNVStore(m, nvstore.FinalDir); err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext))
	copy(out, plaintext)
	return out, nil
}

func (m Module) Unseal(ctx context.Context, ciphertext []byte) ([]byte, error) {
	if _, err := puflib.GetNVStore(m, nvstore.FinalDir); err != nil {
		return nil, err
	}
	out := make([]byte, len(ciphertext))
	copy(out, ciphertext)
	return out, nil
}

func (Module) ChalResp(ctx context.Context, data []byte) ([]byte, error) {
	return nil, fmt.Errorf("dirtest: challenge-response not supported")
}
