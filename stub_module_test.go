package puflib_test

import (
	"context"
	"errors"

	"github.com/ainfosec/PUFlib"
)

// stubModule is a minimal, fully-controllable puflib.Module for exercising
// the core engine (registry, callback plane, status derivation, lifecycle)
// without depending on any of the modules/ packages' own state machines.
type stubModule struct {
	name      string
	author    string
	desc      string
	hwSupport bool
	sealErr   error
	unsealErr error
	chalErr   error
}

func newStubModule(name string) *stubModule {
	return &stubModule{name: name, author: "test", desc: "stub", hwSupport: true}
}

func (m *stubModule) Name() string        { return m.name }
func (m *stubModule) Author() string      { return m.author }
func (m *stubModule) Desc() string        { return m.desc }
func (m *stubModule) IsHWSupported() bool { return m.hwSupport }

func (m *stubModule) Provision(ctx context.Context) (puflib.ProvisionStatus, error) {
	return puflib.ProvisionComplete, nil
}

func (m *stubModule) Seal(ctx context.Context, plaintext []byte) ([]byte, error) {
	if m.sealErr != nil {
		return nil, m.sealErr
	}
	out := make([]byte, len(plaintext))
	copy(out, plaintext)
	return out, nil
}

func (m *stubModule) Unseal(ctx context.Context, ciphertext []byte) ([]byte, error) {
	if m.unsealErr != nil {
		return nil, m.unsealErr
	}
	out := make([]byte, len(ciphertext))
	copy(out, ciphertext)
	return out, nil
}

func (m *stubModule) ChalResp(ctx context.Context, data []byte) ([]byte, error) {
	if m.chalErr != nil {
		return nil, m.chalErr
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

var errStub = errors.New("stub failure")
