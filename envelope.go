package puflib

import (
	"bytes"
	"context"
	"fmt"
)

// MagicHeader prefixes every sealed blob, documented for interop: any
// implementation speaking this wire format must emit and check for exactly
// this prefix. Chosen short and unlikely to collide with arbitrary
// ciphertext.
const MagicHeader = "PUFLIB1\x00"

// Seal wraps module's encryption of plaintext in the envelope header,
// producing a blob that Unseal can later dispatch back to the same module
// without the caller naming it. Per spec.md §4.8, no partial blob is ever
// returned: either Seal fully succeeds or it returns an error and nothing
// else.
func Seal(ctx context.Context, module Module, plaintext []byte) ([]byte, error) {
	if module == nil {
		return nil, newError(KindNotFound, "Seal", "", nil)
	}

	ciphertext, err := module.Seal(ctx, plaintext)
	if err != nil {
		return nil, newError(KindIoFailure, "Seal", module.Name(), err)
	}

	header := MagicHeader + module.Name() + "\n"
	blob := make([]byte, 0, len(header)+len(ciphertext))
	blob = append(blob, header...)
	blob = append(blob, ciphertext...)
	return blob, nil
}

// Unseal parses a blob's header, resolves the module named in it via the
// registry, and dispatches decryption to that module. The caller never
// names the module; only the blob's bytes determine dispatch (spec.md §8
// property 2).
func Unseal(ctx context.Context, blob []byte) ([]byte, error) {
	if len(blob) < len(MagicHeader) {
		return nil, newError(KindMalformedBlob, "Unseal", "",
			fmt.Errorf("too short for magic prefix"))
	}

	if !bytes.Equal(blob[:len(MagicHeader)], []byte(MagicHeader)) {
		return nil, newError(KindMalformedBlob, "Unseal", "",
			fmt.Errorf("no puflib magic prefix"))
	}

	rest := blob[len(MagicHeader):]
	if len(rest) == 0 {
		return nil, newError(KindMalformedBlob, "Unseal", "",
			fmt.Errorf("too short for module name"))
	}

	nlIdx := bytes.IndexByte(rest, '\n')
	if nlIdx < 0 {
		return nil, newError(KindMalformedBlob, "Unseal", "",
			fmt.Errorf("no module name"))
	}
	if nlIdx == 0 {
		return nil, newError(KindMalformedBlob, "Unseal", "",
			fmt.Errorf("too short for module name"))
	}

	moduleName := string(rest[:nlIdx])
	ciphertext := rest[nlIdx+1:]

	module := GetModule(moduleName)
	if module == nil {
		return nil, newError(KindNotFound, "Unseal", moduleName,
			fmt.Errorf("requested module not found: %s", moduleName))
	}

	plaintext, err := module.Unseal(ctx, ciphertext)
	if err != nil {
		return nil, newError(KindIoFailure, "Unseal", moduleName, err)
	}
	return plaintext, nil
}

// ChalResp is a pass-through to module's raw challenge-response interface;
// the engine imposes no format on data beyond ownership transfer.
func ChalResp(ctx context.Context, module Module, data []byte) ([]byte, error) {
	if module == nil {
		return nil, newError(KindNotFound, "ChalResp", "", nil)
	}
	out, err := module.ChalResp(ctx, data)
	if err != nil {
		return nil, newError(KindIoFailure, "ChalResp", module.Name(), err)
	}
	return out, nil
}
