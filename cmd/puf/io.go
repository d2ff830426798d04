package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ainfosec/PUFlib"
)

// maxInputBytes mirrors bin/puf.c's MAX_BUFFER_LEN: a sanity ceiling on how
// much a single invocation will buffer in memory, not a protocol limit.
const maxInputBytes = 8 * 1024 * 1024

type ioFlags struct {
	inputBase64  bool
	outputBase64 bool
	outputPath   string
}

func addIOFlags(cmd *cobra.Command, flags *ioFlags) {
	cmd.Flags().BoolVarP(&flags.inputBase64, "input-base64", "I", false, "input is base64-encoded")
	cmd.Flags().BoolVarP(&flags.outputBase64, "output-base64", "O", false, "output is base64-encoded")
	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "output to this file instead of stdout")
}

// readInput reads path ("-" for stdin) up to maxInputBytes+1, erroring if
// the true size exceeds the ceiling, and base64-decodes it first if asked.
func readInput(path string, base64Encoded bool) ([]byte, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	limited := io.LimitReader(r, maxInputBytes+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, err
	}
	if len(data) > maxInputBytes {
		return nil, fmt.Errorf("input exceeds %d byte limit", maxInputBytes)
	}

	if !base64Encoded {
		return data, nil
	}

	trimmed := bytes.TrimRight(data, "\r\n \t")
	decoded, err := base64.StdEncoding.DecodeString(string(trimmed))
	if err != nil {
		return nil, fmt.Errorf("error decoding base64 data: %w", err)
	}
	return decoded, nil
}

// writeOutput writes data to flags.outputPath, or stdout when unset,
// base64-encoding first if asked.
func writeOutput(flags ioFlags, data []byte) error {
	if flags.outputBase64 {
		encoded := base64.StdEncoding.EncodeToString(data)
		data = append([]byte(encoded), '\n')
	}

	if flags.outputPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	return os.WriteFile(flags.outputPath, data, 0o600)
}

// resolveUsableModule looks a module up by name and refuses to act on it
// unless it's provisioned and not disabled, matching bin/puf.c's status
// checks ahead of seal/unseal/chal.
func resolveUsableModule(name string) (puflib.Module, error) {
	module := puflib.GetModule(name)
	if module == nil {
		return nil, fmt.Errorf("cannot use module %q: does not exist", name)
	}

	status := puflib.ModuleStatus(module)
	if status&puflib.ErrorFlag != 0 {
		return nil, fmt.Errorf("cannot use module %q: error deriving status", name)
	}
	if status&puflib.Disabled != 0 {
		return nil, fmt.Errorf("cannot use module %q: module is disabled", name)
	}
	if status&puflib.Provisioned == 0 {
		return nil, fmt.Errorf("cannot use module %q: module has not been provisioned", name)
	}
	return module, nil
}
