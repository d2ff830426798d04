package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ainfosec/PUFlib"
	"github.com/ainfosec/PUFlib/internal/pufconfig"
	"github.com/ainfosec/PUFlib/internal/termui"
)

// newUnsealCommand takes the same <module> <input> shape as seal for
// symmetry with bin/puf.c, even though Unseal's dispatch only reads the
// module name the blob already carries; a mismatched argv[1] is flagged as
// an error rather than silently ignored, since getting it wrong usually
// means the operator is confused about which module sealed the blob.
func newUnsealCommand() *cobra.Command {
	var flags ioFlags

	cmd := &cobra.Command{
		Use:   "unseal <module> <input>",
		Short: "Unseal input (use \"-\" for stdin); module must match the blob's own header",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := pufconfig.Load(cmd.Flags())
			if err != nil {
				return err
			}
			puflib.SetStatusHandler(termui.NewStatusHandler(cfg.Verbose))
			puflib.SetQueryHandler(nil)

			module, err := resolveUsableModule(args[0])
			if err != nil {
				return err
			}

			ciphertext, err := readInput(args[1], flags.inputBase64)
			if err != nil {
				return err
			}

			if bytes.HasPrefix(ciphertext, []byte(puflib.MagicHeader)) &&
				!bytes.HasPrefix(ciphertext, []byte(puflib.MagicHeader+module.Name()+"\n")) {
				return fmt.Errorf("cannot unseal with module %q: blob was sealed by a different module", module.Name())
			}

			plaintext, err := puflib.Unseal(context.Background(), ciphertext)
			if err != nil {
				return err
			}

			return writeOutput(flags, plaintext)
		},
	}

	addIOFlags(cmd, &flags)
	return cmd
}
