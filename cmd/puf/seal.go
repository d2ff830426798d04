package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ainfosec/PUFlib"
	"github.com/ainfosec/PUFlib/internal/pufconfig"
	"github.com/ainfosec/PUFlib/internal/termui"
)

func newSealCommand() *cobra.Command {
	var flags ioFlags

	cmd := &cobra.Command{
		Use:   "seal <module> <input>",
		Short: "Seal input using module (use \"-\" for stdin)",
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

			plaintext, err := readInput(args[1], flags.inputBase64)
			if err != nil {
				return err
			}

			blob, err := puflib.Seal(context.Background(), module, plaintext)
			if err != nil {
				return err
			}

			return writeOutput(flags, blob)
		},
	}

	addIOFlags(cmd, &flags)
	return cmd
}
