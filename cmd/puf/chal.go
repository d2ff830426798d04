package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ainfosec/PUFlib"
	"github.com/ainfosec/PUFlib/internal/pufconfig"
	"github.com/ainfosec/PUFlib/internal/termui"
)

func newChalCommand() *cobra.Command {
	var flags ioFlags

	cmd := &cobra.Command{
		Use:   "chal <module> <input>",
		Short: "Use module's raw challenge-response interface",
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

			challenge, err := readInput(args[1], flags.inputBase64)
			if err != nil {
				return err
			}

			response, err := puflib.ChalResp(context.Background(), module, challenge)
			if err != nil {
				return err
			}

			return writeOutput(flags, response)
		},
	}

	addIOFlags(cmd, &flags)
	return cmd
}
