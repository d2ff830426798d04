// Command puf seals, unseals, and challenges secrets through puflib
// modules. It is the Go analog of bin/puf.c: the module must already be
// provisioned and enabled (use pufctl for that), and this tool only moves
// bytes through Seal/Unseal/ChalResp.
package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/ainfosec/PUFlib/modules/chalresp"
	_ "github.com/ainfosec/PUFlib/modules/counter"
	_ "github.com/ainfosec/PUFlib/modules/dirtest"
	_ "github.com/ainfosec/PUFlib/modules/echo"

	"github.com/ainfosec/PUFlib/internal/diag"
	"github.com/ainfosec/PUFlib/internal/pufconfig"
	"github.com/ainfosec/PUFlib/internal/termui"
)

func main() {
	syncDiag, err := diag.Init(slices.Contains(os.Args, "--verbose"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "puf: failed to initialize diagnostic logger: %v\n", err)
	}
	defer syncDiag()

	if err := godotenv.Load(".env"); err != nil {
		diag.L().Debug("no .env file found or failed to load", zap.Error(err))
	}

	root := &cobra.Command{
		Use:           "puf",
		Short:         "Seal, unseal, and challenge secrets using PUFlib modules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pufconfig.ApplyCobraFlags(root)

	root.AddCommand(
		newSealCommand(),
		newUnsealCommand(),
		newChalCommand(),
	)

	if err := root.Execute(); err != nil {
		diag.L().Error("command failed", zap.Error(err))
		termui.ErrorExit(fmt.Errorf("puf: %w", err))
		os.Exit(1)
	}
}
