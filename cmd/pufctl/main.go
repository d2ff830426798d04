// Command pufctl is the operator-facing lifecycle tool for puflib modules:
// list, provision, continue, deprovision, enable, and disable. It is the Go
// analog of bin/pufctl.c, rebuilt around cobra subcommands in the style the
// rest of this codebase's CLIs use.
package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	// Import every bundled test module purely for its init()-time
	// Register call; pufctl never references these packages' exported API
	// directly.
	_ "github.com/ainfosec/PUFlib/modules/chalresp"
	_ "github.com/ainfosec/PUFlib/modules/counter"
	_ "github.com/ainfosec/PUFlib/modules/dirtest"
	_ "github.com/ainfosec/PUFlib/modules/echo"

	"github.com/ainfosec/PUFlib/internal/diag"
	"github.com/ainfosec/PUFlib/internal/pufconfig"
	"github.com/ainfosec/PUFlib/internal/termui"
)

func main() {
	// The verbose flag isn't parsed by cobra until root.Execute, but the
	// diagnostic logger needs to exist before then to catch startup faults,
	// so it's scanned for directly here.
	syncDiag, err := diag.Init(slices.Contains(os.Args, "--verbose"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "pufctl: failed to initialize diagnostic logger: %v\n", err)
	}
	defer syncDiag()

	if err := godotenv.Load(".env"); err != nil {
		diag.L().Debug("no .env file found or failed to load", zap.Error(err))
	}

	root := &cobra.Command{
		Use:           "pufctl",
		Short:         "Manage puflib module lifecycle: list, provision, continue, deprovision, enable, disable",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pufconfig.ApplyCobraFlags(root)

	root.AddCommand(
		newListCommand(),
		newProvisionedCommand(),
		newProvisionCommand(),
		newContinueCommand(),
		newDeprovisionCommand(),
		newEnableCommand(),
		newDisableCommand(),
	)

	if err := root.Execute(); err != nil {
		diag.L().Error("command failed", zap.Error(err))
		termui.ErrorExit(fmt.Errorf("pufctl: %w", err))
		os.Exit(1)
	}
}

// loadConfig resolves CLI configuration from the command's own flag set and
// installs the default status/query handlers it implies.
func loadConfig(cmd *cobra.Command) (pufconfig.Config, error) {
	cfg, err := pufconfig.Load(cmd.Flags())
	if err != nil {
		return cfg, err
	}
	installHandlers(cfg)
	return cfg, nil
}
