package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ainfosec/PUFlib"
)

// resolveForProvisioning looks moduleName up and applies the same guard
// do_provision/do_continue apply in bin/pufctl.c before ever calling
// Provision: a module that's already fully provisioned refuses either verb,
// and continuing is the one move allowed while MODULE_IN_PROGRESS. continuing
// selects which of the two one-sided checks applies; the two commands share
// this rather than duplicating the status derivation and error wording.
func resolveForProvisioning(moduleName string, continuing bool) (puflib.Module, error) {
	module := puflib.GetModule(moduleName)
	if module == nil {
		return nil, fmt.Errorf("no such module: %s", moduleName)
	}

	status := puflib.ModuleStatus(module)
	if status&puflib.ErrorFlag != 0 {
		return nil, fmt.Errorf("cannot determine status of module %q", moduleName)
	}

	inProgress := status&puflib.InProgress != 0
	if status&puflib.Provisioned != 0 {
		return nil, fmt.Errorf("cannot provision module %q: already provisioned", moduleName)
	}
	if continuing && !inProgress {
		return nil, fmt.Errorf("cannot continue provisioning module %q: haven't started yet. Try \"provision\"", moduleName)
	}
	if !continuing && inProgress {
		return nil, fmt.Errorf("cannot provision module %q: already started provisioning. Try \"continue\"", moduleName)
	}

	if !module.IsHWSupported() {
		return nil, fmt.Errorf("module %q does not support this hardware", moduleName)
	}
	return module, nil
}

// newProvisionCommand wraps a single call to Module.Provision, refusing to
// start a module that's already provisioned or already mid-provisioning
// (matching do_provision in bin/pufctl.c). Multi-step modules
// (modules/counter, modules/dirtest) require the operator to invoke
// "continue" after a ProvisionIncomplete result, exactly as the underlying
// library contract requires; pufctl does not loop on their behalf, since a
// query in the middle of provisioning must reach a live terminal between
// invocations.
func newProvisionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "provision <module>",
		Short: "Start provisioning a module that hasn't been started yet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}

			module, err := resolveForProvisioning(args[0], false)
			if err != nil {
				return err
			}

			status, err := module.Provision(context.Background())
			if err != nil {
				return err
			}

			fmt.Println(status)
			return nil
		},
	}
}
