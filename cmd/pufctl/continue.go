package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// newContinueCommand resumes a module's in-progress Provision, refusing a
// module that was never started (matching do_continue in bin/pufctl.c) or
// one that's already provisioned. This is the other half of the
// provision/continue split spec.md's status bits exist to support:
// MODULE_IN_PROGRESS exists precisely so operator tooling can tell "start"
// from "continue" apart.
func newContinueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "continue <module>",
		Short: "Resume provisioning a module that's already in progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}

			module, err := resolveForProvisioning(args[0], true)
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
