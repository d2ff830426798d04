package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ainfosec/PUFlib"
)

func newEnableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "enable <module>",
		Short: "Re-enable a disabled module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnDis(cmd, args[0], puflib.Enable)
		},
	}
}

func newDisableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "disable <module>",
		Short: "Disable a provisioned module without erasing its state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnDis(cmd, args[0], puflib.Disable)
		},
	}
}

func runEnDis(cmd *cobra.Command, moduleName string, op func(puflib.Module) error) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}

	module := puflib.GetModule(moduleName)
	if module == nil {
		return fmt.Errorf("no such module: %s", moduleName)
	}
	return op(module)
}
