package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ainfosec/PUFlib"
)

func newDeprovisionCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "deprovision <module>",
		Short: "Remove every lifecycle artifact for a module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}

			module := puflib.GetModule(args[0])
			if module == nil {
				return fmt.Errorf("no such module: %s", args[0])
			}

			if !force {
				fmt.Printf("This permanently deletes all stored state for %q. Continue? (y/N): ", module.Name())
				var response string
				fmt.Scanln(&response)
				if response != "y" && response != "yes" {
					fmt.Println("aborted")
					return nil
				}
			}

			return puflib.Deprovision(module)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	return cmd
}
