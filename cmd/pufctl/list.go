package main

import (
	"github.com/spf13/cobra"

	"github.com/ainfosec/PUFlib"
	"github.com/ainfosec/PUFlib/internal/termui"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every registered module and its current status",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}
			printModules(puflib.GetModules())
			return nil
		},
	}
}

// newProvisionedCommand implements the "provisioned" filter: listing only
// modules whose Provisioned bit is set (enabled or disabled), for scripts
// that poll deployment status.
func newProvisionedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "provisioned",
		Short: "List only modules that are provisioned (enabled or disabled)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}

			var provisioned []puflib.Module
			for _, m := range puflib.GetModules() {
				if puflib.ModuleStatus(m)&puflib.Provisioned != 0 {
					provisioned = append(provisioned, m)
				}
			}
			printModules(provisioned)
			return nil
		},
	}
}

func printModules(modules []puflib.Module) {
	rows := make([]termui.ModuleRow, 0, len(modules))
	for _, m := range modules {
		rows = append(rows, termui.ModuleRow{
			Name:      m.Name(),
			Author:    m.Author(),
			Desc:      m.Desc(),
			HWSupport: m.IsHWSupported(),
			Status:    puflib.ModuleStatus(m),
		})
	}
	termui.PrintModuleTable(rows)
}
