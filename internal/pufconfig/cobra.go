package pufconfig

import "github.com/spf13/cobra"

// ApplyCobraFlags registers the persistent flags every puflib CLI command
// shares, binding them through viper in config.go's bindFlags.
func ApplyCobraFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool("verbose", false, "Show debug-level status reports")
	cmd.PersistentFlags().Bool("non-interactive", false, "Fail module queries instead of prompting on stdin")
	cmd.PersistentFlags().String("output", "table", "Output format (only \"table\" is rendered)")
}
