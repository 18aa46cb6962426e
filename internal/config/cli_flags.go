package config

import "github.com/spf13/cobra"

// RegisterFlags registers common CLI flags on the provided root command
func RegisterFlags(cmd *cobra.Command) {
	if cmd == nil {
		return
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output except errors")
	cmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")
	cmd.PersistentFlags().StringArray("proxy", nil, "HTTP proxy to rotate through (repeatable)")
	cmd.PersistentFlags().String("timeout", "", "Per-request timeout (default 10s)")
	cmd.PersistentFlags().String("delay", "", "Pause after each successful request (default 1s)")
	cmd.PersistentFlags().String("user-agent", "", "Custom user agent string")
	cmd.PersistentFlags().StringArrayP("header", "H", nil, "Extra request header (e.g., -H \"Accept-Language: fr\")")
	cmd.PersistentFlags().Bool("strict-csv", false, "Reject CSV exports whose records have differing keys")
	cmd.PersistentFlags().String("table-header", "", "Table header policy: first-row or none")
	cmd.PersistentFlags().String("config", "", "Path to configuration file (optional)")
}
