package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command and exits non-zero on error.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:          "portfolio",
		Short:        "Personal portfolio site",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configFile)
		},
	}

	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (yaml, toml or json); environment variables override it")

	cmd.AddCommand(serveCmd(&configFile))
	cmd.AddCommand(validateCmd(&configFile))
	return cmd
}
