package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/toastify/internal/config"
)

// loadConfig loads --config when set, otherwise the config file in the
// working directory.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load(".")
}

func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Config file (default ./toastify.json or ./toastify.yaml)")
}
