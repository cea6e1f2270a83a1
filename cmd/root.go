// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with V10, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("V10")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/v10", "$HOME/.v10", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	return &cobra.Command{
		Use:   "v10",
		Short: "Generic sequence algorithms at work",
		Long: `Generic sequence algorithms at work.

v10 summarizes streams of numbers and runs the large partial ordering workload
(selecting the median of a shuffled twenty million element sample without sorting it).`,
		SilenceUsage: true,
	}
}
