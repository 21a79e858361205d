/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fsbench/src/log"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fsbench",
	Short: "Filesystem performance benchmarks",
	Long: `fsbench measures filesystem performance characteristics of the host
it runs on. The benchmark subcommands report throughput to stdout and keep
all diagnostics on stderr; nothing is ever written to disk.

Compare runs across thread counts and machines to isolate filesystem
overhead, endpoint-security hooks or storage-layer slowness.`,
	Version:      version,
	SilenceUsage: true,
}

const version = "0.1.0"

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	settingDefaultConfig()
	if err := log.Setup(viper.GetString("log.level")); err != nil {
		log.Error(err, "failed to configure logging, keeping defaults")
	}
}
