/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"fsbench/src/sysinfo"
)

// sysinfoCmd represents the sysinfo command
var sysinfoCmd = &cobra.Command{
	Use:   "sysinfo [path...]",
	Short: "Describe the host hardware and the filesystems behind paths",
	Long: `sysinfo prints the CPU, memory, topology and block-device inventory
of this machine plus filesystem details for each given path (default: the
working directory). Attach its output when sharing benchmark numbers so they
can be compared across machines.`,
	RunE: runSysinfo,
}

func init() {
	rootCmd.AddCommand(sysinfoCmd)
}

func runSysinfo(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		paths = []string{cwd}
	}
	sysinfo.Collect(paths).Render(os.Stdout)
	return nil
}
